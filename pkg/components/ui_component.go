package components

// UIState 控件的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIClicked 指针在控件上按住
	UIClicked
	// UIDisabled 不可点击
	UIDisabled
)

// UIComponent 标记实体为界面元素（结算面板及其按钮）
// Layer 越大越靠上：绘制越晚，命中测试越优先。
type UIComponent struct {
	State UIState
	Layer int
}
