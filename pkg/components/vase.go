package components

// VaseComponent 标记玩家控制的花瓶
// 花瓶只在水平方向移动，BaseY 是固定的纵坐标
type VaseComponent struct {
	BaseY float64
}
