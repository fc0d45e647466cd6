package components

import "github.com/gonewx/flowercatch/pkg/ecs"

// DialogComponent 对话框组件
// 用于显示模态对话框（游戏结束面板）
type DialogComponent struct {
	Title         string         // 对话框标题（如 "Game Over"）
	Lines         []string       // 正文，每个元素一行
	Width         float64        // 对话框宽度
	Height        float64        // 对话框高度
	IsVisible     bool           // 是否可见
	ChildEntities []ecs.EntityID // 关联的子实体（按钮），对话框销毁时一起销毁
}

// DialogButtonComponent 对话框按钮的显示数据
// 点击区域与回调在 ClickableComponent 中
type DialogButtonComponent struct {
	Label  string
	Parent ecs.EntityID
}
