package entities

import (
	"fmt"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/ecs"
)

// 结算面板控件名称，输入系统按名称查找
const (
	RestartControlName = "restart"
	QuitControlName    = "quit"
)

// 结算面板布局（像素）
const (
	promptWidth     = 360.0
	promptHeight    = 340.0
	promptButtonW   = 200.0
	promptButtonH   = 56.0
	promptButtonGap = 16.0
	promptLayer     = 100
)

// GameOverPrompt 结算面板的内容与回调
type GameOverPrompt struct {
	Score     int
	Best      int
	NewBest   bool
	OnRestart func()
	OnQuit    func()
}

// NewGameOverPromptEntity 创建居中的结算面板："Game Over"、最终分数、
// 最高分，以及 Restart / Quit 两个按钮
//
// 点击任一按钮时先关闭面板，再执行对应回调。
//
// 参数：
//   - em: 实体管理器
//   - sceneWidth, sceneHeight: 场景尺寸
//   - prompt: 面板内容
//
// 返回：
//   - 对话框实体ID
func NewGameOverPromptEntity(em *ecs.EntityManager, sceneWidth, sceneHeight float64, prompt GameOverPrompt) ecs.EntityID {
	cx, cy := sceneWidth/2, sceneHeight/2

	lines := []string{fmt.Sprintf("Final Score: %d", prompt.Score)}
	if prompt.NewBest {
		lines = append(lines, "New Best!")
	} else {
		lines = append(lines, fmt.Sprintf("Best: %d", prompt.Best))
	}

	dialog := em.CreateEntity()
	ecs.AddComponent(em, dialog, &components.PositionComponent{X: cx, Y: cy})
	ecs.AddComponent(em, dialog, &components.UIComponent{State: components.UINormal, Layer: promptLayer})

	// 按钮位于面板下半部分，纵向排列
	firstY := cy + promptHeight/2 - promptButtonH*1.5 - promptButtonGap*1.5
	restart := newPromptButton(em, dialog, RestartControlName, "Restart", cx, firstY, prompt.OnRestart)
	quit := newPromptButton(em, dialog, QuitControlName, "Quit", cx, firstY+promptButtonH+promptButtonGap, prompt.OnQuit)

	ecs.AddComponent(em, dialog, &components.DialogComponent{
		Title:         "Game Over",
		Lines:         lines,
		Width:         promptWidth,
		Height:        promptHeight,
		IsVisible:     true,
		ChildEntities: []ecs.EntityID{restart, quit},
	})

	return dialog
}

func newPromptButton(em *ecs.EntityManager, dialog ecs.EntityID, name, label string, x, y float64, action func()) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.UIComponent{State: components.UINormal, Layer: promptLayer + 1})
	ecs.AddComponent(em, id, &components.DialogButtonComponent{Label: label, Parent: dialog})
	ecs.AddComponent(em, id, &components.ClickableComponent{
		Name:      name,
		Width:     promptButtonW,
		Height:    promptButtonH,
		IsEnabled: true,
		OnClick: func() {
			DestroyDialog(em, dialog)
			if action != nil {
				action()
			}
		},
	})
	return id
}

// DestroyDialog 销毁对话框及其子实体，返回是否确实销毁
func DestroyDialog(em *ecs.EntityManager, dialog ecs.EntityID) bool {
	comp, ok := ecs.GetComponent[*components.DialogComponent](em, dialog)
	if !ok {
		return false
	}
	for _, child := range comp.ChildEntities {
		em.DestroyEntity(child)
	}
	comp.IsVisible = false
	return em.DestroyEntity(dialog)
}
