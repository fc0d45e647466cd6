package entities

import (
	"image/color"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/ecs"
)

// HUD 标签布局（像素）
const (
	hudMargin = 16.0
	hudScale  = 2.0
)

// NewLabelEntity 创建文字标签
func NewLabelEntity(em *ecs.EntityManager, text string, x, y float64, align components.LabelAlign, scale float64, clr color.Color) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.LabelComponent{
		Text:    text,
		Align:   align,
		Color:   clr,
		Scale:   scale,
		Visible: true,
	})
	return id
}

// NewHUDLabels 创建左上角的分数标签和右上角的时间标签（黑色）
func NewHUDLabels(em *ecs.EntityManager, sceneWidth float64) (scoreLabel, timeLabel ecs.EntityID) {
	scoreLabel = NewLabelEntity(em, "", hudMargin, hudMargin, components.AlignLeft, hudScale, color.Black)
	timeLabel = NewLabelEntity(em, "", sceneWidth-hudMargin, hudMargin, components.AlignRight, hudScale, color.Black)
	return scoreLabel, timeLabel
}

// SetLabelText 更新标签文字
func SetLabelText(em *ecs.EntityManager, id ecs.EntityID, text string) {
	if label, ok := ecs.GetComponent[*components.LabelComponent](em, id); ok {
		label.Text = text
	}
}
