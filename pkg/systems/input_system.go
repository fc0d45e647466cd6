package systems

import (
	"log"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/ecs"
	"github.com/gonewx/flowercatch/pkg/utils"
)

// DragHandler 接收本帧的水平拖动增量（像素）
type DragHandler func(deltaX float64)

// InputSystem 处理指针输入
//
// 按住拖动时把水平增量转发给 DragHandler（移动花瓶）；
// 点击释放时在可点击实体（结算面板按钮）上做命中测试并触发回调。
type InputSystem struct {
	em     *ecs.EntityManager
	drag   *utils.DragManager
	onDrag DragHandler
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, drag *utils.DragManager, onDrag DragHandler) *InputSystem {
	if drag == nil {
		drag = utils.NewDragManager()
	}
	return &InputSystem{
		em:     em,
		drag:   drag,
		onDrag: onDrag,
	}
}

// Process 根据拖拽管理器的当前状态分发输入
// 不采样指针，采样由场景在 Update 中调用 DragManager.Update 完成
func (s *InputSystem) Process() {
	if s.drag.IsDragging() && s.onDrag != nil {
		if dx, _ := s.drag.Delta(); dx != 0 {
			s.onDrag(float64(dx))
		}
	}

	s.updatePressedState()

	if tap, x, y := s.drag.IsTap(); tap {
		s.handleTap(float64(x), float64(y))
	}
}

// updatePressedState 按住时高亮指针下的按钮
func (s *InputSystem) updatePressedState() {
	info := s.drag.GetInfo()
	pressed := s.drag.JustStarted() || s.drag.IsDragging()
	px, py := float64(info.CurrentX), float64(info.CurrentY)

	ids := ecs.GetEntitiesWith3[*components.ClickableComponent, *components.PositionComponent, *components.UIComponent](s.em)
	for _, id := range ids {
		click, _ := ecs.GetComponent[*components.ClickableComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		ui, _ := ecs.GetComponent[*components.UIComponent](s.em, id)

		switch {
		case !click.IsEnabled:
			ui.State = components.UIDisabled
		case pressed && click.Contains(pos.X, pos.Y, px, py):
			ui.State = components.UIClicked
		default:
			ui.State = components.UINormal
		}
	}
}

// handleTap 在点击位置查找最上层的可点击实体并触发回调
func (s *InputSystem) handleTap(x, y float64) bool {
	id, click := s.HitTest(x, y)
	if id == ecs.InvalidEntity {
		return false
	}
	log.Printf("[InputSystem] Clicked %q at (%.0f, %.0f)", click.Name, x, y)
	if click.OnClick != nil {
		click.OnClick()
	}
	return true
}

// HitTest 返回 (x, y) 处最上层且可用的可点击实体
func (s *InputSystem) HitTest(x, y float64) (ecs.EntityID, *components.ClickableComponent) {
	best := ecs.InvalidEntity
	var bestClick *components.ClickableComponent
	bestLayer := 0

	ids := ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		click, _ := ecs.GetComponent[*components.ClickableComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !click.IsEnabled || !click.Contains(pos.X, pos.Y, x, y) {
			continue
		}

		layer := 0
		if ui, ok := ecs.GetComponent[*components.UIComponent](s.em, id); ok {
			layer = ui.Layer
		}
		if best == ecs.InvalidEntity || layer > bestLayer {
			best, bestClick, bestLayer = id, click, layer
		}
	}
	return best, bestClick
}

// FindClickable 按名称查找可点击实体
func FindClickable(em *ecs.EntityManager, name string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ClickableComponent](em) {
		click, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
		if click.Name == name {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}
