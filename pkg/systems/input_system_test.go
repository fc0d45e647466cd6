package systems

import (
	"testing"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/ecs"
	"github.com/gonewx/flowercatch/pkg/utils"
)

func press(x, y int) utils.PointerSample {
	return utils.PointerSample{Pressed: true, X: x, Y: y, TouchID: -1}
}

func release() utils.PointerSample {
	return utils.PointerSample{TouchID: -1}
}

func createTestButton(em *ecs.EntityManager, name string, x, y float64, layer int, onClick func()) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.UIComponent{State: components.UINormal, Layer: layer})
	ecs.AddComponent(em, id, &components.ClickableComponent{
		Name:      name,
		Width:     100,
		Height:    40,
		IsEnabled: true,
		OnClick:   onClick,
	})
	return id
}

func TestInputSystemForwardsDragDelta(t *testing.T) {
	em := ecs.NewEntityManager()
	drag := utils.NewDragManager()
	var deltas []float64
	system := NewInputSystem(em, drag, func(dx float64) { deltas = append(deltas, dx) })

	frames := []utils.PointerSample{
		press(200, 700),
		press(250, 700),
		press(250, 690), // 纯垂直移动不转发
		press(230, 700),
		release(),
	}
	for _, f := range frames {
		drag.Feed(f)
		system.Process()
	}

	want := []float64{50, -20}
	if len(deltas) != len(want) {
		t.Fatalf("deltas: got %v, want %v", deltas, want)
	}
	total := 0.0
	for i, d := range deltas {
		if d != want[i] {
			t.Errorf("delta[%d]: got %v, want %v", i, d, want[i])
		}
		total += d
	}
	if total != 30 {
		t.Errorf("net drag: got %v, want 30", total)
	}
}

func TestInputSystemTapTriggersClickable(t *testing.T) {
	em := ecs.NewEntityManager()
	drag := utils.NewDragManager()
	system := NewInputSystem(em, drag, nil)

	restarted := 0
	createTestButton(em, "restart", 240, 400, 10, func() { restarted++ })

	drag.Feed(press(245, 405))
	system.Process()
	drag.Feed(press(246, 405))
	system.Process()
	drag.Feed(release())
	system.Process()

	if restarted != 1 {
		t.Errorf("restart callback: got %d calls, want 1", restarted)
	}
}

func TestInputSystemDragDoesNotClick(t *testing.T) {
	em := ecs.NewEntityManager()
	drag := utils.NewDragManager()
	system := NewInputSystem(em, drag, nil)

	clicked := false
	createTestButton(em, "quit", 240, 400, 10, func() { clicked = true })

	drag.Feed(press(100, 400))
	system.Process()
	drag.Feed(press(240, 400))
	system.Process()
	drag.Feed(release())
	system.Process()

	if clicked {
		t.Error("a long drag ending on a button should not click it")
	}
}

func TestInputSystemPressedState(t *testing.T) {
	em := ecs.NewEntityManager()
	drag := utils.NewDragManager()
	system := NewInputSystem(em, drag, nil)
	button := createTestButton(em, "restart", 240, 400, 10, nil)

	drag.Feed(press(240, 400))
	system.Process()

	ui, _ := ecs.GetComponent[*components.UIComponent](em, button)
	if ui.State != components.UIClicked {
		t.Errorf("pressed button state: got %v, want UIClicked", ui.State)
	}

	drag.Feed(release())
	system.Process()
	if ui.State != components.UINormal {
		t.Errorf("released button state: got %v, want UINormal", ui.State)
	}
}

func TestInputSystemHitTest(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewInputSystem(em, utils.NewDragManager(), nil)

	low := createTestButton(em, "low", 240, 400, 1, nil)
	high := createTestButton(em, "high", 250, 400, 5, nil)
	disabled := createTestButton(em, "disabled", 240, 600, 9, nil)
	click, _ := ecs.GetComponent[*components.ClickableComponent](em, disabled)
	click.IsEnabled = false

	tests := []struct {
		name string
		x, y float64
		want ecs.EntityID
	}{
		{"overlap picks highest layer", 245, 400, high},
		{"only low button", 195, 400, low},
		{"disabled button", 240, 600, ecs.InvalidEntity},
		{"empty space", 10, 10, ecs.InvalidEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := system.HitTest(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("HitTest(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFindClickable(t *testing.T) {
	em := ecs.NewEntityManager()
	restart := createTestButton(em, "restart", 0, 0, 0, nil)
	createTestButton(em, "quit", 0, 0, 0, nil)

	if id, ok := FindClickable(em, "restart"); !ok || id != restart {
		t.Errorf("FindClickable(restart) = %d, %v", id, ok)
	}
	if _, ok := FindClickable(em, "missing"); ok {
		t.Error("FindClickable should fail for unknown names")
	}
}
