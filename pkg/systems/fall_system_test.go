package systems

import (
	"math"
	"testing"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/ecs"
)

func createFallingEntity(em *ecs.EntityManager, fromY, toY, duration float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: fromY})
	ecs.AddComponent(em, id, &components.FallComponent{FromY: fromY, ToY: toY, Duration: duration})
	return id
}

func TestFallSystemLinearMotion(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFallSystem(em)
	id := createFallingEntity(em, 0, 864, 5)

	tests := []struct {
		name  string
		dt    float64
		wantY float64
	}{
		{"1秒后", 1, 864 * 0.2},
		{"2.5秒后", 1.5, 864 * 0.5},
		{"5秒后到达终点", 2.5, 864},
		{"终点后不再移动", 3, 864},
	}

	for _, tt := range tests {
		system.Update(tt.dt)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if math.Abs(pos.Y-tt.wantY) > 1e-6 {
			t.Errorf("%s: Y = %v, want %v", tt.name, pos.Y, tt.wantY)
		}
	}
}

func TestFallSystemKeepsX(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFallSystem(em)
	id := createFallingEntity(em, 0, 100, 1)

	system.Update(0.5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 100 {
		t.Errorf("X should not change, got %v", pos.X)
	}
}

func TestFallSystemIgnoresNonPositiveDelta(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFallSystem(em)
	id := createFallingEntity(em, 10, 100, 1)

	system.Update(0)
	system.Update(-1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	fall, _ := ecs.GetComponent[*components.FallComponent](em, id)
	if pos.Y != 10 || fall.Elapsed != 0 {
		t.Errorf("entity moved on non-positive delta: Y=%v elapsed=%v", pos.Y, fall.Elapsed)
	}
}

func TestFallSystemSkipsStaticEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFallSystem(em)

	vase := em.CreateEntity()
	ecs.AddComponent(em, vase, &components.PositionComponent{X: 240, Y: 700})

	system.Update(1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, vase)
	if pos.Y != 700 {
		t.Errorf("entity without FallComponent moved to Y=%v", pos.Y)
	}
}
