package session

import (
	"log"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/ecs"
)

// createVase 在水平中心、距底部固定距离处创建花瓶
func (gs *GameSession) createVase() ecs.EntityID {
	x, y := gs.cfg.VaseStart()

	id := gs.em.CreateEntity()
	ecs.AddComponent(gs.em, id, &components.VaseComponent{BaseY: y})
	ecs.AddComponent(gs.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(gs.em, id, &components.SizeComponent{
		Width:  gs.cfg.Vase.Width,
		Height: gs.cfg.Vase.Height,
	})
	ecs.AddComponent(gs.em, id, &components.CollisionComponent{
		Category: components.CategoryVase,
		Shape:    components.ShapeRect,
		Width:    gs.cfg.Vase.Width,
		Height:   gs.cfg.Vase.Height,
		Static:   true,
	})
	return id
}

// SpawnFlower 在顶部随机水平位置生成一朵花，并安排它在落出底部时被移除
//
// X 在 [花朵半宽, 场景宽度-花朵半宽] 内均匀分布。
// 返回花朵实体ID；非 Running 状态返回 ecs.InvalidEntity。
func (gs *GameSession) SpawnFlower() ecs.EntityID {
	if !gs.IsRunning() {
		return ecs.InvalidEntity
	}

	minX, maxX := gs.cfg.FlowerSpawnRange()
	x := minX + gs.rng.Float64()*(maxX-minX)
	fromY := 0.0
	// 终点在屏幕底部之下一个花朵高度，完全落出屏幕
	toY := gs.cfg.Scene.Height + gs.cfg.Flower.Height
	duration := gs.cfg.Session.FallDurationSeconds

	gs.spawned++
	id := gs.em.CreateEntity()
	ecs.AddComponent(gs.em, id, &components.FlowerComponent{Serial: gs.spawned})
	ecs.AddComponent(gs.em, id, &components.PositionComponent{X: x, Y: fromY})
	ecs.AddComponent(gs.em, id, &components.SizeComponent{
		Width:  gs.cfg.Flower.Width,
		Height: gs.cfg.Flower.Height,
	})
	ecs.AddComponent(gs.em, id, &components.CollisionComponent{
		Category: components.CategoryFlower,
		Shape:    components.ShapeCircle,
		Width:    gs.cfg.Flower.Width,
		Height:   gs.cfg.Flower.Height,
	})
	ecs.AddComponent(gs.em, id, &components.FallComponent{
		FromY:    fromY,
		ToY:      toY,
		Duration: duration,
	})

	gs.flowers[id] = gs.sched.ScheduleOnce(duration, func() {
		gs.expireFlower(id)
	})

	gs.emit(EventFlowerSpawned, id)
	return id
}

// OnContact 处理花瓶与花朵的接触
//
// 参数顺序任意，按两者的碰撞类别分发。只有 Running 状态下、
// 当前花瓶与一朵仍然存活的花朵接触时才计分：移除花朵、分数 +1、播放音效。
// 过期引用、同类接触、游戏结束后的通知都直接忽略。
//
// 返回：
//   - bool: 本次接触是否计分
func (gs *GameSession) OnContact(a, b ecs.EntityID) bool {
	if !gs.IsRunning() || !gs.contactsAttached {
		return false
	}

	catA := gs.categoryOf(a)
	catB := gs.categoryOf(b)

	var vase, flower ecs.EntityID
	switch {
	case catA == components.CategoryVase && catB == components.CategoryFlower:
		vase, flower = a, b
	case catA == components.CategoryFlower && catB == components.CategoryVase:
		vase, flower = b, a
	default:
		return false
	}

	if vase != gs.vaseID {
		return false
	}
	if _, alive := gs.flowers[flower]; !alive {
		return false
	}

	gs.removeFlower(flower)
	gs.score++
	gs.caught++
	gs.feedback.PlaySound(gs.cfg.Audio.CatchSound)
	gs.emit(EventFlowerCaught, flower)
	return true
}

// categoryOf 返回存活实体的碰撞类别
func (gs *GameSession) categoryOf(id ecs.EntityID) components.Category {
	if !gs.em.IsAlive(id) {
		return components.CategoryNone
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](gs.em, id)
	if !ok {
		return components.CategoryNone
	}
	return col.Category
}

// expireFlower 花朵走完轨迹仍未被接住：静默移除，不扣分
func (gs *GameSession) expireFlower(id ecs.EntityID) {
	if _, alive := gs.flowers[id]; !alive {
		return
	}
	delete(gs.flowers, id)
	gs.em.DestroyEntity(id)
	gs.missed++
	gs.emit(EventFlowerMissed, id)
}

// removeFlower 移除被接住的花朵并取消它的到期定时器
func (gs *GameSession) removeFlower(id ecs.EntityID) {
	expiry, alive := gs.flowers[id]
	if !alive {
		return
	}
	gs.sched.Cancel(expiry)
	delete(gs.flowers, id)
	if !gs.em.DestroyEntity(id) {
		log.Printf("[GameSession] Warning: flower %d was already destroyed", id)
	}
}
