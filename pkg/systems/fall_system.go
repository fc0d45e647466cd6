package systems

import (
	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/ecs"
	"github.com/gonewx/flowercatch/pkg/utils"
)

// FallSystem 驱动花朵沿直线匀速下落
//
// 只负责移动，不负责移除：花朵落出屏幕后由会话的到期定时器销毁，
// 两者使用同一个时长，因此位置在到期时恰好到达终点。
type FallSystem struct {
	em *ecs.EntityManager
}

// NewFallSystem 创建下落系统
func NewFallSystem(em *ecs.EntityManager) *FallSystem {
	return &FallSystem{em: em}
}

// Update 推进所有下落中的实体
func (s *FallSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.FallComponent](s.em)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		fall, _ := ecs.GetComponent[*components.FallComponent](s.em, id)

		if fall.IsFinished() {
			pos.Y = fall.ToY
			continue
		}
		fall.Elapsed += deltaTime
		pos.Y = utils.Lerp(fall.FromY, fall.ToY, fall.Progress())
	}
}
