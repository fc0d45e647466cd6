package systems

import (
	"log"
	"math"

	"github.com/solarlune/resolv"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/ecs"
)

// contactCellSize resolv 空间的网格大小（像素）
const contactCellSize = 32

// ContactHandler 接收一次接触开始通知，参数顺序不保证
// 返回值表示接触是否被消费（例如花朵被接住）
type ContactHandler func(a, b ecs.EntityID) bool

type contactPair struct {
	vase, flower ecs.EntityID
}

// ContactSystem 检测花瓶与花朵的接触
//
// 每帧把带有 CollisionComponent 的实体同步到 resolv 空间，
// 用 resolv 的网格做粗检测，再按圆/矩形做精确检测。
// 同一对实体只在开始接触的那一帧通知一次，直到分离后再次接触。
//
// 场景外留有一圈边距，花瓶被拖出屏幕或花朵落出底部时仍在空间内。
type ContactSystem struct {
	em      *ecs.EntityManager
	space   *resolv.Space
	margin  float64
	objects map[ecs.EntityID]*resolv.Object

	touching map[contactPair]bool
	handler  ContactHandler
}

// NewContactSystem 创建接触检测系统
//
// 参数:
//   - em: 实体管理器
//   - sceneWidth, sceneHeight: 场景逻辑尺寸
func NewContactSystem(em *ecs.EntityManager, sceneWidth, sceneHeight float64) *ContactSystem {
	margin := math.Max(sceneWidth, sceneHeight)
	w := int(math.Ceil(sceneWidth + margin*2))
	h := int(math.Ceil(sceneHeight + margin*2))

	return &ContactSystem{
		em:       em,
		space:    resolv.NewSpace(w, h, contactCellSize, contactCellSize),
		margin:   margin,
		objects:  make(map[ecs.EntityID]*resolv.Object),
		touching: make(map[contactPair]bool),
	}
}

// SetHandler 连接或断开（传 nil）接触通知
func (s *ContactSystem) SetHandler(h ContactHandler) {
	s.handler = h
}

// Attached 是否已连接接触通知
func (s *ContactSystem) Attached() bool {
	return s.handler != nil
}

// Update 同步碰撞体并分发新的接触
func (s *ContactSystem) Update(deltaTime float64) {
	s.sync()

	current := make(map[contactPair]bool)
	for _, pair := range s.detect() {
		current[pair] = true
		if s.touching[pair] {
			continue
		}
		if s.handler != nil {
			s.handler(pair.vase, pair.flower)
		}
	}
	s.touching = current
}

// sync 让 resolv 空间与实体管理器保持一致
func (s *ContactSystem) sync() {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.em)

	seen := make(map[ecs.EntityID]bool, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if col.Category == components.CategoryNone {
			continue
		}
		seen[id] = true

		x := pos.X - col.Width/2 + s.margin
		y := pos.Y - col.Height/2 + s.margin

		obj, ok := s.objects[id]
		if !ok {
			obj = resolv.NewObject(x, y, col.Width, col.Height, col.Category.String())
			obj.Data = id
			s.space.Add(obj)
			s.objects[id] = obj
			continue
		}
		if obj.X != x || obj.Y != y {
			obj.X, obj.Y = x, y
			obj.Update()
		}
	}

	for id, obj := range s.objects {
		if seen[id] {
			continue
		}
		s.space.Remove(obj)
		delete(s.objects, id)
	}
}

// detect 返回当前所有重叠的 (花瓶, 花朵) 对
func (s *ContactSystem) detect() []contactPair {
	var pairs []contactPair

	flowers := ecs.GetEntitiesWith1[*components.FlowerComponent](s.em)
	for _, flowerID := range flowers {
		obj, ok := s.objects[flowerID]
		if !ok {
			continue
		}
		collision := obj.Check(0, 0, components.CategoryVase.String())
		if collision == nil {
			continue
		}

		flowerPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, flowerID)
		flowerCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, flowerID)

		for _, other := range collision.Objects {
			vaseID, ok := other.Data.(ecs.EntityID)
			if !ok {
				log.Printf("[ContactSystem] Warning: resolv object without entity data")
				continue
			}
			vasePos, ok1 := ecs.GetComponent[*components.PositionComponent](s.em, vaseID)
			vaseCol, ok2 := ecs.GetComponent[*components.CollisionComponent](s.em, vaseID)
			if !ok1 || !ok2 {
				continue
			}
			if overlaps(flowerPos, flowerCol, vasePos, vaseCol) {
				pairs = append(pairs, contactPair{vase: vaseID, flower: flowerID})
			}
		}
	}
	return pairs
}

// TrackedObjects 当前同步到 resolv 空间的实体数量
func (s *ContactSystem) TrackedObjects() int {
	return len(s.objects)
}
