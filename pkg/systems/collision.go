package systems

import (
	"github.com/gonewx/flowercatch/pkg/components"
)

// bounds 返回以 pos 为中心的碰撞盒 (left, top, right, bottom)
func bounds(pos *components.PositionComponent, col *components.CollisionComponent) (left, top, right, bottom float64) {
	return pos.X - col.Width/2, pos.Y - col.Height/2, pos.X + col.Width/2, pos.Y + col.Height/2
}

// checkAABBCollision 检查两个碰撞盒是否重叠（碰撞盒中心对齐实体位置）
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1, top1, right1, bottom1 := bounds(pos1, col1)
	left2, top2, right2, bottom2 := bounds(pos2, col2)

	// 任一轴上没有重叠则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

// checkCircleRectCollision 检查圆与轴对齐矩形是否重叠
// 取矩形上离圆心最近的点，比较其与圆心的距离
func checkCircleRectCollision(
	circlePos *components.PositionComponent, circle *components.CollisionComponent,
	rectPos *components.PositionComponent, rect *components.CollisionComponent) bool {

	left, top, right, bottom := bounds(rectPos, rect)
	nearestX := clamp(circlePos.X, left, right)
	nearestY := clamp(circlePos.Y, top, bottom)

	dx := circlePos.X - nearestX
	dy := circlePos.Y - nearestY
	r := circle.Width / 2
	return dx*dx+dy*dy <= r*r
}

// checkCircleCollision 检查两个圆是否重叠
func checkCircleCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	dx := pos1.X - pos2.X
	dy := pos1.Y - pos2.Y
	r := col1.Width/2 + col2.Width/2
	return dx*dx+dy*dy <= r*r
}

// overlaps 按两者的形状选择检测方法
func overlaps(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	switch {
	case col1.Shape == components.ShapeCircle && col2.Shape == components.ShapeCircle:
		return checkCircleCollision(pos1, col1, pos2, col2)
	case col1.Shape == components.ShapeCircle:
		return checkCircleRectCollision(pos1, col1, pos2, col2)
	case col2.Shape == components.ShapeCircle:
		return checkCircleRectCollision(pos2, col2, pos1, col1)
	default:
		return checkAABBCollision(pos1, col1, pos2, col2)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
