package components

// Category 碰撞类别
// 只有花瓶与花朵两类，接触分发按类别枚举进行
type Category int

const (
	// CategoryNone 不参与接触检测
	CategoryNone Category = iota
	// CategoryVase 玩家控制的花瓶
	CategoryVase
	// CategoryFlower 下落的花朵
	CategoryFlower
)

// String 返回类别名称，同时用作 resolv 对象的标签
func (c Category) String() string {
	switch c {
	case CategoryVase:
		return "vase"
	case CategoryFlower:
		return "flower"
	default:
		return "none"
	}
}

// Shape 碰撞形状
type Shape int

const (
	// ShapeRect 轴对齐矩形，宽高取 Width/Height
	ShapeRect Shape = iota
	// ShapeCircle 圆形，半径取 Width/2
	ShapeCircle
)

// CollisionComponent 定义实体的接触检测体
//
// 所有实体都不产生物理碰撞响应，只产生接触通知。
// Static 为 true 的实体不受重力与下落轨迹影响（花瓶）。
type CollisionComponent struct {
	Category Category
	Shape    Shape
	Width    float64 // 碰撞体宽度（像素），以实体中心为中心
	Height   float64 // 碰撞体高度（像素）
	Static   bool
}
