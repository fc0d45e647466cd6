package components

// SizeComponent 实体的显示尺寸（像素）
type SizeComponent struct {
	Width  float64
	Height float64
}
