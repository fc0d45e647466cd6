package components

// FlowerComponent 标记一朵下落中的花
type FlowerComponent struct {
	Serial int // 本局内的生成序号，从 1 开始
}
