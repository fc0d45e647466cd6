package components

// FallComponent 描述花朵的下落轨迹
// 在 Duration 秒内从 FromY 匀速（线性）移动到 ToY
type FallComponent struct {
	FromY    float64
	ToY      float64
	Duration float64
	Elapsed  float64
}

// Progress 返回轨迹完成度 [0, 1]
func (f *FallComponent) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	p := f.Elapsed / f.Duration
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// IsFinished 轨迹是否已走完
func (f *FallComponent) IsFinished() bool {
	return f.Elapsed >= f.Duration
}
