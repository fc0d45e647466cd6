package components

import "image/color"

// LabelAlign 文本对齐方式
type LabelAlign int

const (
	// AlignLeft 以 X 为左边缘
	AlignLeft LabelAlign = iota
	// AlignRight 以 X 为右边缘
	AlignRight
	// AlignCenter 以 X 为中心
	AlignCenter
)

// LabelComponent 屏幕上的文字标签（分数、剩余时间）
type LabelComponent struct {
	Text    string
	Align   LabelAlign
	Color   color.Color // 为 nil 时使用白色
	Scale   float64     // 放大倍数，<= 0 视为 1
	Visible bool
}
