package utils

import (
	"math"
	"testing"
)

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 0, 864, 0, 0},
		{"终点", 0, 864, 1, 864},
		{"中点", 0, 864, 0.5, 432},
		{"反向", 100, -100, 0.25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestClamp01 测试进度裁剪
func TestClamp01(t *testing.T) {
	cases := map[float64]float64{-0.5: 0, 0: 0, 0.3: 0.3, 1: 1, 1.7: 1}
	for in, want := range cases {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", in, got, want)
		}
	}
}
