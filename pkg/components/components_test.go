package components

import "testing"

func TestFallComponentProgress(t *testing.T) {
	tests := []struct {
		name     string
		fall     FallComponent
		progress float64
		finished bool
	}{
		{"start", FallComponent{Duration: 5}, 0, false},
		{"halfway", FallComponent{Duration: 5, Elapsed: 2.5}, 0.5, false},
		{"done", FallComponent{Duration: 5, Elapsed: 5}, 1, true},
		{"overshoot", FallComponent{Duration: 5, Elapsed: 7}, 1, true},
		{"zero duration", FallComponent{}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fall.Progress(); got != tt.progress {
				t.Errorf("Progress() = %v, want %v", got, tt.progress)
			}
			if got := tt.fall.IsFinished(); got != tt.finished {
				t.Errorf("IsFinished() = %v, want %v", got, tt.finished)
			}
		})
	}
}

func TestClickableContains(t *testing.T) {
	c := &ClickableComponent{Width: 200, Height: 56}

	tests := []struct {
		x, y float64
		want bool
	}{
		{240, 400, true},
		{140, 372, true}, // 左上角
		{341, 400, false},
		{240, 429, false},
	}
	for _, tt := range tests {
		if got := c.Contains(240, 400, tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	cases := map[Category]string{
		CategoryNone:   "none",
		CategoryVase:   "vase",
		CategoryFlower: "flower",
		Category(42):   "none",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}
