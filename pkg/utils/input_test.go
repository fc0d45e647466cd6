package utils

import (
	"testing"
)

func mouse(pressed bool, x, y int) PointerSample {
	return PointerSample{Pressed: pressed, X: x, Y: y, TouchID: -1}
}

func TestDragManagerInitialState(t *testing.T) {
	dm := NewDragManager()

	// 验证初始状态
	if dm.GetState() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", dm.GetState())
	}

	if dm.IsDragging() {
		t.Error("Expected IsDragging to be false initially")
	}

	if dm.JustStarted() {
		t.Error("Expected JustStarted to be false initially")
	}

	if dm.JustEnded() {
		t.Error("Expected JustEnded to be false initially")
	}
}

func TestDragManagerReset(t *testing.T) {
	dm := NewDragManager()

	// 模拟一些状态
	dm.Feed(mouse(true, 100, 200))
	dm.Feed(mouse(true, 150, 250))

	// 重置
	dm.Reset()

	// 验证重置后的状态
	if dm.GetState() != DragStateNone {
		t.Errorf("Expected state to be DragStateNone after reset, got %v", dm.GetState())
	}

	info := dm.GetInfo()
	if info.StartX != 0 || info.StartY != 0 {
		t.Errorf("Expected start position to be (0, 0) after reset, got (%d, %d)", info.StartX, info.StartY)
	}

	if info.TouchID != -1 {
		t.Errorf("Expected TouchID to be -1 after reset, got %d", info.TouchID)
	}

	if dx, dy := dm.Delta(); dx != 0 || dy != 0 {
		t.Errorf("Expected zero delta after reset, got (%d, %d)", dx, dy)
	}
}

func TestDragManagerStateTransitions(t *testing.T) {
	dm := NewDragManager()

	dm.Feed(mouse(false, 0, 0))
	if dm.GetState() != DragStateNone {
		t.Fatalf("Expected DragStateNone without press, got %v", dm.GetState())
	}

	dm.Feed(mouse(true, 100, 300))
	if !dm.JustStarted() {
		t.Fatalf("Expected JustStarted after press, got %v", dm.GetState())
	}

	dm.Feed(mouse(true, 110, 300))
	if !dm.IsDragging() {
		t.Fatalf("Expected IsDragging while held, got %v", dm.GetState())
	}

	dm.Feed(mouse(false, 110, 300))
	if !dm.JustEnded() {
		t.Fatalf("Expected JustEnded after release, got %v", dm.GetState())
	}

	// 结束状态只持续一帧
	dm.Feed(mouse(false, 110, 300))
	if dm.GetState() != DragStateNone {
		t.Errorf("Expected DragStateNone one frame after release, got %v", dm.GetState())
	}
}

func TestDragManagerDelta(t *testing.T) {
	dm := NewDragManager()

	dm.Feed(mouse(true, 100, 300))
	if dx, _ := dm.Delta(); dx != 0 {
		t.Errorf("press frame should have no delta, got %d", dx)
	}

	dm.Feed(mouse(true, 150, 300))
	if dx, _ := dm.Delta(); dx != 50 {
		t.Errorf("Expected dx=50, got %d", dx)
	}

	dm.Feed(mouse(true, 130, 310))
	dx, dy := dm.Delta()
	if dx != -20 || dy != 10 {
		t.Errorf("Expected delta (-20, 10), got (%d, %d)", dx, dy)
	}

	// 累计位移 = 各帧增量之和
	if total, _ := dm.GetDragDistance(); total != 30 {
		t.Errorf("Expected drag distance 30, got %d", total)
	}

	dm.Feed(mouse(false, 0, 0))
	if dx, _ := dm.Delta(); dx != 0 {
		t.Errorf("release frame should have no delta, got %d", dx)
	}
}

func TestDragManagerIsTap(t *testing.T) {
	tests := []struct {
		name    string
		moveX   int
		wantTap bool
	}{
		{"no movement", 0, true},
		{"within slop", DefaultTapSlop, true},
		{"beyond slop", DefaultTapSlop + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := NewDragManager()
			dm.Feed(mouse(true, 200, 400))
			dm.Feed(mouse(true, 200+tt.moveX, 400))

			if tap, _, _ := dm.IsTap(); tap {
				t.Fatal("IsTap should be false while still pressed")
			}

			dm.Feed(mouse(false, 0, 0))
			tap, x, y := dm.IsTap()
			if tap != tt.wantTap {
				t.Errorf("IsTap: got %v, want %v", tap, tt.wantTap)
			}
			if tap && (x != 200+tt.moveX || y != 400) {
				t.Errorf("tap position: got (%d, %d), want (%d, 400)", x, y, 200+tt.moveX)
			}
		})
	}
}

func TestDragManagerTouchReleaseKeepsLastPosition(t *testing.T) {
	dm := NewDragManager()

	dm.Feed(PointerSample{Pressed: true, X: 50, Y: 60, TouchID: 3, IsTouch: true})
	if !dm.IsTouchDrag() {
		t.Error("Expected IsTouchDrag to be true for touch input")
	}
	dm.Feed(PointerSample{Pressed: true, X: 52, Y: 61, TouchID: 3, IsTouch: true})

	// 触摸释放后没有坐标，回退为鼠标采样
	dm.Feed(mouse(false, 999, 999))

	info := dm.GetInfo()
	if info.State != DragStateEnded {
		t.Fatalf("Expected DragStateEnded, got %v", info.State)
	}
	if info.CurrentX != 52 || info.CurrentY != 61 {
		t.Errorf("Expected last touch position (52, 61), got (%d, %d)", info.CurrentX, info.CurrentY)
	}
}

func TestDragManagerNewPressAfterEnd(t *testing.T) {
	dm := NewDragManager()
	dm.Feed(mouse(true, 10, 10))
	dm.Feed(mouse(false, 10, 10))

	// 释放后的下一帧立即再次按下
	dm.Feed(mouse(true, 300, 20))
	if !dm.JustStarted() {
		t.Fatalf("Expected a new drag to start, got %v", dm.GetState())
	}
	if info := dm.GetInfo(); info.StartX != 300 {
		t.Errorf("Expected StartX=300, got %d", info.StartX)
	}
}

func TestDragStateString(t *testing.T) {
	if DragStateDragging.String() != "dragging" {
		t.Errorf("got %q", DragStateDragging.String())
	}
	if DragState(42).String() != "none" {
		t.Errorf("got %q", DragState(42).String())
	}
}
