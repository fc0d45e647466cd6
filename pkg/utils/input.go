// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 一帧的指针采样（鼠标或第一个触摸点）
type PointerSample struct {
	Pressed bool
	X, Y    int
	// TouchID 触摸ID，鼠标输入为 -1
	TouchID ebiten.TouchID
	IsTouch bool
}

// ReadPointer 采样当前帧的指针状态
// 优先使用触摸输入，没有触摸时使用鼠标左键
func ReadPointer() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{Pressed: true, X: x, Y: y, TouchID: touchIDs[0], IsTouch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
		TouchID: -1,
	}
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// ============================================================================
// 拖拽状态管理器 - 用于花瓶的水平拖动和结算面板按钮的点击
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// String 返回状态名称
func (s DragState) String() string {
	switch s {
	case DragStateStarted:
		return "started"
	case DragStateDragging:
		return "dragging"
	case DragStateEnded:
		return "ended"
	default:
		return "none"
	}
}

// DefaultTapSlop 按下到释放的位移不超过该值（像素）视为点击
const DefaultTapSlop = 10

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标），释放后保留最后位置
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态，并给出每帧的位移增量。
// 每个场景持有自己的实例。
type DragManager struct {
	info           DragInfo
	deltaX, deltaY int
	tapSlop        int
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	return &DragManager{
		info:    DragInfo{State: DragStateNone, TouchID: -1},
		tapSlop: DefaultTapSlop,
	}
}

// Update 采样指针并更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	dm.Feed(ReadPointer())
}

// Feed 用一帧的指针采样推进状态机
//
// 状态流转：None -(按下)-> Started -(按住)-> Dragging -(释放)-> Ended -> None
// Started 与 Ended 都只持续一帧。
func (dm *DragManager) Feed(s PointerSample) {
	dm.deltaX, dm.deltaY = 0, 0

	switch dm.info.State {
	case DragStateNone, DragStateEnded:
		if dm.info.State == DragStateEnded {
			dm.Reset()
		}
		if s.Pressed {
			dm.info = DragInfo{
				State:        DragStateStarted,
				StartX:       s.X,
				StartY:       s.Y,
				CurrentX:     s.X,
				CurrentY:     s.Y,
				TouchID:      s.TouchID,
				IsTouchInput: s.IsTouch,
			}
		}

	case DragStateStarted, DragStateDragging:
		if !s.Pressed || (dm.info.IsTouchInput && s.IsTouch && s.TouchID != dm.info.TouchID) {
			// 释放时保留最后的位置（触摸释放后拿不到坐标）
			dm.info.State = DragStateEnded
			return
		}
		dm.info.State = DragStateDragging
		dm.deltaX = s.X - dm.info.CurrentX
		dm.deltaY = s.Y - dm.info.CurrentY
		dm.info.CurrentX, dm.info.CurrentY = s.X, s.Y
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
	dm.deltaX, dm.deltaY = 0, 0
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustStarted 是否刚开始拖拽（本帧）
func (dm *DragManager) JustStarted() bool {
	return dm.info.State == DragStateStarted
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// Delta 本帧相对上一帧的位移
func (dm *DragManager) Delta() (dx, dy int) {
	return dm.deltaX, dm.deltaY
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}

// IsTap 本帧刚释放，且整个按下过程的位移不超过点击阈值
// 返回是否点击以及释放位置
func (dm *DragManager) IsTap() (bool, int, int) {
	if !dm.JustEnded() {
		return false, 0, 0
	}
	dx, dy := dm.GetDragDistance()
	if abs(dx) > dm.tapSlop || abs(dy) > dm.tapSlop {
		return false, 0, 0
	}
	return true, dm.info.CurrentX, dm.info.CurrentY
}

// IsTouchDrag 是否为触摸拖拽
func (dm *DragManager) IsTouchDrag() bool {
	return dm.info.IsTouchInput
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
