// Package scheduler 提供由帧时间驱动的定时器
//
// 游戏逻辑不直接依赖引擎的动作系统，而是通过 Scheduler 接口注册
// 一次性或重复执行的回调。FrameScheduler 在每帧 Update(deltaTime) 时推进
// 虚拟时钟并同步执行到期回调，因此所有回调都运行在游戏主循环所在的
// goroutine 上，无需加锁。
package scheduler

import (
	"log"
	"math"
)

// TimerID 定时器句柄，0 表示无效
type TimerID uint64

// epsilon 吸收 1/60 累加带来的浮点误差
const epsilon = 1e-9

// Scheduler 定时器调度接口
type Scheduler interface {
	// ScheduleRepeating 每隔 interval 秒执行一次 fn，首次执行在 interval 秒后
	ScheduleRepeating(interval float64, fn func()) TimerID
	// ScheduleOnce 在 delay 秒后执行一次 fn
	ScheduleOnce(delay float64, fn func()) TimerID
	// Cancel 取消定时器，返回定时器此前是否处于活动状态
	Cancel(id TimerID) bool
}

type timer struct {
	id        TimerID
	due       float64
	interval  float64
	repeating bool
	fn        func()
}

// FrameScheduler 基于帧时间推进的 Scheduler 实现
type FrameScheduler struct {
	now    float64
	nextID TimerID
	timers map[TimerID]*timer
}

// NewFrameScheduler 创建一个时钟从 0 开始的调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		nextID: 1,
		timers: make(map[TimerID]*timer),
	}
}

// ScheduleRepeating 注册重复定时器
// interval 必须为正数，否则返回 0 且不注册
func (s *FrameScheduler) ScheduleRepeating(interval float64, fn func()) TimerID {
	if interval <= 0 || math.IsNaN(interval) || fn == nil {
		log.Printf("[Scheduler] Rejected repeating timer with interval=%v", interval)
		return 0
	}
	return s.add(interval, interval, true, fn)
}

// ScheduleOnce 注册一次性定时器
// delay <= 0 时在下一次 Update 执行
func (s *FrameScheduler) ScheduleOnce(delay float64, fn func()) TimerID {
	if fn == nil {
		return 0
	}
	if delay < 0 || math.IsNaN(delay) {
		delay = 0
	}
	return s.add(delay, 0, false, fn)
}

func (s *FrameScheduler) add(delay, interval float64, repeating bool, fn func()) TimerID {
	id := s.nextID
	s.nextID++
	s.timers[id] = &timer{
		id:        id,
		due:       s.now + delay,
		interval:  interval,
		repeating: repeating,
		fn:        fn,
	}
	return id
}

// Cancel 取消定时器
// 已取消的定时器即使在同一次 Update 中已到期也不会再执行
func (s *FrameScheduler) Cancel(id TimerID) bool {
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

// CancelAll 取消所有定时器
func (s *FrameScheduler) CancelAll() {
	for id := range s.timers {
		delete(s.timers, id)
	}
}

// IsActive 定时器是否仍会被执行
func (s *FrameScheduler) IsActive(id TimerID) bool {
	_, ok := s.timers[id]
	return ok
}

// Pending 返回活动定时器数量
func (s *FrameScheduler) Pending() int {
	return len(s.timers)
}

// Now 返回调度器虚拟时钟（秒）
func (s *FrameScheduler) Now() float64 {
	return s.now
}

// Update 推进时钟并按到期时间顺序执行回调
//
// 到期时间相同的定时器按注册顺序执行。回调中可以安全地注册或取消定时器。
func (s *FrameScheduler) Update(deltaTime float64) {
	if deltaTime > 0 {
		s.now += deltaTime
	}

	for {
		next := s.nextDue()
		if next == nil {
			return
		}
		if next.repeating {
			next.due += next.interval
		} else {
			delete(s.timers, next.id)
		}
		next.fn()
	}
}

// nextDue 找出最早到期的定时器，没有到期的返回 nil
func (s *FrameScheduler) nextDue() *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > s.now+epsilon {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}
