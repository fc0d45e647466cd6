package session

import "github.com/gonewx/flowercatch/pkg/ecs"

// Feedback 播放接住花朵时的音效/视觉反馈
type Feedback interface {
	PlaySound(soundID string) bool
}

// Presenter 在游戏结束时展示最终分数和 Restart / Quit 两个选项
type Presenter interface {
	ShowGameOver(result Result, onRestart, onQuit func())
}

// Terminator 请求宿主环境结束应用，本包不直接退出进程
type Terminator interface {
	RequestQuit()
}

// ResultRecorder 记录一局的最终分数（最高分持久化）
type ResultRecorder interface {
	RecordResult(score int) (best int, newBest bool, err error)
}

// Listener 接收会话事件，用于刷新 HUD、日志统计等
type Listener interface {
	OnSessionEvent(e Event)
}

// Result 一局结束时的结算信息
type Result struct {
	Score   int
	Best    int
	NewBest bool
	Caught  int
	Missed  int
}

// EventKind 会话事件类型
type EventKind int

const (
	EventStarted EventKind = iota
	EventRestarted
	EventFlowerSpawned
	EventFlowerCaught
	EventFlowerMissed
	EventTick
	EventEnded
	EventQuitRequested
)

// String 返回事件名称（日志用）
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventRestarted:
		return "restarted"
	case EventFlowerSpawned:
		return "flower_spawned"
	case EventFlowerCaught:
		return "flower_caught"
	case EventFlowerMissed:
		return "flower_missed"
	case EventTick:
		return "tick"
	case EventEnded:
		return "ended"
	case EventQuitRequested:
		return "quit_requested"
	default:
		return "unknown"
	}
}

// Event 会话事件
type Event struct {
	Kind          EventKind
	Score         int
	TimeRemaining int
	Flower        ecs.EntityID // 与花朵相关的事件才有值
}

// ListenerFunc 让普通函数实现 Listener
type ListenerFunc func(e Event)

// OnSessionEvent 实现 Listener
func (f ListenerFunc) OnSessionEvent(e Event) { f(e) }

type noopFeedback struct{}

func (noopFeedback) PlaySound(string) bool { return false }

type noopPresenter struct{}

func (noopPresenter) ShowGameOver(Result, func(), func()) {}

type noopTerminator struct{}

func (noopTerminator) RequestQuit() {}
