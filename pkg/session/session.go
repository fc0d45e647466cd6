// Package session 实现接花小游戏的核心玩法
//
// GameSession 持有分数、倒计时与世界状态（一个花瓶 + 若干花朵），
// 并负责花朵生成、接触结算和游戏结束流程。渲染、物理、输入与音频
// 都是外部协作者：会话只通过 Scheduler、Feedback、Presenter、Terminator
// 等接口与它们交互，不依赖任何引擎，可在测试中独立运行。
//
// 所有方法都应在同一个 goroutine（游戏主循环）上调用。
package session

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/looplab/fsm"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/config"
	"github.com/gonewx/flowercatch/pkg/ecs"
	"github.com/gonewx/flowercatch/pkg/scheduler"
)

// State 会话状态
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateEnded   State = "ended"
)

// 状态机事件
const (
	eventStart   = "start"
	eventEnd     = "end"
	eventRestart = "restart"
)

// tickInterval 倒计时步长（秒）
const tickInterval = 1.0

// GameSession 一局接花游戏
type GameSession struct {
	cfg config.GameConfig

	em         *ecs.EntityManager
	sched      scheduler.Scheduler
	rng        *rand.Rand
	feedback   Feedback
	presenter  Presenter
	terminator Terminator
	recorder   ResultRecorder
	listeners  []Listener

	machine *fsm.FSM

	score         int
	timeRemaining int
	caught        int
	missed        int
	spawned       int

	vaseID           ecs.EntityID
	flowers          map[ecs.EntityID]scheduler.TimerID // 存活花朵 -> 到期移除定时器
	firstSpawnTimer  scheduler.TimerID
	spawnTimer       scheduler.TimerID
	countdownTimer   scheduler.TimerID
	contactsAttached bool
}

// Option 配置 GameSession 的可选依赖
type Option func(*GameSession)

// WithScheduler 注入调度器
func WithScheduler(s scheduler.Scheduler) Option {
	return func(gs *GameSession) { gs.sched = s }
}

// WithEntityManager 注入世界状态存储（与渲染/物理系统共享）
func WithEntityManager(em *ecs.EntityManager) Option {
	return func(gs *GameSession) { gs.em = em }
}

// WithRand 注入随机数源（测试时固定种子）
func WithRand(r *rand.Rand) Option {
	return func(gs *GameSession) { gs.rng = r }
}

// WithFeedback 注入音效反馈
func WithFeedback(f Feedback) Option {
	return func(gs *GameSession) { gs.feedback = f }
}

// WithPresenter 注入结算面板展示者
func WithPresenter(p Presenter) Option {
	return func(gs *GameSession) { gs.presenter = p }
}

// WithTerminator 注入退出请求处理者
func WithTerminator(t Terminator) Option {
	return func(gs *GameSession) { gs.terminator = t }
}

// WithResultRecorder 注入最高分记录器
func WithResultRecorder(r ResultRecorder) Option {
	return func(gs *GameSession) { gs.recorder = r }
}

// WithListener 追加事件监听者
func WithListener(l Listener) Option {
	return func(gs *GameSession) { gs.listeners = append(gs.listeners, l) }
}

// New 创建处于 Idle 状态的会话
// cfg 应已通过 Validate 校验
func New(cfg config.GameConfig, opts ...Option) *GameSession {
	gs := &GameSession{
		cfg:        cfg,
		feedback:   noopFeedback{},
		presenter:  noopPresenter{},
		terminator: noopTerminator{},
		flowers:    make(map[ecs.EntityID]scheduler.TimerID),
	}
	for _, opt := range opts {
		opt(gs)
	}
	if gs.em == nil {
		gs.em = ecs.NewEntityManager()
	}
	if gs.sched == nil {
		gs.sched = scheduler.NewFrameScheduler()
	}
	if gs.rng == nil {
		gs.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	gs.machine = fsm.NewFSM(
		string(StateIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StateIdle)}, Dst: string(StateRunning)},
			{Name: eventEnd, Src: []string{string(StateRunning)}, Dst: string(StateEnded)},
			{Name: eventRestart, Src: []string{string(StateIdle), string(StateRunning), string(StateEnded)}, Dst: string(StateRunning)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Printf("[GameSession] %s -> %s (%s)", e.Src, e.Dst, e.Event)
			},
		},
	)

	return gs
}

// transition 触发状态机事件
// 同状态迁移（Running -> Running 的 restart）不视为错误
func (gs *GameSession) transition(event string) bool {
	err := gs.machine.Event(context.Background(), event)
	if err == nil {
		return true
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return true
	}
	log.Printf("[GameSession] Transition %q rejected in state %s: %v", event, gs.machine.Current(), err)
	return false
}

// Start 开始一局：分数清零、倒计时重置、花瓶居中，启动生成与倒计时定时器
// 返回时世界中没有花朵，第一朵在下一次调度器 Update 时生成。只在 Idle 状态下生效
func (gs *GameSession) Start() {
	if gs.State() != StateIdle {
		log.Printf("[GameSession] Start ignored in state %s", gs.State())
		return
	}
	if !gs.transition(eventStart) {
		return
	}
	gs.begin()
	gs.emit(EventStarted, ecs.InvalidEntity)
}

// Restart 丢弃全部花朵与分数/时间记录，按 Start 的方式重新开始
// 等价于新建一个会话；任何状态下都可调用
func (gs *GameSession) Restart() {
	gs.teardown()
	if !gs.transition(eventRestart) {
		return
	}
	gs.begin()
	gs.emit(EventRestarted, ecs.InvalidEntity)
}

// begin 初始化一局的状态并启动定时器
func (gs *GameSession) begin() {
	gs.score = 0
	gs.timeRemaining = gs.cfg.Session.CountdownSeconds
	gs.caught = 0
	gs.missed = 0
	gs.spawned = 0
	gs.contactsAttached = true

	gs.vaseID = gs.createVase()

	// 生成循环是 [生成, 等待]：第一朵花在下一次调度时落下，之后按间隔生成
	gs.firstSpawnTimer = gs.sched.ScheduleOnce(0, func() {
		gs.firstSpawnTimer = 0
		gs.SpawnFlower()
	})
	gs.spawnTimer = gs.sched.ScheduleRepeating(gs.cfg.Session.SpawnIntervalSeconds, func() {
		gs.SpawnFlower()
	})
	gs.countdownTimer = gs.sched.ScheduleRepeating(tickInterval, gs.OnTick)

	log.Printf("[GameSession] Started: countdown=%ds, spawnInterval=%.1fs, fallDuration=%.1fs",
		gs.timeRemaining, gs.cfg.Session.SpawnIntervalSeconds, gs.cfg.Session.FallDurationSeconds)
}

// teardown 取消所有定时器并销毁花朵与花瓶
func (gs *GameSession) teardown() {
	gs.stopTimers()
	for id, expiry := range gs.flowers {
		gs.sched.Cancel(expiry)
		gs.em.DestroyEntity(id)
		delete(gs.flowers, id)
	}
	if gs.vaseID != ecs.InvalidEntity {
		gs.em.DestroyEntity(gs.vaseID)
		gs.vaseID = ecs.InvalidEntity
	}
}

// stopTimers 取消生成与倒计时定时器
func (gs *GameSession) stopTimers() {
	if gs.firstSpawnTimer != 0 {
		gs.sched.Cancel(gs.firstSpawnTimer)
		gs.firstSpawnTimer = 0
	}
	if gs.spawnTimer != 0 {
		gs.sched.Cancel(gs.spawnTimer)
		gs.spawnTimer = 0
	}
	if gs.countdownTimer != 0 {
		gs.sched.Cancel(gs.countdownTimer)
		gs.countdownTimer = 0
	}
}

// OnDrag 按 deltaX 水平移动花瓶
// 不做边界限制，花瓶可以被拖出屏幕；非 Running 状态忽略
func (gs *GameSession) OnDrag(deltaX float64) {
	if !gs.IsRunning() {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](gs.em, gs.vaseID)
	if !ok {
		return
	}
	pos.X += deltaX
}

// OnTick 倒计时减一秒，归零时结束游戏；非 Running 状态忽略
func (gs *GameSession) OnTick() {
	if !gs.IsRunning() {
		return
	}
	gs.timeRemaining--
	gs.emit(EventTick, ecs.InvalidEntity)

	if gs.timeRemaining <= 0 {
		gs.timeRemaining = 0
		gs.EndGame()
	}
}

// EndGame 结束本局：停止生成与倒计时、断开接触通知、展示结算面板
// 只在 Running 状态下生效，重复调用无副作用
func (gs *GameSession) EndGame() {
	if !gs.IsRunning() {
		return
	}
	if !gs.transition(eventEnd) {
		return
	}

	gs.stopTimers()
	gs.contactsAttached = false

	result := Result{
		Score:  gs.score,
		Best:   gs.score,
		Caught: gs.caught,
		Missed: gs.missed,
	}
	if gs.recorder != nil {
		best, newBest, err := gs.recorder.RecordResult(gs.score)
		if err != nil {
			log.Printf("[GameSession] Warning: failed to record result: %v", err)
		} else {
			result.Best = best
			result.NewBest = newBest
		}
	}

	log.Printf("[GameSession] Game over: score=%d (caught=%d, missed=%d, best=%d)",
		result.Score, result.Caught, result.Missed, result.Best)

	gs.emit(EventEnded, ecs.InvalidEntity)
	gs.presenter.ShowGameOver(result, gs.Restart, gs.Quit)
}

// Quit 请求宿主结束应用
func (gs *GameSession) Quit() {
	log.Printf("[GameSession] Quit requested")
	gs.emit(EventQuitRequested, ecs.InvalidEntity)
	gs.terminator.RequestQuit()
}

func (gs *GameSession) emit(kind EventKind, flower ecs.EntityID) {
	if len(gs.listeners) == 0 {
		return
	}
	e := Event{
		Kind:          kind,
		Score:         gs.score,
		TimeRemaining: gs.timeRemaining,
		Flower:        flower,
	}
	for _, l := range gs.listeners {
		l.OnSessionEvent(e)
	}
}

// State 返回当前状态
func (gs *GameSession) State() State {
	return State(gs.machine.Current())
}

// IsRunning 是否处于 Running 状态
func (gs *GameSession) IsRunning() bool {
	return gs.machine.Is(string(StateRunning))
}

// Score 当前分数
func (gs *GameSession) Score() int {
	return gs.score
}

// TimeRemaining 剩余秒数
func (gs *GameSession) TimeRemaining() int {
	return gs.timeRemaining
}

// ContactsAttached 接触通知是否仍然连接（游戏结束后断开）
func (gs *GameSession) ContactsAttached() bool {
	return gs.contactsAttached
}

// VaseID 当前花瓶实体
func (gs *GameSession) VaseID() ecs.EntityID {
	return gs.vaseID
}

// VasePosition 花瓶中心坐标
func (gs *GameSession) VasePosition() (x, y float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](gs.em, gs.vaseID)
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// FlowerCount 存活花朵数量
func (gs *GameSession) FlowerCount() int {
	return len(gs.flowers)
}

// Flowers 存活花朵实体（按ID升序）
func (gs *GameSession) Flowers() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.FlowerComponent](gs.em)
}

// Config 返回会话使用的配置
func (gs *GameSession) Config() config.GameConfig {
	return gs.cfg
}

// EntityManager 返回世界状态存储
func (gs *GameSession) EntityManager() *ecs.EntityManager {
	return gs.em
}
