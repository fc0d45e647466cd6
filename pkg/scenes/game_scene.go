package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/flowercatch/pkg/config"
	"github.com/gonewx/flowercatch/pkg/ecs"
	"github.com/gonewx/flowercatch/pkg/entities"
	"github.com/gonewx/flowercatch/pkg/game"
	"github.com/gonewx/flowercatch/pkg/scheduler"
	"github.com/gonewx/flowercatch/pkg/session"
	"github.com/gonewx/flowercatch/pkg/systems"
	"github.com/gonewx/flowercatch/pkg/utils"
)

// GameSceneDeps GameScene 的外部协作者
// 除 Config 外都可以为空：没有 SceneManager 时重新开始不带淡入淡出，
// 没有 Feedback / Terminator / Recorder 时对应功能静默跳过。
type GameSceneDeps struct {
	Config       config.GameConfig
	SceneManager *game.SceneManager
	Feedback     session.Feedback
	Terminator   session.Terminator
	Recorder     session.ResultRecorder
	Rand         *rand.Rand
	Drag         *utils.DragManager
}

// GameScene 接花游戏的主场景
//
// 持有一局 GameSession 以及驱动它的帧调度器和 ECS 系统：
// 输入系统把拖动转发给会话，下落系统推进花朵，接触系统把花瓶与花朵的
// 接触交给会话结算。场景同时实现 session.Presenter（结算面板）和
// session.Listener（HUD 刷新）。
type GameScene struct {
	cfg          config.GameConfig
	sceneManager *game.SceneManager

	entityManager *ecs.EntityManager
	scheduler     *scheduler.FrameScheduler
	drag          *utils.DragManager
	session       *session.GameSession

	inputSystem   *systems.InputSystem
	fallSystem    *systems.FallSystem
	contactSystem *systems.ContactSystem
	renderSystem  *systems.RenderSystem

	scoreLabel ecs.EntityID
	timeLabel  ecs.EntityID
	promptID   ecs.EntityID

	// 结算面板打开期间的键盘快捷键（R 重新开始，Esc 退出）
	pendingRestart func()
	pendingQuit    func()
}

// NewGameScene 创建游戏场景，会话处于 Idle，成为活动场景时（OnEnter）开局
func NewGameScene(deps GameSceneDeps) *GameScene {
	cfg := deps.Config
	em := ecs.NewEntityManager()

	s := &GameScene{
		cfg:           cfg,
		sceneManager:  deps.SceneManager,
		entityManager: em,
		scheduler:     scheduler.NewFrameScheduler(),
		drag:          deps.Drag,
	}
	if s.drag == nil {
		s.drag = utils.NewDragManager()
	}

	opts := []session.Option{
		session.WithEntityManager(em),
		session.WithScheduler(s.scheduler),
		session.WithPresenter(s),
		session.WithListener(s),
	}
	if deps.Rand != nil {
		opts = append(opts, session.WithRand(deps.Rand))
	}
	if deps.Feedback != nil {
		opts = append(opts, session.WithFeedback(deps.Feedback))
	}
	if deps.Terminator != nil {
		opts = append(opts, session.WithTerminator(deps.Terminator))
	}
	if deps.Recorder != nil {
		opts = append(opts, session.WithResultRecorder(deps.Recorder))
	}
	s.session = session.New(cfg, opts...)

	s.inputSystem = systems.NewInputSystem(em, s.drag, s.session.OnDrag)
	s.fallSystem = systems.NewFallSystem(em)
	s.contactSystem = systems.NewContactSystem(em, cfg.Scene.Width, cfg.Scene.Height)
	s.renderSystem = systems.NewRenderSystem(em)

	s.scoreLabel, s.timeLabel = entities.NewHUDLabels(em, cfg.Scene.Width)
	s.refreshHUD(0, cfg.Session.CountdownSeconds)

	log.Printf("[GameScene] Created: scene=%.0fx%.0f", cfg.Scene.Width, cfg.Scene.Height)
	return s
}

// OnEnter 场景成为活动场景时开局（只在会话尚未开始时）
func (s *GameScene) OnEnter() {
	if s.session.State() == session.StateIdle {
		s.session.Start()
	}
}

// OnExit 场景被替换或游戏关闭时停止所有定时器
func (s *GameScene) OnExit() {
	s.scheduler.CancelAll()
	s.contactSystem.SetHandler(nil)
	log.Printf("[GameScene] Exit: state=%s, score=%d", s.session.State(), s.session.Score())
}

// Update 采样指针后推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.drag.Update()
	s.handleShortcuts()
	s.Step(deltaTime)
}

// Step 推进一帧游戏逻辑（不采样真实输入）
//
// 系统顺序：
//  1. 输入（拖动花瓶、点击按钮）
//  2. 调度器（生成花朵、倒计时、花朵到期）
//  3. 下落
//  4. 接触检测与结算
//  5. 清理已删除实体（始终最后）
func (s *GameScene) Step(deltaTime float64) {
	s.inputSystem.Process()
	s.scheduler.Update(deltaTime)
	s.fallSystem.Update(deltaTime)
	s.contactSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// handleShortcuts 结算面板打开时响应键盘
func (s *GameScene) handleShortcuts() {
	if s.pendingRestart == nil && s.pendingQuit == nil {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR) && s.pendingRestart != nil:
		s.pendingRestart()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) && s.pendingQuit != nil:
		s.pendingQuit()
	}
}

// Draw 绘制世界、HUD 和结算面板
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// ShowGameOver 实现 session.Presenter：打开结算面板
//
// Restart 经由 SceneManager 淡出到黑色后再重新开局，Quit 直接调用。
func (s *GameScene) ShowGameOver(result session.Result, onRestart, onQuit func()) {
	s.closePrompt()

	restart := func() {
		s.closePrompt()
		if s.sceneManager != nil {
			s.sceneManager.FadeThrough(s.cfg.Scene.FadeSeconds, onRestart)
			return
		}
		onRestart()
	}
	quit := func() {
		s.closePrompt()
		onQuit()
	}

	s.promptID = entities.NewGameOverPromptEntity(s.entityManager, s.cfg.Scene.Width, s.cfg.Scene.Height, entities.GameOverPrompt{
		Score:     result.Score,
		Best:      result.Best,
		NewBest:   result.NewBest,
		OnRestart: restart,
		OnQuit:    quit,
	})
	s.pendingRestart = restart
	s.pendingQuit = quit
}

// closePrompt 关闭结算面板（若存在）
func (s *GameScene) closePrompt() {
	if s.promptID != ecs.InvalidEntity {
		entities.DestroyDialog(s.entityManager, s.promptID)
		s.promptID = ecs.InvalidEntity
	}
	s.pendingRestart = nil
	s.pendingQuit = nil
}

// OnSessionEvent 实现 session.Listener
func (s *GameScene) OnSessionEvent(e session.Event) {
	switch e.Kind {
	case session.EventStarted, session.EventRestarted:
		s.closePrompt()
		s.contactSystem.SetHandler(s.session.OnContact)
		s.refreshHUD(e.Score, e.TimeRemaining)
	case session.EventEnded:
		// 结束后花朵继续下落，但不再结算
		s.contactSystem.SetHandler(nil)
		s.refreshHUD(e.Score, e.TimeRemaining)
	case session.EventFlowerCaught, session.EventTick:
		s.refreshHUD(e.Score, e.TimeRemaining)
	}
}

func (s *GameScene) refreshHUD(score, timeRemaining int) {
	entities.SetLabelText(s.entityManager, s.scoreLabel, fmt.Sprintf("Score: %d", score))
	entities.SetLabelText(s.entityManager, s.timeLabel, fmt.Sprintf("Time: %d", timeRemaining))
}

// Session 返回场景持有的会话
func (s *GameScene) Session() *session.GameSession {
	return s.session
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PromptVisible 结算面板是否打开
func (s *GameScene) PromptVisible() bool {
	return s.promptID != ecs.InvalidEntity && s.entityManager.IsAlive(s.promptID)
}
