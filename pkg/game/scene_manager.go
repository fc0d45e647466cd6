package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/flowercatch/pkg/utils"
)

// SceneFactory 场景工厂函数类型
// 按名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) Scene

// transition 一次淡出-淡入切换
// 前半段遮罩从透明变黑，中点执行切换，后半段遮罩从黑变透明
type transition struct {
	duration float64
	elapsed  float64
	midpoint func()
	switched bool
}

func (t *transition) alpha() float64 {
	if t.duration <= 0 {
		return 0
	}
	half := t.duration / 2
	if t.elapsed < half {
		return utils.Clamp01(t.elapsed / half)
	}
	return utils.Clamp01(1 - (t.elapsed-half)/half)
}

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 切换期间（淡入淡出）不更新任何场景，只绘制当前场景和遮罩。
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
	transition   *transition
	fadeColor    color.Color
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		fadeColor: color.Black,
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene immediately.
// The previous scene receives OnExit and the new one OnEnter if they implement them.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.replace(scene)
	sm.enter()
}

// SwitchWithFade 以淡出-淡入的方式切换到新场景
// seconds <= 0 时立即切换
func (sm *SceneManager) SwitchWithFade(scene Scene, seconds float64) {
	if seconds <= 0 {
		sm.SwitchTo(scene)
		return
	}
	sm.FadeThrough(seconds, func() { sm.replace(scene) })
}

// FadeThrough 淡出到黑色，在全黑时调用 midpoint，再淡入
// 用于在同一场景内重新开始；seconds <= 0 时立即调用
func (sm *SceneManager) FadeThrough(seconds float64, midpoint func()) {
	if seconds <= 0 {
		if midpoint != nil {
			midpoint()
		}
		sm.enter()
		return
	}
	if sm.transition != nil {
		log.Printf("[SceneManager] Warning: transition already in progress, replacing it")
	}
	sm.transition = &transition{duration: seconds, midpoint: midpoint}
}

// replace 替换当前场景（不调用 OnEnter）
func (sm *SceneManager) replace(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		if exitable, ok := sm.currentScene.(Exitable); ok {
			exitable.OnExit()
		}
	}
	sm.currentScene = scene
}

func (sm *SceneManager) enter() {
	if enterable, ok := sm.currentScene.(Enterable); ok {
		enterable.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Load 通过工厂创建并淡入指定名称的场景
func (sm *SceneManager) Load(name string, fadeSeconds float64) {
	log.Printf("[SceneManager] 加载场景: %s", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(name)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return
	}
	sm.SwitchWithFade(newScene, fadeSeconds)
}

// IsTransitioning 是否正在淡入淡出
func (sm *SceneManager) IsTransitioning() bool {
	return sm.transition != nil
}

// FadeAlpha 当前遮罩不透明度 [0, 1]
func (sm *SceneManager) FadeAlpha() float64 {
	if sm.transition == nil {
		return 0
	}
	return sm.transition.alpha()
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if t := sm.transition; t != nil {
		t.elapsed += deltaTime
		if !t.switched && t.elapsed >= t.duration/2 {
			t.switched = true
			if t.midpoint != nil {
				t.midpoint()
			}
		}
		if t.elapsed >= t.duration {
			sm.transition = nil
			sm.enter()
		}
		return
	}

	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}

	if alpha := sm.FadeAlpha(); alpha > 0 {
		r, g, b, _ := sm.fadeColor.RGBA()
		overlay := color.RGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(alpha * 255),
		}
		bounds := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), overlay, false)
	}
}

// Close 通知当前场景游戏即将关闭
func (sm *SceneManager) Close() {
	if exitable, ok := sm.currentScene.(Exitable); ok {
		exitable.OnExit()
	}
}
