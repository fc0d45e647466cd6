package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	updates      int
	entered      int
	exited       int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
	m.updates++
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) OnEnter() { m.entered++ }

func (m *MockScene) OnExit() { m.exited++ }

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
	if sm.IsTransitioning() {
		t.Error("Expected no transition initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
	if mockScene.entered != 1 {
		t.Errorf("Expected OnEnter once, got %d", mockScene.entered)
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	screen := ebiten.NewImage(480, 800)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDrawNoScene verifies that Draw handles nil scene gracefully.
func TestSceneManagerDrawNoScene(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(480, 800)
	sm.Draw(screen) // Should not panic
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)

	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
	if scene1.exited != 1 {
		t.Errorf("Scene1 should receive OnExit once, got %d", scene1.exited)
	}
}

// TestSceneManagerSwitchWithFade 验证淡入淡出切换的时序
func TestSceneManagerSwitchWithFade(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}
	sm.SwitchTo(scene1)

	sm.SwitchWithFade(scene2, 0.5)
	if !sm.IsTransitioning() {
		t.Fatal("Expected transition to be in progress")
	}

	// 前半段：仍显示旧场景，遮罩逐渐变黑
	sm.Update(0.125)
	if sm.GetCurrentScene() != scene1 {
		t.Error("Old scene should stay active before the midpoint")
	}
	if a := sm.FadeAlpha(); a < 0.49 || a > 0.51 {
		t.Errorf("FadeAlpha at quarter: got %.2f, want 0.5", a)
	}

	// 中点：切换到新场景
	sm.Update(0.125)
	if sm.GetCurrentScene() != scene2 {
		t.Error("New scene should be active after the midpoint")
	}
	if scene1.exited != 1 {
		t.Errorf("Old scene OnExit: got %d, want 1", scene1.exited)
	}
	if scene2.entered != 0 {
		t.Error("OnEnter should wait until the fade-in completes")
	}

	sm.Update(0.25)
	if sm.IsTransitioning() {
		t.Error("Transition should be finished")
	}
	if scene2.entered != 1 {
		t.Errorf("New scene OnEnter: got %d, want 1", scene2.entered)
	}
	if scene1.updates != 0 || scene2.updates != 0 {
		t.Errorf("Scenes must not update during a transition (scene1=%d, scene2=%d)", scene1.updates, scene2.updates)
	}

	sm.Update(0.016)
	if scene2.updates != 1 {
		t.Errorf("New scene should update after the transition, got %d", scene2.updates)
	}
}

// TestSceneManagerFadeThrough 验证同场景内的淡入淡出回调
func TestSceneManagerFadeThrough(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SwitchTo(scene)

	calls := 0
	sm.FadeThrough(0.5, func() { calls++ })

	sm.Update(0.2)
	if calls != 0 {
		t.Error("midpoint callback fired too early")
	}
	sm.Update(0.1)
	sm.Update(0.1)
	if calls != 1 {
		t.Errorf("midpoint callback: got %d calls, want 1", calls)
	}
	sm.Update(0.2)
	if sm.IsTransitioning() {
		t.Error("transition should be finished")
	}
	if scene.exited != 0 {
		t.Error("FadeThrough must not exit the current scene")
	}
}

// TestSceneManagerZeroFade 验证时长为 0 时立即切换
func TestSceneManagerZeroFade(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}

	sm.SwitchWithFade(scene, 0)

	if sm.IsTransitioning() {
		t.Error("zero-length fade should not start a transition")
	}
	if sm.GetCurrentScene() != scene || scene.entered != 1 {
		t.Error("zero-length fade should switch immediately")
	}
}

// TestSceneManagerLoad 验证通过工厂加载场景
func TestSceneManagerLoad(t *testing.T) {
	sm := NewSceneManager()
	sm.Load("game", 0) // 未设置工厂，不应 panic

	created := &MockScene{}
	sm.SetSceneFactory(func(name string) Scene {
		if name == "game" {
			return created
		}
		return nil
	})

	sm.Load("unknown", 0)
	if sm.GetCurrentScene() != nil {
		t.Error("unknown scene should not be loaded")
	}

	sm.Load("game", 0)
	if sm.GetCurrentScene() != created {
		t.Error("factory scene should become active")
	}

	sm.Close()
	if created.exited != 1 {
		t.Errorf("Close should call OnExit, got %d", created.exited)
	}
}
