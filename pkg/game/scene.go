package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景成为活动场景时被调用
//
// 带淡入淡出切换时，在切换完成（完全淡入）后才调用，
// 场景应在这里开始计时等逻辑。
type Enterable interface {
	OnEnter()
}

// Exitable 是一个可选接口，场景被替换或游戏关闭时被调用
//
// 实现此接口的场景会在以下时机被调用 OnExit()：
//   - 切换到其他场景
//   - 游戏窗口关闭
type Exitable interface {
	OnExit()
}
