package scenes

import (
	"github.com/gonewx/flowercatch/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 编译期检查 GameScene 实现的接口
var (
	_ Scene          = (*GameScene)(nil)
	_ game.Enterable = (*GameScene)(nil)
	_ game.Exitable  = (*GameScene)(nil)
)
