// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/flowercatch/pkg/config"
	"github.com/gonewx/flowercatch/pkg/embedded"
	"github.com/gonewx/flowercatch/pkg/game"
	"github.com/gonewx/flowercatch/pkg/scenes"
	"github.com/gonewx/flowercatch/pkg/utils"
)

const (
	// AppName 存储目录名
	AppName = "flowercatch"
	// GameSceneName 场景工厂使用的游戏场景名称
	GameSceneName = "game"
	// EmbeddedConfigPath 嵌入的默认配置文件
	EmbeddedConfigPath = "data/flowercatch.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的配置文件，为空则使用嵌入的配置
	ConfigPath string
	// Resources 嵌入资源，可为 nil（使用默认配置）
	Resources *embedded.Resources
	// Mute 不创建音频上下文（无音频设备的环境）
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig       config.GameConfig
	sceneManager     *game.SceneManager
	settingsManager  *game.SettingsManager
	highScoreManager *game.HighScoreManager
	audioManager     *game.AudioManager

	quitRequested bool
	closed        bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 存储不可用时设置与最高分只保存在内存中，不视为错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	storage, err := game.OpenStorage(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings and scores will not persist)", err)
		storage = nil
	}

	a := &App{
		gameConfig:       *gameConfig,
		settingsManager:  game.NewSettingsManager(storage),
		highScoreManager: game.NewHighScoreManager(storage),
	}

	// 初始化音频（音效在启动时合成）
	var audioContext *audio.Context
	if !cfg.Mute {
		audioContext = game.NewAudioContext()
	}
	a.audioManager = game.NewAudioManager(audioContext, a.settingsManager)
	a.audioManager.RegisterSound(a.gameConfig.Audio.CatchSound, game.SynthesizeCatchSound())
	log.Printf("[App] AudioManager initialized (muted=%v)", cfg.Mute)

	// 创建场景管理器
	a.sceneManager = game.NewSceneManager()
	a.sceneManager.SetSceneFactory(a.newScene)
	a.sceneManager.Load(GameSceneName, a.gameConfig.Scene.FadeSeconds)

	log.Printf("[App] Started: best score=%d", a.highScoreManager.BestScore())
	return a, nil
}

// loadGameConfig 按优先级加载配置：命令行路径 > 嵌入配置 > 默认值
func loadGameConfig(cfg Config) (*config.GameConfig, error) {
	if cfg.ConfigPath != "" {
		log.Printf("[Config] 加载配置文件: %s", cfg.ConfigPath)
		return config.LoadGameConfig(cfg.ConfigPath)
	}

	data, err := cfg.Resources.ReadFile(EmbeddedConfigPath)
	if err != nil {
		if errors.Is(err, embedded.ErrNotInitialized) || errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Config] 未找到嵌入配置，使用默认值")
			return config.DefaultGameConfig(), nil
		}
		return nil, err
	}
	log.Printf("[Config] 加载嵌入配置: %s", EmbeddedConfigPath)
	return config.ParseGameConfig(data)
}

// newScene 场景工厂
func (a *App) newScene(name string) game.Scene {
	if name != GameSceneName {
		return nil
	}
	return scenes.NewGameScene(scenes.GameSceneDeps{
		Config:       a.gameConfig,
		SceneManager: a.sceneManager,
		Feedback:     a.audioManager,
		Terminator:   a,
		Recorder:     a.highScoreManager,
	})
}

// RequestQuit 实现 session.Terminator：下一次 Update 时结束游戏循环
func (a *App) RequestQuit() {
	log.Printf("[App] Quit requested")
	a.quitRequested = true
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.quitRequested {
		a.Close()
		return ebiten.Termination
	}

	if !utils.IsMobile() {
		a.updateFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// updateFullscreen F11 切换全屏并保存设置
func (a *App) updateFullscreen() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 场景尺寸（像素）
func (a *App) WindowSize() (int, int) {
	return int(a.gameConfig.Scene.Width), int(a.gameConfig.Scene.Height)
}

// Fullscreen 保存的全屏设置
func (a *App) Fullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// Close 通知场景关闭、保存设置并释放音频
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.sceneManager.Close()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
	a.audioManager.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() config.GameConfig {
	return a.gameConfig
}
