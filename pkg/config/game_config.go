package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 默认参数
const (
	// DefaultSceneWidth 逻辑屏幕宽度（竖屏）
	DefaultSceneWidth = 480
	// DefaultSceneHeight 逻辑屏幕高度（竖屏）
	DefaultSceneHeight = 800

	// DefaultCountdownSeconds 一局的倒计时（秒）
	DefaultCountdownSeconds = 25
	// DefaultSpawnIntervalSeconds 花朵生成间隔（秒）
	DefaultSpawnIntervalSeconds = 2.0
	// DefaultFallDurationSeconds 花朵从顶部落到底部所需时间（秒）
	DefaultFallDurationSeconds = 5.0

	// DefaultVaseSize 花瓶边长（像素）
	DefaultVaseSize = 100.0
	// DefaultVaseBottomOffset 花瓶中心距屏幕底部的距离（像素）
	DefaultVaseBottomOffset = 100.0
	// DefaultFlowerSize 花朵边长（像素）
	DefaultFlowerSize = 64.0

	// DefaultCatchSoundID 接住花朵时播放的音效ID
	DefaultCatchSoundID = "SOUND_CATCH"
	// DefaultRestartFadeSeconds 重新开始时的淡入时长（秒）
	DefaultRestartFadeSeconds = 0.5
)

// GameConfig 一局游戏的全部可调参数
type GameConfig struct {
	Scene   SceneConfig   `yaml:"scene"`
	Session SessionConfig `yaml:"session"`
	Vase    VaseConfig    `yaml:"vase"`
	Flower  FlowerConfig  `yaml:"flower"`
	Audio   AudioConfig   `yaml:"audio"`
}

// SceneConfig 场景尺寸
type SceneConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FadeSeconds float64 `yaml:"fadeSeconds"` // 重新开始时的淡入时长
}

// SessionConfig 计时参数
type SessionConfig struct {
	CountdownSeconds     int     `yaml:"countdownSeconds"`
	SpawnIntervalSeconds float64 `yaml:"spawnIntervalSeconds"`
	FallDurationSeconds  float64 `yaml:"fallDurationSeconds"`
}

// VaseConfig 花瓶尺寸与位置
type VaseConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottomOffset"`
}

// FlowerConfig 花朵尺寸
type FlowerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AudioConfig 音效ID
type AudioConfig struct {
	CatchSound string `yaml:"catchSound"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Scene: SceneConfig{
			Width:       DefaultSceneWidth,
			Height:      DefaultSceneHeight,
			FadeSeconds: DefaultRestartFadeSeconds,
		},
		Session: SessionConfig{
			CountdownSeconds:     DefaultCountdownSeconds,
			SpawnIntervalSeconds: DefaultSpawnIntervalSeconds,
			FallDurationSeconds:  DefaultFallDurationSeconds,
		},
		Vase: VaseConfig{
			Width:        DefaultVaseSize,
			Height:       DefaultVaseSize,
			BottomOffset: DefaultVaseBottomOffset,
		},
		Flower: FlowerConfig{
			Width:  DefaultFlowerSize,
			Height: DefaultFlowerSize,
		},
		Audio: AudioConfig{
			CatchSound: DefaultCatchSoundID,
		},
	}
}

// ParseGameConfig 从 YAML 数据解析配置
// 未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从 YAML 文件加载配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}

	return ParseGameConfig(data)
}

// Validate 验证配置的有效性
func (c *GameConfig) Validate() error {
	if c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		return fmt.Errorf("scene size must be positive, got %.0fx%.0f", c.Scene.Width, c.Scene.Height)
	}
	if c.Scene.FadeSeconds < 0 {
		return fmt.Errorf("scene.fadeSeconds must be >= 0, got %.2f", c.Scene.FadeSeconds)
	}

	if c.Session.CountdownSeconds <= 0 {
		return fmt.Errorf("session.countdownSeconds must be > 0, got %d", c.Session.CountdownSeconds)
	}
	if c.Session.SpawnIntervalSeconds <= 0 {
		return fmt.Errorf("session.spawnIntervalSeconds must be > 0, got %.2f", c.Session.SpawnIntervalSeconds)
	}
	if c.Session.FallDurationSeconds <= 0 {
		return fmt.Errorf("session.fallDurationSeconds must be > 0, got %.2f", c.Session.FallDurationSeconds)
	}

	if c.Vase.Width <= 0 || c.Vase.Height <= 0 {
		return fmt.Errorf("vase size must be positive, got %.0fx%.0f", c.Vase.Width, c.Vase.Height)
	}
	if c.Vase.BottomOffset < 0 || c.Vase.BottomOffset > c.Scene.Height {
		return fmt.Errorf("vase.bottomOffset must be within [0, %.0f], got %.0f", c.Scene.Height, c.Vase.BottomOffset)
	}

	if c.Flower.Width <= 0 || c.Flower.Height <= 0 {
		return fmt.Errorf("flower size must be positive, got %.0fx%.0f", c.Flower.Width, c.Flower.Height)
	}
	// 花朵必须能完整放进场景宽度，否则随机区间为空
	if c.Flower.Width > c.Scene.Width {
		return fmt.Errorf("flower width %.0f exceeds scene width %.0f", c.Flower.Width, c.Scene.Width)
	}

	return nil
}

// FlowerSpawnRange 返回花朵中心X坐标的合法区间 [min, max]
func (c *GameConfig) FlowerSpawnRange() (minX, maxX float64) {
	half := c.Flower.Width / 2
	return half, c.Scene.Width - half
}

// VaseStart 返回花瓶的初始中心坐标
func (c *GameConfig) VaseStart() (x, y float64) {
	return c.Scene.Width / 2, c.Scene.Height - c.Vase.BottomOffset
}
