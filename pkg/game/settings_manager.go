package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// GameSettings 用户设置
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏（仅桌面端）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// 存储路径
const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// SettingsManager 设置管理器
// gdataManager 为 nil 时只在内存中保存设置
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// NewSettingsManager 创建设置管理器并加载已保存的设置
// 加载失败时使用默认设置并记录警告
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 从存储加载设置；没有存储或没有保存过时使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil {
		return nil
	}

	loaded := DefaultSettings()
	found, err := loadYAMLProp(sm.gdataManager, settingsObject, settingsProperty, loaded)
	if err != nil {
		return err
	}
	if found {
		loaded.SoundVolume = clampVolume(loaded.SoundVolume)
		sm.settings = loaded
		log.Printf("[SettingsManager] Settings loaded")
	}
	return nil
}

// Save 持久化当前设置；内存模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	if err := saveYAMLProp(sm.gdataManager, settingsObject, settingsProperty, sm.settings); err != nil {
		return err
	}
	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量，限制在 0.0 ~ 1.0
// 只修改内存，需调用 Save 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
