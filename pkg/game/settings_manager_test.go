package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下打开 gdata 存储
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := OpenStorage(appName)
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的内存模式
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}

	sm.SetSoundEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in memory mode should not fail: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in memory mode should not fail: %v", err)
	}
	// 内存模式下 Load 回到默认值
	if !sm.GetSettings().SoundEnabled {
		t.Error("Load() in memory mode should reset to defaults")
	}
}

// TestSettingsLoadSave 测试设置持久化往返
func TestSettingsLoadSave(t *testing.T) {
	m := openTestStorage(t, "test_flowercatch_settings")

	sm := NewSettingsManager(m)
	sm.SetSoundVolume(0.3)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新实例从存储读取
	sm2 := NewSettingsManager(m)
	got := sm2.GetSettings()
	if got.SoundVolume != 0.3 {
		t.Errorf("SoundVolume: got %v, want 0.3", got.SoundVolume)
	}
	if got.SoundEnabled {
		t.Error("SoundEnabled: got true, want false")
	}
	if !got.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}

// TestSettingsLoadCorrupted 测试存储内容损坏时回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	m := openTestStorage(t, "test_flowercatch_settings_corrupted")
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("failed to write corrupted data: %v", err)
	}

	sm := NewSettingsManager(m)
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("corrupted settings should fall back to defaults, got %v", sm.GetSettings().SoundVolume)
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupted data")
	}
}

// TestSetSoundVolumeClamp 测试音量限制
func TestSetSoundVolumeClamp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"正常值", 0.5, 0.5},
		{"下限", -0.5, 0.0},
		{"上限", 1.5, 1.0},
		{"边界0", 0.0, 0.0},
		{"边界1", 1.0, 1.0},
	}

	sm := NewSettingsManager(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetSoundVolume(tt.input)
			if got := sm.GetSettings().SoundVolume; got != tt.want {
				t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
