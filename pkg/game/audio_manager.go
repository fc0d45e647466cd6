package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 默认音效音量（没有设置管理器时）
const defaultSoundVolume = 0.8

// AudioManager 音频管理器
// 职责：
//   - 按资源ID播放音效（PCM 数据在启动时注册）
//   - 从 SettingsManager 读取音效开关与音量
//
// ctx 为 nil 时（无音频设备的环境、测试）不播放，PlaySound 返回 false。
type AudioManager struct {
	ctx             *audio.Context
	settingsManager *SettingsManager
	sounds          map[string][]byte        // 资源ID -> 16 位双声道 PCM
	soundPlayers    map[string]*audio.Player // 播放器缓存
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil
//   - sm: 设置管理器，可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		ctx:             ctx,
		settingsManager: sm,
		sounds:          make(map[string][]byte),
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// NewAudioContext 返回进程内唯一的音频上下文
// ebiten 只允许创建一次 audio.Context
func NewAudioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}

// RegisterSound 注册音效的 PCM 数据
func (am *AudioManager) RegisterSound(soundID string, pcm []byte) {
	am.sounds[soundID] = pcm
	if player, ok := am.soundPlayers[soundID]; ok {
		player.Close()
		delete(am.soundPlayers, soundID)
	}
}

// HasSound 是否已注册该音效
func (am *AudioManager) HasSound(soundID string) bool {
	_, ok := am.sounds[soundID]
	return ok
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_CATCH"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量并应用到已缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
		volume = am.settingsManager.GetSettings().SoundVolume
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return defaultSoundVolume
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, ok := am.soundPlayers[soundID]; ok {
		return player
	}

	pcm, ok := am.sounds[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}
	if am.ctx == nil {
		return nil
	}

	player := am.ctx.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// Close 释放所有播放器
func (am *AudioManager) Close() {
	for id, player := range am.soundPlayers {
		if err := player.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player %s: %v", id, err)
		}
		delete(am.soundPlayers, id)
	}
}
