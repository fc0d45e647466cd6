package game

import (
	"encoding/binary"
	"testing"
)

// 测试不创建 audio.Context，只验证不依赖音频设备的逻辑

func TestAudioManagerUnknownSound(t *testing.T) {
	am := NewAudioManager(nil, nil)

	if am.PlaySound("SOUND_MISSING") {
		t.Error("PlaySound should fail for unregistered sounds")
	}
}

func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, nil)
	am.RegisterSound("SOUND_CATCH", SynthesizeCatchSound())

	if !am.HasSound("SOUND_CATCH") {
		t.Fatal("HasSound should report registered sounds")
	}
	if am.PlaySound("SOUND_CATCH") {
		t.Error("PlaySound should return false without an audio context")
	}
}

func TestAudioManagerSoundDisabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	am := NewAudioManager(nil, sm)
	am.RegisterSound("SOUND_CATCH", SynthesizeCatchSound())

	if am.PlaySound("SOUND_CATCH") {
		t.Error("PlaySound should return false when sound is disabled")
	}
}

func TestAudioManagerVolume(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if am.GetSoundVolume() != defaultSoundVolume {
		t.Errorf("default volume: got %v, want %v", am.GetSoundVolume(), defaultSoundVolume)
	}

	sm := NewSettingsManager(nil)
	am = NewAudioManager(nil, sm)
	am.SetSoundVolume(1.7)
	if am.GetSoundVolume() != 1.0 {
		t.Errorf("volume should be clamped through settings, got %v", am.GetSoundVolume())
	}
}

func TestSynthesizeCatchSound(t *testing.T) {
	pcm := SynthesizeCatchSound()

	if len(pcm)%bytesPerFrame != 0 {
		t.Fatalf("PCM length %d is not a whole number of stereo frames", len(pcm))
	}
	frames := len(pcm) / bytesPerFrame
	if want := int(0.09 * SampleRate); frames != want {
		t.Errorf("frames: got %d, want %d", frames, want)
	}

	var peak int16
	for i := 0; i < frames; i++ {
		left := int16(binary.LittleEndian.Uint16(pcm[i*bytesPerFrame:]))
		right := int16(binary.LittleEndian.Uint16(pcm[i*bytesPerFrame+2:]))
		if left != right {
			t.Fatalf("frame %d: channels differ (%d vs %d)", i, left, right)
		}
		if left < 0 {
			left = -left
		}
		if left > peak {
			peak = left
		}
	}
	if peak < 1000 {
		t.Errorf("catch sound is too quiet, peak=%d", peak)
	}

	// 结尾应基本衰减完毕
	last := int16(binary.LittleEndian.Uint16(pcm[(frames-1)*bytesPerFrame:]))
	if last > 2000 || last < -2000 {
		t.Errorf("catch sound should decay, last sample=%d", last)
	}
}

func TestSynthesizeClipsAmplitude(t *testing.T) {
	pcm := synthesize(0.001, func(float64) float64 { return 3 })
	v := int16(binary.LittleEndian.Uint16(pcm))
	if v != 32767 {
		t.Errorf("clipped sample: got %d, want 32767", v)
	}
}
