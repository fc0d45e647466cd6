package game

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// SampleRate 音频采样率，与 audio.Context 保持一致
const SampleRate = 48000

// bytesPerFrame 16 位双声道
const bytesPerFrame = 4

// SynthesizeCatchSound 生成接住花朵时的短促“咔哒”声
// 一小段噪声起音叠加快速衰减的高频正弦，约 90ms
func SynthesizeCatchSound() []byte {
	noise := rand.New(rand.NewSource(7))
	return synthesize(0.09, func(t float64) float64 {
		click := 0.0
		if t < 0.006 {
			click = (noise.Float64()*2 - 1) * (1 - t/0.006)
		}
		tone := math.Sin(2*math.Pi*1760*t) * math.Exp(-t*45)
		body := math.Sin(2*math.Pi*880*t) * math.Exp(-t*60) * 0.5
		return 0.45*click + 0.4*tone + 0.3*body
	})
}

// synthesize 按采样函数生成 16 位小端双声道 PCM
// sample 返回 [-1, 1] 的振幅，超出部分被截断
func synthesize(duration float64, sample func(t float64) float64) []byte {
	frames := int(duration * SampleRate)
	buf := make([]byte, frames*bytesPerFrame)

	for i := 0; i < frames; i++ {
		v := sample(float64(i) / SampleRate)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], s)
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], s)
	}
	return buf
}
