package terminal

import (
	"fmt"
	"math"
	"time"

	"github.com/decker502/planewar/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone 终端音效参数
type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[game.SoundID]tone{
	game.SoundShot:   {freq: 880, duration: 50 * time.Millisecond},
	game.SoundPause:  {freq: 440, duration: 120 * time.Millisecond},
	game.SoundResume: {freq: 660, duration: 120 * time.Millisecond},
}

// beepSound 基于 beep/speaker 的音效输出
// 所有音效混入同一个 Mixer，speaker 只播放这个 Mixer
type beepSound struct {
	mixer *beep.Mixer
}

func newBeepSound() (*beepSound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	s := &beepSound{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play 实现 game.SoundBackend
func (s *beepSound) Play(id game.SoundID, volume float64) error {
	streamer, err := toneStreamer(id, volume)
	if err != nil {
		return err
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Close 停止所有声音并关闭设备
func (s *beepSound) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// toneStreamer 生成定长正弦音
func toneStreamer(id game.SoundID, volume float64) (beep.Streamer, error) {
	spec, ok := tones[id]
	if !ok {
		return nil, fmt.Errorf("unknown sound %s", id)
	}
	sine, err := generators.SineTone(sampleRate, spec.freq)
	if err != nil {
		return nil, fmt.Errorf("sine %s: %w", id, err)
	}
	return withVolume(beep.Take(sampleRate.N(spec.duration), sine), volume), nil
}

// withVolume 把 0~1 的线性音量换成 effects.Volume 的指数形式
// math.Log2(0) 为 -Inf，音量为 0 时直接静音
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
