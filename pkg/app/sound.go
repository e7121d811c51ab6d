package app

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/decker502/planewar/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// toneSpec 合成音效参数：频率从 startHz 线性滑到 endHz，振幅线性衰减
type toneSpec struct {
	startHz, endHz float64
	durationMs     int
}

// soundTones 内置音效，不依赖音频文件
var soundTones = map[game.SoundID]toneSpec{
	game.SoundShot:   {startHz: 1200, endHz: 500, durationMs: 60},
	game.SoundPause:  {startHz: 660, endHz: 440, durationMs: 120},
	game.SoundResume: {startHz: 440, endHz: 660, durationMs: 120},
}

// synthTone 生成 16 位小端立体声 PCM
func synthTone(spec toneSpec, sampleRate int) []byte {
	n := sampleRate * spec.durationMs / 1000
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := spec.startHz + (spec.endHz-spec.startHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		amp := 0.3 * (1 - t)
		v := int16(math.Sin(phase) * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// ebitenSound 基于 ebiten/audio 的音效输出
type ebitenSound struct {
	context *audio.Context
	players map[game.SoundID]*audio.Player // 音效播放器缓存
}

func newEbitenSound(ctx *audio.Context) *ebitenSound {
	return &ebitenSound{
		context: ctx,
		players: make(map[game.SoundID]*audio.Player),
	}
}

// Play 实现 game.SoundBackend
func (s *ebitenSound) Play(id game.SoundID, volume float64) error {
	player, ok := s.players[id]
	if !ok {
		spec, known := soundTones[id]
		if !known {
			return fmt.Errorf("unknown sound %s", id)
		}
		player = s.context.NewPlayerFromBytes(synthTone(spec, s.context.SampleRate()))
		s.players[id] = player
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		return fmt.Errorf("rewind %s: %w", id, err)
	}
	player.Play()
	return nil
}
