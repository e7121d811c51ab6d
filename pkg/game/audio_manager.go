package game

import "log"

// SoundID 音效标识
type SoundID string

const (
	// SoundShot 发射子弹
	SoundShot SoundID = "SOUND_SHOT"
	// SoundPause 暂停
	SoundPause SoundID = "SOUND_PAUSE"
	// SoundResume 恢复
	SoundResume SoundID = "SOUND_RESUME"
)

// SoundBackend 由前端实现的音效输出
// 窗口前端基于 ebiten/audio，终端前端基于 beep
type SoundBackend interface {
	// Play 以给定音量（0.0 ~ 1.0）播放一次音效
	Play(id SoundID, volume float64) error
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 屏蔽前端差异：backend 为 nil 时静默运行
type AudioManager struct {
	backend         SoundBackend
	settingsManager *SettingsManager // 可为 nil，此时使用默认设置
	failed          map[SoundID]bool // 播放失败过的音效只记录一次警告
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - backend: 音效输出（可为 nil，音频初始化失败时游戏静音运行）
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(backend SoundBackend, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		backend:         backend,
		settingsManager: sm,
		failed:          make(map[SoundID]bool),
	}
}

// PlaySound 播放音效
// 返回是否真的发出了声音
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am.backend == nil {
		return false
	}

	volume := am.volume()
	if volume <= 0 {
		return false // 音效已禁用
	}

	if err := am.backend.Play(id, volume); err != nil {
		if !am.failed[id] {
			log.Printf("[AudioManager] Warning: Failed to play sound %s: %v", id, err)
			am.failed[id] = true
		}
		return false
	}
	return true
}

// ToggleMute 切换静音并保存设置，返回切换后是否启用音效
func (am *AudioManager) ToggleMute() bool {
	if am.settingsManager == nil {
		return false
	}
	enabled := am.settingsManager.ToggleSound()
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// IsEnabled 是否有可用的音效输出
func (am *AudioManager) IsEnabled() bool {
	return am.backend != nil && am.volume() > 0
}

func (am *AudioManager) volume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.EffectiveVolume()
}
