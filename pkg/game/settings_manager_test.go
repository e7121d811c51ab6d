package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata manager
func newTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.SoundVolume != 0.5 {
		t.Errorf("SoundVolume: got %v, want 0.5", settings.SoundVolume)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	// 降级模式下保存不报错
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 往返
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := newTestGdataManager(t, "planewar_test_settings")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetSoundEnabled(false)
	sm1.SetSoundVolume(0.25)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if settings.SoundVolume != 0.25 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.25", settings.SoundVolume)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestToggleSoundPersists 测试 ToggleSound 立即保存
func TestToggleSoundPersists(t *testing.T) {
	gdataManager := newTestGdataManager(t, "planewar_test_toggle")

	sm := NewSettingsManager(gdataManager)
	if sm.ToggleSound() {
		t.Fatal("ToggleSound() from default should return false")
	}

	reloaded := NewSettingsManager(gdataManager)
	if reloaded.GetSettings().SoundEnabled {
		t.Error("ToggleSound() should persist the new value")
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume 范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},  // 正常值
		{0.0, 0.0},  // 下限
		{1.0, 1.0},  // 上限
		{-0.5, 0.0}, // 低于下限
		{1.5, 1.0},  // 高于上限
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}

// TestEffectiveVolume 测试关闭音效时音量为 0
func TestEffectiveVolume(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundVolume(0.8)

	if sm.EffectiveVolume() != 0.8 {
		t.Errorf("EffectiveVolume() = %v, want 0.8", sm.EffectiveVolume())
	}

	sm.SetSoundEnabled(false)
	if sm.EffectiveVolume() != 0 {
		t.Errorf("EffectiveVolume() with sound disabled = %v, want 0", sm.EffectiveVolume())
	}
}
