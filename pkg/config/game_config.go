package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置值非法（字段名通过 %w 包装附带）
var ErrInvalidConfig = errors.New("invalid game config")

// SpawnCadence 子弹发射节奏的判定方式
type SpawnCadence string

const (
	// CadenceInterval 每 SpawnIntervalFrames 帧发射一颗（默认 30 帧，即 60TPS 下每秒两发）
	CadenceInterval SpawnCadence = "interval"
	// CadenceLiteral 复刻原始条件 frameCount % 60 / 2 == 0
	// 原始语言中除法是浮点运算，条件只在 frame%60 == 0 时成立，即每秒一发
	CadenceLiteral SpawnCadence = "literal"
)

// ParseSpawnCadence 解析命令行或配置中的节奏名称
func ParseSpawnCadence(s string) (SpawnCadence, error) {
	switch SpawnCadence(s) {
	case CadenceInterval, CadenceLiteral:
		return SpawnCadence(s), nil
	}
	return "", fmt.Errorf("%w: unknown bullet cadence %q (want %q or %q)", ErrInvalidConfig, s, CadenceInterval, CadenceLiteral)
}

// LiteralCadencePeriod 原始条件中的取模常数
const LiteralCadencePeriod = 60

// GameConfig 游戏主配置，对应 data/game.yaml
type GameConfig struct {
	Title  string       `yaml:"title"`
	Screen ScreenConfig `yaml:"screen"`

	Background   SpriteConfig `yaml:"background"`
	Plane        SpriteConfig `yaml:"plane"`
	PauseButton  SpriteConfig `yaml:"pauseButton"`
	ResumeButton SpriteConfig `yaml:"resumeButton"`
	Overlay      SpriteConfig `yaml:"overlay"`
	Bullet       BulletConfig `yaml:"bullet"`

	PausedLabel string `yaml:"pausedLabel"` // 暂停时显示的文字，为空则不创建文本节点
}

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpriteConfig 单个精灵的外观配置
// Width/Height 为 0 时使用图片原始尺寸
type SpriteConfig struct {
	Image   string  `yaml:"image"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	AnchorX float64 `yaml:"anchorX"`
	AnchorY float64 `yaml:"anchorY"`
	Alpha   float64 `yaml:"alpha"`
}

// BulletConfig 子弹配置
type BulletConfig struct {
	SpriteConfig        `yaml:",inline"`
	Step                float64      `yaml:"step"`                // 每帧上移的距离
	SpawnIntervalFrames int          `yaml:"spawnIntervalFrames"` // interval 模式的发射间隔
	Cadence             SpawnCadence `yaml:"cadence"`
}

// DefaultGameConfig 返回与原版一致的默认配置（512x768 画布）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Title:  "Plane War",
		Screen: ScreenConfig{Width: 512, Height: 768},
		Background: SpriteConfig{
			Image: "IMAGE_BACKGROUND", Width: 512, Height: 768, Alpha: 1,
		},
		Plane: SpriteConfig{
			Image: "IMAGE_PLANE", Width: 117, Height: 93, AnchorX: 0.5, AnchorY: 0.5, Alpha: 1,
		},
		PauseButton: SpriteConfig{
			Image: "IMAGE_PAUSE", Width: 50, Height: 51, AnchorX: 1, AnchorY: 1, Alpha: 1,
		},
		ResumeButton: SpriteConfig{
			Image: "IMAGE_RESUME", Width: 172, Height: 51, AnchorX: 0.5, AnchorY: 0.5, Alpha: 1,
		},
		Overlay: SpriteConfig{
			Image: "IMAGE_OVERLAY", Alpha: 0.8,
		},
		Bullet: BulletConfig{
			SpriteConfig:        SpriteConfig{Image: "IMAGE_BULLET", AnchorX: 0.5, AnchorY: 0.5, Alpha: 1},
			Step:                5,
			SpawnIntervalFrames: 30,
			Cadence:             CadenceInterval,
		},
		PausedLabel: "PAUSED",
	}
}

// ParseGameConfig 解析 YAML 配置
// 未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置取值
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	if c.Bullet.Step <= 0 {
		return fmt.Errorf("%w: bullet.step must be positive, got %v", ErrInvalidConfig, c.Bullet.Step)
	}
	if c.Bullet.SpawnIntervalFrames <= 0 {
		return fmt.Errorf("%w: bullet.spawnIntervalFrames must be positive, got %d", ErrInvalidConfig, c.Bullet.SpawnIntervalFrames)
	}
	if _, err := ParseSpawnCadence(string(c.Bullet.Cadence)); err != nil {
		return fmt.Errorf("bullet.cadence: %w", err)
	}

	sprites := map[string]SpriteConfig{
		"background":   c.Background,
		"plane":        c.Plane,
		"pauseButton":  c.PauseButton,
		"resumeButton": c.ResumeButton,
		"overlay":      c.Overlay,
		"bullet":       c.Bullet.SpriteConfig,
	}
	for name, s := range sprites {
		if s.Image == "" {
			return fmt.Errorf("%w: %s.image is required", ErrInvalidConfig, name)
		}
		if s.Alpha < 0 || s.Alpha > 1 {
			return fmt.Errorf("%w: %s.alpha must be within [0, 1], got %v", ErrInvalidConfig, name, s.Alpha)
		}
	}
	return nil
}

// GameConfigPath 嵌入的主配置文件路径
const GameConfigPath = "data/game.yaml"

// LoadGameConfig 通过 readFile 读取并解析配置文件
func LoadGameConfig(readFile func(path string) ([]byte, error), path string) (*GameConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// OverrideCadence 用命令行参数覆盖发射节奏，空字符串表示保持配置文件的值
func (c *GameConfig) OverrideCadence(name string) error {
	if name == "" {
		return nil
	}
	cadence, err := ParseSpawnCadence(name)
	if err != nil {
		return err
	}
	c.Bullet.Cadence = cadence
	return nil
}
