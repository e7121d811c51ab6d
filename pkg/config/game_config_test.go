package config

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultGameConfig().Validate() = %v", err)
	}
	if cfg.Bullet.Step != 5 {
		t.Errorf("Bullet.Step = %v, want 5", cfg.Bullet.Step)
	}
	if cfg.Bullet.SpawnIntervalFrames != 30 {
		t.Errorf("Bullet.SpawnIntervalFrames = %d, want 30", cfg.Bullet.SpawnIntervalFrames)
	}
	if cfg.Bullet.Cadence != CadenceInterval {
		t.Errorf("Bullet.Cadence = %q, want %q", cfg.Bullet.Cadence, CadenceInterval)
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
bullet:
  step: 8
  cadence: literal
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Bullet.Step != 8 {
					t.Errorf("expected step 8, got %v", cfg.Bullet.Step)
				}
				if cfg.Bullet.Cadence != CadenceLiteral {
					t.Errorf("expected literal cadence, got %q", cfg.Bullet.Cadence)
				}
				// 未覆盖的字段保持默认
				if cfg.Bullet.Image != "IMAGE_BULLET" {
					t.Errorf("expected default bullet image, got %q", cfg.Bullet.Image)
				}
				if cfg.Bullet.SpawnIntervalFrames != 30 {
					t.Errorf("expected default interval 30, got %d", cfg.Bullet.SpawnIntervalFrames)
				}
				if cfg.Screen.Width != 512 || cfg.Screen.Height != 768 {
					t.Errorf("expected default screen 512x768, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
				}
			},
		},
		{
			name: "sprite fields",
			yamlContent: `
plane:
  image: IMAGE_PLANE_2
  width: 60
  height: 40
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Plane.Image != "IMAGE_PLANE_2" || cfg.Plane.Width != 60 || cfg.Plane.Height != 40 {
					t.Errorf("unexpected plane config: %+v", cfg.Plane)
				}
				if cfg.Plane.AnchorX != 0.5 {
					t.Errorf("expected default anchorX 0.5, got %v", cfg.Plane.AnchorX)
				}
			},
		},
		{
			name:        "unknown cadence",
			yamlContent: "bullet:\n  cadence: sometimes\n",
			wantErr:     true,
			errContains: "sometimes",
		},
		{
			name:        "non-positive step",
			yamlContent: "bullet:\n  step: 0\n",
			wantErr:     true,
			errContains: "bullet.step",
		},
		{
			name:        "zero interval",
			yamlContent: "bullet:\n  spawnIntervalFrames: 0\n",
			wantErr:     true,
			errContains: "spawnIntervalFrames",
		},
		{
			name:        "alpha out of range",
			yamlContent: "overlay:\n  alpha: 1.5\n",
			wantErr:     true,
			errContains: "overlay.alpha",
		},
		{
			name:        "malformed yaml",
			yamlContent: "bullet: [",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestParseSpawnCadence(t *testing.T) {
	for _, name := range []string{"interval", "literal"} {
		if _, err := ParseSpawnCadence(name); err != nil {
			t.Errorf("ParseSpawnCadence(%q) error: %v", name, err)
		}
	}

	_, err := ParseSpawnCadence("")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseSpawnCadence(\"\") error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadGameConfig(t *testing.T) {
	files := map[string][]byte{
		GameConfigPath:  []byte("bullet:\n  cadence: literal\n"),
		"data/bad.yaml": []byte("bullet:\n  step: -1\n"),
	}
	readFile := func(path string) ([]byte, error) {
		data, ok := files[path]
		if !ok {
			return nil, errors.New("file not found")
		}
		return data, nil
	}

	cfg, err := LoadGameConfig(readFile, GameConfigPath)
	if err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}
	if cfg.Bullet.Cadence != CadenceLiteral {
		t.Errorf("Cadence = %q, want literal", cfg.Bullet.Cadence)
	}

	if _, err := LoadGameConfig(readFile, "data/bad.yaml"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("bad config error = %v, want ErrInvalidConfig", err)
	}
	if _, err := LoadGameConfig(readFile, "data/missing.yaml"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestOverrideCadence(t *testing.T) {
	cfg := DefaultGameConfig()

	if err := cfg.OverrideCadence(""); err != nil || cfg.Bullet.Cadence != CadenceInterval {
		t.Errorf("empty override changed cadence: %q, %v", cfg.Bullet.Cadence, err)
	}
	if err := cfg.OverrideCadence("literal"); err != nil || cfg.Bullet.Cadence != CadenceLiteral {
		t.Errorf("literal override: %q, %v", cfg.Bullet.Cadence, err)
	}
	if err := cfg.OverrideCadence("sometimes"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown cadence error = %v, want ErrInvalidConfig", err)
	}
	if cfg.Bullet.Cadence != CadenceLiteral {
		t.Error("failed override should keep the previous cadence")
	}
}
