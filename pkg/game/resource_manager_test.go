package game

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

// encodeTestPNG 生成指定尺寸的纯色 PNG
func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

const testResourcesYAML = `
version: "1.0"
base_path: assets
groups:
  battle:
    images:
      - id: IMAGE_PLANE
        path: images/plane.png
      - id: IMAGE_BULLET
        path: images/bullet
  broken:
    images:
      - id: IMAGE_MISSING
        path: images/missing.png
      - id: IMAGE_CORRUPT
        path: images/corrupt.png
`

func newTestResourceManager(t *testing.T) *ResourceManager {
	t.Helper()
	fsys := fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testResourcesYAML)},
		"assets/images/plane.png":      {Data: encodeTestPNG(t, 117, 93)},
		"assets/images/bullet.png":     {Data: encodeTestPNG(t, 14, 30)},
		"assets/images/corrupt.png":    {Data: []byte("not a png")},
	}
	rm := NewResourceManager(func(path string) ([]byte, error) {
		return fs.ReadFile(fsys, path)
	})
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	return rm
}

func TestLoadResourceConfig(t *testing.T) {
	rm := newTestResourceManager(t)

	if rm.config.BasePath != "assets" {
		t.Errorf("Expected base_path 'assets', got '%s'", rm.config.BasePath)
	}

	tests := []struct {
		id   string
		want string
	}{
		{"IMAGE_PLANE", "assets/images/plane.png"},
		{"IMAGE_BULLET", "assets/images/bullet.png"}, // 无扩展名时补 .png
	}
	for _, tt := range tests {
		got, err := rm.ResolvePath(tt.id)
		if err != nil || got != tt.want {
			t.Errorf("ResolvePath(%s) = %q, %v; want %q", tt.id, got, err, tt.want)
		}
	}

	ids := rm.ImageIDs()
	if len(ids) != 4 || ids[0] != "IMAGE_BULLET" {
		t.Errorf("ImageIDs() = %v", ids)
	}
}

func TestLoadImageCaches(t *testing.T) {
	rm := newTestResourceManager(t)

	img1, err := rm.LoadImage("IMAGE_PLANE")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	img2, err := rm.LoadImage("assets/images/plane.png")
	if err != nil {
		t.Fatalf("LoadImage by path failed: %v", err)
	}
	if img1 != img2 {
		t.Error("Expected ID and path lookups to share the cached image")
	}
	if rm.GetImage("IMAGE_PLANE") != img1 {
		t.Error("GetImage should return the cached image")
	}
}

func TestImageSize(t *testing.T) {
	rm := newTestResourceManager(t)

	w, h, err := rm.ImageSize("IMAGE_BULLET")
	if err != nil {
		t.Fatalf("ImageSize failed: %v", err)
	}
	if w != 14 || h != 30 {
		t.Errorf("ImageSize = %dx%d, want 14x30", w, h)
	}
	// 尺寸查询不需要完整解码
	if rm.GetImage("IMAGE_BULLET") != nil {
		t.Error("ImageSize should not populate the image cache")
	}
}

func TestLoadImageErrors(t *testing.T) {
	rm := newTestResourceManager(t)

	tests := []struct {
		name     string
		ref      string
		wantPath string
		unknown  bool
	}{
		{"undeclared id", "IMAGE_NOPE", "", true},
		{"missing file", "IMAGE_MISSING", "assets/images/missing.png", false},
		{"corrupt file", "IMAGE_CORRUPT", "assets/images/corrupt.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rm.LoadImage(tt.ref)
			var assetErr *AssetLoadError
			if !errors.As(err, &assetErr) {
				t.Fatalf("expected *AssetLoadError, got %T: %v", err, err)
			}
			if assetErr.Ref != tt.ref || assetErr.Path != tt.wantPath {
				t.Errorf("AssetLoadError = %+v", assetErr)
			}
			if errors.Is(err, ErrUnknownResource) != tt.unknown {
				t.Errorf("errors.Is(ErrUnknownResource) = %v, want %v", !tt.unknown, tt.unknown)
			}
		})
	}

	if _, _, err := rm.ImageSize("IMAGE_MISSING"); err == nil {
		t.Error("ImageSize on missing file should fail")
	}
}

func TestLoadResourceGroup(t *testing.T) {
	rm := newTestResourceManager(t)

	if err := rm.LoadResourceGroup("battle"); err != nil {
		t.Fatalf("LoadResourceGroup(battle) failed: %v", err)
	}
	if rm.GetImage("IMAGE_BULLET") == nil {
		t.Error("group images should be cached")
	}

	err := rm.LoadResourceGroup("broken")
	var assetErr *AssetLoadError
	if !errors.As(err, &assetErr) {
		t.Errorf("LoadResourceGroup(broken) = %v, want AssetLoadError", err)
	}

	if err := rm.LoadResourceGroup("nope"); err == nil {
		t.Error("unknown group should fail")
	}
}
