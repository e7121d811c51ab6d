// check_resources 检查 data/game.yaml 引用的图片是否都能加载
//
// 在项目根目录运行：
//
//	go run ./cmd/check_resources
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/embedded"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/scenes"
)

func main() {
	root := flag.String("root", ".", "项目根目录（包含 assets/ 和 data/）")
	flag.Parse()

	fsys := os.DirFS(*root)
	embedded.Init(fsys, fsys)

	cfg, err := config.LoadGameConfig(embedded.ReadFile, config.GameConfigPath)
	if err != nil {
		fmt.Printf("❌ 游戏配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 解析成功（%dx%d, cadence=%s）\n",
		config.GameConfigPath, cfg.Screen.Width, cfg.Screen.Height, cfg.Bullet.Cadence)

	rm := game.NewResourceManager(nil)
	if err := rm.LoadResourceConfig(scenes.ResourceConfigPath); err != nil {
		fmt.Printf("❌ 资源配置无效: %v\n", err)
		os.Exit(1)
	}

	sprites := []struct {
		name string
		sc   config.SpriteConfig
	}{
		{"background", cfg.Background},
		{"plane", cfg.Plane},
		{"pauseButton", cfg.PauseButton},
		{"resumeButton", cfg.ResumeButton},
		{"overlay", cfg.Overlay},
		{"bullet", cfg.Bullet.SpriteConfig},
	}

	failed := 0
	for _, s := range sprites {
		w, h, err := rm.ImageSize(s.sc.Image)
		if err != nil {
			fmt.Printf("❌ %-12s %v\n", s.name, err)
			failed++
			continue
		}
		if _, err := rm.LoadImage(s.sc.Image); err != nil {
			fmt.Printf("❌ %-12s %v\n", s.name, err)
			failed++
			continue
		}

		note := ""
		if s.sc.Width > 0 && s.sc.Height > 0 && (int(s.sc.Width) != w || int(s.sc.Height) != h) {
			note = fmt.Sprintf("（显示时缩放为 %.0fx%.0f）", s.sc.Width, s.sc.Height)
		}
		fmt.Printf("✅ %-12s %-18s %dx%d%s\n", s.name, s.sc.Image, w, h, note)
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个图片无法加载\n", failed)
		os.Exit(1)
	}
	fmt.Printf("✅ 全部 %d 个图片可用\n", len(sprites))
}
