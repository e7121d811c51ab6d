package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/planewar/pkg/app"
	"github.com/decker502/planewar/pkg/embedded"
	"github.com/decker502/planewar/pkg/terminal"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	cadence := flag.String("cadence", "", `Bullet cadence: "interval" (two per second) or "literal" (one per second); default from data/game.yaml`)
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode (window frontend)")
	frontend := flag.String("frontend", "window", `Frontend: "window" or "terminal"`)
	mute := flag.Bool("mute", false, "Disable sound for this run")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(assetsFS, dataFS)

	switch *frontend {
	case "window":
		runWindow(app.Config{
			Verbose:    *verbose,
			Cadence:    *cadence,
			Fullscreen: *fullscreen,
			Mute:       *mute,
		})
	case "terminal":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err := terminal.Main(ctx, terminal.Options{
			Verbose: *verbose,
			Cadence: *cadence,
			Mute:    *mute,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "planewar: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "planewar: unknown frontend %q\n", *frontend)
		os.Exit(2)
	}
}

func runWindow(cfg app.Config) {
	gameApp, err := app.NewApp(cfg)
	if err != nil {
		// NewApp 可能已经关闭日志输出，错误直接打到 stderr
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := gameApp.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(gameApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	log.Printf("[Main] Session %s starting", gameApp.Session().ID())

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "planewar: %v\n", err)
		os.Exit(1)
	}
}
