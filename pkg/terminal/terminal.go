package terminal

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/embedded"
	"github.com/decker502/planewar/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// LogFile 详细日志写入的文件（终端前端不能把日志打到屏幕上）
const LogFile = "planewar-term.log"

// Options 终端前端启动参数
type Options struct {
	Verbose bool
	Cadence string // 为空使用配置文件
	Mute    bool
}

// Main 启动终端前端，阻塞到退出
// 调用前必须先调用 embedded.Init()
func Main(ctx context.Context, opts Options) error {
	closeLog, err := setupLog(opts.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadGameConfig(embedded.ReadFile, config.GameConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.OverrideCadence(opts.Cadence); err != nil {
		return err
	}

	settings := game.NewSettingsManager(game.OpenGdataManager(game.AppName))

	var backend game.SoundBackend
	if !opts.Mute {
		sound, err := newBeepSound()
		if err != nil {
			// 没有声卡也能玩
			log.Printf("[Terminal] Warning: audio unavailable: %v", err)
		} else {
			defer sound.Close()
			backend = sound
		}
	}
	audio := game.NewAudioManager(backend, settings)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	runner, err := NewRunner(screen, cfg, game.NewResourceManager(nil), audio)
	if err != nil {
		return err
	}

	log.Printf("[Terminal] Session %s started", runner.Scene().Session().ID())
	return runner.Run(ctx)
}

// setupLog 非 verbose 模式丢弃日志，verbose 模式写入 LogFile
func setupLog(verbose bool) (func(), error) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		return func() {}, nil
	}

	f, err := os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}
