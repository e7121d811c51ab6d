// Package app 提供窗口前端的应用包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/embedded"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/scenes"
	"github.com/decker502/planewar/pkg/stage"
	"github.com/decker502/planewar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Cadence 覆盖子弹发射节奏（"interval" / "literal"），为空则使用配置文件
	Cadence string
	// Fullscreen 以全屏启动（同时写入设置）
	Fullscreen bool
	// Mute 本次运行静音（不写入设置）
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig *config.GameConfig
	stage      *stage.Stage
	scene      *scenes.BattleScene
	renderer   *RenderSystem

	settings *game.SettingsManager
	audio    *game.AudioManager

	pointer utils.PointerTracker

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 任何图片缺失或无法解码都会返回错误（错误链中包含 *game.AssetLoadError）。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.LoadGameConfig(embedded.ReadFile, config.GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	if err := gameConfig.OverrideCadence(cfg.Cadence); err != nil {
		return nil, err
	}

	// 设置（gdata 不可用时降级为内存设置）
	settings := game.NewSettingsManager(game.OpenGdataManager(game.AppName))
	if cfg.Fullscreen {
		settings.SetFullscreen(true)
	}

	// 初始化音频
	var backend game.SoundBackend
	if !cfg.Mute {
		backend = newEbitenSound(audio.NewContext(SampleRate))
	}
	audioManager := game.NewAudioManager(backend, settings)
	log.Printf("[App] AudioManager initialized (enabled=%v)", audioManager.IsEnabled())

	// 创建资源管理器和战斗场景
	resourceManager := game.NewResourceManager(nil)
	st, scene, err := scenes.LoadBattle(gameConfig, resourceManager, scenes.BattleHooks{
		OnShot:   func() { audioManager.PlaySound(game.SoundShot) },
		OnPause:  func() { audioManager.PlaySound(game.SoundPause) },
		OnResume: func() { audioManager.PlaySound(game.SoundResume) },
	})
	if err != nil {
		return nil, fmt.Errorf("战斗场景创建失败: %w", err)
	}

	renderer, err := NewRenderSystem(st, resourceManager)
	if err != nil {
		return nil, err
	}

	return &App{
		gameConfig: gameConfig,
		stage:      st,
		scene:      scene,
		renderer:   renderer,
		settings:   settings,
		audio:      audioManager,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	a.handleKeys()

	// 失去焦点时清除指针状态，重新获得焦点后第一次采样不会把飞机拉到光标处
	if !ebiten.IsFocused() {
		a.pointer.Reset()
		a.stage.Tick(1)
		return a.scene.Err()
	}

	// 指针：坐标已经是逻辑坐标
	u := a.pointer.Update(utils.SamplePointer())
	if u.Moved {
		a.stage.DispatchPointerMove(float64(u.X), float64(u.Y))
	}
	if u.JustPressed {
		a.stage.DispatchClick(float64(u.X), float64(u.Y))
	}

	a.stage.Tick(1)

	// 帧回调中的资源错误会终止游戏循环
	return a.scene.Err()
}

// handleKeys 处理键盘快捷键
func (a *App) handleKeys() {
	// Esc / P 切换暂停
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.scene.TogglePause()
	}

	// M 切换静音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audio.ToggleMute()
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(!a.settings.GetSettings().Fullscreen)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.gameConfig.Title
}

// ScreenSize 返回逻辑屏幕尺寸
func (a *App) ScreenSize() (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// Fullscreen 是否应以全屏启动
func (a *App) Fullscreen() bool {
	if utils.IsMobile() {
		return true
	}
	return a.settings.GetSettings().Fullscreen
}

// Session 返回当前会话
func (a *App) Session() *game.Session {
	return a.scene.Session()
}
