package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/ecs"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/modules"
	"github.com/decker502/planewar/pkg/stage"
	"github.com/decker502/planewar/pkg/systems"
)

// BattleHooks 场景向前端暴露的回调（音效等），均可为 nil
type BattleHooks struct {
	OnShot   func() // 每发射一颗子弹
	OnPause  func()
	OnResume func()
}

// BattleScene 战斗场景
// 负责按配置创建全部精灵，并把子弹系统、飞机控制和暂停模块连接到渲染门面
//
// 场景不依赖任何图形库：窗口前端和终端前端都通过 stage.Renderer 驱动它。
type BattleScene struct {
	renderer stage.Renderer
	session  *game.Session
	cfg      *config.GameConfig

	background ecs.EntityID
	plane      ecs.EntityID

	bulletSystem *systems.BulletSystem
	planeControl *systems.PlaneControlSystem
	pauseMenu    *modules.PauseMenuModule

	err error // 帧回调中出现的第一个错误
}

// NewBattleScene 创建战斗场景
//
// 任意精灵创建失败（图片缺失或无法解码）时返回错误，错误链中包含 *game.AssetLoadError，
// 此时不会注册帧回调，调用方应在第一帧之前退出。
func NewBattleScene(r stage.Renderer, session *game.Session, cfg *config.GameConfig, hooks BattleHooks) (*BattleScene, error) {
	s := &BattleScene{
		renderer: r,
		session:  session,
		cfg:      cfg,
	}

	width := float64(cfg.Screen.Width)
	height := float64(cfg.Screen.Height)

	var err error

	// 1. 背景铺满画布
	s.background, err = s.newSprite("background", cfg.Background)
	if err != nil {
		return nil, err
	}
	bg := r.Transform(s.background)
	bg.SetPosition(0, 0)

	// 2. 飞机位于背景中央
	s.plane, err = s.newSprite("plane", cfg.Plane)
	if err != nil {
		return nil, err
	}
	r.Transform(s.plane).SetPosition(bg.Width/2, bg.Height/2)

	// 3. 暂停按钮贴右下角
	pauseButton, err := s.newSprite("pauseButton", cfg.PauseButton)
	if err != nil {
		return nil, err
	}
	r.Transform(pauseButton).SetPosition(bg.Width, bg.Height)

	// 4. 遮罩与背景同尺寸同位置，暂停时才加入舞台
	overlay, err := s.newSprite("overlay", cfg.Overlay)
	if err != nil {
		return nil, err
	}
	overlayTr := r.Transform(overlay)
	overlayTr.Width, overlayTr.Height = bg.Width, bg.Height
	overlayTr.SetPosition(bg.X, bg.Y)

	// 5. 继续按钮居中
	resumeButton, err := s.newSprite("resumeButton", cfg.ResumeButton)
	if err != nil {
		return nil, err
	}
	r.Transform(resumeButton).SetPosition(bg.Width/2, bg.Height/2)

	// 6. 暂停提示文字，位于继续按钮上方
	label := ecs.InvalidEntity
	if cfg.PausedLabel != "" {
		label = r.CreateText(cfg.PausedLabel)
		labelTr := r.Transform(label)
		labelTr.SetAnchor(0.5, 1)
		labelTr.SetPosition(width/2, height/2-r.Transform(resumeButton).Height)
	}

	r.AddToStage(s.background)
	r.AddToStage(s.plane)
	r.AddToStage(pauseButton)

	// 系统
	s.bulletSystem = systems.NewBulletSystem(r, session, s.plane, cfg.Bullet)
	if hooks.OnShot != nil {
		s.bulletSystem.OnSpawn = func(ecs.EntityID) { hooks.OnShot() }
	}
	s.planeControl = systems.NewPlaneControlSystem(r, session, s.background, s.plane)
	s.pauseMenu = modules.NewPauseMenuModule(r, session, components.PauseMenuComponent{
		PauseButton:  pauseButton,
		ResumeButton: resumeButton,
		Overlay:      overlay,
		Label:        label,
	}, modules.PauseMenuCallbacks{
		OnPause:  hooks.OnPause,
		OnResume: hooks.OnResume,
	})

	r.OnTick(s.tick)

	log.Printf("[BattleScene] Ready: session=%s, screen=%dx%d, cadence=%s",
		session.ID(), cfg.Screen.Width, cfg.Screen.Height, cfg.Bullet.Cadence)
	return s, nil
}

// 资源配置
const (
	ResourceConfigPath  = "assets/config/resources.yaml"
	BattleResourceGroup = "battle"
)

// LoadBattle 加载资源、创建舞台和战斗场景，窗口前端和终端前端共用
// 资源组中任意图片无法解码时返回的错误链包含 *game.AssetLoadError
func LoadBattle(cfg *config.GameConfig, rm *game.ResourceManager, hooks BattleHooks) (*stage.Stage, *BattleScene, error) {
	if err := rm.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, nil, err
	}
	if err := rm.LoadResourceGroup(BattleResourceGroup); err != nil {
		return nil, nil, err
	}

	st := stage.New(ecs.NewEntityManager(), rm, cfg.Screen.Width, cfg.Screen.Height)
	scene, err := NewBattleScene(st, game.NewSession(), cfg, hooks)
	if err != nil {
		return nil, nil, err
	}
	return st, scene, nil
}

// newSprite 创建精灵并应用配置中的尺寸、锚点、透明度
func (s *BattleScene) newSprite(name string, sc config.SpriteConfig) (ecs.EntityID, error) {
	id, err := s.renderer.CreateSprite(sc.Image)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("failed to create %s sprite: %w", name, err)
	}
	tr := s.renderer.Transform(id)
	if sc.Width > 0 {
		tr.Width = sc.Width
	}
	if sc.Height > 0 {
		tr.Height = sc.Height
	}
	tr.SetAnchor(sc.AnchorX, sc.AnchorY)
	tr.Alpha = sc.Alpha
	return id, nil
}

// tick 帧回调
func (s *BattleScene) tick(deltaFrames int) {
	if s.err != nil {
		return
	}
	if err := s.bulletSystem.Tick(deltaFrames); err != nil {
		log.Printf("[BattleScene] Error: %v", err)
		s.err = err
	}
}

// Err 返回帧回调中出现的第一个错误，前端据此结束游戏循环
func (s *BattleScene) Err() error {
	return s.err
}

// TogglePause 键盘切换暂停
func (s *BattleScene) TogglePause() {
	s.pauseMenu.Toggle()
}

// Session 返回会话
func (s *BattleScene) Session() *game.Session {
	return s.session
}

// Background 返回背景实体
func (s *BattleScene) Background() ecs.EntityID {
	return s.background
}

// Plane 返回飞机实体
func (s *BattleScene) Plane() ecs.EntityID {
	return s.plane
}

// PauseMenu 返回暂停模块
func (s *BattleScene) PauseMenu() *modules.PauseMenuModule {
	return s.pauseMenu
}

// Bullets 返回当前子弹队列
func (s *BattleScene) Bullets() []ecs.EntityID {
	return s.bulletSystem.Bullets()
}
