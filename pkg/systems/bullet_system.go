package systems

import (
	"fmt"
	"log"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/ecs"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/stage"
)

// BulletSystem 帧更新循环：发射、推进、回收子弹
//
// 子弹按生成顺序保存在 FIFO 队列中，队首永远是最早发射的子弹，
// 也是唯一的回收候选：每一帧只检查队首。
// 暂停时整帧跳过，帧计数也不增加。
type BulletSystem struct {
	renderer stage.Renderer
	session  *game.Session
	plane    ecs.EntityID
	cfg      config.BulletConfig

	frame   uint64         // 已执行的帧数（暂停帧不计）
	bullets []ecs.EntityID // FIFO，队首最旧

	// OnSpawn 子弹生成后的回调（播放射击音效），可为 nil
	OnSpawn func(id ecs.EntityID)
}

// NewBulletSystem 创建子弹系统
// 参数:
//   - r: 渲染门面
//   - session: 会话（提供暂停标志）
//   - plane: 飞机实体，子弹从其当前位置发射
//   - cfg: 子弹配置（图片、步长、发射节奏）
func NewBulletSystem(r stage.Renderer, session *game.Session, plane ecs.EntityID, cfg config.BulletConfig) *BulletSystem {
	if cfg.Cadence == "" {
		cfg.Cadence = config.CadenceInterval
	}
	if cfg.SpawnIntervalFrames <= 0 {
		cfg.SpawnIntervalFrames = config.DefaultGameConfig().Bullet.SpawnIntervalFrames
	}
	log.Printf("[BulletSystem] Initialized: step=%.1f, cadence=%s, interval=%d frames",
		cfg.Step, cfg.Cadence, cfg.SpawnIntervalFrames)
	return &BulletSystem{
		renderer: r,
		session:  session,
		plane:    plane,
		cfg:      cfg,
		bullets:  make([]ecs.EntityID, 0, 32),
	}
}

// Tick 推进 deltaFrames 帧，deltaFrames <= 0 时为空操作
// 单帧失败（图片无法加载）时立即返回错误，已完成的帧不回滚
func (s *BulletSystem) Tick(deltaFrames int) error {
	for i := 0; i < deltaFrames; i++ {
		if err := s.step(); err != nil {
			return err
		}
	}
	return nil
}

// step 执行单帧更新
// 顺序：暂停检查 → 发射 → 推进 → 回收队首 → 帧计数 +1
func (s *BulletSystem) step() error {
	if s.session.IsPaused() {
		return nil
	}

	if s.shouldSpawn(s.frame) {
		if err := s.spawn(); err != nil {
			return err
		}
	}

	for _, id := range s.bullets {
		if tr := s.renderer.Transform(id); tr != nil {
			tr.Y -= s.cfg.Step
		}
	}

	s.retireFront()

	s.frame++
	return nil
}

// shouldSpawn 判断当前帧是否发射
func (s *BulletSystem) shouldSpawn(frame uint64) bool {
	switch s.cfg.Cadence {
	case config.CadenceLiteral:
		// frameCount % 60 / 2 == 0 在浮点除法下等价于 frame%60 == 0
		return frame%config.LiteralCadencePeriod == 0
	default:
		return frame%uint64(s.cfg.SpawnIntervalFrames) == 0
	}
}

// spawn 在飞机当前位置创建子弹并压入队尾
func (s *BulletSystem) spawn() error {
	planeTr := s.renderer.Transform(s.plane)
	if planeTr == nil {
		log.Printf("[BulletSystem] Plane %d missing, skip spawn at frame %d", s.plane, s.frame)
		return nil
	}

	id, err := s.renderer.CreateSprite(s.cfg.Image)
	if err != nil {
		return fmt.Errorf("failed to create bullet sprite: %w", err)
	}

	tr := s.renderer.Transform(id)
	if tr == nil {
		return fmt.Errorf("bullet sprite %d has no transform", id)
	}
	if s.cfg.Width > 0 && s.cfg.Height > 0 {
		tr.Width, tr.Height = s.cfg.Width, s.cfg.Height
	}
	tr.SetAnchor(s.cfg.AnchorX, s.cfg.AnchorY)
	tr.Alpha = s.cfg.Alpha
	tr.SetPosition(planeTr.X, planeTr.Y)

	s.renderer.AddToStage(id)
	s.bullets = append(s.bullets, id)
	s.session.BulletsSpawned++

	if s.OnSpawn != nil {
		s.OnSpawn(id)
	}
	return nil
}

// retireFront 队首子弹完全离开屏幕顶部（y < -height）时回收
func (s *BulletSystem) retireFront() {
	if len(s.bullets) == 0 {
		return
	}
	front := s.bullets[0]
	tr := s.renderer.Transform(front)
	if tr != nil && tr.Y >= -tr.Height {
		return
	}

	s.bullets[0] = ecs.InvalidEntity
	s.bullets = s.bullets[1:]
	s.renderer.RemoveFromStage(front)
	s.renderer.Destroy(front)
	s.session.BulletsRetired++
}

// Bullets 返回当前队列的副本（按生成顺序）
func (s *BulletSystem) Bullets() []ecs.EntityID {
	out := make([]ecs.EntityID, len(s.bullets))
	copy(out, s.bullets)
	return out
}

// Frame 返回帧计数
func (s *BulletSystem) Frame() uint64 {
	return s.frame
}
