package stage

import (
	"log"
	"unicode/utf8"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/ecs"
)

// 文本节点的估算字形尺寸（与 ebitenutil 调试字体一致）
const (
	TextGlyphWidth  = 6
	TextGlyphHeight = 16
)

// ImageSource 提供图片尺寸，由 game.ResourceManager 实现
type ImageSource interface {
	ImageSize(ref string) (int, int, error)
}

// Stage 基于 ECS 的场景图
//
// 节点数据全部存放在组件中：
//   - TransformComponent: 位置、尺寸、锚点、透明度
//   - SpriteComponent / TextComponent: 外观
//   - InteractiveComponent: 指针回调
//
// children 保存舞台上的节点顺序，靠后的节点绘制在上层。
// Stage 不是并发安全的，所有调用都应来自游戏循环所在的 goroutine。
type Stage struct {
	entityManager *ecs.EntityManager
	images        ImageSource

	width, height int

	children     []ecs.EntityID
	tickHandlers []TickHandler
}

// New 创建舞台
// width/height 是逻辑画布尺寸
func New(em *ecs.EntityManager, images ImageSource, width, height int) *Stage {
	return &Stage{
		entityManager: em,
		images:        images,
		width:         width,
		height:        height,
		children:      make([]ecs.EntityID, 0, 16),
	}
}

// Size 返回逻辑画布尺寸
func (s *Stage) Size() (int, int) {
	return s.width, s.height
}

// EntityManager 返回底层实体管理器，供渲染系统读取组件
func (s *Stage) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// CreateSprite 按图片引用创建精灵，默认尺寸为图片原始尺寸
func (s *Stage) CreateSprite(imageRef string) (ecs.EntityID, error) {
	w, h, err := s.images.ImageSize(imageRef)
	if err != nil {
		return ecs.InvalidEntity, err
	}

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.SpriteComponent{
		ImageRef:    imageRef,
		ImageWidth:  w,
		ImageHeight: h,
	})
	ecs.AddComponent(s.entityManager, id, &components.TransformComponent{
		Width:  float64(w),
		Height: float64(h),
		Alpha:  1,
	})
	return id, nil
}

// CreateText 创建文本节点，尺寸按字形数估算
func (s *Stage) CreateText(content string) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.TextComponent{
		Content: content,
		Color:   [4]uint8{255, 255, 255, 255},
	})
	ecs.AddComponent(s.entityManager, id, &components.TransformComponent{
		Width:  float64(utf8.RuneCountInString(content) * TextGlyphWidth),
		Height: TextGlyphHeight,
		Alpha:  1,
	})
	return id
}

// AddToStage 将节点加入舞台顶层
func (s *Stage) AddToStage(id ecs.EntityID) {
	if !s.entityManager.IsAlive(id) {
		log.Printf("[Stage] AddToStage ignored: entity %d does not exist", id)
		return
	}
	s.detach(id)
	s.children = append(s.children, id)
}

// RemoveFromStage 将节点移出舞台，不在舞台上时为空操作
func (s *Stage) RemoveFromStage(id ecs.EntityID) {
	s.detach(id)
}

// Destroy 移出舞台并释放节点
// 组件在本帧结束（Flush）时才真正删除，避免回调遍历过程中失效
func (s *Stage) Destroy(id ecs.EntityID) {
	s.detach(id)
	s.entityManager.DestroyEntity(id)
}

// detach 从 children 中删除 id，保持其余节点顺序
func (s *Stage) detach(id ecs.EntityID) bool {
	for i, child := range s.children {
		if child == id {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return true
		}
	}
	return false
}

// IsStaged 节点是否在舞台上
func (s *Stage) IsStaged(id ecs.EntityID) bool {
	for _, child := range s.children {
		if child == id {
			return true
		}
	}
	return false
}

// IsAlive 节点是否存在且未被销毁
func (s *Stage) IsAlive(id ecs.EntityID) bool {
	return s.entityManager.IsAlive(id)
}

// Children 返回舞台节点的副本（自底向上）
func (s *Stage) Children() []ecs.EntityID {
	out := make([]ecs.EntityID, len(s.children))
	copy(out, s.children)
	return out
}

// Sprites 返回所有存活的精灵节点（含未上舞台的），按创建顺序
// 前端在启动时据此预热纹理缓存
func (s *Stage) Sprites() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.TransformComponent](s.entityManager)
	out := ids[:0]
	for _, id := range ids {
		if s.entityManager.IsAlive(id) {
			out = append(out, id)
		}
	}
	return out
}

// SpriteImage 返回精灵节点的图片引用，不是精灵时返回空字符串
func (s *Stage) SpriteImage(id ecs.EntityID) string {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return ""
	}
	return sprite.ImageRef
}

// Transform 返回节点的变换组件
func (s *Stage) Transform(id ecs.EntityID) *components.TransformComponent {
	if !s.entityManager.IsAlive(id) {
		return nil
	}
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return nil
	}
	return tr
}

// OnTick 注册帧回调，按注册顺序调用
func (s *Stage) OnTick(fn TickHandler) {
	s.tickHandlers = append(s.tickHandlers, fn)
}

// interactive 获取或创建节点的交互组件
func (s *Stage) interactive(id ecs.EntityID) *components.InteractiveComponent {
	if !s.entityManager.IsAlive(id) {
		return nil
	}
	ic, ok := ecs.GetComponent[*components.InteractiveComponent](s.entityManager, id)
	if !ok {
		ic = &components.InteractiveComponent{}
		ecs.AddComponent(s.entityManager, id, ic)
	}
	return ic
}

// OnPointerMove 为节点注册指针移动回调，会覆盖之前的回调
func (s *Stage) OnPointerMove(id ecs.EntityID, fn PointerHandler) {
	if ic := s.interactive(id); ic != nil {
		ic.OnPointerMove = fn
	}
}

// OnClick 为节点注册点击回调，会覆盖之前的回调
func (s *Stage) OnClick(id ecs.EntityID, fn PointerHandler) {
	if ic := s.interactive(id); ic != nil {
		ic.OnClick = fn
	}
}

// Tick 调用所有帧回调，然后清理本帧销毁的节点
func (s *Stage) Tick(deltaFrames int) {
	for _, fn := range s.tickHandlers {
		fn(deltaFrames)
	}
	s.Flush()
}

// Flush 删除已销毁节点的组件
func (s *Stage) Flush() {
	s.entityManager.RemoveMarkedEntities()
}

// DispatchPointerMove 分发指针移动事件
//
// 与点击不同，移动事件不做命中测试：舞台上每个注册了移动回调的节点
// 都会收到事件，坐标换算到该节点的本地坐标系（可能为负或超出尺寸）。
// 是否越界由回调自行判断。
func (s *Stage) DispatchPointerMove(stageX, stageY float64) {
	for _, id := range s.Children() {
		ic, ok := ecs.GetComponent[*components.InteractiveComponent](s.entityManager, id)
		if !ok || ic.OnPointerMove == nil {
			continue
		}
		tr := s.Transform(id)
		if tr == nil {
			continue
		}
		lx, ly := tr.ToLocal(stageX, stageY)
		ic.OnPointerMove(PointerEvent{Target: id, LocalX: lx, LocalY: ly})
	}
	s.Flush()
}

// DispatchClick 分发点击事件
// 事件只交给包含该点、注册了点击回调的最上层节点
// 返回是否有节点处理了点击
func (s *Stage) DispatchClick(stageX, stageY float64) bool {
	children := s.Children()
	for i := len(children) - 1; i >= 0; i-- {
		id := children[i]
		ic, ok := ecs.GetComponent[*components.InteractiveComponent](s.entityManager, id)
		if !ok || ic.OnClick == nil {
			continue
		}
		tr := s.Transform(id)
		if tr == nil || !tr.Contains(stageX, stageY) {
			continue
		}
		lx, ly := tr.ToLocal(stageX, stageY)
		ic.OnClick(PointerEvent{Target: id, LocalX: lx, LocalY: ly})
		s.Flush()
		return true
	}
	return false
}

var _ Renderer = (*Stage)(nil)
