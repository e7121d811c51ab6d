package modules

import (
	"log"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/ecs"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/stage"
)

// PauseMenuModule 暂停遮罩模块
// 封装所有与暂停相关的交互：
//   - 右下角暂停按钮：点击后暂停，显示遮罩、提示文本和继续按钮
//   - 屏幕中央继续按钮：点击后移除遮罩并恢复
//   - 遮罩本身吞掉点击，暂停期间下层节点收不到点击
//
// 暂停标志只保存在 Session 中，模块只负责舞台节点的显示和隐藏。
type PauseMenuModule struct {
	renderer stage.Renderer
	session  *game.Session

	menu components.PauseMenuComponent

	onPause  func() // 暂停后回调（可选）
	onResume func() // 恢复后回调（可选）
}

// PauseMenuCallbacks 暂停菜单回调函数集合
type PauseMenuCallbacks struct {
	OnPause  func()
	OnResume func()
}

// NewPauseMenuModule 创建暂停模块并注册点击回调
//
// 参数:
//   - r: 渲染门面
//   - session: 会话（暂停标志的唯一来源）
//   - nodes: 暂停按钮、继续按钮、遮罩和提示文本的实体（Label 可为 InvalidEntity）
//   - callbacks: 状态变化回调
//
// 注意：
//   - 暂停按钮由调用方加入舞台，遮罩、文本、继续按钮在暂停时才加入
func NewPauseMenuModule(r stage.Renderer, session *game.Session, nodes components.PauseMenuComponent, callbacks PauseMenuCallbacks) *PauseMenuModule {
	m := &PauseMenuModule{
		renderer: r,
		session:  session,
		menu:     nodes,
		onPause:  callbacks.OnPause,
		onResume: callbacks.OnResume,
	}
	m.menu.IsActive = session.IsPaused()

	r.OnClick(nodes.PauseButton, func(stage.PointerEvent) {
		log.Printf("[PauseMenuModule] Pause button clicked")
		m.Show()
	})
	r.OnClick(nodes.ResumeButton, func(stage.PointerEvent) {
		log.Printf("[PauseMenuModule] Resume button clicked")
		m.Hide()
	})
	// 遮罩是模态的：注册空回调以吞掉落在遮罩上的点击
	r.OnClick(nodes.Overlay, func(stage.PointerEvent) {})

	return m
}

// Show 暂停并显示遮罩
// 已暂停时为空操作，不会重复添加节点
func (m *PauseMenuModule) Show() {
	if !m.session.Pause() {
		return
	}

	// 叠放顺序：遮罩 < 文本 < 继续按钮
	m.renderer.AddToStage(m.menu.Overlay)
	if m.menu.Label != ecs.InvalidEntity {
		m.renderer.AddToStage(m.menu.Label)
	}
	m.renderer.AddToStage(m.menu.ResumeButton)
	m.menu.IsActive = true

	if m.onPause != nil {
		m.onPause()
	}
}

// Hide 移除遮罩并恢复
// 未暂停时为空操作
func (m *PauseMenuModule) Hide() {
	if !m.session.Resume() {
		return
	}

	m.renderer.RemoveFromStage(m.menu.ResumeButton)
	if m.menu.Label != ecs.InvalidEntity {
		m.renderer.RemoveFromStage(m.menu.Label)
	}
	m.renderer.RemoveFromStage(m.menu.Overlay)
	m.menu.IsActive = false

	if m.onResume != nil {
		m.onResume()
	}
}

// Toggle 切换暂停状态（键盘快捷键使用）
func (m *PauseMenuModule) Toggle() {
	if m.session.IsPaused() {
		m.Hide()
	} else {
		m.Show()
	}
}

// IsActive 暂停遮罩是否正在显示
func (m *PauseMenuModule) IsActive() bool {
	return m.menu.IsActive
}

// Nodes 返回模块管理的实体
func (m *PauseMenuModule) Nodes() components.PauseMenuComponent {
	return m.menu
}
