package systems

import (
	"log"

	"github.com/decker502/planewar/pkg/ecs"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/stage"
)

// PlaneControlSystem 指针拖动飞机
//
// 指针在背景上移动时，把本地坐标直接作为飞机位置。
// 超出背景范围的坐标被忽略（不夹紧），暂停期间不响应。
type PlaneControlSystem struct {
	renderer   stage.Renderer
	session    *game.Session
	background ecs.EntityID
	plane      ecs.EntityID
}

// NewPlaneControlSystem 创建飞机控制系统并在背景上注册指针移动回调
func NewPlaneControlSystem(r stage.Renderer, session *game.Session, background, plane ecs.EntityID) *PlaneControlSystem {
	s := &PlaneControlSystem{
		renderer:   r,
		session:    session,
		background: background,
		plane:      plane,
	}
	r.OnPointerMove(background, s.HandlePointerMove)
	log.Printf("[PlaneControlSystem] Listening for pointer moves on entity %d", background)
	return s
}

// HandlePointerMove 处理背景上的指针移动事件
func (s *PlaneControlSystem) HandlePointerMove(ev stage.PointerEvent) {
	if s.session.IsPaused() {
		return
	}

	bg := s.renderer.Transform(s.background)
	plane := s.renderer.Transform(s.plane)
	if bg == nil || plane == nil {
		return
	}

	if ev.LocalX < 0 || ev.LocalX > bg.Width || ev.LocalY < 0 || ev.LocalY > bg.Height {
		return
	}
	plane.SetPosition(ev.LocalX, ev.LocalY)
}
