package components

import "github.com/decker502/planewar/pkg/ecs"

// PointerEvent 是交互回调收到的结构化事件
// 只携带核心逻辑需要的数据：目标实体和本地坐标
type PointerEvent struct {
	Target ecs.EntityID
	LocalX float64
	LocalY float64
}

// PointerHandler 指针事件回调
type PointerHandler func(ev PointerEvent)

// InteractiveComponent 存储实体注册的指针回调
// 两个回调都可以为 nil
type InteractiveComponent struct {
	OnPointerMove PointerHandler
	OnClick       PointerHandler
}
