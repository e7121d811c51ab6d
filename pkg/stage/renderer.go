// Package stage 是游戏核心依赖的渲染门面
//
// 核心逻辑（子弹系统、飞机控制、暂停模块）只通过 Renderer 接口创建精灵、
// 增删舞台节点、注册帧回调和指针回调，不关心具体由哪个前端绘制。
// Stage 是基于 ECS 的内存实现，窗口前端和终端前端都绘制同一个 Stage。
package stage

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

import (
	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/ecs"
)

// PointerEvent 指针事件（本地坐标 + 目标实体）
type PointerEvent = components.PointerEvent

// PointerHandler 指针事件回调
type PointerHandler = components.PointerHandler

// TickHandler 帧回调，deltaFrames 为距上次回调经过的帧数
type TickHandler func(deltaFrames int)

// Renderer 渲染门面的能力集合
type Renderer interface {
	// CreateSprite 按图片引用创建精灵（尚未加入舞台）
	// 图片无法加载时返回 *game.AssetLoadError
	CreateSprite(imageRef string) (ecs.EntityID, error)
	// CreateText 创建文本节点（尚未加入舞台）
	CreateText(content string) ecs.EntityID
	// AddToStage 将节点加入舞台顶层；已在舞台上的节点会被移到最上层
	AddToStage(id ecs.EntityID)
	// RemoveFromStage 将节点移出舞台，节点本身保留
	RemoveFromStage(id ecs.EntityID)
	// Destroy 释放节点，同时移出舞台
	Destroy(id ecs.EntityID)
	// Transform 返回节点可变的位置/尺寸/锚点/透明度，节点不存在时返回 nil
	Transform(id ecs.EntityID) *components.TransformComponent
	// OnTick 注册帧回调
	OnTick(fn TickHandler)
	// OnPointerMove 为节点注册指针移动回调
	OnPointerMove(id ecs.EntityID, fn PointerHandler)
	// OnClick 为节点注册点击回调
	OnClick(id ecs.EntityID, fn PointerHandler)
}
