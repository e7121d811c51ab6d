// Package utils 提供窗口前端的输入工具
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSample 某一帧的指针采样
type PointerSample struct {
	X, Y    int
	Pressed bool // 鼠标左键按下或有活动触摸
	Touch   bool // 采样来自触摸
}

// SamplePointer 获取当前帧的指针状态
// 同时支持鼠标和触摸输入，优先检测触摸
func SamplePointer() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{X: x, Y: y, Pressed: true, Touch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		X:       x,
		Y:       y,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// PointerUpdate 指针跟踪器单帧输出
type PointerUpdate struct {
	X, Y        int
	Moved       bool // 位置与上一帧不同
	JustPressed bool // 本帧刚按下，视为一次点击
}

// PointerTracker 把逐帧采样转换为移动/点击事件
//
// 触摸松开后 ebiten 不再报告位置，此时沿用最后一次的触摸位置，
// 避免飞机跳回鼠标光标所在处。
type PointerTracker struct {
	last    PointerSample
	hasLast bool
}

// Update 输入本帧采样，返回需要分发的事件
func (pt *PointerTracker) Update(s PointerSample) PointerUpdate {
	if !s.Pressed && pt.hasLast && pt.last.Touch {
		// 触摸刚结束：保持位置，只更新按下状态
		s.X, s.Y, s.Touch = pt.last.X, pt.last.Y, true
	}

	out := PointerUpdate{X: s.X, Y: s.Y}
	if !pt.hasLast {
		// 第一次采样只记录位置：窗口刚打开时光标位置未必有意义
		out.Moved = s.Touch
		out.JustPressed = s.Pressed
	} else {
		out.Moved = s.X != pt.last.X || s.Y != pt.last.Y
		out.JustPressed = s.Pressed && !pt.last.Pressed
	}

	pt.last = s
	pt.hasLast = true
	return out
}

// Reset 清除跟踪状态
func (pt *PointerTracker) Reset() {
	pt.last = PointerSample{}
	pt.hasLast = false
}
