package game

import (
	"log"

	"github.com/google/uuid"
)

// SessionState 会话状态：运行 / 暂停
type SessionState int

const (
	// StateRunning 游戏运行中（初始状态）
	StateRunning SessionState = iota
	// StatePaused 游戏已暂停
	StatePaused
)

func (s SessionState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	}
	return "Unknown"
}

// Session 一局游戏的会话状态
//
// 只有一个暂停标志，同时控制子弹更新和指针移动。
// 状态只能通过用户显式操作切换，没有超时或终止状态。
// 会话不做持久化，进程退出即丢弃。
type Session struct {
	id    string
	state SessionState

	// 诊断计数，不参与游戏逻辑
	BulletsSpawned uint64
	BulletsRetired uint64
}

// NewSession 创建一个处于运行状态的新会话
func NewSession() *Session {
	s := &Session{
		id:    uuid.NewString(),
		state: StateRunning,
	}
	log.Printf("[Session] New session %s", s.id)
	return s
}

// ID 返回会话的唯一标识
func (s *Session) ID() string {
	return s.id
}

// State 返回当前状态
func (s *Session) State() SessionState {
	return s.state
}

// IsPaused 是否处于暂停状态
func (s *Session) IsPaused() bool {
	return s.state == StatePaused
}

// SetPaused 设置暂停标志
// 返回值表示状态是否真的发生了变化，重复设置为同一状态是空操作
func (s *Session) SetPaused(paused bool) bool {
	next := StateRunning
	if paused {
		next = StatePaused
	}
	if s.state == next {
		return false
	}
	s.state = next
	log.Printf("[Session] %s -> %s", s.id, next)
	return true
}

// Pause 切换到暂停状态
func (s *Session) Pause() bool {
	return s.SetPaused(true)
}

// Resume 切换到运行状态
func (s *Session) Resume() bool {
	return s.SetPaused(false)
}

// ActiveBullets 当前仍在屏幕上的子弹数量（生成数 - 回收数）
func (s *Session) ActiveBullets() uint64 {
	return s.BulletsSpawned - s.BulletsRetired
}
