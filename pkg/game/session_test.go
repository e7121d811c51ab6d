package game

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewSessionStartsRunning(t *testing.T) {
	s := NewSession()

	if s.IsPaused() {
		t.Error("new session should be running")
	}
	if s.State() != StateRunning {
		t.Errorf("State() = %v, want Running", s.State())
	}
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Errorf("session id %q is not a uuid: %v", s.ID(), err)
	}
	if NewSession().ID() == s.ID() {
		t.Error("session ids should be unique")
	}
}

func TestSessionTransitions(t *testing.T) {
	s := NewSession()

	tests := []struct {
		name        string
		action      func() bool
		wantChanged bool
		wantState   SessionState
	}{
		{"pause", s.Pause, true, StatePaused},
		{"pause again is no-op", s.Pause, false, StatePaused},
		{"resume", s.Resume, true, StateRunning},
		{"resume again is no-op", s.Resume, false, StateRunning},
		{"set paused", func() bool { return s.SetPaused(true) }, true, StatePaused},
	}

	for _, tt := range tests {
		changed := tt.action()
		if changed != tt.wantChanged {
			t.Errorf("%s: changed = %v, want %v", tt.name, changed, tt.wantChanged)
		}
		if s.State() != tt.wantState {
			t.Errorf("%s: state = %v, want %v", tt.name, s.State(), tt.wantState)
		}
	}
}

func TestSessionStateString(t *testing.T) {
	if StateRunning.String() != "Running" || StatePaused.String() != "Paused" {
		t.Errorf("unexpected state names: %s, %s", StateRunning, StatePaused)
	}
	if SessionState(7).String() != "Unknown" {
		t.Error("unknown state should stringify as Unknown")
	}
}

func TestActiveBullets(t *testing.T) {
	s := &Session{BulletsSpawned: 5, BulletsRetired: 2}
	if s.ActiveBullets() != 3 {
		t.Errorf("ActiveBullets() = %d, want 3", s.ActiveBullets())
	}
}
