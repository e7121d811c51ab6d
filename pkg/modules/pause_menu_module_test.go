package modules

import (
	"testing"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/ecs"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/stage"
	"github.com/decker502/planewar/pkg/stage/mocks"
	"go.uber.org/mock/gomock"
)

type sizes map[string][2]int

func (s sizes) ImageSize(ref string) (int, int, error) {
	size, ok := s[ref]
	if !ok {
		return 0, 0, game.ErrUnknownResource
	}
	return size[0], size[1], nil
}

type pauseFixture struct {
	stage   *stage.Stage
	session *game.Session
	module  *PauseMenuModule
	nodes   components.PauseMenuComponent
	bg      ecs.EntityID
}

// newPauseFixture 按默认布局搭建舞台：背景、暂停按钮（右下角）
// 遮罩铺满屏幕，继续按钮居中
func newPauseFixture(t *testing.T) *pauseFixture {
	t.Helper()
	st := stage.New(ecs.NewEntityManager(), sizes{
		"IMAGE_BACKGROUND": {512, 768},
		"IMAGE_PAUSE":      {50, 51},
		"IMAGE_RESUME":     {172, 51},
		"IMAGE_OVERLAY":    {64, 64},
	}, 512, 768)

	mustSprite := func(ref string) ecs.EntityID {
		id, err := st.CreateSprite(ref)
		if err != nil {
			t.Fatalf("CreateSprite(%s): %v", ref, err)
		}
		return id
	}

	bg := mustSprite("IMAGE_BACKGROUND")
	nodes := components.PauseMenuComponent{
		PauseButton:  mustSprite("IMAGE_PAUSE"),
		ResumeButton: mustSprite("IMAGE_RESUME"),
		Overlay:      mustSprite("IMAGE_OVERLAY"),
		Label:        st.CreateText("PAUSED"),
	}

	pause := st.Transform(nodes.PauseButton)
	pause.SetAnchor(1, 1)
	pause.SetPosition(512, 768)

	resume := st.Transform(nodes.ResumeButton)
	resume.SetAnchor(0.5, 0.5)
	resume.SetPosition(256, 384)

	overlay := st.Transform(nodes.Overlay)
	overlay.Width, overlay.Height = 512, 768
	overlay.Alpha = 0.8

	st.AddToStage(bg)
	st.AddToStage(nodes.PauseButton)

	session := game.NewSession()
	module := NewPauseMenuModule(st, session, nodes, PauseMenuCallbacks{})
	return &pauseFixture{stage: st, session: session, module: module, nodes: nodes, bg: bg}
}

// TestPauseMenuModule_ClickPauseThenResume 点击暂停再点击继续，回到暂停前的状态
func TestPauseMenuModule_ClickPauseThenResume(t *testing.T) {
	f := newPauseFixture(t)
	before := f.stage.Children()

	// 点击暂停按钮（右下角 50x51 区域内）
	if !f.stage.DispatchClick(500, 750) {
		t.Fatal("pause button should handle the click")
	}

	if !f.session.IsPaused() || !f.module.IsActive() {
		t.Fatal("expected paused after clicking pause button")
	}
	want := append(append([]ecs.EntityID{}, before...), f.nodes.Overlay, f.nodes.Label, f.nodes.ResumeButton)
	assertStage(t, f.stage, want)

	// 点击继续按钮（屏幕中央）
	if !f.stage.DispatchClick(256, 384) {
		t.Fatal("resume button should handle the click")
	}

	if f.session.IsPaused() || f.module.IsActive() {
		t.Fatal("expected running after clicking resume button")
	}
	assertStage(t, f.stage, before)
}

// TestPauseMenuModule_OverlaySwallowsClicks 暂停期间点击暂停按钮位置不会重复暂停
func TestPauseMenuModule_OverlaySwallowsClicks(t *testing.T) {
	f := newPauseFixture(t)
	f.module.Show()
	staged := f.stage.Children()

	pauseClicked := false
	f.stage.OnClick(f.nodes.PauseButton, func(stage.PointerEvent) { pauseClicked = true })

	if !f.stage.DispatchClick(500, 750) {
		t.Error("overlay should consume the click")
	}
	if pauseClicked {
		t.Error("click reached the pause button through the overlay")
	}
	if !f.session.IsPaused() {
		t.Error("session should remain paused")
	}
	assertStage(t, f.stage, staged)
}

// TestPauseMenuModule_RedundantTransitions 重复暂停/恢复是空操作
func TestPauseMenuModule_RedundantTransitions(t *testing.T) {
	f := newPauseFixture(t)

	pauses, resumes := 0, 0
	f.module.onPause = func() { pauses++ }
	f.module.onResume = func() { resumes++ }

	f.module.Hide() // 未暂停时恢复
	if resumes != 0 {
		t.Error("Hide while running should not fire OnResume")
	}

	f.module.Show()
	staged := f.stage.Children()
	f.module.Show()
	assertStage(t, f.stage, staged)

	f.module.Hide()
	f.module.Hide()

	if pauses != 1 || resumes != 1 {
		t.Errorf("pauses=%d resumes=%d, want 1 and 1", pauses, resumes)
	}
}

// TestPauseMenuModule_Toggle 测试键盘切换
func TestPauseMenuModule_Toggle(t *testing.T) {
	f := newPauseFixture(t)

	f.module.Toggle()
	if !f.module.IsActive() {
		t.Error("Toggle from running should pause")
	}
	f.module.Toggle()
	if f.module.IsActive() {
		t.Error("Toggle from paused should resume")
	}
}

// TestPauseMenuModule_WithoutLabel 未配置提示文本时只添加遮罩和继续按钮
func TestPauseMenuModule_WithoutLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	nodes := components.PauseMenuComponent{
		PauseButton:  1,
		ResumeButton: 2,
		Overlay:      3,
		Label:        ecs.InvalidEntity,
	}

	r.EXPECT().OnClick(nodes.PauseButton, gomock.Any())
	r.EXPECT().OnClick(nodes.ResumeButton, gomock.Any())
	r.EXPECT().OnClick(nodes.Overlay, gomock.Any())
	gomock.InOrder(
		r.EXPECT().AddToStage(nodes.Overlay),
		r.EXPECT().AddToStage(nodes.ResumeButton),
		r.EXPECT().RemoveFromStage(nodes.ResumeButton),
		r.EXPECT().RemoveFromStage(nodes.Overlay),
	)

	m := NewPauseMenuModule(r, game.NewSession(), nodes, PauseMenuCallbacks{})
	m.Show()
	m.Hide()
}

func assertStage(t *testing.T, st *stage.Stage, want []ecs.EntityID) {
	t.Helper()
	got := st.Children()
	if len(got) != len(want) {
		t.Fatalf("stage children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stage children = %v, want %v", got, want)
		}
	}
}
