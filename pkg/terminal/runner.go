package terminal

import (
	"context"
	"image/color"
	"log"
	"time"

	"github.com/decker502/planewar/pkg/config"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/scenes"
	"github.com/decker502/planewar/pkg/stage"
	"github.com/gdamore/tcell/v2"
)

// FrameInterval 终端前端的帧间隔（约 60 TPS）
const FrameInterval = time.Second / 60

// Runner 终端游戏循环
//
// 只有 Run 所在的 goroutine 会访问舞台；tcell 事件在单独的 goroutine 中读取，
// 通过 channel 交给游戏循环。
type Runner struct {
	screen tcell.Screen
	stage  *stage.Stage
	scene  *scenes.BattleScene
	audio  *game.AudioManager

	canvas *Canvas
	colors *colorCache

	// 鼠标状态：只在位置变化时分发移动，在按下沿分发点击
	mouseX, mouseY int
	mouseKnown     bool
	buttonDown     bool
}

// NewRunner 加载资源并创建战斗场景
// screen 必须已经 Init
func NewRunner(screen tcell.Screen, cfg *config.GameConfig, rm *game.ResourceManager, audio *game.AudioManager) (*Runner, error) {
	st, scene, err := scenes.LoadBattle(cfg, rm, scenes.BattleHooks{
		OnShot:   func() { audio.PlaySound(game.SoundShot) },
		OnPause:  func() { audio.PlaySound(game.SoundPause) },
		OnResume: func() { audio.PlaySound(game.SoundResume) },
	})
	if err != nil {
		return nil, err
	}

	colors := newColorCache(rm.LoadImage)
	if err := colors.warm(st); err != nil {
		return nil, err
	}

	cols, rows := screen.Size()
	return &Runner{
		screen: screen,
		stage:  st,
		scene:  scene,
		audio:  audio,
		canvas: NewCanvas(cols, rows, cfg.Screen.Width, cfg.Screen.Height),
		colors: colors,
	}, nil
}

// Run 运行游戏循环，直到 ctx 结束、按下退出键或帧回调出错
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[Terminal] Context done: %v", ctx.Err())
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !r.HandleEvent(ev) {
				log.Printf("[Terminal] Quit requested")
				return nil
			}

		case <-ticker.C:
			if err := r.Step(); err != nil {
				return err
			}
		}
	}
}

// Step 推进一帧并重绘
func (r *Runner) Step() error {
	r.stage.Tick(1)
	if err := r.scene.Err(); err != nil {
		return err
	}
	r.draw()
	return nil
}

// HandleEvent 处理一个 tcell 事件，返回 false 表示退出
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)

	case *tcell.EventMouse:
		r.handleMouse(ev)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		r.canvas.Resize(cols, rows)
		r.screen.Sync()
		log.Printf("[Terminal] Resized to %dx%d cells", cols, rows)
	}
	return true
}

func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'p', 'P', ' ':
			r.scene.TogglePause()
		case 'm', 'M':
			r.audio.ToggleMute()
		}
	}
	return true
}

func (r *Runner) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := r.canvas.CellToLogical(cx, cy)

	if !r.mouseKnown || cx != r.mouseX || cy != r.mouseY {
		r.mouseX, r.mouseY, r.mouseKnown = cx, cy, true
		r.stage.DispatchPointerMove(x, y)
	}

	down := ev.Buttons()&tcell.Button1 != 0
	if down && !r.buttonDown {
		r.stage.DispatchClick(x, y)
	}
	r.buttonDown = down
}

// draw 把格子缓冲区写到屏幕
func (r *Runner) draw() {
	compose(r.canvas, r.stage, r.colors)

	cols, rows := r.canvas.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := r.canvas.At(x, y)
			style := tcell.StyleDefault.Background(toTcell(cell.Bg))
			ch := ' '
			if cell.Rune != 0 {
				ch = cell.Rune
				style = style.Foreground(toTcell(cell.Fg)).Bold(true)
			}
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
	r.screen.Show()
}

// Scene 返回战斗场景
func (r *Runner) Scene() *scenes.BattleScene {
	return r.scene
}

// Canvas 返回格子缓冲区
func (r *Runner) Canvas() *Canvas {
	return r.canvas
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
