package terminal

import (
	"image/color"
	"log"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/ecs"
	"github.com/decker502/planewar/pkg/stage"
)

// compose 把舞台节点自底向上画到格子缓冲区
func compose(canvas *Canvas, st *stage.Stage, colors *colorCache) {
	canvas.Clear(color.RGBA{A: 255})

	em := st.EntityManager()
	for _, id := range st.Children() {
		tr := st.Transform(id)
		if tr == nil || tr.Alpha <= 0 {
			continue
		}

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			col, err := colors.color(sprite.ImageRef)
			if err != nil {
				log.Printf("[Terminal] Warning: %v", err)
				continue
			}
			left, top, w, h := tr.Bounds()
			canvas.FillRect(left, top, w, h, col, tr.Alpha)
			continue
		}

		if label, ok := ecs.GetComponent[*components.TextComponent](em, id); ok {
			left, top, w, h := tr.Bounds()
			c := label.Color
			canvas.DrawText(left+w/2, top+h/2, label.Content, color.RGBA{R: c[0], G: c[1], B: c[2], A: 255})
		}
	}
}
