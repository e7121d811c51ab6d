package terminal

import (
	"fmt"
	"image"
	"image/color"

	"github.com/decker502/planewar/pkg/stage"
)

// averageColor 计算图片的平均颜色（按 alpha 加权）
// 全透明图片返回黑色
func averageColor(img image.Image) color.RGBA {
	b := img.Bounds()
	var r, g, bl, a uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// RGBA() 返回预乘 alpha 的 16 位分量
			pr, pg, pb, pa := img.At(x, y).RGBA()
			r += uint64(pr)
			g += uint64(pg)
			bl += uint64(pb)
			a += uint64(pa)
		}
	}
	if a == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{
		R: uint8(r * 255 / a),
		G: uint8(g * 255 / a),
		B: uint8(bl * 255 / a),
		A: 255,
	}
}

// colorCache 按图片引用缓存平均色
type colorCache struct {
	load   func(ref string) (image.Image, error)
	colors map[string]color.RGBA
}

func newColorCache(load func(ref string) (image.Image, error)) *colorCache {
	return &colorCache{load: load, colors: make(map[string]color.RGBA)}
}

func (c *colorCache) color(ref string) (color.RGBA, error) {
	if col, ok := c.colors[ref]; ok {
		return col, nil
	}
	img, err := c.load(ref)
	if err != nil {
		return color.RGBA{}, err
	}
	col := averageColor(img)
	c.colors[ref] = col
	return col, nil
}

// warm 预先计算舞台上所有精灵（含暂停时才显示的节点）的平均色
func (c *colorCache) warm(st *stage.Stage) error {
	for _, id := range st.Sprites() {
		if _, err := c.color(st.SpriteImage(id)); err != nil {
			return fmt.Errorf("sprite %d: %w", id, err)
		}
	}
	return nil
}
