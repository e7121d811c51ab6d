// Package terminal 是基于 tcell 的终端前端
//
// 每个终端格子对应一块逻辑画布区域（screenW/cols × screenH/rows）。
// 精灵按图片平均色填充其覆盖的格子，文本直接写入字符。
// 核心逻辑与窗口前端完全相同，都通过 stage.Stage 驱动。
package terminal

import (
	"image/color"
	"math"
)

// Cell 一个终端格子的内容
type Cell struct {
	Bg   color.RGBA
	Fg   color.RGBA
	Rune rune // 0 表示空白
}

// Canvas 格子缓冲区，负责逻辑坐标与格子坐标的换算
type Canvas struct {
	cols, rows int
	logicalW   float64
	logicalH   float64
	cells      []Cell
}

// NewCanvas 创建 cols×rows 的缓冲区，映射到 logicalW×logicalH 的逻辑画布
func NewCanvas(cols, rows, logicalW, logicalH int) *Canvas {
	c := &Canvas{logicalW: float64(logicalW), logicalH: float64(logicalH)}
	c.Resize(cols, rows)
	return c
}

// Resize 调整格子数，内容被清空
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]Cell, cols*rows)
}

// Size 返回格子数
func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows
}

// cellSize 单个格子的逻辑尺寸
func (c *Canvas) cellSize() (float64, float64) {
	return c.logicalW / float64(c.cols), c.logicalH / float64(c.rows)
}

// CellToLogical 返回格子中心的逻辑坐标
func (c *Canvas) CellToLogical(cx, cy int) (float64, float64) {
	cw, ch := c.cellSize()
	return (float64(cx) + 0.5) * cw, (float64(cy) + 0.5) * ch
}

// LogicalToCell 返回逻辑坐标所在的格子（可能越界）
func (c *Canvas) LogicalToCell(x, y float64) (int, int) {
	cw, ch := c.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// Clear 用指定颜色填充全部格子
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.cells {
		c.cells[i] = Cell{Bg: bg}
	}
}

// At 返回格子内容，越界返回零值
func (c *Canvas) At(cx, cy int) Cell {
	if !c.inside(cx, cy) {
		return Cell{}
	}
	return c.cells[cy*c.cols+cx]
}

func (c *Canvas) inside(cx, cy int) bool {
	return cx >= 0 && cx < c.cols && cy >= 0 && cy < c.rows
}

// span 返回中心落在 [start, start+length] 内的格子下标范围
// 区间太小、覆盖不到任何格子中心时，退化为区间中点所在的格子
func span(start, length, cellLen float64, limit int) (int, int) {
	lo := int(math.Ceil(start/cellLen - 0.5))
	hi := int(math.Floor((start+length)/cellLen - 0.5))
	if lo > hi {
		mid := int(math.Floor((start + length/2) / cellLen))
		lo, hi = mid, mid
	}
	if lo < 0 {
		lo = 0
	}
	if hi > limit-1 {
		hi = limit - 1
	}
	return lo, hi
}

// FillRect 以 alpha 混合填充逻辑矩形覆盖的格子，清除其中的字符
func (c *Canvas) FillRect(left, top, width, height float64, col color.RGBA, alpha float64) {
	if width <= 0 || height <= 0 || alpha <= 0 {
		return
	}
	cw, ch := c.cellSize()
	c0, c1 := span(left, width, cw, c.cols)
	r0, r1 := span(top, height, ch, c.rows)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			cell := &c.cells[y*c.cols+x]
			cell.Bg = blend(cell.Bg, col, alpha)
			cell.Rune = 0
		}
	}
}

// DrawText 在 (centerX, centerY) 所在行水平居中写入文本，背景保持不变
func (c *Canvas) DrawText(centerX, centerY float64, s string, fg color.RGBA) {
	runes := []rune(s)
	cx, cy := c.LogicalToCell(centerX, centerY)
	if cy < 0 || cy >= c.rows {
		return
	}
	start := cx - len(runes)/2
	for i, r := range runes {
		x := start + i
		if !c.inside(x, cy) {
			continue
		}
		cell := &c.cells[cy*c.cols+x]
		cell.Rune = r
		cell.Fg = fg
	}
}

// blend 把 src 以 alpha 叠加到 dst 上
func blend(dst, src color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return color.RGBA{R: src.R, G: src.G, B: src.B, A: 255}
	}
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*alpha + float64(d)*(1-alpha)))
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}
