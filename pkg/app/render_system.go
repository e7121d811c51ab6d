package app

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/planewar/pkg/components"
	"github.com/decker502/planewar/pkg/ecs"
	"github.com/decker502/planewar/pkg/game"
	"github.com/decker502/planewar/pkg/stage"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// RenderSystem 用 Ebitengine 绘制舞台
//
// 按 stage.Children() 的顺序自底向上绘制：
//   - 精灵：图片缩放到 TransformComponent 的宽高，按锚点定位，应用透明度
//   - 文本：使用 Go Regular 字体，字号等于节点高度，在节点范围内水平居中
//
// image.Image 到 *ebiten.Image 的转换结果按图片引用缓存。
type RenderSystem struct {
	stage     *stage.Stage
	resources *game.ResourceManager
	textures  map[string]*ebiten.Image
	fontSrc   *text.GoTextFaceSource
	fonts     map[float64]*text.GoTextFace
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(st *stage.Stage, rm *game.ResourceManager) (*RenderSystem, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	s := &RenderSystem{
		stage:     st,
		resources: rm,
		textures:  make(map[string]*ebiten.Image),
		fontSrc:   src,
		fonts:     make(map[float64]*text.GoTextFace),
	}

	// 暂停时才显示的遮罩和继续按钮也在这里上传，避免第一次暂停卡顿
	for _, id := range st.Sprites() {
		ref := st.SpriteImage(id)
		if s.texture(ref) == nil {
			return nil, fmt.Errorf("failed to create texture for %s", ref)
		}
	}
	log.Printf("[RenderSystem] Warmed %d textures", len(s.textures))
	return s, nil
}

// Draw 绘制所有舞台节点
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	em := s.stage.EntityManager()
	for _, id := range s.stage.Children() {
		tr := s.stage.Transform(id)
		if tr == nil || tr.Alpha <= 0 {
			continue
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			s.drawSprite(screen, sprite, tr)
			continue
		}
		if label, ok := ecs.GetComponent[*components.TextComponent](em, id); ok {
			s.drawText(screen, label, tr)
		}
	}
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, sprite *components.SpriteComponent, tr *components.TransformComponent) {
	tex := s.texture(sprite.ImageRef)
	if tex == nil {
		return
	}

	bounds := tex.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	left, top, w, h := tr.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleAlpha(float32(tr.Alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)
}

func (s *RenderSystem) drawText(screen *ebiten.Image, label *components.TextComponent, tr *components.TransformComponent) {
	face := s.face(tr.Height)
	width, _ := text.Measure(label.Content, face, 0)

	left, top, w, _ := tr.Bounds()
	op := &text.DrawOptions{}
	op.GeoM.Translate(left+(w-width)/2, top)
	c := label.Color
	op.ColorScale.ScaleWithColor(color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]})
	op.ColorScale.ScaleAlpha(float32(tr.Alpha))
	text.Draw(screen, label.Content, face, op)
}

// texture 获取（或创建）图片对应的 GPU 纹理
func (s *RenderSystem) texture(ref string) *ebiten.Image {
	if tex, ok := s.textures[ref]; ok {
		return tex
	}
	// 资源组在启动时已解码，通常直接命中缓存
	img := s.resources.GetImage(ref)
	if img == nil {
		var err error
		if img, err = s.resources.LoadImage(ref); err != nil {
			log.Printf("[RenderSystem] Warning: %v", err)
			s.textures[ref] = nil
			return nil
		}
	}
	tex := ebiten.NewImageFromImage(img)
	s.textures[ref] = tex
	return tex
}

func (s *RenderSystem) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = stage.TextGlyphHeight
	}
	if f, ok := s.fonts[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.fontSrc, Size: size}
	s.fonts[size] = f
	return f
}
