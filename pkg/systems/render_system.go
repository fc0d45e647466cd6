package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/flowercatch/pkg/components"
	"github.com/gonewx/flowercatch/pkg/ecs"
)

// ebitenutil.DebugPrint 的字形尺寸
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// labelCacheLimit 标签纹理缓存上限，超过后整体清空
const labelCacheLimit = 64

var (
	// BackgroundColor 场景背景（灰色）
	BackgroundColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	vaseBodyColor   = color.RGBA{R: 176, G: 96, B: 48, A: 255}
	vaseRimColor    = color.RGBA{R: 120, G: 60, B: 28, A: 255}
	petalColor      = color.RGBA{R: 240, G: 110, B: 160, A: 255}
	flowerCoreColor = color.RGBA{R: 250, G: 210, B: 60, A: 255}

	dialogMaskColor   = color.RGBA{A: 128}
	dialogPanelColor  = color.RGBA{R: 40, G: 40, B: 48, A: 235}
	dialogBorderColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	buttonColor       = color.RGBA{R: 70, G: 130, B: 80, A: 255}
	buttonPressed     = color.RGBA{R: 50, G: 95, B: 60, A: 255}
	buttonDisabled    = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// RenderSystem 绘制游戏世界与界面
//
// 渲染顺序（从底到顶）：背景 → 花瓶 → 花朵 → 文字标签 → 对话框及按钮
// 没有图片资源，全部使用矢量图形与调试字体绘制。
type RenderSystem struct {
	em         *ecs.EntityManager
	labelCache map[string]*ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		em:         em,
		labelCache: make(map[string]*ebiten.Image),
	}
}

// Draw 绘制整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)
	s.DrawWorld(screen)
	s.DrawLabels(screen)
	s.DrawDialogs(screen)
}

// DrawWorld 绘制花瓶与花朵
func (s *RenderSystem) DrawWorld(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith3[*components.VaseComponent, *components.PositionComponent, *components.SizeComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		size, _ := ecs.GetComponent[*components.SizeComponent](s.em, id)
		drawVase(screen, pos.X, pos.Y, size.Width, size.Height)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.FlowerComponent, *components.PositionComponent, *components.SizeComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		size, _ := ecs.GetComponent[*components.SizeComponent](s.em, id)
		drawFlower(screen, pos.X, pos.Y, size.Width/2)
	}
}

// drawVase 以 (cx, cy) 为中心绘制花瓶：瓶身 + 瓶口
func drawVase(screen *ebiten.Image, cx, cy, w, h float64) {
	left := float32(cx - w/2)
	top := float32(cy - h/2)
	rimH := float32(h * 0.15)

	// 瓶身略窄于碰撞盒
	inset := float32(w * 0.1)
	vector.DrawFilledRect(screen, left+inset, top+rimH, float32(w)-inset*2, float32(h)-rimH, vaseBodyColor, true)
	vector.DrawFilledRect(screen, left, top, float32(w), rimH, vaseRimColor, true)
}

// drawFlower 以 (cx, cy) 为中心绘制五瓣花
func drawFlower(screen *ebiten.Image, cx, cy, radius float64) {
	petalR := float32(radius * 0.45)
	dist := radius - float64(petalR)
	for i := 0; i < 5; i++ {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		px := float32(cx + math.Cos(angle)*dist)
		py := float32(cy + math.Sin(angle)*dist)
		vector.DrawFilledCircle(screen, px, py, petalR, petalColor, true)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius*0.35), flowerCoreColor, true)
}

// DrawLabels 绘制所有可见的文字标签
func (s *RenderSystem) DrawLabels(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.em) {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.em, id)
		if !label.Visible || label.Text == "" {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		s.drawText(screen, label.Text, pos.X, pos.Y, label.Align, label.Scale, label.Color)
	}
}

// DrawDialogs 绘制可见的对话框与其按钮
func (s *RenderSystem) DrawDialogs(screen *ebiten.Image) {
	bounds := screen.Bounds()

	for _, id := range ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.em) {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.em, id)
		if !dialog.IsVisible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		// 半透明遮罩
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), dialogMaskColor, false)

		left := float32(pos.X - dialog.Width/2)
		top := float32(pos.Y - dialog.Height/2)
		vector.DrawFilledRect(screen, left, top, float32(dialog.Width), float32(dialog.Height), dialogPanelColor, true)
		vector.StrokeRect(screen, left, top, float32(dialog.Width), float32(dialog.Height), 2, dialogBorderColor, true)

		y := float64(top) + 20
		s.drawText(screen, dialog.Title, pos.X, y, components.AlignCenter, 3, color.White)
		y += debugGlyphHeight*3 + 12
		for _, line := range dialog.Lines {
			s.drawText(screen, line, pos.X, y, components.AlignCenter, 2, color.White)
			y += debugGlyphHeight*2 + 4
		}

		for _, child := range dialog.ChildEntities {
			s.drawButton(screen, child)
		}
	}
}

// drawButton 绘制对话框按钮
func (s *RenderSystem) drawButton(screen *ebiten.Image, id ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.DialogButtonComponent](s.em, id)
	if !ok {
		return
	}
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](s.em, id)
	click, ok2 := ecs.GetComponent[*components.ClickableComponent](s.em, id)
	if !ok1 || !ok2 {
		return
	}

	fill := buttonColor
	if ui, ok := ecs.GetComponent[*components.UIComponent](s.em, id); ok {
		switch ui.State {
		case components.UIClicked:
			fill = buttonPressed
		case components.UIDisabled:
			fill = buttonDisabled
		}
	}

	left := float32(pos.X - click.Width/2)
	top := float32(pos.Y - click.Height/2)
	vector.DrawFilledRect(screen, left, top, float32(click.Width), float32(click.Height), fill, true)
	vector.StrokeRect(screen, left, top, float32(click.Width), float32(click.Height), 2, dialogBorderColor, true)

	textY := pos.Y - debugGlyphHeight
	s.drawText(screen, button.Label, pos.X, textY, components.AlignCenter, 2, color.White)
}

// drawText 用调试字体绘制一行文字，支持对齐、缩放与着色
// (x, y) 为对齐锚点与文字顶边
func (s *RenderSystem) drawText(screen *ebiten.Image, str string, x, y float64, align components.LabelAlign, scale float64, clr color.Color) {
	if str == "" {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	img := s.labelImage(str)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(alignedX(str, x, align, scale), y)
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	screen.DrawImage(img, op)
}

// labelImage 返回文字的白色纹理（缓存）
func (s *RenderSystem) labelImage(str string) *ebiten.Image {
	if img, ok := s.labelCache[str]; ok {
		return img
	}
	if len(s.labelCache) >= labelCacheLimit {
		for key, img := range s.labelCache {
			img.Deallocate()
			delete(s.labelCache, key)
		}
	}

	img := ebiten.NewImage(TextWidth(str, 1), debugGlyphHeight)
	ebitenutil.DebugPrint(img, str)
	s.labelCache[str] = img
	return img
}

// TextWidth 返回文字在给定缩放下的像素宽度
func TextWidth(str string, scale float64) int {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(float64(len([]rune(str))*debugGlyphWidth) * scale))
	if w < 1 {
		w = 1
	}
	return w
}

// alignedX 把对齐锚点换算成文字左边缘
func alignedX(str string, x float64, align components.LabelAlign, scale float64) float64 {
	w := float64(TextWidth(str, scale))
	switch align {
	case components.AlignRight:
		return x - w
	case components.AlignCenter:
		return x - w/2
	default:
		return x
	}
}
