// internal/ui/strategy_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"selection-issue/internal/config"
	"selection-issue/pkg/render"
)

// StrategyButton переключает способ разбора буфера попаданий.
// Состояние 0: last-wins (два треугольника, «перемотка к последнему»),
// состояние 1: nearest (один треугольник с чертой).
type StrategyButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewStrategyButton(x, y, size float32, stateColors []color.RGBA) *StrategyButton {
	return &StrategyButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *StrategyButton) Draw(screen *ebiten.Image) {
	size := b.Size * pulseScale(b.LastClickTime)
	c := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := size * 1.2
	width := size
	if b.CurrentState == 0 {
		offset := width * 0.8
		b.drawTriangle(screen, b.X-width, b.Y, height, width, c)
		b.drawTriangle(screen, b.X-width+offset, b.Y, height, width, c)
		return
	}
	b.drawTriangle(screen, b.X-width/2, b.Y, height, width, c)
	vector.StrokeLine(screen, b.X+width/2+2, b.Y-height/2, b.X+width/2+2, b.Y+height/2, 3, c, true)
}

func (b *StrategyButton) drawTriangle(screen *ebiten.Image, left, cy, height, width float32, c color.RGBA) {
	path := vector.Path{}
	path.MoveTo(left, cy-height/2)
	path.LineTo(left+width, cy)
	path.LineTo(left, cy+height/2)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	border := render.DarkenColor(config.UIBorderColor)
	vector.StrokeLine(screen, left, cy-height/2, left+width, cy, 1, border, true)
	vector.StrokeLine(screen, left+width, cy, left, cy+height/2, 1, border, true)
	vector.StrokeLine(screen, left, cy+height/2, left, cy-height/2, 1, border, true)
}

// IsClicked: попадание по кругу, форма кнопки сложная.
func (b *StrategyButton) IsClicked(x, y float32) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *StrategyButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

// CanToggle отсекает повторные клики быстрее ClickCooldown.
func (b *StrategyButton) CanToggle() bool {
	return time.Since(b.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond
}

var whiteImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(3, 3)
		whiteImg.Fill(color.White)
	}
	return whiteImg
}
