// internal/ui/strategy_button_rl.go
package ui

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StrategyButtonRL - версия кнопки стратегии для Raylib
type StrategyButtonRL struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []rl.Color
	CurrentState   int
}

func NewStrategyButtonRL(x, y, size float32, stateColors []color.RGBA) *StrategyButtonRL {
	colors := make([]rl.Color, len(stateColors))
	for i, c := range stateColors {
		colors[i] = ToRL(c)
	}
	return &StrategyButtonRL{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: colors,
	}
}

func (b *StrategyButtonRL) Draw() {
	triangleSize := b.Size * pulseScale(b.LastClickTime)
	rlColor := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize

	if b.CurrentState == 0 {
		offset := width * 0.8
		drawTriangleRL(b.X-width, b.Y, width, height, rlColor)
		drawTriangleRL(b.X-width+offset, b.Y, width, height, rlColor)
		return
	}
	drawTriangleRL(b.X-width/2, b.Y, width, height, rlColor)
	rl.DrawLineEx(rl.NewVector2(b.X+width/2+2, b.Y-height/2), rl.NewVector2(b.X+width/2+2, b.Y+height/2), 3, rlColor)
}

// Вершины против часовой стрелки, иначе raylib треугольник не рисует.
func drawTriangleRL(left, cy, width, height float32, c rl.Color) {
	p1 := rl.NewVector2(left, cy-height/2)
	p2 := rl.NewVector2(left, cy+height/2)
	p3 := rl.NewVector2(left+width, cy)
	rl.DrawTriangle(p1, p2, p3, c)
	rl.DrawTriangleLines(p1, p2, p3, rl.White)
}

func (b *StrategyButtonRL) IsClicked(mousePos rl.Vector2) bool {
	return insideCircle(mousePos.X, mousePos.Y, b.X, b.Y, b.Size*1.5)
}

func (b *StrategyButtonRL) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func ToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
