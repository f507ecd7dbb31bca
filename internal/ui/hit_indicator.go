// internal/ui/hit_indicator.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"selection-issue/internal/config"
)

// HitIndicator показывает точкой в углу экрана, сколько записей вернул последний выбор.
type HitIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewHitIndicator(x, y, radius float32) *HitIndicator {
	return &HitIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// HitColor выбирает цвет: серый, если попаданий нет, зелёный для одного,
// красный для нескольких или при переполнении буфера.
func HitColor(hits int) color.RGBA {
	switch {
	case hits == 0:
		return config.NoHitColor
	case hits == 1:
		return config.SingleHitColor
	default:
		return config.MultiHitColor
	}
}

// Draw отрисовывает индикатор
func (i *HitIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	r := i.Radius * pulseScale(i.LastClickTime)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, float32(config.UIBorderWidth), config.UIBorderColor, true)
}

func (i *HitIndicator) IsClicked(x, y float32) bool {
	return insideCircle(x, y, i.X, i.Y, i.Radius)
}

// Pulse запускает анимацию после нового выбора.
func (i *HitIndicator) Pulse() {
	i.LastClickTime = time.Now()
}
