// internal/ui/hit_indicator_rl.go
package ui

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HitIndicatorRL - версия индикатора для Raylib
type HitIndicatorRL struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewHitIndicatorRL(x, y, radius float32) *HitIndicatorRL {
	return &HitIndicatorRL{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *HitIndicatorRL) Draw(stateColor color.RGBA) {
	currentRadius := i.Radius * pulseScale(i.LastClickTime)

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, ToRL(stateColor))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *HitIndicatorRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(i.X, i.Y), i.Radius)
}

func (i *HitIndicatorRL) Pulse() {
	i.LastClickTime = time.Now()
}
