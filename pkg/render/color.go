// pkg/render/color.go
package render

import (
	"image/color"

	"selection-issue/internal/config"
)

// Palette задаёт фон и толщину линий. Цвета отрезков приходят из кадра.
type Palette struct {
	Background  color.RGBA
	StrokeWidth float32
}

func DefaultPalette() Palette {
	return Palette{
		Background:  config.BackgroundColor,
		StrokeWidth: float32(config.LineWidth),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
