// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	CircleCount     = 50    // окружностей на экране, id 1..50
	RadiusStep      = 10.0  // радиус = id * RadiusStep
	CircleSegments  = 100   // рёбер в одной окружности
	WorldHalfExtent = 500.0 // мир по горизонтали: -500..500
	DepthNear       = 1.0   // near/far инвертированы, как в исходном демо
	DepthFar        = -1.0

	PickRegionSize   = 5.0  // сторона квадрата выбора в пикселях
	SelectBufferSize = 2048 // слотов uint32 под записи попаданий

	LineWidth = 1.5

	MaxDeltaTime  = 0.06
	ClickCooldown = 300 // мс, для кнопок UI

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	StrategyButtonX    = ScreenWidth - 80
	StrategyButtonY    = 30
	StrategyButtonSize = 14.0

	PanelHeight     = 92
	PanelPadding    = 8
	PanelLineHeight = 16
	FontSize        = 12
	TitleFontSize   = 16
)

var (
	BackgroundColor     = color.RGBA{0, 0, 0, 255}
	CircleColor         = color.RGBA{255, 0, 0, 255}
	SelectedCircleColor = color.RGBA{0, 255, 0, 255}

	TextLightColor = color.RGBA{240, 240, 240, 255}
	TextDimColor   = color.RGBA{150, 150, 160, 255}
	PanelColor     = color.RGBA{20, 20, 30, 200}
	OverlayColor   = color.RGBA{0, 0, 0, 170}
	UIBorderColor  = color.RGBA{240, 240, 240, 255}
	UIBorderWidth  = 2.0

	// Индикатор: нет попаданий / одно / несколько (подозрительно)
	NoHitColor     = color.RGBA{110, 110, 120, 255}
	SingleHitColor = color.RGBA{50, 205, 50, 255}
	MultiHitColor  = color.RGBA{220, 60, 60, 255}

	StrategyButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // last-wins
		{194, 178, 128, 255}, // nearest
	}
)
