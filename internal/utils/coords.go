// internal/utils/coords.go
package utils

import "image"

// DeviceToRender переводит координаты устройства ввода (начало слева сверху,
// y вниз) в координаты рендера (начало слева снизу, y вверх).
func DeviceToRender(p image.Point, surfaceHeight int) image.Point {
	return image.Pt(p.X, surfaceHeight-p.Y)
}

// RenderToDevice выполняет обратное преобразование.
func RenderToDevice(p image.Point, surfaceHeight int) image.Point {
	return image.Pt(p.X, surfaceHeight-p.Y)
}

// FlipY переворачивает вертикальную координату для отрисовки на экране.
func FlipY(y float64, surfaceHeight int) float64 {
	return float64(surfaceHeight) - y
}
