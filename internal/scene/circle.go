package scene

import (
	"math"

	"selection-issue/internal/config"
)

// Vertex: точка в мировых координатах
type Vertex struct {
	X, Y float64
}

// Radius возвращает радиус окружности с данным id.
func Radius(id int) float64 {
	return float64(id) * config.RadiusStep
}

// CircleVertices строит замкнутую ломаную вокруг начала координат:
// CircleSegments рёбер, CircleSegments+1 вершин, последняя совпадает с первой.
func CircleVertices(id int) []Vertex {
	radius := Radius(id)
	delta := 2 * math.Pi / config.CircleSegments
	vs := make([]Vertex, 0, config.CircleSegments+1)
	for i := 0; i <= config.CircleSegments; i++ {
		a := float64(i) * delta
		vs = append(vs, Vertex{X: math.Cos(a) * radius, Y: math.Sin(a) * radius})
	}
	return vs
}
