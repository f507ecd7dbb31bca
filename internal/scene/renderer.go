// internal/scene/renderer.go
package scene

import (
	"image/color"

	"selection-issue/internal/config"
	"selection-issue/internal/selection"
	"selection-issue/pkg/glsel"
)

// Renderer рисует набор окружностей. Один и тот же проход используется и
// для обычного кадра, и для выбора.
type Renderer struct {
	count    int
	normal   color.RGBA
	selected color.RGBA
	geometry [][]Vertex // кэш: геометрия зависит только от id
}

func NewRenderer() *Renderer {
	r := &Renderer{
		count:    config.CircleCount,
		normal:   config.CircleColor,
		selected: config.SelectedCircleColor,
		geometry: make([][]Vertex, config.CircleCount+1),
	}
	for id := 1; id <= r.count; id++ {
		r.geometry[id] = CircleVertices(id)
	}
	return r
}

// Draw issues one frame. With picking set, the projection is narrowed to a
// PickRegionSize square around st.PickPoint and every circle is tagged with
// its id on the name stack. st is only read.
func (r *Renderer) Draw(p Pipeline, st *selection.State, picking bool) {
	bg := config.BackgroundColor
	p.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, float32(bg.A)/255)
	p.Clear(glsel.ColorBufferBit | glsel.DepthBufferBit)

	p.MatrixMode(glsel.Projection)
	p.LoadIdentity()

	if picking {
		// Матрица выбора должна быть умножена до ортогональной проекции
		viewport := p.Viewport()
		p.PickMatrix(float64(st.PickPoint.X), float64(st.PickPoint.Y), config.PickRegionSize, config.PickRegionSize, viewport)
	}

	aspect := st.Aspect()
	p.Ortho(-config.WorldHalfExtent, config.WorldHalfExtent,
		-config.WorldHalfExtent*aspect, config.WorldHalfExtent*aspect,
		config.DepthNear, config.DepthFar)

	p.MatrixMode(glsel.ModelView)
	p.LoadIdentity()

	for id := 1; id <= r.count; id++ {
		c := r.normal
		if st.IsSelected(id) {
			c = r.selected
		}
		p.Color3f(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
		r.drawCircle(p, id, picking)
	}

	p.Flush()
}

func (r *Renderer) drawCircle(p Pipeline, id int, picking bool) {
	if picking {
		p.PushName(uint32(id))
	}

	p.Begin(glsel.LineLoop)
	for _, v := range r.geometry[id] {
		p.Vertex2d(v.X, v.Y)
	}
	p.End()

	if picking {
		p.PopName()
	}
}
