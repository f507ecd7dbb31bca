// pkg/render/line_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"selection-issue/internal/utils"
	"selection-issue/pkg/glsel"
)

// maxRunSegments ограничивает длину одного пути, чтобы индексы влезали в uint16.
const maxRunSegments = 512

// LineRenderer переносит опубликованный кадр glsel на ebiten.Image.
// Кадр рисуется в закэшированное изображение один раз, дальше только копируется.
type LineRenderer struct {
	palette   Palette
	strokeImg *ebiten.Image
	frameImg  *ebiten.Image
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
}

func NewLineRenderer(palette Palette) *LineRenderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	return &LineRenderer{
		palette:   palette,
		strokeImg: strokeImg,
		strokeVs:  make([]ebiten.Vertex, 0, 1024),
		strokeIs:  make([]uint16, 0, 1536),
	}
}

// Render перерисовывает кэш по кадру. Вызывается только после инвалидации.
func (r *LineRenderer) Render(f glsel.Frame) {
	w, h := max(f.Width, 1), max(f.Height, 1)
	if r.frameImg == nil || r.frameImg.Bounds().Dx() != w || r.frameImg.Bounds().Dy() != h {
		if r.frameImg != nil {
			r.frameImg.Deallocate()
		}
		r.frameImg = ebiten.NewImage(w, h)
	}
	r.frameImg.Fill(f.Background)

	// Соседние отрезки одного цвета идут одним путём
	segs := f.Segments
	for start := 0; start < len(segs); {
		end := start + 1
		for end < len(segs) && end-start < maxRunSegments && segs[end].Color == segs[start].Color {
			end++
		}
		r.strokeRun(r.frameImg, segs[start:end], f.Height)
		start = end
	}
}

// Draw копирует закэшированный кадр на экран.
func (r *LineRenderer) Draw(screen *ebiten.Image) {
	if r.frameImg == nil {
		screen.Fill(r.palette.Background)
		return
	}
	screen.DrawImage(r.frameImg, nil)
}

func (r *LineRenderer) strokeRun(target *ebiten.Image, run []glsel.Segment, height int) {
	path := vector.Path{}
	var lastX, lastY float64
	for i, s := range run {
		// y кадра растёт вверх, у экрана вниз
		y0, y1 := utils.FlipY(s.Y0, height), utils.FlipY(s.Y1, height)
		if i == 0 || s.X0 != lastX || y0 != lastY {
			path.MoveTo(float32(s.X0), float32(y0))
		}
		path.LineTo(float32(s.X1), float32(y1))
		lastX, lastY = s.X1, y1
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    r.palette.StrokeWidth,
		LineJoin: vector.LineJoinRound,
	})

	c := run[0].Color
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
