package glsel

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

type Primitive int

const (
	Lines Primitive = iota
	LineStrip
	LineLoop
)

func (c *Context) Color3f(r, g, b float32) {
	c.color = color.RGBA{unitToByte(r), unitToByte(g), unitToByte(b), 255}
}

func (c *Context) Begin(p Primitive) {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	if p < Lines || p > LineLoop {
		c.setErr(ErrInvalidValue)
		return
	}
	c.inBegin = true
	c.primitive = p
	c.vertices = c.vertices[:0]
}

func (c *Context) Vertex2d(x, y float64) {
	if !c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	c.vertices = append(c.vertices, vertex{clip: c.toClip(x, y), color: c.color})
}

// End assembles the collected vertices into line segments and either
// rasterizes them or, in select mode, tests them against the view volume.
func (c *Context) End() {
	if !c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	c.inBegin = false

	vs := c.vertices
	switch c.primitive {
	case Lines:
		for i := 0; i+1 < len(vs); i += 2 {
			c.segment(vs[i], vs[i+1])
		}
	case LineStrip, LineLoop:
		for i := 0; i+1 < len(vs); i++ {
			c.segment(vs[i], vs[i+1])
		}
		if c.primitive == LineLoop && len(vs) > 1 {
			c.segment(vs[len(vs)-1], vs[0])
		}
	}
}

func (c *Context) segment(a, b vertex) {
	if c.mode == Select {
		c.selectSegment(a.clip, b.clip)
		return
	}
	ca, cb, ok := clipSegment(a.clip, b.clip)
	if !ok {
		return
	}
	x0, y0, _ := c.toWindow(ca)
	x1, y1, _ := c.toWindow(cb)
	// Flat shading: the last vertex of a line provides its colour.
	c.pending.Segments = append(c.pending.Segments, Segment{
		X0: x0, Y0: y0,
		X1: x1, Y1: y1,
		Color: b.color,
	})
}

// clipPlanes are the six half-spaces of the canonical view volume,
// -w <= x,y,z <= w, written as p·v >= 0.
var clipPlanes = [6]mgl64.Vec4{
	{1, 0, 0, 1},
	{-1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, -1, 0, 1},
	{0, 0, 1, 1},
	{0, 0, -1, 1},
}

// clipSegment clips a segment in homogeneous clip space (Liang-Barsky).
func clipSegment(a, b mgl64.Vec4) (mgl64.Vec4, mgl64.Vec4, bool) {
	t0, t1 := 0.0, 1.0
	for _, p := range clipPlanes {
		da, db := p.Dot(a), p.Dot(b)
		if da < 0 && db < 0 {
			return a, b, false
		}
		if da >= 0 && db >= 0 {
			continue
		}
		t := da / (da - db)
		if da < 0 {
			if t > t0 {
				t0 = t
			}
		} else if t < t1 {
			t1 = t
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return lerp(a, b, t0), lerp(a, b, t1), true
}

func lerp(a, b mgl64.Vec4, t float64) mgl64.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}
