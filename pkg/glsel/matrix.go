package glsel

import "github.com/go-gl/mathgl/mgl64"

type MatrixMode int

const (
	ModelView MatrixMode = iota
	Projection
)

func (c *Context) MatrixMode(mode MatrixMode) {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	if mode != ModelView && mode != Projection {
		c.setErr(ErrInvalidValue)
		return
	}
	c.matrixMode = mode
}

func (c *Context) stack() *[]mgl64.Mat4 {
	if c.matrixMode == Projection {
		return &c.projection
	}
	return &c.modelView
}

func (c *Context) top() *mgl64.Mat4 {
	s := c.stack()
	return &(*s)[len(*s)-1]
}

func (c *Context) LoadIdentity() {
	c.LoadMatrix(mgl64.Ident4())
}

func (c *Context) LoadMatrix(m mgl64.Mat4) {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	*c.top() = m
}

// MultMatrix post-multiplies the current matrix: top = top × m.
func (c *Context) MultMatrix(m mgl64.Mat4) {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	t := c.top()
	*t = t.Mul4(m)
}

func (c *Context) PushMatrix() {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	s := c.stack()
	if len(*s) >= MaxMatrixStackDepth {
		c.setErr(ErrStackOverflow)
		return
	}
	*s = append(*s, (*s)[len(*s)-1])
}

func (c *Context) PopMatrix() {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	s := c.stack()
	if len(*s) <= 1 {
		c.setErr(ErrStackUnderflow)
		return
	}
	*s = (*s)[:len(*s)-1]
}

// Ortho multiplies the current matrix by a parallel projection. A near value
// greater than far flips the depth axis; both are legal.
func (c *Context) Ortho(left, right, bottom, top, near, far float64) {
	if left == right || bottom == top || near == far {
		c.setErr(ErrInvalidValue)
		return
	}
	c.MultMatrix(mgl64.Ortho(left, right, bottom, top, near, far))
}

// PickMatrix restricts drawing to a width×height window region centred at
// (x, y). It has to be multiplied in before the projection it narrows.
func (c *Context) PickMatrix(x, y, width, height float64, viewport [4]int) {
	if width <= 0 || height <= 0 {
		c.setErr(ErrInvalidValue)
		return
	}
	vx, vy := float64(viewport[0]), float64(viewport[1])
	vw, vh := float64(viewport[2]), float64(viewport[3])

	t := mgl64.Translate3D((vw-2*(x-vx))/width, (vh-2*(y-vy))/height, 0)
	s := mgl64.Scale3D(vw/width, vh/height, 1)
	c.MultMatrix(t.Mul4(s))
}

func (c *Context) ProjectionMatrix() mgl64.Mat4 {
	return c.projection[len(c.projection)-1]
}

func (c *Context) ModelViewMatrix() mgl64.Mat4 {
	return c.modelView[len(c.modelView)-1]
}

// toClip takes an object-space point to clip space.
func (c *Context) toClip(x, y float64) mgl64.Vec4 {
	mvp := c.ProjectionMatrix().Mul4(c.ModelViewMatrix())
	return mvp.Mul4x1(mgl64.Vec4{x, y, 0, 1})
}

// toWindow applies the perspective divide and the viewport transform. Depth
// comes back in [0, 1].
func (c *Context) toWindow(v mgl64.Vec4) (x, y, z float64) {
	w := v[3]
	if w == 0 {
		w = 1
	}
	nx, ny, nz := v[0]/w, v[1]/w, v[2]/w
	vx, vy := float64(c.viewport[0]), float64(c.viewport[1])
	vw, vh := float64(c.viewport[2]), float64(c.viewport[3])
	return vx + (nx+1)*vw/2, vy + (ny+1)*vh/2, (nz + 1) / 2
}
