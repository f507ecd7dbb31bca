package scene

import "selection-issue/pkg/glsel"

// Pipeline is the slice of the fixed-function API the renderer draws with.
// *glsel.Context satisfies it.
type Pipeline interface {
	ClearColor(r, g, b, a float32)
	Clear(mask glsel.ClearMask)
	MatrixMode(mode glsel.MatrixMode)
	LoadIdentity()
	Ortho(left, right, bottom, top, near, far float64)
	PickMatrix(x, y, width, height float64, viewport [4]int)
	Viewport() [4]int
	Color3f(r, g, b float32)
	Begin(p glsel.Primitive)
	Vertex2d(x, y float64)
	End()
	PushName(name uint32)
	PopName()
	Flush()
}

var _ Pipeline = (*glsel.Context)(nil)
