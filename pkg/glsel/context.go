// Package glsel is a CPU implementation of the fixed-function pieces a picking
// demo relies on: matrix stacks, immediate-mode line primitives, the name stack
// and the select render mode with its hit-record buffer.
//
// A Context is not safe for concurrent use. Like a GL context it belongs to the
// thread that drives the event loop.
package glsel

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrInvalidOperation = errors.New("glsel: invalid operation")
	ErrInvalidValue     = errors.New("glsel: invalid value")
	ErrStackOverflow    = errors.New("glsel: stack overflow")
	ErrStackUnderflow   = errors.New("glsel: stack underflow")
)

// ClearMask selects the buffers cleared by Clear.
type ClearMask uint32

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

const (
	MaxNameStackDepth   = 64
	MaxMatrixStackDepth = 32
)

const vendor = "selection-issue"

// Segment is one rasterized line in window coordinates (origin bottom-left, y-up).
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
	Color  color.RGBA
}

// Frame is what a render-mode draw produced between Clear and Flush.
type Frame struct {
	Width, Height int
	Background    color.RGBA
	Segments      []Segment
}

type vertex struct {
	clip  mgl64.Vec4
	color color.RGBA
}

type Context struct {
	quirk Quirk

	viewport   [4]int
	clearColor color.RGBA
	color      color.RGBA

	matrixMode MatrixMode
	projection []mgl64.Mat4
	modelView  []mgl64.Mat4

	inBegin   bool
	primitive Primitive
	vertices  []vertex

	mode      RenderMode
	selectBuf []uint32
	selectPos int
	overflow  bool
	hits      int
	names     []uint32
	hitFlag   bool
	minZ      float64
	maxZ      float64

	pending Frame
	frame   Frame
	err     error
}

// New creates a context whose viewport covers a width×height surface.
func New(width, height int, quirk Quirk) *Context {
	c := &Context{
		quirk:      quirk,
		viewport:   [4]int{0, 0, width, height},
		color:      color.RGBA{255, 255, 255, 255},
		matrixMode: ModelView,
		projection: []mgl64.Mat4{mgl64.Ident4()},
		modelView:  []mgl64.Mat4{mgl64.Ident4()},
		vertices:   make([]vertex, 0, 128),
		names:      make([]uint32, 0, MaxNameStackDepth),
		minZ:       1,
		maxZ:       0,
	}
	c.pending = Frame{Width: width, Height: height}
	c.frame = c.pending
	return c
}

func (c *Context) Vendor() string {
	return vendor
}

func (c *Context) Renderer() string {
	return fmt.Sprintf("glsel software select (quirk: %s)", c.quirk)
}

func (c *Context) Quirk() Quirk {
	return c.quirk
}

func (c *Context) SetQuirk(q Quirk) {
	c.quirk = q
}

// SetViewport sets the window rectangle that normalized device coordinates map to.
func (c *Context) SetViewport(x, y, width, height int) {
	if width < 0 || height < 0 {
		c.setErr(ErrInvalidValue)
		return
	}
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	c.viewport = [4]int{x, y, width, height}
}

// Viewport returns [x, y, width, height].
func (c *Context) Viewport() [4]int {
	return c.viewport
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = color.RGBA{unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a)}
}

// Clear starts a new frame. In select mode nothing is rasterized, so the
// published frame is left alone.
func (c *Context) Clear(mask ClearMask) {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	if c.mode != Render || mask&ColorBufferBit == 0 {
		return
	}
	c.pending = Frame{
		Width:      c.viewport[2],
		Height:     c.viewport[3],
		Background: c.clearColor,
		Segments:   c.pending.Segments[:0],
	}
}

// Flush publishes the pending frame.
func (c *Context) Flush() {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	if c.mode != Render {
		return
	}
	c.frame = Frame{
		Width:      c.pending.Width,
		Height:     c.pending.Height,
		Background: c.pending.Background,
		Segments:   slices.Clone(c.pending.Segments),
	}
}

// Frame returns the last flushed frame.
func (c *Context) Frame() Frame {
	return c.frame
}

// Err returns the first error recorded since the last call and resets it.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Context) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

func unitToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
