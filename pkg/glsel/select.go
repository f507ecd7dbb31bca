package glsel

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type RenderMode int

const (
	Render RenderMode = iota
	Select
)

func (m RenderMode) String() string {
	if m == Select {
		return "select"
	}
	return "render"
}

// SelectBuffer binds the buffer hit records are written to on the next
// switch into select mode.
func (c *Context) SelectBuffer(buf []uint32) {
	if c.mode == Select || c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	c.selectBuf = buf
}

// RenderMode switches modes. The return value describes the mode being left:
// for select mode it is the number of hit records written, or -1 if the
// buffer was too small to hold them all.
func (c *Context) RenderMode(mode RenderMode) int {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return 0
	}
	if mode != Render && mode != Select {
		c.setErr(ErrInvalidValue)
		return 0
	}

	result := 0
	if c.mode == Select {
		c.writeHitRecord()
		result = c.hits
		if c.overflow {
			result = -1
		}
	}

	if mode == Select && c.selectBuf == nil {
		c.setErr(ErrInvalidOperation)
		c.mode = Render
		return result
	}
	c.mode = mode
	c.selectPos = 0
	c.hits = 0
	c.overflow = false
	c.hitFlag = false
	c.minZ, c.maxZ = 1, 0
	return result
}

func (c *Context) Mode() RenderMode {
	return c.mode
}

// InitNames empties the name stack.
func (c *Context) InitNames() {
	if !c.nameOpAllowed() {
		return
	}
	c.writeHitRecord()
	c.names = c.names[:0]
}

func (c *Context) PushName(name uint32) {
	if !c.nameOpAllowed() {
		return
	}
	c.writeHitRecord()
	if len(c.names) >= MaxNameStackDepth {
		c.setErr(ErrStackOverflow)
		return
	}
	c.names = append(c.names, name)
}

func (c *Context) PopName() {
	if !c.nameOpAllowed() {
		return
	}
	c.writeHitRecord()
	if len(c.names) == 0 {
		c.setErr(ErrStackUnderflow)
		return
	}
	c.names = c.names[:len(c.names)-1]
}

// LoadName replaces the top of the name stack.
func (c *Context) LoadName(name uint32) {
	if !c.nameOpAllowed() {
		return
	}
	c.writeHitRecord()
	if len(c.names) == 0 {
		c.setErr(ErrInvalidOperation)
		return
	}
	c.names[len(c.names)-1] = name
}

// Name stack calls outside select mode are ignored.
func (c *Context) nameOpAllowed() bool {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return false
	}
	return c.mode == Select
}

func (c *Context) selectSegment(a, b mgl64.Vec4) {
	if c.quirk == QuirkHitAll {
		// Driver defect: the primitive reports a hit even when nothing of it
		// survives clipping against the pick region.
		_, _, za := c.toWindow(a)
		_, _, zb := c.toWindow(b)
		c.recordHit(clamp01(za))
		c.recordHit(clamp01(zb))
		return
	}
	ca, cb, ok := clipSegment(a, b)
	if !ok {
		return
	}
	_, _, za := c.toWindow(ca)
	_, _, zb := c.toWindow(cb)
	c.recordHit(za)
	c.recordHit(zb)
}

func (c *Context) recordHit(z float64) {
	c.hitFlag = true
	c.minZ = math.Min(c.minZ, z)
	c.maxZ = math.Max(c.maxZ, z)
}

// writeHitRecord appends [nameCount, minZ, maxZ, names...] if anything was hit
// since the last name stack change.
func (c *Context) writeHitRecord() {
	if !c.hitFlag {
		return
	}
	c.put(uint32(len(c.names)))
	c.put(depthToUint(c.minZ))
	c.put(depthToUint(c.maxZ))
	for _, n := range c.names {
		c.put(n)
	}
	c.hits++
	c.hitFlag = false
	c.minZ, c.maxZ = 1, 0
}

func (c *Context) put(word uint32) {
	if c.selectPos >= len(c.selectBuf) {
		c.overflow = true
		return
	}
	c.selectBuf[c.selectPos] = word
	c.selectPos++
}

func depthToUint(z float64) uint32 {
	return uint32(math.Round(clamp01(z) * math.MaxUint32))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
