package glsel

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// setupOrtho mirrors the demo projection on an 800x600 surface: one world
// unit per 0.8 pixels, origin in the middle.
func setupOrtho(c *Context, pickX, pickY float64, picking bool) {
	c.MatrixMode(Projection)
	c.LoadIdentity()
	if picking {
		c.PickMatrix(pickX, pickY, 5, 5, c.Viewport())
	}
	c.Ortho(-500, 500, -375, 375, 1, -1)
	c.MatrixMode(ModelView)
	c.LoadIdentity()
}

func drawLine(c *Context, name uint32, x0, y0, x1, y1 float64) {
	c.PushName(name)
	c.Begin(Lines)
	c.Vertex2d(x0, y0)
	c.Vertex2d(x1, y1)
	c.End()
	c.PopName()
}

func TestSelectRecordsOnlyLinesInsidePickRegion(t *testing.T) {
	c := New(800, 600, QuirkNone)
	buf := make([]uint32, 64)
	c.SelectBuffer(buf)
	c.RenderMode(Select)
	// Pick at window centre; world origin.
	setupOrtho(c, 400, 300, true)
	drawLine(c, 1, -10, 0, 10, 0)     // crosses the origin
	drawLine(c, 2, -10, 100, 10, 100) // far above
	drawLine(c, 3, 0, -50, 0, 50)     // crosses the origin
	hits := c.RenderMode(Render)

	if hits != 2 {
		t.Fatalf("expected 2 hits, got %d", hits)
	}
	if buf[0] != 1 || buf[3] != 1 {
		t.Errorf("first record: expected [1 _ _ 1], got %v", buf[:4])
	}
	if buf[4] != 1 || buf[7] != 3 {
		t.Errorf("second record: expected [1 _ _ 3], got %v", buf[4:8])
	}
	if err := c.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSelectDepthIsScaledWindowDepth(t *testing.T) {
	c := New(800, 600, QuirkNone)
	buf := make([]uint32, 8)
	c.SelectBuffer(buf)
	c.RenderMode(Select)
	setupOrtho(c, 400, 300, true)
	drawLine(c, 9, -10, 0, 10, 0)
	if hits := c.RenderMode(Render); hits != 1 {
		t.Fatalf("expected 1 hit, got %d", hits)
	}
	want := uint32(math.Round(0.5 * math.MaxUint32))
	if buf[1] != want || buf[2] != want {
		t.Errorf("expected min/max depth %d, got %d/%d", want, buf[1], buf[2])
	}
}

func TestSelectNoHits(t *testing.T) {
	c := New(800, 600, QuirkNone)
	c.SelectBuffer(make([]uint32, 16))
	c.RenderMode(Select)
	setupOrtho(c, 10, 10, true)
	drawLine(c, 1, -10, 0, 10, 0)
	if hits := c.RenderMode(Render); hits != 0 {
		t.Errorf("expected 0 hits, got %d", hits)
	}
}

func TestSelectHitAllQuirkIgnoresPickRegion(t *testing.T) {
	c := New(800, 600, QuirkHitAll)
	buf := make([]uint32, 64)
	c.SelectBuffer(buf)
	c.RenderMode(Select)
	setupOrtho(c, 10, 10, true)
	drawLine(c, 1, -10, 0, 10, 0)
	drawLine(c, 2, -10, 100, 10, 100)
	if hits := c.RenderMode(Render); hits != 2 {
		t.Fatalf("expected 2 hits with hit-all quirk, got %d", hits)
	}
	if buf[3] != 1 || buf[7] != 2 {
		t.Errorf("unexpected names in %v", buf[:8])
	}
}

func TestSelectOverflowReturnsMinusOne(t *testing.T) {
	c := New(800, 600, QuirkHitAll)
	buf := make([]uint32, 6)
	c.SelectBuffer(buf)
	c.RenderMode(Select)
	setupOrtho(c, 400, 300, true)
	drawLine(c, 1, -10, 0, 10, 0)
	drawLine(c, 2, -10, 0, 10, 0)
	if hits := c.RenderMode(Render); hits != -1 {
		t.Errorf("expected -1 on overflow, got %d", hits)
	}
	// The next select pass starts over.
	c.SelectBuffer(make([]uint32, 16))
	c.RenderMode(Select)
	setupOrtho(c, 400, 300, true)
	drawLine(c, 1, -10, 0, 10, 0)
	if hits := c.RenderMode(Render); hits != 1 {
		t.Errorf("expected 1 hit after reset, got %d", hits)
	}
}

func TestNestedNamesAreWrittenBottomToTop(t *testing.T) {
	c := New(800, 600, QuirkNone)
	buf := make([]uint32, 16)
	c.SelectBuffer(buf)
	c.RenderMode(Select)
	setupOrtho(c, 400, 300, true)
	c.PushName(4)
	c.PushName(5)
	c.Begin(LineStrip)
	c.Vertex2d(-5, 0)
	c.Vertex2d(5, 0)
	c.End()
	c.PopName()
	c.PopName()
	if hits := c.RenderMode(Render); hits != 1 {
		t.Fatalf("expected 1 hit, got %d", hits)
	}
	if buf[0] != 2 || buf[3] != 4 || buf[4] != 5 {
		t.Errorf("expected [2 _ _ 4 5], got %v", buf[:5])
	}
}

func TestNameStackErrors(t *testing.T) {
	c := New(100, 100, QuirkNone)
	c.SelectBuffer(make([]uint32, 4))
	c.RenderMode(Select)
	c.PopName()
	if err := c.Err(); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("expected ErrStackUnderflow, got %v", err)
	}
	c.LoadName(3)
	if err := c.Err(); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation for LoadName on empty stack, got %v", err)
	}
	for i := 0; i <= MaxNameStackDepth; i++ {
		c.PushName(uint32(i))
	}
	if err := c.Err(); !errors.Is(err, ErrStackOverflow) {
		t.Errorf("expected ErrStackOverflow, got %v", err)
	}
	c.RenderMode(Render)
}

func TestNameCallsIgnoredInRenderMode(t *testing.T) {
	c := New(100, 100, QuirkNone)
	c.PopName()
	c.PushName(1)
	if err := c.Err(); err != nil {
		t.Errorf("name calls in render mode should be ignored, got %v", err)
	}
	if len(c.names) != 0 {
		t.Errorf("name stack should stay empty, got %v", c.names)
	}
}

func TestSelectModeRequiresBuffer(t *testing.T) {
	c := New(100, 100, QuirkNone)
	c.RenderMode(Select)
	if c.Mode() != Render {
		t.Errorf("expected to stay in render mode without a select buffer")
	}
	if err := c.Err(); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestSelectModeProducesNoFrame(t *testing.T) {
	c := New(800, 600, QuirkNone)
	c.Clear(ColorBufferBit)
	setupOrtho(c, 0, 0, false)
	c.Begin(Lines)
	c.Vertex2d(0, 0)
	c.Vertex2d(100, 0)
	c.End()
	c.Flush()
	before := c.Frame()

	c.SelectBuffer(make([]uint32, 16))
	c.RenderMode(Select)
	c.Clear(ColorBufferBit)
	setupOrtho(c, 400, 300, true)
	drawLine(c, 1, -10, 0, 10, 0)
	c.Flush()
	c.RenderMode(Render)

	after := c.Frame()
	if len(after.Segments) != len(before.Segments) || len(after.Segments) != 1 {
		t.Errorf("select pass changed the published frame: %d -> %d segments", len(before.Segments), len(after.Segments))
	}
}

func TestParseQuirk(t *testing.T) {
	for _, q := range []Quirk{QuirkNone, QuirkHitAll} {
		got, err := ParseQuirk(q.String())
		if err != nil || got != q {
			t.Errorf("ParseQuirk(%q) = %v, %v", q.String(), got, err)
		}
	}
	if _, err := ParseQuirk("intel"); err == nil {
		t.Error("expected error for unknown quirk")
	}
	if QuirkHitAll.Next() != QuirkNone {
		t.Error("expected Next to wrap around")
	}
}

func TestInitNamesFlushesPendingHitAndEmptiesStack(t *testing.T) {
	c := New(800, 600, QuirkNone)
	buf := make([]uint32, 16)
	c.SelectBuffer(buf)
	c.RenderMode(Select)
	setupOrtho(c, 400, 300, true)
	c.PushName(7)
	c.Begin(Lines)
	c.Vertex2d(-10, 0)
	c.Vertex2d(10, 0)
	c.End()
	c.InitNames()
	c.Begin(Lines)
	c.Vertex2d(0, -10)
	c.Vertex2d(0, 10)
	c.End()
	if hits := c.RenderMode(Render); hits != 2 {
		t.Fatalf("expected 2 hits, got %d", hits)
	}
	if buf[0] != 1 || buf[3] != 7 {
		t.Errorf("first record: expected [1 _ _ 7], got %v", buf[:4])
	}
	if buf[4] != 0 {
		t.Errorf("second record should have an empty name stack, got %v", buf[4:7])
	}
	if err := c.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPushPopMatrixRestoresTop(t *testing.T) {
	c := New(800, 600, QuirkNone)
	c.MatrixMode(Projection)
	c.LoadIdentity()
	c.PushMatrix()
	c.Ortho(-500, 500, -375, 375, 1, -1)
	narrowed := c.ProjectionMatrix()
	c.PopMatrix()
	if c.ProjectionMatrix() == narrowed {
		t.Error("PopMatrix should drop the ortho projection")
	}
	if c.ProjectionMatrix() != mgl64.Ident4() {
		t.Errorf("expected identity after pop, got %v", c.ProjectionMatrix())
	}

	c.PopMatrix()
	if err := c.Err(); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("expected ErrStackUnderflow, got %v", err)
	}
	for i := 0; i < MaxMatrixStackDepth; i++ {
		c.PushMatrix()
	}
	if err := c.Err(); !errors.Is(err, ErrStackOverflow) {
		t.Errorf("expected ErrStackOverflow, got %v", err)
	}
}
