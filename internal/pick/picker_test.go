package pick

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"math"
	"strings"
	"testing"

	"selection-issue/internal/config"
	"selection-issue/internal/event"
	"selection-issue/internal/scene"
	"selection-issue/internal/selection"
	"selection-issue/pkg/glsel"
)

type fixture struct {
	ctx         *glsel.Context
	renderer    *scene.Renderer
	st          *selection.State
	invalidated int
	events      []event.Event
}

func newFixture(t *testing.T, quirk glsel.Quirk, opts ...Option) (*fixture, *Picker) {
	t.Helper()
	f := &fixture{
		ctx:      glsel.New(800, 600, quirk),
		renderer: scene.NewRenderer(),
		st:       selection.New(800, 600),
	}
	d := event.NewDispatcher()
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) }))
	opts = append([]Option{
		WithDispatcher(d),
		WithInvalidator(InvalidatorFunc(func() { f.invalidated++ })),
	}, opts...)
	return f, New(f.ctx, f.renderer, opts...)
}

func (f *fixture) count(typ event.EventType) int {
	n := 0
	for _, e := range f.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestOnClickSelectsEachCircleOnItsStroke(t *testing.T) {
	f, p := newFixture(t, glsel.QuirkNone)
	// 0.8 px per world unit: circle k crosses the horizontal axis 8k px left of centre.
	for k := 1; k <= config.CircleCount; k++ {
		res, err := p.OnClick(f.st, image.Pt(400-8*k, 300))
		if err != nil {
			t.Fatalf("circle %d: %v", k, err)
		}
		if res.Hits != 1 {
			t.Errorf("circle %d: expected exactly 1 hit, got %d (%v)", k, res.Hits, res.Records)
		}
		if f.st.Selected != k {
			t.Errorf("circle %d: selected %d", k, f.st.Selected)
		}
	}
}

func TestOnClickAwayFromCirclesClearsSelection(t *testing.T) {
	f, p := newFixture(t, glsel.QuirkNone)
	f.st.Select(12)

	// Window centre: the innermost circle is 8 px away.
	res, err := p.OnClick(f.st, image.Pt(400, 300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Hits != 0 || f.st.HasSelection() {
		t.Errorf("expected no hits and no selection, got hits=%d selected=%d", res.Hits, f.st.Selected)
	}
	if f.count(event.SelectionChanged) != 1 {
		t.Errorf("expected one SelectionChanged event, got %d", f.count(event.SelectionChanged))
	}
}

func TestOnClickStoresFlippedPickPoint(t *testing.T) {
	f, p := newFixture(t, glsel.QuirkNone)
	res, _ := p.OnClick(f.st, image.Pt(120, 0))
	if f.st.PickPoint != image.Pt(120, 600) || res.PickPoint != image.Pt(120, 600) {
		t.Errorf("expected pick point (120,600), got %v / %v", f.st.PickPoint, res.PickPoint)
	}
	p.OnClick(f.st, image.Pt(120, 600))
	if f.st.PickPoint != image.Pt(120, 0) {
		t.Errorf("expected pick point (120,0), got %v", f.st.PickPoint)
	}
}

func TestOnClickHitAllQuirkAlwaysSelectsLastCircle(t *testing.T) {
	f, p := newFixture(t, glsel.QuirkHitAll)

	res, err := p.OnClick(f.st, image.Pt(400, 300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Hits != config.CircleCount {
		t.Errorf("expected %d hits, got %d", config.CircleCount, res.Hits)
	}
	if f.st.Selected != 50 {
		t.Errorf("expected last-wins to select 50, got %d", f.st.Selected)
	}

	// Clicking right on circle 10 still lands on 50.
	p.OnClick(f.st, image.Pt(480, 300))
	if f.st.Selected != 50 {
		t.Errorf("expected 50 again, got %d", f.st.Selected)
	}
}

func TestOnClickNearestStrategyWithHitAllQuirk(t *testing.T) {
	f, p := newFixture(t, glsel.QuirkHitAll, WithStrategy(Nearest))
	p.OnClick(f.st, image.Pt(480, 300))
	// All circles sit at the same depth, so nearest keeps the first record.
	if f.st.Selected != 1 {
		t.Errorf("expected nearest to keep circle 1 on equal depths, got %d", f.st.Selected)
	}
}

func TestOnClickOverflow(t *testing.T) {
	f, p := newFixture(t, glsel.QuirkHitAll, WithBufferSize(8))
	f.st.Select(3)

	res, err := p.OnClick(f.st, image.Pt(400, 300))
	if !errors.Is(err, ErrBufferOverflow) {
		t.Fatalf("expected ErrBufferOverflow, got %v", err)
	}
	if res.Hits != -1 || f.st.HasSelection() {
		t.Errorf("expected hits=-1 and no selection, got %d / %d", res.Hits, f.st.Selected)
	}
	if f.count(event.HitBufferOverflow) != 1 {
		t.Errorf("expected one overflow event, got %d", f.count(event.HitBufferOverflow))
	}
	if f.invalidated != 1 {
		t.Errorf("expected a redraw request even on overflow, got %d", f.invalidated)
	}
}

func TestOnClickRequestsRedrawAndReportsPick(t *testing.T) {
	f, p := newFixture(t, glsel.QuirkNone)
	p.OnClick(f.st, image.Pt(480, 300))
	p.OnClick(f.st, image.Pt(480, 300))
	if f.invalidated != 2 {
		t.Errorf("expected 2 redraw requests, got %d", f.invalidated)
	}
	if f.count(event.PickCompleted) != 2 {
		t.Errorf("expected 2 PickCompleted events, got %d", f.count(event.PickCompleted))
	}
	// The selection only changed on the first click.
	if f.count(event.SelectionChanged) != 1 {
		t.Errorf("expected 1 SelectionChanged event, got %d", f.count(event.SelectionChanged))
	}
}

func TestSetStrategyDispatchesOnChange(t *testing.T) {
	f, p := newFixture(t, glsel.QuirkNone)
	p.SetStrategy(LastWins)
	p.SetStrategy(Nearest)
	if p.Strategy() != Nearest {
		t.Errorf("expected Nearest, got %v", p.Strategy())
	}
	if f.count(event.StrategyChanged) != 1 {
		t.Errorf("expected 1 StrategyChanged event, got %d", f.count(event.StrategyChanged))
	}
}

// A click on the outermost circle at the left edge of an 800x600 surface,
// then a normal redraw: circle 50 is green, everything else red.
func TestEndToEndOutermostCircle(t *testing.T) {
	f, p := newFixture(t, glsel.QuirkNone)

	if _, err := p.OnClick(f.st, image.Pt(0, 300)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.st.Selected != 50 {
		t.Fatalf("expected circle 50, got %d", f.st.Selected)
	}

	f.renderer.Draw(f.ctx, f.st, false)
	frame := f.ctx.Frame()
	green, red := 0, 0
	for _, s := range frame.Segments {
		switch s.Color {
		case config.SelectedCircleColor:
			green++
			for _, pt := range [][2]float64{{s.X0, s.Y0}, {s.X1, s.Y1}} {
				// Radius 500 world units is 400 px from the centre.
				if d := math.Hypot(pt[0]-400, pt[1]-300); d < 399 || d > 401 {
					t.Fatalf("green segment point %v is %v px from centre", pt, d)
				}
			}
		case config.CircleColor:
			red++
		default:
			t.Fatalf("unexpected colour %v", s.Color)
		}
	}
	if green == 0 || red == 0 {
		t.Errorf("expected both green and red segments, got %d/%d", green, red)
	}
}

type countingPipeline struct {
	*glsel.Context
	initNames int
}

func (c *countingPipeline) InitNames() {
	c.initNames++
	c.Context.InitNames()
}

func TestOnClickResetsNameStackBeforeDrawing(t *testing.T) {
	pipe := &countingPipeline{Context: glsel.New(800, 600, glsel.QuirkNone)}
	st := selection.New(800, 600)
	p := New(pipe, scene.NewRenderer())

	res, err := p.OnClick(st, image.Pt(480, 300))
	if err != nil || res.Selected != 10 {
		t.Fatalf("expected circle 10, got %d (%v)", res.Selected, err)
	}
	if pipe.initNames != 1 {
		t.Errorf("expected InitNames once per pick, got %d", pipe.initNames)
	}
}

func TestOnClickLogsOneLinePerPick(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := event.NewDispatcher()
	d.Subscribe(event.PickCompleted, event.NewLogListener(logger))

	p := New(glsel.New(800, 600, glsel.QuirkNone), scene.NewRenderer(), WithDispatcher(d), WithLogger(logger))
	p.OnClick(selection.New(800, 600), image.Pt(480, 300))

	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Errorf("expected one log line for one click, got %d:\n%s", n, buf.String())
	}
}
