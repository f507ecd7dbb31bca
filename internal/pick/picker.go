// internal/pick/picker.go
package pick

import (
	"fmt"
	"image"
	"log/slog"

	"selection-issue/internal/config"
	"selection-issue/internal/event"
	"selection-issue/internal/scene"
	"selection-issue/internal/selection"
	"selection-issue/internal/utils"
	"selection-issue/pkg/glsel"
)

// Pipeline adds the select-mode entry points to what the renderer needs.
type Pipeline interface {
	scene.Pipeline
	SelectBuffer(buf []uint32)
	RenderMode(mode glsel.RenderMode) int
	InitNames()
}

var _ Pipeline = (*glsel.Context)(nil)

// Invalidator requests a redraw of the display surface.
type Invalidator interface {
	Invalidate()
}

type InvalidatorFunc func()

func (f InvalidatorFunc) Invalidate() { f() }

// Result описывает один клик: сырые записи и итоговый выбор.
type Result struct {
	Device    image.Point
	PickPoint image.Point
	Hits      int
	Records   []HitRecord
	Selected  int
	Strategy  Strategy
}

func (r Result) String() string {
	return fmt.Sprintf("device=%v pick=%v hits=%d selected=%d strategy=%s records=%v",
		r.Device, r.PickPoint, r.Hits, r.Selected, r.Strategy, r.Records)
}

type Picker struct {
	pipeline    Pipeline
	renderer    *scene.Renderer
	strategy    Strategy
	bufferSize  int
	dispatcher  *event.Dispatcher
	invalidator Invalidator
	logger      *slog.Logger
}

type Option func(*Picker)

func WithStrategy(s Strategy) Option {
	return func(p *Picker) { p.strategy = s }
}

func WithBufferSize(n int) Option {
	return func(p *Picker) {
		if n > 0 {
			p.bufferSize = n
		}
	}
}

func WithDispatcher(d *event.Dispatcher) Option {
	return func(p *Picker) { p.dispatcher = d }
}

func WithInvalidator(inv Invalidator) Option {
	return func(p *Picker) { p.invalidator = inv }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Picker) { p.logger = l }
}

func New(pipeline Pipeline, renderer *scene.Renderer, opts ...Option) *Picker {
	p := &Picker{
		pipeline:   pipeline,
		renderer:   renderer,
		strategy:   LastWins,
		bufferSize: config.SelectBufferSize,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Picker) Strategy() Strategy {
	return p.strategy
}

func (p *Picker) SetStrategy(s Strategy) {
	if s == p.strategy {
		return
	}
	p.strategy = s
	p.dispatcher.Dispatch(event.Event{Type: event.StrategyChanged, Data: s})
}

// OnClick runs one pick at a device point (origin top-left, y down) and
// stores the outcome in st. The selection is always reset first: no hits,
// an overflowing buffer or a malformed record all leave it at None.
func (p *Picker) OnClick(st *selection.State, device image.Point) (Result, error) {
	previous := st.Selected
	defer p.invalidate()

	// 1. Переводим точку в координаты рендера
	st.PickPoint = utils.DeviceToRender(device, st.Height)

	// 2-5. Проход в режиме выбора
	buf := make([]uint32, p.bufferSize)
	p.pipeline.SelectBuffer(buf)
	p.pipeline.RenderMode(glsel.Select)
	p.pipeline.InitNames()
	p.renderer.Draw(p.pipeline, st, true)
	hits := p.pipeline.RenderMode(glsel.Render)
	p.checkPipeline()

	// 6. Сброс выбора
	st.Clear()

	res := Result{
		Device:    device,
		PickPoint: st.PickPoint,
		Hits:      hits,
		Selected:  selection.None,
		Strategy:  p.strategy,
	}

	// 7. Разбор записей
	var err error
	switch {
	case hits < 0:
		err = fmt.Errorf("%w: %d slots", ErrBufferOverflow, len(buf))
		p.dispatcher.Dispatch(event.Event{Type: event.HitBufferOverflow, Data: res})
	case hits > 0:
		res.Records, err = ParseHitRecords(buf, hits)
		if err == nil {
			res.Selected = Decode(res.Records, p.strategy)
			if res.Selected != selection.None {
				st.Select(res.Selected)
			}
		}
	}

	p.dispatcher.Dispatch(event.Event{Type: event.PickCompleted, Data: res})
	if previous != st.Selected {
		p.dispatcher.Dispatch(event.Event{
			Type: event.SelectionChanged,
			Data: event.SelectionChange{Previous: previous, Current: st.Selected},
		})
	}
	return res, err
}

// checkPipeline drains the GL-style error flag when the pipeline has one.
func (p *Picker) checkPipeline() {
	errSource, ok := p.pipeline.(interface{ Err() error })
	if !ok {
		return
	}
	if err := errSource.Err(); err != nil {
		p.logger.Warn("pipeline error during pick", "err", err)
	}
}

// 8. Перерисовка
func (p *Picker) invalidate() {
	if p.invalidator != nil {
		p.invalidator.Invalidate()
	}
}
