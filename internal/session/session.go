// internal/session/session.go
package session

import (
	"image"
	"log/slog"

	"selection-issue/internal/event"
	"selection-issue/internal/pick"
	"selection-issue/internal/scene"
	"selection-issue/internal/selection"
	"selection-issue/pkg/glsel"
)

// SessionConfig задаёт стартовые параметры сессии.
type SessionConfig struct {
	Width      int
	Height     int
	Quirk      glsel.Quirk
	Strategy   pick.Strategy
	BufferSize int
	Dispatcher *event.Dispatcher
	Logger     *slog.Logger
}

// Session связывает контекст, сцену и выбор. Она не знает, каким окном
// её показывают: ebiten и raylib работают через один и тот же объект.
type Session struct {
	ctx        *glsel.Context
	scene      *scene.Renderer
	picker     *pick.Picker
	state      *selection.State
	dispatcher *event.Dispatcher
	logger     *slog.Logger

	dirty   bool
	last    *pick.Result
	lastErr error
}

func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		ctx:        glsel.New(cfg.Width, cfg.Height, cfg.Quirk),
		scene:      scene.NewRenderer(),
		state:      selection.New(cfg.Width, cfg.Height),
		dispatcher: cfg.Dispatcher,
		logger:     logger,
		dirty:      true,
	}
	s.picker = pick.New(s.ctx, s.scene,
		pick.WithStrategy(cfg.Strategy),
		pick.WithBufferSize(cfg.BufferSize),
		pick.WithDispatcher(cfg.Dispatcher),
		pick.WithInvalidator(pick.InvalidatorFunc(s.Invalidate)),
		pick.WithLogger(logger),
	)
	return s
}

// Invalidate помечает кадр устаревшим; перерисовка случится при следующем Frame.
func (s *Session) Invalidate() {
	s.dirty = true
}

func (s *Session) Dirty() bool {
	return s.dirty
}

// Frame возвращает текущий кадр, перерисовывая его только после инвалидации.
func (s *Session) Frame() glsel.Frame {
	if s.dirty {
		s.scene.Draw(s.ctx, s.state, false)
		if err := s.ctx.Err(); err != nil {
			s.logger.Warn("render pass failed", "err", err)
		}
		s.dirty = false
	}
	return s.ctx.Frame()
}

// Click выбирает окружность под точкой устройства (y вниз).
func (s *Session) Click(device image.Point) (pick.Result, error) {
	res, err := s.picker.OnClick(s.state, device)
	s.last, s.lastErr = &res, err
	if err != nil {
		s.logger.Warn("pick failed", "device", device, "err", err)
	}
	return res, err
}

// Last возвращает результат последнего клика, если он был.
func (s *Session) Last() (*pick.Result, error) {
	return s.last, s.lastErr
}

func (s *Session) ToggleStrategy() pick.Strategy {
	s.picker.SetStrategy(s.picker.Strategy().Next())
	return s.picker.Strategy()
}

func (s *Session) ToggleQuirk() glsel.Quirk {
	q := s.ctx.Quirk().Next()
	s.ctx.SetQuirk(q)
	s.dispatcher.Dispatch(event.Event{Type: event.QuirkChanged, Data: q})
	return q
}

// Resize подстраивает вьюпорт и проекцию под новый размер поверхности.
// Возвращает false, если размер не изменился.
func (s *Session) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == s.state.Width && height == s.state.Height {
		return false
	}
	s.ctx.SetViewport(0, 0, width, height)
	s.state.Resize(width, height)
	s.Invalidate()
	s.logger.Debug("surface resized", "width", width, "height", height)
	return true
}

func (s *Session) Selected() int {
	return s.state.Selected
}

func (s *Session) Size() (int, int) {
	return s.state.Width, s.state.Height
}

func (s *Session) Strategy() pick.Strategy {
	return s.picker.Strategy()
}

func (s *Session) Quirk() glsel.Quirk {
	return s.ctx.Quirk()
}

func (s *Session) Vendor() string {
	return s.ctx.Vendor()
}

func (s *Session) Renderer() string {
	return s.ctx.Renderer()
}
