// internal/state/inspect_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"selection-issue/internal/config"
	"selection-issue/internal/session"
)

// Убеждаемся, что InspectState соответствует интерфейсу State
var _ State = (*InspectState)(nil)

// maxInspectLines: сколько записей помещается на экран 800x600.
const maxInspectLines = 30

// InspectState показывает поверх сцены сырые записи последнего выбора.
type InspectState struct {
	stateMachine  *StateMachine
	previousState *DemoState
}

func NewInspectState(sm *StateMachine, prevState *DemoState) *InspectState {
	return &InspectState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *InspectState) Enter() {}

func (s *InspectState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *InspectState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.OverlayColor, false)

	res, err := s.previousState.Session().Last()
	for i, line := range session.RecordLines(res, err, maxInspectLines) {
		ebitenutil.DebugPrintAt(screen, line, 16, 16+i*config.PanelLineHeight)
	}
}

func (s *InspectState) Exit() {}
