// internal/state/demo_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"selection-issue/internal/config"
	"selection-issue/internal/session"
	"selection-issue/internal/ui"
	"selection-issue/pkg/render"
)

// Убеждаемся, что DemoState соответствует интерфейсу State
var _ State = (*DemoState)(nil)

// DemoState это основное состояние. Клик по окружности выбирает её.
type DemoState struct {
	sm        *StateMachine
	session   *session.Session
	lines     *render.LineRenderer
	button    *ui.StrategyButton
	indicator *ui.HitIndicator
	infoPanel *ui.InfoPanel
	hits      int
}

func NewDemoState(sm *StateMachine, sess *session.Session, face, titleFace font.Face) *DemoState {
	w, h := sess.Size()
	ds := &DemoState{
		sm:      sm,
		session: sess,
		lines:   render.NewLineRenderer(render.DefaultPalette()),
		button: ui.NewStrategyButton(
			float32(w-config.ScreenWidth+config.StrategyButtonX),
			float32(config.StrategyButtonY),
			float32(config.StrategyButtonSize),
			config.StrategyButtonColors,
		),
		indicator: ui.NewHitIndicator(
			float32(w-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		infoPanel: ui.NewInfoPanel(face, titleFace, h),
	}
	ds.button.CurrentState = int(sess.Strategy())
	ds.syncPanel()
	ds.infoPanel.Show()
	return ds
}

func (d *DemoState) Enter() {
	// Оверлей мог закрыть кадр, рисуем заново
	d.session.Invalidate()
}

func (d *DemoState) Exit() {}

func (d *DemoState) Session() *session.Session {
	return d.session
}

func (d *DemoState) Update(deltaTime float64) error {
	d.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		d.sm.SetState(NewInspectState(d.sm, d))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		d.toggleStrategy()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		d.session.ToggleQuirk()
		d.syncPanel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		d.infoPanel.Toggle()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if d.isClickOnUI(x, y) {
			d.handleUIClick(x, y)
		} else {
			d.handleSceneClick(x, y)
		}
	}
	return nil
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (d *DemoState) isClickOnUI(x, y int) bool {
	mx, my := float32(x), float32(y)
	return d.button.IsClicked(mx, my) || d.indicator.IsClicked(mx, my) || d.infoPanel.Contains(x, y)
}

func (d *DemoState) handleUIClick(x, y int) {
	mx, my := float32(x), float32(y)
	switch {
	case d.button.IsClicked(mx, my):
		if d.button.CanToggle() {
			d.toggleStrategy()
		}
	case d.indicator.IsClicked(mx, my):
		d.infoPanel.Toggle()
	}
}

func (d *DemoState) handleSceneClick(x, y int) {
	res, err := d.session.Click(image.Pt(x, y))
	d.hits = res.Hits
	d.indicator.Pulse()
	d.infoPanel.SetResult(res, err)
}

func (d *DemoState) toggleStrategy() {
	s := d.session.ToggleStrategy()
	d.button.ToggleState()
	d.button.CurrentState = int(s)
	d.syncPanel()
}

func (d *DemoState) syncPanel() {
	d.infoPanel.Vendor = d.session.Vendor()
	d.infoPanel.Renderer = d.session.Renderer()
	d.infoPanel.Quirk = d.session.Quirk().String()
	d.infoPanel.Strategy = d.session.Strategy().String()
}

// Resize вызывается из Layout при изменении размера окна.
func (d *DemoState) Resize(width, height int) {
	if !d.session.Resize(width, height) {
		return
	}
	d.button.X = float32(width - config.ScreenWidth + config.StrategyButtonX)
	d.indicator.X = float32(width - config.IndicatorOffsetX)
	d.infoPanel.Resize(height)
}

func (d *DemoState) Draw(screen *ebiten.Image) {
	if d.session.Dirty() {
		d.lines.Render(d.session.Frame())
	}
	d.lines.Draw(screen)
	d.drawUI(screen)
}

func (d *DemoState) drawUI(screen *ebiten.Image) {
	d.indicator.Draw(screen, ui.HitColor(d.hits))
	d.button.Draw(screen)
	d.infoPanel.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("S: strategy  Q: quirk  I: panel  Tab: hit records  (%.0f fps)", ebiten.ActualFPS()))
}
