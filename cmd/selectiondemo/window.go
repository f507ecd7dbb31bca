// cmd/selectiondemo/window.go
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"selection-issue/internal/app"
	"selection-issue/internal/config"
	"selection-issue/internal/session"
	"selection-issue/internal/state"
	"selection-issue/pkg/render"
)

type AppGame struct {
	ctx            context.Context
	stateMachine   *state.StateMachine
	demo           *state.DemoState
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт окну его собственный размер: поверхность меняется вместе с окном.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.demo.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func runWindow(ctx context.Context, opts app.Options) error {
	face, err := render.LoadFace(config.FontSize)
	if err != nil {
		return err
	}
	titleFace, err := render.LoadFace(config.TitleFontSize)
	if err != nil {
		return err
	}

	sess := session.NewSession(opts.SessionConfig())
	sm := state.NewStateMachine()
	demo := state.NewDemoState(sm, sess, face, titleFace)
	sm.SetState(demo)

	game := &AppGame{
		ctx:            ctx,
		stateMachine:   sm,
		demo:           demo,
		lastUpdateTime: time.Now(),
	}
	w, h := sess.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(fmt.Sprintf("Selection Issue (%s - %s)", sess.Vendor(), sess.Renderer()))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
