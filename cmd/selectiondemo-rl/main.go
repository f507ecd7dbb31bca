// cmd/selectiondemo-rl/main.go
package main

import (
	"context"
	"fmt"
	"image"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/urfave/cli/v3"

	"selection-issue/internal/app"
	"selection-issue/internal/config"
	"selection-issue/internal/selection"
	"selection-issue/internal/session"
	"selection-issue/internal/ui"
	"selection-issue/internal/utils"
)

func main() {
	cmd := app.NewCommand("selectiondemo-rl", runWindow, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "selectiondemo-rl: %v\n", err)
		os.Exit(1)
	}
}

// runWindow показывает ту же сессию через raylib: второй оконный бэкенд,
// чтобы сравнить поведение на разных драйверах.
func runWindow(ctx context.Context, opts app.Options) error {
	sess := session.NewSession(opts.SessionConfig())
	w, h := sess.Size()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w), int32(h), fmt.Sprintf("Selection Issue (%s - %s)", sess.Vendor(), sess.Renderer()))
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyEscape)

	button := ui.NewStrategyButtonRL(float32(w-config.ScreenWidth+config.StrategyButtonX), config.StrategyButtonY, config.StrategyButtonSize, config.StrategyButtonColors)
	button.CurrentState = int(sess.Strategy())
	indicator := ui.NewHitIndicatorRL(float32(w-config.IndicatorOffsetX), config.IndicatorOffsetX, config.IndicatorRadius)
	hits := 0
	inspect := false

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		// --- Обновление ---
		if rl.IsWindowResized() {
			w, h = int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
			if sess.Resize(w, h) {
				button.X = float32(w - config.ScreenWidth + config.StrategyButtonX)
				indicator.X = float32(w - config.IndicatorOffsetX)
			}
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			inspect = !inspect
		}
		if rl.IsKeyPressed(rl.KeyS) {
			sess.ToggleStrategy()
			button.ToggleState()
			button.CurrentState = int(sess.Strategy())
		}
		if rl.IsKeyPressed(rl.KeyQ) {
			sess.ToggleQuirk()
		}
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			mouse := rl.GetMousePosition()
			switch {
			case button.IsClicked(mouse):
				sess.ToggleStrategy()
				button.ToggleState()
				button.CurrentState = int(sess.Strategy())
			case indicator.IsClicked(mouse):
				inspect = !inspect
			default:
				res, _ := sess.Click(image.Pt(int(mouse.X), int(mouse.Y)))
				hits = res.Hits
				indicator.Pulse()
			}
		}

		// --- Отрисовка ---
		frame := sess.Frame()
		rl.BeginDrawing()
		rl.ClearBackground(ui.ToRL(frame.Background))
		for _, s := range frame.Segments {
			rl.DrawLineEx(
				rl.NewVector2(float32(s.X0), float32(utils.FlipY(s.Y0, frame.Height))),
				rl.NewVector2(float32(s.X1), float32(utils.FlipY(s.Y1, frame.Height))),
				float32(config.LineWidth),
				ui.ToRL(s.Color),
			)
		}
		indicator.Draw(ui.HitColor(hits))
		button.Draw()
		drawStatus(sess, h)
		if inspect {
			rl.DrawRectangle(0, 0, int32(w), int32(h), ui.ToRL(config.OverlayColor))
			res, err := sess.Last()
			for i, line := range session.RecordLines(res, err, (h-32)/config.PanelLineHeight) {
				rl.DrawText(line, 16, int32(16+i*config.PanelLineHeight), config.FontSize, ui.ToRL(config.TextLightColor))
			}
		}
		rl.EndDrawing()
	}
	return nil
}

func drawStatus(sess *session.Session, h int) {
	selected := "none"
	if id := sess.Selected(); id != selection.None {
		selected = fmt.Sprintf("circle %d", id)
	}
	line := fmt.Sprintf("quirk %s  strategy %s  selected %s  (S: strategy  Q: quirk  Tab: hit records)",
		sess.Quirk(), sess.Strategy(), selected)
	rl.DrawText(line, 10, int32(h-config.PanelLineHeight-6), config.FontSize, ui.ToRL(config.TextDimColor))
	rl.DrawText(sess.Renderer(), 10, 10, config.FontSize, ui.ToRL(config.TextLightColor))
}
