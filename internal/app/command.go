// Package app собирает командную строку демо: общие флаги, окно и
// подкоманду probe, которая выбирает без окна.
package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"selection-issue/internal/config"
	"selection-issue/internal/event"
	"selection-issue/internal/logging"
	"selection-issue/internal/pick"
	"selection-issue/internal/report"
	"selection-issue/internal/session"
	"selection-issue/pkg/glsel"
)

// Options: разобранные настройки запуска.
type Options struct {
	Settings   config.Settings
	Quirk      glsel.Quirk
	Strategy   pick.Strategy
	Logger     *slog.Logger
	Dispatcher *event.Dispatcher
}

func (o Options) SessionConfig() session.SessionConfig {
	return session.SessionConfig{
		Width:      o.Settings.Width,
		Height:     o.Settings.Height,
		Quirk:      o.Quirk,
		Strategy:   o.Strategy,
		BufferSize: o.Settings.SelectBufferSize,
		Dispatcher: o.Dispatcher,
		Logger:     o.Logger,
	}
}

// WindowFunc открывает окно демо и блокируется до его закрытия.
type WindowFunc func(ctx context.Context, opts Options) error

// Точки по умолчанию для probe: центр, окружность 10 и окружность 50 на 800x600.
var defaultProbePoints = []image.Point{{X: 400, Y: 300}, {X: 480, Y: 300}, {X: 0, Y: 300}}

// NewCommand builds the root command. Without a subcommand it runs window.
func NewCommand(name string, window WindowFunc, stdout, stderr io.Writer) *cli.Command {
	var (
		opts      Options
		closeLog  func() error
		stopPprof func()
	)

	cmd := &cli.Command{
		Name:      name,
		Usage:     "reproduce the GL_SELECT picking issue on 50 concentric circles",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Usage: "surface width in pixels"},
			&cli.IntFlag{Name: "height", Usage: "surface height in pixels"},
			&cli.StringFlag{Name: "quirk", Usage: "select-mode behaviour: none or hit-all"},
			&cli.StringFlag{Name: "strategy", Usage: "hit decode: last-wins or nearest"},
			&cli.IntFlag{Name: "select-buffer", Usage: "select buffer size in uint32 slots"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json"},
			&cli.StringFlag{Name: "log-sink", Usage: "stderr, file or none"},
			&cli.StringFlag{Name: "log-file", Usage: "log file path for the file sink"},
			&cli.StringFlag{Name: "pprof-addr", Usage: "serve pprof on this address"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			settings, err := config.Load()
			if err != nil {
				return ctx, fmt.Errorf("load settings: %w", err)
			}
			settings = applyFlags(settings, cmd)

			opts, err = resolve(settings)
			if err != nil {
				return ctx, err
			}
			opts.Logger, closeLog, err = logging.Init(logging.Config{
				Level:  settings.LogLevel,
				Format: settings.LogFormat,
				Sink:   settings.LogSink,
				File:   settings.LogFile,
			}, name)
			if err != nil {
				return ctx, err
			}
			opts.Dispatcher = event.NewDispatcher()
			opts.Dispatcher.SubscribeAll(event.NewLogListener(opts.Logger))

			stopPprof, err = startPprof(settings.PprofAddr)
			if err != nil {
				opts.Logger.Warn("pprof disabled", "err", err)
				stopPprof = nil
			}
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			if stopPprof != nil {
				stopPprof()
			}
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts.Logger.Info("opening window",
				"width", opts.Settings.Width, "height", opts.Settings.Height,
				"quirk", opts.Quirk.String(), "strategy", opts.Strategy.String())
			return window(ctx, opts)
		},
		Commands: []*cli.Command{
			{
				Name:  "probe",
				Usage: "pick at device points without a window and print the hit records",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "point", Aliases: []string{"p"}, Usage: "device point x,y (repeatable)"},
					&cli.StringFlag{Name: "scenario", Usage: "YAML file with a list of points"},
					&cli.StringFlag{Name: "format", Value: "text", Usage: "text or yaml"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					points, err := probePoints(cmd.StringSlice("point"))
					if err != nil {
						return err
					}
					if path := cmd.String("scenario"); path != "" {
						if points, err = report.LoadScenario(path); err != nil {
							return err
						}
					}
					rep := report.Run(report.Options{
						Width:      opts.Settings.Width,
						Height:     opts.Settings.Height,
						Quirk:      opts.Quirk,
						Strategy:   opts.Strategy,
						BufferSize: opts.Settings.SelectBufferSize,
					}, points)
					return report.Write(stdout, rep, cmd.String("format"))
				},
			},
		},
	}
	return cmd
}

func applyFlags(s config.Settings, cmd *cli.Command) config.Settings {
	if cmd.IsSet("width") && cmd.Int("width") > 0 {
		s.Width = cmd.Int("width")
	}
	if cmd.IsSet("height") && cmd.Int("height") > 0 {
		s.Height = cmd.Int("height")
	}
	if cmd.IsSet("select-buffer") && cmd.Int("select-buffer") > 0 {
		s.SelectBufferSize = cmd.Int("select-buffer")
	}
	for flag, dst := range map[string]*string{
		"quirk":      &s.Quirk,
		"strategy":   &s.Strategy,
		"log-level":  &s.LogLevel,
		"log-format": &s.LogFormat,
		"log-sink":   &s.LogSink,
		"log-file":   &s.LogFile,
		"pprof-addr": &s.PprofAddr,
	} {
		if cmd.IsSet(flag) {
			*dst = strings.TrimSpace(cmd.String(flag))
		}
	}
	return s
}

func resolve(s config.Settings) (Options, error) {
	quirk, err := glsel.ParseQuirk(s.Quirk)
	if err != nil {
		return Options{}, err
	}
	strategy, err := pick.ParseStrategy(s.Strategy)
	if err != nil {
		return Options{}, err
	}
	return Options{Settings: s, Quirk: quirk, Strategy: strategy}, nil
}

// probePoints склеивает значения --point обратно: cli может разрезать "x,y"
// по запятой, а ParsePoints читает числа парами.
func probePoints(raw []string) ([]image.Point, error) {
	if len(raw) == 0 {
		return defaultProbePoints, nil
	}
	return report.ParsePoints(strings.Join(raw, ","))
}
