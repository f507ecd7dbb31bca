package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const defaultLogFile = "selection-issue.log"

type Config struct {
	Level      string
	Format     string
	Sink       string
	File       string
	AddSource  bool
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init builds a slog logger from cfg, installs it as the default and returns
// a function that releases the sink.
func Init(cfg Config, app string) (*slog.Logger, func() error, error) {
	writer, closeFn, err := resolveWriter(cfg)
	if err != nil {
		return nil, nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level), AddSource: cfg.AddSource}

	var handler slog.Handler
	switch Format(strings.ToLower(strings.TrimSpace(cfg.Format))) {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	case FormatText, "":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		_ = closeFn()
		return nil, nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	logger := slog.New(handler).With(slog.String("app", app))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

func ParseLevel(value string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func resolveWriter(cfg Config) (io.Writer, func() error, error) {
	sink := Sink(strings.ToLower(strings.TrimSpace(cfg.Sink)))
	switch sink {
	case SinkNone:
		return io.Discard, func() error { return nil }, nil
	case SinkStderr, "":
		return os.Stderr, func() error { return nil }, nil
	case SinkFile:
		path := strings.TrimSpace(cfg.File)
		if path == "" {
			path = defaultLogFile
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		rot := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    orDefault(cfg.MaxSizeMB, 10),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAgeDays, 7),
		}
		return rot, rot.Close, nil
	default:
		return nil, nil, fmt.Errorf("logging: unknown sink %q", cfg.Sink)
	}
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
