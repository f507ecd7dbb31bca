package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvWidth        = "SELECTION_WIDTH"
	EnvHeight       = "SELECTION_HEIGHT"
	EnvStrategy     = "SELECTION_STRATEGY"
	EnvQuirk        = "SELECTION_QUIRK"
	EnvSelectBuffer = "SELECTION_SELECT_BUFFER"
	EnvLogLevel     = "SELECTION_LOG_LEVEL"
	EnvLogFormat    = "SELECTION_LOG_FORMAT"
	EnvLogSink      = "SELECTION_LOG_SINK"
	EnvLogFile      = "SELECTION_LOG_FILE"
	EnvPprofAddr    = "SELECTION_PPROF_ADDR"
)

// Settings: параметры запуска, которые можно поменять без пересборки.
type Settings struct {
	Width            int
	Height           int
	Strategy         string
	Quirk            string
	SelectBufferSize int
	LogLevel         string
	LogFormat        string
	LogSink          string
	LogFile          string
	PprofAddr        string
}

func Defaults() Settings {
	return Settings{
		Width:            ScreenWidth,
		Height:           ScreenHeight,
		Strategy:         "last-wins",
		Quirk:            "none",
		SelectBufferSize: SelectBufferSize,
		LogLevel:         "info",
		LogFormat:        "text",
		LogSink:          "stderr",
	}
}

// Load reads a .env file from the working directory or the executable's
// directory, if there is one, and then applies SELECTION_* variables.
func Load() (Settings, error) {
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return Settings{}, err
			}
			break
		}
	}
	return Defaults().WithEnv(), nil
}

// WithEnv накладывает переменные окружения поверх s. Пустые и битые значения игнорируются.
func (s Settings) WithEnv() Settings {
	applyString := func(dst *string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
	applyInt := func(dst *int, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return
		}
		*dst = n
	}

	applyInt(&s.Width, EnvWidth)
	applyInt(&s.Height, EnvHeight)
	applyString(&s.Strategy, EnvStrategy)
	applyString(&s.Quirk, EnvQuirk)
	applyInt(&s.SelectBufferSize, EnvSelectBuffer)
	applyString(&s.LogLevel, EnvLogLevel)
	applyString(&s.LogFormat, EnvLogFormat)
	applyString(&s.LogSink, EnvLogSink)
	applyString(&s.LogFile, EnvLogFile)
	applyString(&s.PprofAddr, EnvPprofAddr)
	return s
}
