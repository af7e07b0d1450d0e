package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/safezone/internal/config"
	"github.com/vovakirdan/safezone/internal/core"
)

// newLogger opens the log destination. An empty path falls back to
// defaultPath; "-" or an empty defaultPath logs to stderr. The returned
// func closes the log file.
func newLogger(prefix, defaultPath string) (*log.Logger, func(), error) {
	path := flagLogPath
	if path == "" {
		path = defaultPath
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" && path != "-" {
		expanded, err := expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadSettings reads the gameplay config and the animation sheet.
// Files named on the command line must load; a config that loads but fails
// validation is replaced by the built-in defaults.
func loadSettings(logger *log.Logger) (*config.Config, *config.AnimationSheet, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	sheet, err := config.LoadAnimations(flagAnimations)
	if err != nil {
		return nil, nil, err
	}
	if err := sheet.Validate(); err != nil {
		logger.Warn("invalid animation sheet, using defaults", "error", err)
		sheet = config.DefaultAnimationSheet()
	}

	return &cfg, &sheet, nil
}

// runtimeConfig builds the per-session runtime settings for a terminal size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickRate:     flagFPS,
		Seed:         flagSeed,
		ShowHitboxes: flagHitboxes,
	}
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
