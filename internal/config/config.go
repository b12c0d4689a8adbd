package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Gesture Nebula - open/close hand to scale, swipe to switch, +/- and arrows as fallback"

	VisualRingSize = 8192

	// HUD layout
	HUDMargin     = 12
	HUDLineHeight = 16
	MeterWidth    = 120
	MeterHeight   = 6
)

// Config holds the settings that can be overridden from the environment.
type Config struct {
	Width  int `env:"NEBULA_WIDTH" envDefault:"1280"`
	Height int `env:"NEBULA_HEIGHT" envDefault:"720"`

	Particles int `env:"NEBULA_PARTICLES" envDefault:"2000"`

	// Seed fixes the particle random source; 0 seeds from the clock.
	Seed int64 `env:"NEBULA_SEED" envDefault:"0"`

	// SwipeSpan is the capture width, in pixels, that normalized landmark x
	// is projected onto before comparing against the swipe threshold.
	SwipeSpan float64 `env:"NEBULA_SWIPE_SPAN" envDefault:"640"`

	// Landmarks is a JSON-lines recording replayed as the hand tracker.
	Landmarks string `env:"NEBULA_LANDMARKS"`

	// Soundtrack is played in a loop from startup when set.
	Soundtrack string `env:"NEBULA_SOUNDTRACK"`

	LogLevel string `env:"NEBULA_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Particles <= 0 {
		return Config{}, fmt.Errorf("invalid particle count %d", cfg.Particles)
	}
	if cfg.SwipeSpan <= 0 {
		return Config{}, fmt.Errorf("invalid swipe span %v", cfg.SwipeSpan)
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
