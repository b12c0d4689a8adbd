package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != WindowWidth || cfg.Height != WindowHeight {
		t.Fatalf("expected %dx%d, got %dx%d", WindowWidth, WindowHeight, cfg.Width, cfg.Height)
	}
	if cfg.Particles != 2000 {
		t.Fatalf("expected 2000 particles, got %d", cfg.Particles)
	}
	if cfg.SwipeSpan != 640 {
		t.Fatalf("expected swipe span 640, got %v", cfg.SwipeSpan)
	}
	if cfg.Landmarks != "" || cfg.Soundtrack != "" {
		t.Fatalf("expected no inputs, got %q %q", cfg.Landmarks, cfg.Soundtrack)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NEBULA_PARTICLES", "500")
	t.Setenv("NEBULA_SEED", "42")
	t.Setenv("NEBULA_LANDMARKS", "hand.jsonl")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Particles != 500 || cfg.Seed != 42 || cfg.Landmarks != "hand.jsonl" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]struct {
		key, value, want string
	}{
		"not a number":   {"NEBULA_WIDTH", "wide", "parse env:"},
		"zero particles": {"NEBULA_PARTICLES", "0", "invalid particle count"},
		"negative span":  {"NEBULA_SWIPE_SPAN", "-1", "invalid swipe span"},
		"zero height":    {"NEBULA_HEIGHT", "0", "invalid window size"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := (Config{LogLevel: in}).Level(); got != want {
			t.Fatalf("level %q: expected %v, got %v", in, want, got)
		}
	}
}
