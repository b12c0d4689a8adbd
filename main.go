package main

import (
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/gesture-nebula/internal/config"
	"github.com/iburimskiy/gesture-nebula/internal/control"
	"github.com/iburimskiy/gesture-nebula/internal/game"
	"github.com/iburimskiy/gesture-nebula/internal/gesture"
	"github.com/iburimskiy/gesture-nebula/internal/landmarks"
	"github.com/iburimskiy/gesture-nebula/internal/nebula"
)

func main() {
	if err := run(); err != nil {
		slog.Error("nebula stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(log)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	field := nebula.NewField(nebula.Options{
		Particles: cfg.Particles,
		Rand:      rand.New(rand.NewSource(seed)),
	})
	opts := gesture.DefaultOptions()
	opts.SwipeSpan = cfg.SwipeSpan
	ctrl := control.NewController(gesture.NewClassifier(opts), field, log)

	// Without a hand tracker the keyboard is the only input.
	var source game.LandmarkSource
	if cfg.Landmarks != "" {
		rp, err := landmarks.OpenReplay(cfg.Landmarks)
		if err != nil {
			return err
		}
		log.Info("replaying hand recording", "path", cfg.Landmarks, "frames", rp.Len())
		source = rp
	} else {
		log.Info("no hand tracker configured, keyboard control only")
	}

	g := game.New(cfg, ctrl, source, log)
	defer g.Close()

	if cfg.Soundtrack != "" {
		if err := g.PlaySoundtrack(cfg.Soundtrack); err != nil {
			log.Warn("soundtrack unavailable", "path", cfg.Soundtrack, "err", err)
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info("starting", "nebula", ctrl.Nebula().Name, "particles", cfg.Particles, "seed", seed)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
