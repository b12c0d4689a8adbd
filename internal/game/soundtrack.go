package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/gesture-nebula/internal/audio"
)

// soundtrack plays an optional looping background track.
type soundtrack struct {
	log      *slog.Logger
	ringSize int

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *audio.Tap
	name     string
	started  time.Time
	played   time.Duration

	paused   bool
	initDone bool

	initSpeaker func(beep.SampleRate, int) error
}

func newSoundtrack(log *slog.Logger, ringSize int) *soundtrack {
	return &soundtrack{log: log, ringSize: ringSize, initSpeaker: speaker.Init}
}

// choose asks for a file with the native dialog and plays it. Cancelling
// the dialog is not an error.
func (s *soundtrack) choose() error {
	path, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select soundtrack: %w", err)
	}
	return s.play(path)
}

// play replaces the current track with the file at path, looped forever.
func (s *soundtrack) play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open soundtrack: %w", err)
	}
	streamer, format, err := audio.Decode(path, f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode soundtrack: %w", err)
	}

	tap := audio.NewTap(beep.Loop(-1, streamer), s.ringSize)
	ctrl := &beep.Ctrl{Streamer: tap}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !s.initDone:
		if err := s.initSpeaker(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		s.initDone = true
	case s.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := s.initSpeaker(format.SampleRate, bufferSize); err != nil {
			// The old track was cleared from the speaker, so forget it too.
			s.stop()
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	s.closeCurrent()

	s.file = f
	s.streamer = streamer
	s.format = format
	s.ctrl = ctrl
	s.tap = tap
	s.name = filepath.Base(path)
	s.paused = false
	s.played = 0
	s.started = time.Now()

	speaker.Play(ctrl)
	s.log.Info("soundtrack playing", "file", s.name, "sample_rate", int(format.SampleRate))
	return nil
}

func (s *soundtrack) closeCurrent() {
	if s.streamer != nil {
		_ = s.streamer.Close()
		s.streamer = nil
	}
	if s.file != nil {
		_ = s.file.Close()
		s.file = nil
	}
}

// stop releases the current track and marks the soundtrack inactive.
func (s *soundtrack) stop() {
	s.closeCurrent()
	s.ctrl = nil
	s.tap = nil
	s.name = ""
	s.paused = false
	s.played = 0
}

func (s *soundtrack) togglePause() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.paused = !s.paused
	s.ctrl.Paused = s.paused
	speaker.Unlock()

	if s.paused {
		s.played += time.Since(s.started)
	} else {
		s.started = time.Now()
	}
}

func (s *soundtrack) active() bool { return s.ctrl != nil }

// level is the loudness of the last ~1/20 s of audio.
func (s *soundtrack) level() float64 {
	if s.tap == nil || s.paused {
		return 0
	}
	return s.tap.Level(s.format.SampleRate.N(time.Second / 20))
}

func (s *soundtrack) elapsed() time.Duration {
	if s.paused {
		return s.played
	}
	return s.played + time.Since(s.started)
}

func (s *soundtrack) close() {
	if s.initDone {
		speaker.Clear()
	}
	s.stop()
}
