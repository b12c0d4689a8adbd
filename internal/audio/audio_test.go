package audio

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// constStreamer yields value on both channels forever.
func constStreamer(value float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{value, value}
		}
		return len(samples), true
	})
}

func TestTapEmpty(t *testing.T) {
	tap := NewTap(constStreamer(0.5), 16)
	if got := tap.Level(8); got != 0 {
		t.Fatalf("expected 0 before any audio, got %v", got)
	}
}

func TestTapMeasuresRecentSamples(t *testing.T) {
	tap := NewTap(constStreamer(0.5), 16)
	if n, ok := tap.Stream(make([][2]float64, 10)); n != 10 || !ok {
		t.Fatalf("expected 10 samples streamed, got %d %v", n, ok)
	}

	want := math.Pow(0.5, 0.3)
	if got := tap.Level(100); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTapWrapsAround(t *testing.T) {
	tap := NewTap(constStreamer(0), 4)
	tap.Stream(make([][2]float64, 6))

	tap.Source = constStreamer(1)
	tap.Stream(make([][2]float64, 2))

	if got := tap.Level(2); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected full level for newest samples, got %v", got)
	}
	if got := tap.Level(4); math.Abs(got-math.Pow(math.Sqrt(0.5), 0.3)) > 1e-9 {
		t.Fatalf("expected mixed level across the ring, got %v", got)
	}
}

func TestDecodeRejectsUnknownExtension(t *testing.T) {
	_, _, err := Decode("track.ogg", io.NopCloser(nil))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDecodeWavThroughTap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.WAV")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	if err := wav.Encode(out, beep.Take(2000, constStreamer(0.5)), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	streamer, got, err := Decode(path, in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	defer streamer.Close()

	if got.SampleRate != format.SampleRate {
		t.Fatalf("expected sample rate %v, got %v", format.SampleRate, got.SampleRate)
	}

	// The codec does not round-trip amplitude exactly, so the expected level
	// is derived from the samples the tap actually passed through.
	tap := NewTap(streamer, 512)
	buf := make([][2]float64, 256)
	var sum float64
	for i := 0; i < 4; i++ {
		n, ok := tap.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("expected %d decoded samples, got %d %v", len(buf), n, ok)
		}
		if i < 2 {
			continue
		}
		for _, s := range buf {
			mono := (s[0] + s[1]) * 0.5
			sum += mono * mono
		}
	}
	if sum == 0 {
		t.Fatal("expected audible samples from the decoded tone")
	}

	want := math.Min(1, math.Pow(math.Sqrt(sum/512), 0.3))
	if got := tap.Level(512); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected level %v, got %v", want, got)
	}
}
