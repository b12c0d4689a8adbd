package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last samples into a ring buffer
// so the renderer can read how loud the music is. Stream runs on the
// speaker goroutine; Level may be called from the game loop.
type Tap struct {
	Source beep.Streamer

	mu   sync.RWMutex
	ring [][2]float64
	next int
	full bool
}

// NewTap returns a tap keeping up to size samples of src.
func NewTap(src beep.Streamer, size int) *Tap {
	if size < 1 {
		size = 1
	}
	return &Tap{
		Source: src,
		ring:   make([][2]float64, size),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for _, s := range samples[:n] {
			t.ring[t.next] = s
			t.next++
			if t.next == len(t.ring) {
				t.next = 0
				t.full = true
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Level returns the compressed RMS of the last n mono samples, in [0,1].
func (t *Tap) Level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	avail := t.next
	if t.full {
		avail = len(t.ring)
	}
	if n > avail {
		n = avail
	}
	if n <= 0 {
		return 0
	}

	var sum float64
	idx := t.next
	for i := 0; i < n; i++ {
		idx--
		if idx < 0 {
			idx = len(t.ring) - 1
		}
		mono := (t.ring[idx][0] + t.ring[idx][1]) * 0.5
		sum += mono * mono
	}
	// Compressed so quiet passages still move the meter.
	return math.Min(1, math.Pow(math.Sqrt(sum/float64(n)), 0.3))
}
