// Package landmarks provides hand landmark producers for the game loop.
package landmarks

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iburimskiy/gesture-nebula/internal/gesture"
)

// ErrEmpty is returned when a recording holds no frames.
var ErrEmpty = errors.New("landmark recording is empty")

// Replay plays back a recorded hand tracking session, one frame per Poll,
// looping at the end. It stands in for the camera and tracking model.
type Replay struct {
	frames []gesture.Snapshot
	next   int
}

// ReadReplay parses a JSON-lines recording. Each non-blank line is either
// null (no hand in that frame) or an array of {"x","y","z"} landmarks as
// produced by the tracker. Frames with the wrong landmark count are kept as
// absent frames.
func ReadReplay(r io.Reader) (*Replay, error) {
	var frames []gesture.Snapshot
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var snap gesture.Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if snap != nil && len(snap) != gesture.LandmarkCount {
			snap = nil
		}
		frames = append(frames, snap)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	if len(frames) == 0 {
		return nil, ErrEmpty
	}
	return &Replay{frames: frames}, nil
}

// OpenReplay reads a recording from path.
func OpenReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	rp, err := ReadReplay(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rp, nil
}

// Poll returns the next frame; nil means no hand.
func (r *Replay) Poll() gesture.Snapshot {
	s := r.frames[r.next]
	r.next = (r.next + 1) % len(r.frames)
	return s
}

// Len is the number of frames in the recording.
func (r *Replay) Len() int { return len(r.frames) }
