// Package audio decodes soundtrack files and measures their loudness while
// they play.
package audio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported audio file")

// Patterns lists the file dialog filters for supported formats.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// Decode picks a decoder from the extension of name and decodes r.
func Decode(name string, r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".wav":
		return wav.Decode(r)
	case ".mp3":
		return mp3.Decode(r)
	case ".flac":
		return flac.Decode(r)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
}
