package decode

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by ForPath when no decoder claims the
// file extension.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Decoder turns an encoded audio container into interleaved float PCM in
// [-1, 1]. Container decoding is codec-specific and treated as a
// replaceable capability; the processing core never parses containers
// itself (except its own WAV output format).
type Decoder interface {
	// Decode returns interleaved samples, the sample rate and the
	// channel count.
	Decode(ctx context.Context, data []byte) (samples []float32, sampleRate, channels int, err error)
}

// ForPath selects a decoder by file extension.
func ForPath(path string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return WAV{}, nil
	case ".ogg", ".oga":
		return Vorbis{}, nil
	case ".mp3":
		return MP3{}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}
