package decode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// Vorbis decodes Ogg/Vorbis containers.
type Vorbis struct{}

var _ Decoder = Vorbis{}

func (Vorbis) Decode(_ context.Context, data []byte) ([]float32, int, int, error) {
	reader, err := oggvorbis.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("unable to initialize a vorbis reader: %w", err)
	}

	var samples []float32
	buf := make([]float32, 4096*reader.Channels())
	for {
		n, err := reader.Read(buf)
		samples = append(samples, buf[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, 0, fmt.Errorf("unable to decode vorbis: %w", err)
		}
	}
	return samples, reader.SampleRate(), reader.Channels(), nil
}
