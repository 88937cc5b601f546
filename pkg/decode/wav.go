package decode

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/speechchunker/pkg/pcm"
)

// WAV decodes 16-bit PCM WAV containers.
type WAV struct{}

var _ Decoder = WAV{}

func (WAV) Decode(_ context.Context, data []byte) ([]float32, int, int, error) {
	samples, sampleRate, channels, err := pcm.DecodeWAV(data)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("unable to decode WAV: %w", err)
	}
	return samples, sampleRate, channels, nil
}
