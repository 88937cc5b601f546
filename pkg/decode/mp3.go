package decode

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/xaionaro-go/speechchunker/pkg/pcm"
)

// MP3 decodes MPEG-1 Layer III streams. The underlying decoder always
// produces 16-bit stereo output regardless of the source channel layout.
type MP3 struct{}

var _ Decoder = MP3{}

func (MP3) Decode(_ context.Context, data []byte) ([]float32, int, int, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("unable to initialize an mp3 decoder: %w", err)
	}

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("unable to decode mp3: %w", err)
	}

	pcm16 := make([]int16, len(raw)/2)
	for i := range pcm16 {
		pcm16[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return pcm.S16ToFloat(pcm16), decoder.SampleRate(), 2, nil
}
