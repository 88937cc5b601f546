package decode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaionaro-go/speechchunker/pkg/pcm"
)

func TestForPath(t *testing.T) {
	t.Run("Selection", func(t *testing.T) {
		d, err := ForPath("/audio/recording.wav")
		require.NoError(t, err)
		assert.IsType(t, WAV{}, d)

		d, err = ForPath("/audio/RECORDING.OGG")
		require.NoError(t, err)
		assert.IsType(t, Vorbis{}, d)

		d, err = ForPath("podcast.mp3")
		require.NoError(t, err)
		assert.IsType(t, MP3{}, d)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := ForPath("/audio/recording.flac")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		_, err = ForPath("noextension")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestWAVDecoder(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		in := []float32{0, 0.5, -0.5, 0.25}
		samples, sampleRate, channels, err := WAV{}.Decode(ctx, pcm.EncodeWAV(in, 22050))
		require.NoError(t, err)
		assert.Equal(t, 22050, sampleRate)
		assert.Equal(t, 1, channels)
		require.Len(t, samples, len(in))
		for i := range in {
			assert.InDelta(t, in[i], samples[i], 1.0/32767)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		_, _, _, err := WAV{}.Decode(ctx, []byte("definitely not audio"))
		assert.Error(t, err)
	})
}

func TestVorbisDecoder(t *testing.T) {
	_, _, _, err := Vorbis{}.Decode(context.Background(), []byte("not an ogg stream"))
	assert.Error(t, err)
}

func TestMP3Decoder(t *testing.T) {
	_, _, _, err := MP3{}.Decode(context.Background(), []byte("not an mp3 stream"))
	assert.Error(t, err)
}
