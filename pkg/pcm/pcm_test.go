package pcm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixToMono(t *testing.T) {
	t.Run("Mono_Passthrough", func(t *testing.T) {
		in := []float32{0.1, 0.2, 0.3}
		out := MixToMono(in, 1)
		assert.Equal(t, in, out)
	})

	t.Run("Stereo", func(t *testing.T) {
		in := []float32{1, 0, 0.5, -0.5, -1, 1}
		out := MixToMono(in, 2)
		require.Len(t, out, 3)
		assert.InDelta(t, 0.5, out[0], 1e-6)
		assert.InDelta(t, 0.0, out[1], 1e-6)
		assert.InDelta(t, 0.0, out[2], 1e-6)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, MixToMono(nil, 2))
	})
}

func TestMixToMonoPlanar(t *testing.T) {
	t.Run("TwoChannels", func(t *testing.T) {
		out := MixToMonoPlanar([][]float32{{1, 0.5}, {0, -0.5}})
		require.Len(t, out, 2)
		assert.InDelta(t, 0.5, out[0], 1e-6)
		assert.InDelta(t, 0.0, out[1], 1e-6)
	})

	t.Run("UnevenLengths", func(t *testing.T) {
		out := MixToMonoPlanar([][]float32{{1, 1}, {1}})
		require.Len(t, out, 2)
		assert.InDelta(t, 1.0, out[0], 1e-6)
		assert.InDelta(t, 0.5, out[1], 1e-6)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, MixToMonoPlanar(nil))
	})
}

func TestResample(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		in := []float32{0.1, 0.2, 0.3, 0.4}
		out := Resample(in, 44100, 44100)
		// Identity must return the input unchanged, without copying.
		assert.Same(t, &in[0], &out[0])
	})

	t.Run("Downsample_Halves_Length", func(t *testing.T) {
		in := make([]float32, 100)
		for i := range in {
			in[i] = float32(i) / 100
		}
		out := Resample(in, 32000, 16000)
		require.Len(t, out, 50)
		// Every second sample survives exactly.
		assert.InDelta(t, in[0], out[0], 1e-6)
		assert.InDelta(t, in[2], out[1], 1e-6)
	})

	t.Run("Upsample_Interpolates", func(t *testing.T) {
		in := []float32{0, 1}
		out := Resample(in, 8000, 16000)
		require.Len(t, out, 4)
		assert.InDelta(t, 0.0, out[0], 1e-6)
		assert.InDelta(t, 0.5, out[1], 1e-6)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, Resample(nil, 44100, 16000))
	})
}

func TestFloatToS16(t *testing.T) {
	t.Run("Scaling", func(t *testing.T) {
		out := FloatToS16([]float32{-1, 0, 1})
		assert.Equal(t, []int16{-32768, 0, 32767}, out)
	})

	t.Run("Clamping", func(t *testing.T) {
		out := FloatToS16([]float32{-2, 2})
		assert.Equal(t, []int16{-32768, 32767}, out)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		in := []float32{-0.75, -0.25, 0, 0.25, 0.75}
		out := S16ToFloat(FloatToS16(in))
		require.Len(t, out, len(in))
		for i := range in {
			assert.InDelta(t, in[i], out[i], 1.0/32767)
		}
	})
}

func TestExtractRange(t *testing.T) {
	samples := make([]float32, 1000) // 1s at 1kHz
	for i := range samples {
		samples[i] = float32(i)
	}

	t.Run("Middle", func(t *testing.T) {
		out := ExtractRange(samples, 1000, 100*time.Millisecond, 200*time.Millisecond)
		require.Len(t, out, 100)
		assert.Equal(t, float32(100), out[0])
	})

	t.Run("ClampsToBuffer", func(t *testing.T) {
		out := ExtractRange(samples, 1000, -time.Second, 10*time.Second)
		assert.Len(t, out, 1000)
	})

	t.Run("EmptyRange", func(t *testing.T) {
		assert.Nil(t, ExtractRange(samples, 1000, time.Second, time.Second))
		assert.Nil(t, ExtractRange(samples, 1000, 2*time.Second, time.Second))
	})
}
