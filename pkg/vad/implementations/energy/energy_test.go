package energy

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaionaro-go/speechchunker/pkg/vad"
)

func sineFrame(amplitude float64) []int16 {
	frame := make([]int16, FrameSize)
	for i := range frame {
		frame[i] = int16(amplitude * 32767 * math.Sin(2*math.Pi*440*float64(i)/float64(SampleRate)))
	}
	return frame
}

func TestClassifier(t *testing.T) {
	ctx := context.Background()
	c, err := New(0.5)
	require.NoError(t, err)
	defer c.Close()

	t.Run("LoudFrameIsSpeech", func(t *testing.T) {
		speech, err := c.Classify(ctx, sineFrame(0.5))
		require.NoError(t, err)
		assert.True(t, speech)
	})

	t.Run("SilentFrameIsSilence", func(t *testing.T) {
		speech, err := c.Classify(ctx, make([]int16, FrameSize))
		require.NoError(t, err)
		assert.False(t, speech)
	})

	t.Run("WrongFrameSize", func(t *testing.T) {
		_, err := c.Classify(ctx, make([]int16, FrameSize-1))
		assert.Error(t, err)
	})

	t.Run("HigherModeIsStricter", func(t *testing.T) {
		lenient, err := New(0)
		require.NoError(t, err)
		strict, err := New(1)
		require.NoError(t, err)
		quiet := sineFrame(0.02) // RMS around 460 on the int16 scale

		speech, err := lenient.Classify(ctx, quiet)
		require.NoError(t, err)
		assert.True(t, speech)
		speech, err = strict.Classify(ctx, quiet)
		require.NoError(t, err)
		assert.False(t, speech)
	})

	t.Run("InvalidSensitivity", func(t *testing.T) {
		_, err := New(1.5)
		assert.Error(t, err)
	})
}

func TestImplementsClassifier(t *testing.T) {
	c, err := New(0.5)
	require.NoError(t, err)
	var _ vad.Classifier = c
	assert.Equal(t, SampleRate, c.SampleRate())
	assert.Equal(t, FrameSize, c.FrameSize())
}
