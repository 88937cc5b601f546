package segment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatistics(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		segments := []Segment{
			{Start: 0, End: 2 * time.Second},
			{Start: 3 * time.Second, End: 5 * time.Second},
		}
		stats := ComputeStatistics(segments, 10*time.Second, 20*time.Millisecond)
		assert.Equal(t, 2, stats.TotalSegments)
		assert.InDelta(t, 0.4, stats.SpeechRatio, 1e-9)
		assert.InDelta(t, 0.6, stats.SilenceRatio, 1e-9)
		assert.InDelta(t, 0.4, stats.CompressionRatio, 1e-9)
		assert.Equal(t, 2*time.Second, stats.AverageSegment)
		assert.Equal(t, 20*time.Millisecond, stats.ProcessingTime)
	})

	t.Run("NoSegments", func(t *testing.T) {
		stats := ComputeStatistics(nil, 10*time.Second, 0)
		assert.Equal(t, 0, stats.TotalSegments)
		assert.Zero(t, stats.SpeechRatio)
		assert.InDelta(t, 1.0, stats.SilenceRatio, 1e-9)
		assert.Zero(t, stats.AverageSegment)
	})

	t.Run("PaddingOverflowClamped", func(t *testing.T) {
		// Padded segments can sum past the total duration.
		segments := []Segment{{Start: 0, End: 12 * time.Second}}
		stats := ComputeStatistics(segments, 10*time.Second, 0)
		assert.InDelta(t, 1.0, stats.SpeechRatio, 1e-9)
		assert.Zero(t, stats.SilenceRatio)
	})

	t.Run("ZeroTotal", func(t *testing.T) {
		stats := ComputeStatistics([]Segment{{Start: 0, End: time.Second}}, 0, 0)
		assert.Zero(t, stats.SpeechRatio)
	})
}
