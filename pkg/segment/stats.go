package segment

import (
	"time"
)

// Statistics is a read-only summary derived from a final segment list.
// It is recomputed per invocation and never cached.
type Statistics struct {
	TotalSegments    int
	SpeechRatio      float64
	SilenceRatio     float64
	CompressionRatio float64
	ProcessingTime   time.Duration
	AverageSegment   time.Duration
}

// ComputeStatistics summarizes segments against the total duration of the
// source audio. Overlap introduced by padding is counted as-is; ratios are
// clamped to [0, 1].
func ComputeStatistics(segments []Segment, total, processingTime time.Duration) Statistics {
	stats := Statistics{
		TotalSegments:  len(segments),
		ProcessingTime: processingTime,
	}
	if total <= 0 {
		return stats
	}

	var speech time.Duration
	for _, seg := range segments {
		speech += seg.Duration()
	}

	ratio := float64(speech) / float64(total)
	if ratio > 1 {
		ratio = 1
	}
	stats.SpeechRatio = ratio
	stats.SilenceRatio = 1 - ratio
	stats.CompressionRatio = ratio
	if len(segments) > 0 {
		stats.AverageSegment = speech / time.Duration(len(segments))
	}
	return stats
}
