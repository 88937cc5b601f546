package energy

import (
	"context"
	"fmt"
	"math"

	"github.com/xaionaro-go/speechchunker/pkg/vad"
)

const (
	SampleRate = 16000
	FrameSize  = 480 // 30ms at 16kHz
)

// RMS thresholds per engine mode, on the int16 scale. Higher modes demand
// more energy before a frame counts as speech.
var modeThresholds = [4]float64{250, 500, 1000, 2000}

// Classifier is a pure-Go RMS-energy classifier. It is nowhere near as
// discriminating as the native engine but needs no external resources,
// which makes it useful for tests and as an explicit opt-in.
type Classifier struct {
	Threshold float64
}

var _ vad.Classifier = (*Classifier)(nil)

func New(sensitivity vad.Sensitivity) (*Classifier, error) {
	if err := sensitivity.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{Threshold: modeThresholds[sensitivity.Mode()]}, nil
}

func (c *Classifier) Close() error {
	return nil
}

func (c *Classifier) SampleRate() int {
	return SampleRate
}

func (c *Classifier) FrameSize() int {
	return FrameSize
}

func (c *Classifier) Classify(_ context.Context, frame []int16) (bool, error) {
	if len(frame) != FrameSize {
		return false, fmt.Errorf("expected exactly %d samples, got %d", FrameSize, len(frame))
	}
	var sumSquares float64
	for _, sample := range frame {
		v := float64(sample)
		sumSquares += v * v
	}
	rms := math.Sqrt(sumSquares / float64(len(frame)))
	return rms > c.Threshold, nil
}
