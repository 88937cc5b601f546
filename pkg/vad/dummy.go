package vad

import (
	"context"
)

// Dummy is a classifier that always reports the same decision. It backs
// the degraded mode where the real engine is unavailable and the caller
// relies on the downstream backend's own voice handling: every frame is
// reported as speech so nothing gets discarded.
type Dummy struct {
	SampleRateValue int
	FrameSizeValue  int
	DecisionValue   bool
}

var _ Classifier = (*Dummy)(nil)

func NewDummy(sampleRate, frameSize int, decision bool) *Dummy {
	return &Dummy{
		SampleRateValue: sampleRate,
		FrameSizeValue:  frameSize,
		DecisionValue:   decision,
	}
}

func (d *Dummy) Close() error {
	return nil
}

func (d *Dummy) SampleRate() int {
	return d.SampleRateValue
}

func (d *Dummy) FrameSize() int {
	return d.FrameSizeValue
}

func (d *Dummy) Classify(context.Context, []int16) (bool, error) {
	return d.DecisionValue, nil
}
