//go:build fvad
// +build fvad

package fvad

import (
	"context"
	"fmt"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	libfvad "github.com/josharian/fvad"

	"github.com/xaionaro-go/speechchunker/pkg/vad"
)

// The engine accepts 8/16/32/48 kHz and 10/20/30ms frames; we fix the
// widest frame window at 16 kHz.
const (
	SampleRate = 16000
	FrameSize  = 480 // 30ms at 16kHz
)

// Classifier wraps libfvad (the WebRTC voice activity detector). One
// instance owns one detector; the detector's internal state is scratch
// memory overwritten on every Classify call, hence the lock.
type Classifier struct {
	Locker   sync.Mutex
	Detector *libfvad.Detector
}

var _ vad.Classifier = (*Classifier)(nil)

func New(sensitivity vad.Sensitivity) (*Classifier, error) {
	if err := sensitivity.Validate(); err != nil {
		return nil, err
	}

	detector := libfvad.NewDetector()
	if detector == nil {
		return nil, fmt.Errorf("%w: unable to instantiate the detector", vad.ErrEngineUnavailable)
	}
	if err := detector.SetSampleRate(SampleRate); err != nil {
		detector.Close()
		return nil, fmt.Errorf("unable to set sample rate %d: %w", SampleRate, err)
	}
	if err := detector.SetMode(sensitivity.Mode()); err != nil {
		detector.Close()
		return nil, fmt.Errorf("unable to set mode %d: %w", sensitivity.Mode(), err)
	}
	return &Classifier{Detector: detector}, nil
}

func (c *Classifier) Close() error {
	c.Locker.Lock()
	defer c.Locker.Unlock()
	if c.Detector == nil {
		return nil
	}
	c.Detector.Close()
	c.Detector = nil
	return nil
}

func (c *Classifier) SampleRate() int {
	return SampleRate
}

func (c *Classifier) FrameSize() int {
	return FrameSize
}

func (c *Classifier) Classify(ctx context.Context, frame []int16) (bool, error) {
	if len(frame) != FrameSize {
		return false, fmt.Errorf("expected exactly %d samples, got %d", FrameSize, len(frame))
	}

	c.Locker.Lock()
	defer c.Locker.Unlock()
	if c.Detector == nil {
		return false, fmt.Errorf("classifier is already closed")
	}

	speech, err := c.Detector.Process(frame)
	if err != nil {
		logger.Tracef(ctx, "engine rejected a frame: %v", err)
		return false, &vad.FrameError{Err: err}
	}
	return speech, nil
}
