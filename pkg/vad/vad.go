package vad

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrEngineUnavailable is returned by a classifier constructor when the
// underlying decision engine cannot be loaded or instantiated (for example
// the native library is not present in this build).
var ErrEngineUnavailable = errors.New("voice classification engine unavailable")

// FrameError reports a classification failure for a single frame. It is
// not fatal: the caller skips the frame (treats it as silence) and keeps
// going.
type FrameError struct {
	Err error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("unable to classify frame: %v", e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// Classifier is a per-frame voice/silence decision engine. The engine
// mandates one fixed sample rate and one fixed frame size; all input must
// be resampled and framed to match before classification.
//
// Classify must not be called concurrently on one instance: the engine
// owns scratch state that is overwritten on every call. Close is
// idempotent and must not race with Classify.
type Classifier interface {
	io.Closer

	// SampleRate returns the sample rate the engine requires.
	SampleRate() int
	// FrameSize returns the required samples per frame.
	FrameSize() int
	// Classify reports whether the frame contains speech.
	Classify(ctx context.Context, frame []int16) (bool, error)
}
