package vad

import (
	"context"
	"errors"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/xaionaro-go/speechchunker/pkg/pcm"
)

// FrameDuration returns the duration of one classifier frame.
func FrameDuration(c Classifier) time.Duration {
	return time.Second * time.Duration(c.FrameSize()) / time.Duration(c.SampleRate())
}

// ClassifyAll resamples mono samples to the classifier's required rate,
// slices them into frames and reports one decision per frame, in frame
// order, via fn. A trailing partial frame is not classified.
//
// A FrameError from the engine is logged and reported as silence; any
// other error aborts the loop. The context is checked once before the
// loop starts; a running loop is not cancellable.
func ClassifyAll(
	ctx context.Context,
	c Classifier,
	samples []float32,
	sampleRate int,
	fn func(frame int, speech bool),
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	resampled := pcm.Resample(samples, sampleRate, c.SampleRate())
	pcm16 := pcm.FloatToS16(resampled)
	frameSize := c.FrameSize()
	frameCount := len(pcm16) / frameSize
	logger.Debugf(ctx, "classifying %d frames of %d samples", frameCount, frameSize)

	for frame := 0; frame < frameCount; frame++ {
		speech, err := c.Classify(ctx, pcm16[frame*frameSize:(frame+1)*frameSize])
		if err != nil {
			var frameErr *FrameError
			if !errors.As(err, &frameErr) {
				return err
			}
			logger.Warnf(ctx, "skipping frame %d: %v", frame, err)
			speech = false
		}
		fn(frame, speech)
	}
	return nil
}
