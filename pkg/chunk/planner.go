package chunk

import (
	"context"
	"fmt"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/xaionaro-go/speechchunker/pkg/pcm"
	"github.com/xaionaro-go/speechchunker/pkg/segment"
	"github.com/xaionaro-go/speechchunker/pkg/vad"
)

// Chunk is a bounded audio slice emitted for downstream transcription,
// independent of speech/silence content. Data is a complete WAV container.
type Chunk struct {
	// ID is a sequence number starting at 0. It has no meaning beyond
	// ordering.
	ID        int
	Data      []byte
	StartTime time.Duration
	EndTime   time.Duration
	// HasOverlap reports that this chunk's content extends meaningfully
	// past what the previous chunk's trailing overlap already covered.
	HasOverlap      bool
	OverlapDuration time.Duration
}

func (c Chunk) Duration() time.Duration {
	return c.EndTime - c.StartTime
}

func (c Chunk) String() string {
	return fmt.Sprintf("chunk %d: %v-%v", c.ID, c.StartTime, c.EndTime)
}

// Result is the outcome of one planning pass.
type Result struct {
	Chunks     []Chunk
	Segments   []segment.Segment
	Statistics segment.Statistics
}

// Planner walks the frame decision stream once and maintains two
// independent state machines concurrently: segment tracking (for the
// statistics) and chunk-boundary tracking (for the chunk list). Running
// both over one pass keeps the reported statistics synchronized with the
// actual chunk contents.
//
// The planner holds the classifier as a capability and drives the frame
// loop itself; it is not tied to any concrete engine.
type Planner struct {
	classifier    vad.Classifier
	config        Config
	segmentConfig segment.Config
}

func NewPlanner(
	classifier vad.Classifier,
	config Config,
	segmentConfig segment.Config,
) (*Planner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := segmentConfig.Validate(); err != nil {
		return nil, err
	}
	return &Planner{
		classifier:    classifier,
		config:        config,
		segmentConfig: segmentConfig,
	}, nil
}

// openChunk accumulates boundary state for the chunk being formed. It is
// owned exclusively by the planning pass and discarded on finalize.
type openChunk struct {
	start        time.Duration
	end          time.Duration
	frames       int
	speechFrames int
}

// Plan segments mono samples into overlap-aware chunks. The samples are
// classified at the engine's rate, but chunk audio is always extracted
// from the original, non-resampled buffer.
func (p *Planner) Plan(
	ctx context.Context,
	samples []float32,
	sampleRate int,
) (_ *Result, _err error) {
	logger.Debugf(ctx, "planning chunks for %d samples at %dHz", len(samples), sampleRate)
	defer func() { logger.Debugf(ctx, "/planning: %v", _err) }()

	startedAt := time.Now()
	frameDuration := vad.FrameDuration(p.classifier)
	totalDuration := time.Duration(float64(len(samples)) / float64(sampleRate) * float64(time.Second))
	merger := segment.NewMerger(frameDuration, p.segmentConfig)

	var (
		chunks       []Chunk
		current      *openChunk
		silence      time.Duration
		lastChunkEnd time.Duration
	)

	finalize := func(info *openChunk) {
		audio := pcm.ExtractRange(samples, sampleRate, info.start, info.end)
		minSamples := int(p.config.MinChunkSize.Seconds() * float64(sampleRate))
		if len(audio) < minSamples {
			logger.Debugf(ctx, "dropping a %v chunk at %v: below the minimum size", info.end-info.start, info.start)
			lastChunkEnd = info.end
			return
		}

		hasOverlap := len(chunks) > 0 && info.end > lastChunkEnd+p.config.OverlapDuration
		overlap := time.Duration(0)
		if hasOverlap {
			overlap = p.config.OverlapDuration
		}
		chunks = append(chunks, Chunk{
			ID:              len(chunks),
			Data:            pcm.EncodeWAV(audio, sampleRate),
			StartTime:       info.start,
			EndTime:         info.end,
			HasOverlap:      hasOverlap,
			OverlapDuration: overlap,
		})
		lastChunkEnd = info.end
	}

	err := vad.ClassifyAll(ctx, p.classifier, samples, sampleRate, func(frame int, speech bool) {
		merger.Feed(speech)

		if speech {
			silence = 0
		} else {
			silence += frameDuration
		}

		if current == nil {
			current = &openChunk{start: time.Duration(frame) * frameDuration}
		}
		current.end = time.Duration(frame+1) * frameDuration
		current.frames++
		if speech {
			current.speechFrames++
		}

		if !p.shouldSplit(current.end-current.start, silence, speech) {
			return
		}

		finalize(current)
		next := current.end - p.config.OverlapDuration
		if next < 0 {
			next = 0
		}
		current = &openChunk{start: next, end: current.end}
	})
	if err != nil {
		return nil, err
	}

	// The trailing open chunk is always finalized; a tail shorter than
	// one frame rides on it.
	if current != nil && current.frames > 0 {
		if totalDuration > current.end {
			current.end = totalDuration
		}
		finalize(current)
	}

	segments := merger.Finish()
	result := &Result{
		Chunks:     chunks,
		Segments:   segments,
		Statistics: segment.ComputeStatistics(segments, totalDuration, time.Since(startedAt)),
	}
	logger.Debugf(ctx, "planned %d chunks, %d segments", len(result.Chunks), len(result.Segments))
	return result, nil
}

// shouldSplit evaluates the split rules in priority order. The last-frame
// rule is handled by the caller finalizing the trailing open chunk.
func (p *Planner) shouldSplit(duration, silence time.Duration, speech bool) bool {
	if duration >= p.config.MaxChunkDuration {
		return true
	}
	if duration < p.config.MinChunkDuration {
		return false
	}
	if speech {
		return false
	}
	if duration >= p.config.PreferredChunkDuration && silence >= p.config.MinSilenceForSplit {
		return true
	}
	if duration >= p.config.PreferredChunkDuration+p.config.ForceSplitAfterExtra &&
		silence > p.config.MinSilenceForSplit/5 {
		return true
	}
	return false
}
