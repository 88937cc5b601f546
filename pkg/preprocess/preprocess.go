package preprocess

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"

	"github.com/xaionaro-go/speechchunker/pkg/chunk"
	"github.com/xaionaro-go/speechchunker/pkg/decode"
	"github.com/xaionaro-go/speechchunker/pkg/pcm"
	"github.com/xaionaro-go/speechchunker/pkg/segment"
	"github.com/xaionaro-go/speechchunker/pkg/vad"
	"github.com/xaionaro-go/speechchunker/pkg/vad/implementations/fvad"
)

const defaultCacheEntries = 4

// PCM is decoded source audio: interleaved float samples in [-1, 1] at
// any sample rate and channel count.
type PCM struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// TimeRange restricts processing to [Start, End) of the source audio.
type TimeRange struct {
	Start time.Duration
	End   time.Duration
}

// Options configures a Preprocessor. Segment and Chunk carry no implicit
// defaults: choosing them is the caller's concern.
type Options struct {
	Sensitivity vad.Sensitivity
	// RequireVAD makes an unavailable classification engine fatal instead
	// of falling back to server-side voice handling.
	RequireVAD bool
	Segment    segment.Config
	Chunk      chunk.Config
	// NewClassifier overrides the engine constructor; nil means the
	// native engine.
	NewClassifier func(vad.Sensitivity) (vad.Classifier, error)
	// CacheEntries bounds the decoded-source cache; 0 means a small
	// default.
	CacheEntries int
}

// Preprocessor orchestrates classifier initialization and the two
// processing modes. One instance owns at most one classifier and must not
// be shared across goroutines; independent files processed in parallel
// each get their own Preprocessor.
type Preprocessor struct {
	options    Options
	classifier vad.Classifier
	degraded   bool
	cache      *sourceCache
}

// New initializes the classifier engine (the only suspending step; once
// it is up, classification is synchronous and CPU-bound).
//
// When the engine's binary resource is missing and RequireVAD is not set,
// the preprocessor enters a degraded mode: every frame counts as speech
// and the downstream transcription backend is expected to do its own
// voice handling. Any other initialization failure is fatal.
func New(ctx context.Context, options Options) (*Preprocessor, error) {
	if err := options.Sensitivity.Validate(); err != nil {
		return nil, err
	}
	if err := options.Segment.Validate(); err != nil {
		return nil, err
	}
	if err := options.Chunk.Validate(); err != nil {
		return nil, err
	}

	newClassifier := options.NewClassifier
	if newClassifier == nil {
		newClassifier = func(s vad.Sensitivity) (vad.Classifier, error) {
			return fvad.New(s)
		}
	}

	cacheEntries := options.CacheEntries
	if cacheEntries == 0 {
		cacheEntries = defaultCacheEntries
	}

	p := &Preprocessor{
		options: options,
		cache:   newSourceCache(cacheEntries),
	}

	classifier, err := newClassifier(options.Sensitivity)
	switch {
	case err == nil:
		p.classifier = classifier
	case errors.Is(err, vad.ErrEngineUnavailable) && !options.RequireVAD:
		p.degraded = true
		logger.Warnf(ctx, "voice detection is unavailable, relying on the transcription backend's own voice handling: %v", err)
	default:
		return nil, fmt.Errorf("unable to initialize the voice classifier: %w", err)
	}
	return p, nil
}

// Degraded reports whether voice detection fell back to server-side
// handling.
func (p *Preprocessor) Degraded() bool {
	return p.degraded
}

func (p *Preprocessor) currentClassifier() vad.Classifier {
	if p.degraded {
		return vad.NewDummy(fvad.SampleRate, fvad.FrameSize, true)
	}
	return p.classifier
}

// monoInput mixes the input down to one channel and applies the optional
// time-range trim by plain sample-index slicing.
func monoInput(input PCM, timeRange *TimeRange) []float32 {
	mono := pcm.MixToMono(input.Samples, input.Channels)
	if timeRange == nil {
		return mono
	}
	return pcm.ExtractRange(mono, input.SampleRate, timeRange.Start, timeRange.End)
}

// ProcessForChunking runs the single-pass planner over the input and
// returns overlap-aware chunks plus the synchronized segment statistics.
// In degraded mode the chunks come out the same shape, only without
// silence-guided boundaries.
func (p *Preprocessor) ProcessForChunking(
	ctx context.Context,
	input PCM,
	timeRange *TimeRange,
) (*chunk.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mono := monoInput(input, timeRange)
	planner, err := chunk.NewPlanner(p.currentClassifier(), p.options.Chunk, p.options.Segment)
	if err != nil {
		return nil, err
	}
	return planner.Plan(ctx, mono, input.SampleRate)
}

// ExtractSpeech returns a single WAV buffer containing only concatenated
// speech-segment audio, plus the statistics of the segment list. In
// degraded mode no silence is removed: the (possibly trimmed) input is
// passed through as one segment.
func (p *Preprocessor) ExtractSpeech(
	ctx context.Context,
	input PCM,
	timeRange *TimeRange,
) ([]byte, segment.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return nil, segment.Statistics{}, err
	}

	startedAt := time.Now()
	mono := monoInput(input, timeRange)
	totalDuration := time.Duration(float64(len(mono)) / float64(input.SampleRate) * float64(time.Second))

	var segments []segment.Segment
	if p.degraded {
		if len(mono) > 0 {
			segments = []segment.Segment{{Start: 0, End: totalDuration}}
		}
	} else {
		merger := segment.NewMerger(vad.FrameDuration(p.classifier), p.options.Segment)
		err := vad.ClassifyAll(ctx, p.classifier, mono, input.SampleRate, func(_ int, speech bool) {
			merger.Feed(speech)
		})
		if err != nil {
			return nil, segment.Statistics{}, err
		}
		segments = merger.Finish()
	}

	var speech []float32
	for _, seg := range segments {
		speech = append(speech, pcm.ExtractRange(mono, input.SampleRate, seg.Start, seg.End)...)
	}

	stats := segment.ComputeStatistics(segments, totalDuration, time.Since(startedAt))
	return pcm.EncodeWAV(speech, input.SampleRate), stats, nil
}

// LoadFile decodes a source file through the bounded cache. The decoder
// is chosen by file extension; a decoding failure is fatal and propagated
// unchanged.
func (p *Preprocessor) LoadFile(ctx context.Context, path string) (PCM, error) {
	if err := ctx.Err(); err != nil {
		return PCM{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return PCM{}, fmt.Errorf("unable to stat %q: %w", path, err)
	}
	key := sourceKey{path: path, modTime: info.ModTime().UnixNano(), size: info.Size()}
	if cached, ok := p.cache.get(key); ok {
		logger.Debugf(ctx, "using the cached decode of %q", path)
		return cached, nil
	}

	decoder, err := decode.ForPath(path)
	if err != nil {
		return PCM{}, fmt.Errorf("unable to pick a decoder for %q: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PCM{}, fmt.Errorf("unable to read %q: %w", path, err)
	}
	samples, sampleRate, channels, err := decoder.Decode(ctx, data)
	if err != nil {
		return PCM{}, err
	}

	result := PCM{Samples: samples, SampleRate: sampleRate, Channels: channels}
	p.cache.put(key, result)
	return result, nil
}

// Close releases the classifier. It is idempotent.
func (p *Preprocessor) Close() error {
	var mErr *multierror.Error
	if p.classifier != nil {
		mErr = multierror.Append(mErr, p.classifier.Close())
		p.classifier = nil
	}
	return mErr.ErrorOrNil()
}
