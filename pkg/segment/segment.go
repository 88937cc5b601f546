package segment

import (
	"fmt"
	"time"
)

// Segment is a half-open [Start, End) speech interval on the original
// audio timeline.
type Segment struct {
	Start time.Duration
	End   time.Duration
}

func (s Segment) Duration() time.Duration {
	return s.End - s.Start
}

func (s Segment) String() string {
	return fmt.Sprintf("[%v..%v)", s.Start, s.End)
}

// Config controls how raw per-frame decisions become merged segments.
type Config struct {
	// MinSpeech drops merged segments shorter than this.
	MinSpeech time.Duration
	// MaxSilence merges segments separated by a gap shorter than this.
	MaxSilence time.Duration
	// Padding extends each merged segment on both sides. Padding from
	// adjacent segments may leave them abutting or slightly overlapping;
	// that is accepted, not corrected.
	Padding time.Duration
}

func (c Config) Validate() error {
	if c.MinSpeech < 0 {
		return fmt.Errorf("MinSpeech must be non-negative, got %v", c.MinSpeech)
	}
	if c.MaxSilence < 0 {
		return fmt.Errorf("MaxSilence must be non-negative, got %v", c.MaxSilence)
	}
	if c.Padding < 0 {
		return fmt.Errorf("Padding must be non-negative, got %v", c.Padding)
	}
	return nil
}
