package chunk

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds the chunk-boundary parameters. Every field is required:
// chunking limits are dictated by the transcription backend per model, so
// the core never invents defaults and fails fast when a value is missing.
type Config struct {
	// MinChunkDuration is the hard floor: no split fires below it.
	MinChunkDuration time.Duration `validate:"required"`
	// MaxChunkDuration is the hard ceiling: a chunk is cut when it is
	// reached regardless of the current frame's speech state.
	MaxChunkDuration time.Duration `validate:"required"`
	// PreferredChunkDuration is where the planner starts looking for a
	// silence gap to cut in.
	PreferredChunkDuration time.Duration `validate:"required"`
	// OverlapDuration is how much trailing audio of chunk N is repeated
	// at the start of chunk N+1.
	OverlapDuration time.Duration `validate:"gte=0"`
	// MinSilenceForSplit is the consecutive silence needed for a
	// preferred-duration split.
	MinSilenceForSplit time.Duration `validate:"required"`
	// ForceSplitAfterExtra extends the preferred duration; past it a much
	// looser silence threshold is accepted so a chunk cannot run away to
	// the ceiling just because a clean gap never appears.
	ForceSplitAfterExtra time.Duration `validate:"gte=0"`
	// MinChunkSize drops finalized chunks shorter than this.
	MinChunkSize time.Duration `validate:"gte=0"`
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("missing required chunking parameters: %w", err)
	}
	if c.MaxChunkDuration < c.MinChunkDuration {
		return fmt.Errorf("MaxChunkDuration (%v) is below MinChunkDuration (%v)", c.MaxChunkDuration, c.MinChunkDuration)
	}
	if c.PreferredChunkDuration < c.MinChunkDuration || c.PreferredChunkDuration > c.MaxChunkDuration {
		return fmt.Errorf("PreferredChunkDuration (%v) is outside [%v, %v]", c.PreferredChunkDuration, c.MinChunkDuration, c.MaxChunkDuration)
	}
	if c.OverlapDuration >= c.MinChunkDuration {
		return fmt.Errorf("OverlapDuration (%v) must be below MinChunkDuration (%v)", c.OverlapDuration, c.MinChunkDuration)
	}
	return nil
}
