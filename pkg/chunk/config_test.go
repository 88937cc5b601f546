package chunk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		MinChunkDuration:       5 * time.Second,
		MaxChunkDuration:       30 * time.Second,
		PreferredChunkDuration: 20 * time.Second,
		OverlapDuration:        2 * time.Second,
		MinSilenceForSplit:     400 * time.Millisecond,
		ForceSplitAfterExtra:   5 * time.Second,
		MinChunkSize:           time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		cfg := validConfig()
		cfg.MinChunkDuration = 0
		assert.Error(t, cfg.Validate())

		cfg = validConfig()
		cfg.MinSilenceForSplit = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("MaxBelowMin", func(t *testing.T) {
		cfg := validConfig()
		cfg.MaxChunkDuration = 4 * time.Second
		cfg.PreferredChunkDuration = 4 * time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("PreferredOutsideBounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.PreferredChunkDuration = 31 * time.Second
		assert.Error(t, cfg.Validate())

		cfg = validConfig()
		cfg.PreferredChunkDuration = 4 * time.Second
		assert.Error(t, cfg.Validate())
	})

	t.Run("OverlapAboveMin", func(t *testing.T) {
		cfg := validConfig()
		cfg.OverlapDuration = 5 * time.Second
		assert.Error(t, cfg.Validate())
	})
}
