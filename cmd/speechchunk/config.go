package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xaionaro-go/speechchunker/pkg/chunk"
	"github.com/xaionaro-go/speechchunker/pkg/segment"
)

// config is the YAML processing configuration. All durations are in
// seconds; there are no defaults, the chunking limits come from whatever
// the transcription backend mandates.
type config struct {
	Sensitivity float64       `yaml:"sensitivity"`
	RequireVAD  bool          `yaml:"require_vad"`
	Segment     segmentConfig `yaml:"segment"`
	Chunk       chunkConfig   `yaml:"chunk"`
}

type segmentConfig struct {
	MinSpeechDuration  float64 `yaml:"min_speech_duration"`
	MaxSilenceDuration float64 `yaml:"max_silence_duration"`
	SpeechPadding      float64 `yaml:"speech_padding"`
}

type chunkConfig struct {
	MinChunkDuration       float64 `yaml:"min_chunk_duration"`
	MaxChunkDuration       float64 `yaml:"max_chunk_duration"`
	PreferredChunkDuration float64 `yaml:"preferred_chunk_duration"`
	OverlapDuration        float64 `yaml:"overlap_duration"`
	MinSilenceForSplit     float64 `yaml:"min_silence_for_split"`
	ForceSplitAfterExtra   float64 `yaml:"force_split_after_extra"`
	MinChunkSize           float64 `yaml:"min_chunk_size"`
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

func (c config) segmentConfig() segment.Config {
	return segment.Config{
		MinSpeech:  seconds(c.Segment.MinSpeechDuration),
		MaxSilence: seconds(c.Segment.MaxSilenceDuration),
		Padding:    seconds(c.Segment.SpeechPadding),
	}
}

func (c config) chunkConfig() chunk.Config {
	return chunk.Config{
		MinChunkDuration:       seconds(c.Chunk.MinChunkDuration),
		MaxChunkDuration:       seconds(c.Chunk.MaxChunkDuration),
		PreferredChunkDuration: seconds(c.Chunk.PreferredChunkDuration),
		OverlapDuration:        seconds(c.Chunk.OverlapDuration),
		MinSilenceForSplit:     seconds(c.Chunk.MinSilenceForSplit),
		ForceSplitAfterExtra:   seconds(c.Chunk.ForceSplitAfterExtra),
		MinChunkSize:           seconds(c.Chunk.MinChunkSize),
	}
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read the config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse the config %q: %w", path, err)
	}
	return cfg, nil
}
