package segment

import (
	"time"
)

// Merger converts an ordered per-frame decision stream into speech
// segments: contiguous speech frames open and extend a raw segment,
// silence closes it. Finish post-processes the raw segments (merge
// across short gaps, pad edges, drop short ones).
//
// Feed must be called once per frame, in frame order. A Merger is
// single-use: after Finish the instance is exhausted.
type Merger struct {
	frameDuration time.Duration
	config        Config

	frame     int
	openStart time.Duration
	open      bool
	raw       []Segment
}

func NewMerger(frameDuration time.Duration, config Config) *Merger {
	return &Merger{
		frameDuration: frameDuration,
		config:        config,
	}
}

// Feed advances the stream by one frame decision.
func (m *Merger) Feed(speech bool) {
	frameStart := time.Duration(m.frame) * m.frameDuration
	if speech {
		if !m.open {
			m.openStart = frameStart
			m.open = true
		}
	} else {
		if m.open {
			m.raw = append(m.raw, Segment{Start: m.openStart, End: frameStart})
			m.open = false
		}
	}
	m.frame++
}

// Raw closes any open segment and returns the raw (unmerged, unpadded)
// segment list.
func (m *Merger) Raw() []Segment {
	if m.open {
		m.raw = append(m.raw, Segment{
			Start: m.openStart,
			End:   time.Duration(m.frame) * m.frameDuration,
		})
		m.open = false
	}
	return m.raw
}

// Finish returns the final merged, padded and filtered segment list.
func (m *Merger) Finish() []Segment {
	return MergeAndPad(m.Raw(), m.config)
}

// MergeAndPad applies the post-processing pass to an ordered raw segment
// list: merge segments separated by gaps shorter than MaxSilence, then
// pad each merged segment once, then drop segments shorter than
// MinSpeech.
func MergeAndPad(raw []Segment, config Config) []Segment {
	var out []Segment
	for i := 0; i < len(raw); i++ {
		current := raw[i]
		for i+1 < len(raw) && raw[i+1].Start-current.End < config.MaxSilence {
			current.End = raw[i+1].End
			i++
		}

		current.Start -= config.Padding
		if current.Start < 0 {
			current.Start = 0
		}
		current.End += config.Padding

		if current.Duration() >= config.MinSpeech {
			out = append(out, current)
		}
	}
	return out
}
