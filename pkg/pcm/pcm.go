package pcm

import (
	"math"
	"time"
)

// MixToMono reduces interleaved multi-channel samples to a single channel
// by taking the arithmetic mean across channels, sample by sample. Input
// that is already mono is returned as-is.
func MixToMono(samples []float32, channels int) []float32 {
	if channels <= 1 || len(samples) == 0 {
		return samples
	}
	out := make([]float32, len(samples)/channels)
	for i := range out {
		var sum float32
		for ch := 0; ch < channels; ch++ {
			sum += samples[i*channels+ch]
		}
		out[i] = sum / float32(channels)
	}
	return out
}

// MixToMonoPlanar is MixToMono for planar (one slice per channel) input.
// Channels shorter than the longest one contribute zero for the missing tail.
func MixToMonoPlanar(channels [][]float32) []float32 {
	if len(channels) == 0 {
		return nil
	}
	if len(channels) == 1 {
		return channels[0]
	}
	maxLen := 0
	for _, ch := range channels {
		if len(ch) > maxLen {
			maxLen = len(ch)
		}
	}
	out := make([]float32, maxLen)
	for i := range out {
		var sum float32
		for _, ch := range channels {
			if i < len(ch) {
				sum += ch[i]
			}
		}
		out[i] = sum / float32(len(channels))
	}
	return out
}

// Resample converts samples from inRate to outRate using linear
// interpolation. When the rates already match the input is returned
// unchanged, without copying.
func Resample(input []float32, inRate, outRate int) []float32 {
	if inRate == outRate || len(input) == 0 {
		return input
	}
	ratio := float64(inRate) / float64(outRate)
	outLen := int(float64(len(input)) / ratio)
	out := make([]float32, outLen)
	for i := 0; i < outLen; i++ {
		srcIdx := float64(i) * ratio
		idx0 := int(srcIdx)
		idx1 := idx0 + 1
		if idx1 > len(input)-1 {
			idx1 = len(input) - 1
		}
		frac := float32(srcIdx - float64(idx0))
		out[i] = input[idx0]*(1-frac) + input[idx1]*frac
	}
	return out
}

// FloatToS16 converts float samples in [-1, 1] to 16-bit PCM. Values
// outside the range are clamped. Negative values scale by 32768 and
// non-negative by 32767 so that both endpoints are exactly representable.
func FloatToS16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		if s < -1 {
			s = -1
		}
		if s > 1 {
			s = 1
		}
		if s < 0 {
			out[i] = int16(math.Round(float64(s) * 32768))
		} else {
			out[i] = int16(math.Round(float64(s) * 32767))
		}
	}
	return out
}

// S16ToFloat is the inverse of FloatToS16.
func S16ToFloat(samples []int16) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		if s < 0 {
			out[i] = float32(s) / 32768
		} else {
			out[i] = float32(s) / 32767
		}
	}
	return out
}

// ExtractRange returns the samples covering [start, end) on the timeline
// implied by sampleRate, clamped to the bounds of the buffer.
func ExtractRange(samples []float32, sampleRate int, start, end time.Duration) []float32 {
	startSample := int(start.Seconds() * float64(sampleRate))
	endSample := int(end.Seconds() * float64(sampleRate))
	if startSample < 0 {
		startSample = 0
	}
	if endSample > len(samples) {
		endSample = len(samples)
	}
	if startSample >= endSample {
		return nil
	}
	return samples[startSample:endSample]
}
