package pcm

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const wavHeaderSize = 44

// EncodeWAV wraps mono float samples into a canonical 44-byte-header,
// 16-bit PCM WAV container. The header layout is load-bearing: consumers
// are allowed to parse chunk audio at fixed offsets.
func EncodeWAV(samples []float32, sampleRate int) []byte {
	pcm16 := FloatToS16(samples)
	dataSize := len(pcm16) * 2

	buf := bytes.NewBuffer(make([]byte, 0, wavHeaderSize+dataSize))
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))             // fmt chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))              // PCM
	binary.Write(buf, binary.LittleEndian, uint16(1))              // mono
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*2))   // byte rate
	binary.Write(buf, binary.LittleEndian, uint16(2))              // block align
	binary.Write(buf, binary.LittleEndian, uint16(16))             // bits per sample
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	binary.Write(buf, binary.LittleEndian, pcm16)
	return buf.Bytes()
}

// DecodeWAV parses a 16-bit PCM WAV container and returns interleaved
// float samples, the sample rate and the channel count. Unknown RIFF
// sub-chunks before "data" are skipped.
func DecodeWAV(data []byte) ([]float32, int, int, error) {
	if len(data) < wavHeaderSize {
		return nil, 0, 0, fmt.Errorf("container too small: %d bytes", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, 0, 0, fmt.Errorf("not a RIFF/WAVE container")
	}

	var (
		sampleRate    int
		channels      int
		bitsPerSample int
		pcmData       []byte
	)
	pos := 12
	for pos+8 <= len(data) {
		chunkID := string(data[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if body+chunkSize > len(data) {
			chunkSize = len(data) - body
		}
		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, 0, 0, fmt.Errorf("fmt chunk too small: %d bytes", chunkSize)
			}
			audioFormat := binary.LittleEndian.Uint16(data[body : body+2])
			if audioFormat != 1 {
				return nil, 0, 0, fmt.Errorf("unsupported audio format %d (only PCM)", audioFormat)
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
		case "data":
			pcmData = data[body : body+chunkSize]
		}
		pos = body + chunkSize
		if chunkSize%2 != 0 {
			pos++ // RIFF chunks are word-aligned
		}
	}

	if sampleRate == 0 || channels == 0 {
		return nil, 0, 0, fmt.Errorf("missing fmt chunk")
	}
	if bitsPerSample != 16 {
		return nil, 0, 0, fmt.Errorf("unsupported bit depth %d (only 16)", bitsPerSample)
	}
	if pcmData == nil {
		return nil, 0, 0, fmt.Errorf("missing data chunk")
	}

	pcm16 := make([]int16, len(pcmData)/2)
	for i := range pcm16 {
		pcm16[i] = int16(binary.LittleEndian.Uint16(pcmData[i*2:]))
	}
	return S16ToFloat(pcm16), sampleRate, channels, nil
}
