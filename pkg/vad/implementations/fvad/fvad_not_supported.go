//go:build !fvad
// +build !fvad

package fvad

import (
	"fmt"

	"github.com/xaionaro-go/speechchunker/pkg/vad"
)

const (
	SampleRate = 16000
	FrameSize  = 480
)

type Classifier = vad.Dummy

func New(vad.Sensitivity) (*Classifier, error) {
	return nil, fmt.Errorf("%w: built without tag 'fvad'", vad.ErrEngineUnavailable)
}
