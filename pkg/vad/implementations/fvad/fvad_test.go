//go:build !fvad
// +build !fvad

package fvad

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xaionaro-go/speechchunker/pkg/vad"
)

func TestNewWithoutEngine(t *testing.T) {
	_, err := New(0.5)
	assert.ErrorIs(t, err, vad.ErrEngineUnavailable)
}
