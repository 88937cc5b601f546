package vad

import (
	"fmt"
)

// Sensitivity is a continuous value in [0, 1] configuring how aggressively
// the engine classifies audio as silence. It is quantized to one of four
// discrete engine modes at initialization; 0 is the most lenient mode and
// 3 the most aggressive.
type Sensitivity float64

func (s Sensitivity) Validate() error {
	if s < 0 || s > 1 {
		return fmt.Errorf("sensitivity must be in [0, 1], got %v", float64(s))
	}
	return nil
}

// Mode returns the quantized engine mode for the sensitivity.
func (s Sensitivity) Mode() int {
	switch {
	case s <= 0.25:
		return 0
	case s <= 0.5:
		return 1
	case s <= 0.75:
		return 2
	default:
		return 3
	}
}
