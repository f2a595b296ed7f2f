// Package roller provides an injectable uniform randomness source.
// Production code rolls through rpg-toolkit dice; tests inject a Fixed
// roller so composition and stat math are deterministic.
package roller

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

//go:generate mockgen -destination=mock/mock.go -package=rollermock github.com/Samer-Gassouma/aeon-generator/internal/pkg/roller Roller

// floatGranularity is the die size backing Float64 draws
const floatGranularity = 1000000

// Roller draws uniform random values
type Roller interface {
	// IntBetween returns a uniform integer in [low, high] inclusive
	IntBetween(low, high int) (int, error)

	// Float64 returns a uniform float in [0, 1)
	Float64() (float64, error)
}

// Toolkit implements Roller on top of rpg-toolkit dice rolls
type Toolkit struct{}

// New returns a production roller
func New() Roller {
	return &Toolkit{}
}

// IntBetween rolls a single die sized to the range and shifts the result
func (t *Toolkit) IntBetween(low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("roller: invalid range [%d, %d]", low, high)
	}
	if low == high {
		return low, nil
	}

	roll, err := dice.NewRoll(1, high-low+1)
	if err != nil {
		return 0, fmt.Errorf("roller: %w", err)
	}

	return low + roll.GetValue() - 1, nil
}

// Float64 rolls a large die and scales the result down to [0, 1)
func (t *Toolkit) Float64() (float64, error) {
	roll, err := dice.NewRoll(1, floatGranularity)
	if err != nil {
		return 0, fmt.Errorf("roller: %w", err)
	}

	return float64(roll.GetValue()-1) / floatGranularity, nil
}

// Compile-time check that Toolkit implements Roller
var _ Roller = (*Toolkit)(nil)

// Fixed implements Roller by replaying scripted values. Int draws consume
// Ints in order (clamped into range); float draws consume Floats in order.
// Both wrap around when exhausted so a short script can drive a long run.
type Fixed struct {
	Ints   []int
	Floats []float64

	intIdx   int
	floatIdx int
}

// IntBetween replays the next scripted integer, clamped into [low, high]
func (f *Fixed) IntBetween(low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("roller: invalid range [%d, %d]", low, high)
	}
	if len(f.Ints) == 0 {
		return low, nil
	}

	v := f.Ints[f.intIdx%len(f.Ints)]
	f.intIdx++

	if v < low {
		return low, nil
	}
	if v > high {
		return high, nil
	}
	return v, nil
}

// Float64 replays the next scripted float
func (f *Fixed) Float64() (float64, error) {
	if len(f.Floats) == 0 {
		return 0, nil
	}

	v := f.Floats[f.floatIdx%len(f.Floats)]
	f.floatIdx++
	return v, nil
}

// Compile-time check that Fixed implements Roller
var _ Roller = (*Fixed)(nil)
