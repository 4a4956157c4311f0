// Package spectrum reduces audio data to the energy bands the
// rendering core reacts to. A spectrum sample is an ordered slice of
// unsigned byte magnitudes, one per frequency bin, produced once per
// frame; a nil sample is the valid idle state.
package spectrum

import "math"

// Band index ranges over the spectrum sample. High ends at the 32-bin
// mark; shorter samples clamp to what is available.
const (
	bassEnd = 4
	midEnd  = 12
	highEnd = 32
)

// EnergyBands summarizes a spectrum sample as three normalized
// scalars in [0, 1].
type EnergyBands struct {
	Bass float64
	Mid  float64
	High float64
}

// Bands derives energy bands from a spectrum sample at time t.
// With no sample the orb idles: bass follows a slow oscillation and
// the other bands stay silent. Pure function, no allocation.
func Bands(sample []byte, t float64) EnergyBands {
	if len(sample) == 0 {
		return EnergyBands{Bass: math.Sin(t)*0.1 + 0.1}
	}
	return EnergyBands{
		Bass: bandMean(sample, 0, bassEnd),
		Mid:  bandMean(sample, bassEnd, midEnd),
		High: bandMean(sample, midEnd, highEnd),
	}
}

// bandMean averages sample[lo:hi] normalized by the byte maximum.
// The range is clamped to the sample length; an empty clamped range
// contributes zero.
func bandMean(sample []byte, lo, hi int) float64 {
	if hi > len(sample) {
		hi = len(sample)
	}
	if lo >= hi {
		return 0
	}
	sum := 0
	for _, v := range sample[lo:hi] {
		sum += int(v)
	}
	return float64(sum) / float64(hi-lo) / 255.0
}
