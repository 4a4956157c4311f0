// Package quality owns the adaptive fidelity state: the discrete
// detail tier, the device heuristics that seed it, and the frame-rate
// monitor that can force it down. Degradation is one-way within a
// session.
package quality

// Tier is the discrete detail level controlling mesh resolution and
// which expensive per-frame branches run.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "low"
	}
}

// ParseTier maps a tier label to its value. ok is false for labels
// it does not recognize.
func ParseTier(label string) (t Tier, ok bool) {
	switch label {
	case "low":
		return TierLow, true
	case "medium":
		return TierMedium, true
	case "high":
		return TierHigh, true
	}
	return TierLow, false
}

// MeshResolution returns the sphere subdivision for the tier. The
// vertex count is the dominant per-frame cost, so the spread between
// tiers is wide.
func (t Tier) MeshResolution() (segments, rings int) {
	switch t {
	case TierHigh:
		return 48, 36
	case TierMedium:
		return 32, 24
	default:
		return 16, 12
	}
}

// ParticleCount returns how many particles the tier sustains. Zero
// at the low tier: the field is not constructed at all there.
func (t Tier) ParticleCount() int {
	switch t {
	case TierHigh:
		return 140
	case TierMedium:
		return 80
	default:
		return 0
	}
}
