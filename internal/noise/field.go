// Package noise provides the time-varying scalar field that drives
// surface deformation. It is not gradient noise; four phase-shifted
// sines with incommensurate time scales are cheap enough to evaluate
// per vertex per frame and do not look periodic over a session.
package noise

import (
	"math"

	"github.com/olivier-w/orb/internal/geom"
)

// Value evaluates the field for a direction vector at time t.
// Deterministic and stateless. Each term contributes at most 0.5,
// so the result is always within [-2, 2].
func Value(dir geom.Vec3, t float64) float64 {
	return 0.5*math.Sin(dir.X*2+t) +
		0.5*math.Sin(dir.Y*2+t*1.2) +
		0.5*math.Sin(dir.Z*2+t*0.8) +
		0.5*math.Sin((dir.X+dir.Y+dir.Z)*2+t*1.5)
}
