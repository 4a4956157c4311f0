package orb

import (
	"math"
	"math/rand"

	"github.com/olivier-w/orb/internal/geom"
)

// Particle holds the per-orbit parameters rolled once at field
// construction. Only Phase changes afterwards.
type Particle struct {
	Phase        float64
	RadiusFactor float64
	Speed        float64
	AxisX        float64
	AxisY        float64
	AxisZ        float64
}

// Field is a fixed-count set of independently orbiting particles.
// Positions, scales and rotations are recomputed per frame from
// closed-form trajectories; no particle reads another's state. The
// field is simply not constructed under the lowest detail tier.
type Field struct {
	particles []Particle
	positions []geom.Vec3
	scales    []float64
	rotations []float64
}

// NewField rolls count particles from rng. Identity and count are
// fixed for the field's lifetime; buffers are allocated once.
func NewField(count int, rng *rand.Rand) *Field {
	f := &Field{
		particles: make([]Particle, count),
		positions: make([]geom.Vec3, count),
		scales:    make([]float64, count),
		rotations: make([]float64, count),
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			Phase:        rng.Float64() * 2 * math.Pi,
			RadiusFactor: 0.7 + rng.Float64()*0.6,
			Speed:        0.4 + rng.Float64()*0.8,
			AxisX:        rng.Float64()*2 - 1,
			AxisY:        rng.Float64()*2 - 1,
			AxisZ:        rng.Float64()*2 - 1,
		}
	}
	return f
}

// Update advances every orbit by dt seconds. energy is the high-band
// level: it speeds the orbits up, widens their radius and grows the
// particles.
func (f *Field) Update(dt, energy float64) {
	for i := range f.particles {
		p := &f.particles[i]
		p.Phase += p.Speed * (1 + energy*8) * dt

		a := math.Cos(p.Phase) + math.Sin(p.Phase)/10
		b := math.Sin(p.Phase) + math.Cos(2*p.Phase)/10
		r := (3 + energy*3) * p.RadiusFactor

		f.positions[i] = geom.Vec3{
			X: p.AxisX*a*r + math.Cos(p.Phase),
			Y: p.AxisY*b*r + math.Sin(p.Phase),
			Z: p.AxisZ * a * r,
		}
		f.scales[i] = (0.05 + math.Abs(math.Sin(3*p.Phase))*0.05) * (1 + energy*2)
		f.rotations[i] = math.Cos(p.Phase)
	}
}

func (f *Field) Count() int             { return len(f.particles) }
func (f *Field) Positions() []geom.Vec3 { return f.positions }
func (f *Field) Scales() []float64      { return f.scales }
func (f *Field) Rotations() []float64   { return f.rotations }
func (f *Field) Particles() []Particle  { return f.particles }
