package orb

import (
	"math"

	"github.com/olivier-w/orb/internal/geom"
	"github.com/olivier-w/orb/internal/noise"
	"github.com/olivier-w/orb/internal/spectrum"
)

// Per-frame tuning. Color transitions take one to two seconds of
// frames at these blend factors.
const (
	colorBlend    = 0.05
	emissiveBlend = 0.1
	baseRadius    = 1.0
)

// Body is the deformable translucent core of the orb. It owns the
// undeformed base positions captured at construction; every frame it
// derives displaced positions from the noise field and the energy
// bands, then recomputes normals. Color and rotation state persist
// for the body's lifetime; the body is rebuilt when the detail tier
// changes mesh resolution.
type Body struct {
	mesh *geom.Mesh
	base []geom.Vec3

	color             Color
	emissive          Color
	target            Color
	emissiveIntensity float64

	yaw          float64
	pitch        float64
	uniformScale float64
}

// NewBody builds a body at the given sphere subdivision. The base
// positions are captured once and never written again.
func NewBody(segments, rings int, target Color) *Body {
	mesh := geom.Sphere(baseRadius, segments, rings)
	base := make([]geom.Vec3, len(mesh.Positions))
	copy(base, mesh.Positions)
	return &Body{
		mesh:         mesh,
		base:         base,
		color:        target,
		emissive:     target,
		target:       target,
		uniformScale: 1,
	}
}

// SetTarget changes the palette entry the body drifts toward. The
// visible color catches up over the following frames.
func (b *Body) SetTarget(c Color) {
	b.target = c
}

// Update advances the body one frame. vertexDetail selects between
// per-vertex displacement and the O(1) uniform-scale fallback the
// low tier uses. A body with no captured geometry skips the frame.
func (b *Body) Update(t float64, bands spectrum.EnergyBands, vertexDetail bool) {
	if b.mesh == nil || len(b.base) == 0 {
		return
	}

	b.color = b.color.Lerp(b.target, colorBlend)
	b.emissive = b.emissive.Lerp(b.target, colorBlend)
	b.emissiveIntensity += (0.2 + bands.Bass*0.5 - b.emissiveIntensity) * emissiveBlend

	b.yaw += -0.002 - bands.Mid*0.02
	b.pitch = math.Sin(t*0.2) * 0.15

	if !vertexDetail {
		b.uniformScale = 1 + bands.Bass*0.1
		return
	}
	b.uniformScale = 1

	noiseSpeed := 0.8 + bands.High*2.0
	noiseAmp := 0.3 + bands.Bass*0.4
	nt := t * noiseSpeed

	for i, base := range b.base {
		dir := base.Normalize()
		if dir == (geom.Vec3{}) {
			// A base vertex at the origin has no direction; leave it
			// undisplaced instead of dividing by zero.
			b.mesh.Positions[i] = base
			continue
		}
		distortion := noise.Value(dir, nt) * noiseAmp
		b.mesh.Positions[i] = base.Scale(1 + distortion*0.2)
	}

	b.mesh.RecomputeNormals()
}

// Mesh exposes the displaced geometry for rendering.
func (b *Body) Mesh() *geom.Mesh { return b.mesh }

// BasePositions exposes the captured undeformed vertices.
func (b *Body) BasePositions() []geom.Vec3 { return b.base }

func (b *Body) Color() Color               { return b.color }
func (b *Body) Emissive() Color            { return b.emissive }
func (b *Body) EmissiveIntensity() float64 { return b.emissiveIntensity }
func (b *Body) Yaw() float64               { return b.yaw }
func (b *Body) Pitch() float64             { return b.pitch }

// UniformScale is 1 while per-vertex displacement runs; under the
// low tier it carries the bass-driven whole-body scale instead.
func (b *Body) UniformScale() float64 { return b.uniformScale }
