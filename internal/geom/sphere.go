package geom

import "math"

// Mesh is an indexed triangle mesh. Positions is mutated by callers
// that deform the surface; RecomputeNormals must run afterwards for
// lighting to stay consistent.
type Mesh struct {
	Positions []Vec3
	Normals   []Vec3
	Indices   []int
}

// Sphere builds a UV sphere of the given radius. segments is the
// horizontal subdivision count, rings the vertical one. Vertex count
// grows as (segments+1)*(rings+1), so callers pick the subdivision
// from their detail tier.
func Sphere(radius float64, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	m := &Mesh{
		Positions: make([]Vec3, 0, (segments+1)*(rings+1)),
		Normals:   make([]Vec3, 0, (segments+1)*(rings+1)),
	}

	for r := 0; r <= rings; r++ {
		theta := math.Pi * float64(r) / float64(rings)
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		for s := 0; s <= segments; s++ {
			phi := 2 * math.Pi * float64(s) / float64(segments)
			n := Vec3{
				X: math.Cos(phi) * sinT,
				Y: cosT,
				Z: math.Sin(phi) * sinT,
			}
			m.Positions = append(m.Positions, n.Scale(radius))
			m.Normals = append(m.Normals, n)
		}
	}

	stride := segments + 1
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := r*stride + s
			b := a + stride
			m.Indices = append(m.Indices, a, a+1, b, a+1, b+1, b)
		}
	}

	return m
}

// RecomputeNormals rebuilds per-vertex normals from the current
// positions by accumulating area-weighted face normals. Degenerate
// faces contribute nothing; a vertex left with no contribution keeps
// a radial fallback so shading never sees a zero normal.
func (m *Mesh) RecomputeNormals() {
	for i := range m.Normals {
		m.Normals[i] = Vec3{}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a, b, c := m.Positions[ia], m.Positions[ib], m.Positions[ic]
		face := b.Sub(a).Cross(c.Sub(a))
		m.Normals[ia] = m.Normals[ia].Add(face)
		m.Normals[ib] = m.Normals[ib].Add(face)
		m.Normals[ic] = m.Normals[ic].Add(face)
	}

	for i := range m.Normals {
		n := m.Normals[i].Normalize()
		if n == (Vec3{}) {
			n = m.Positions[i].Normalize()
		}
		m.Normals[i] = n
	}
}
