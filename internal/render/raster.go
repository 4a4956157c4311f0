// Package render rasterizes an engine frame onto a terminal cell
// grid: orthographic projection, per-cell depth test, Lambert
// shading through a density ramp, ANSI color output. It consumes
// the frame snapshot read-only and owns all of its own buffers.
package render

import (
	"math"
	"strings"

	"github.com/olivier-w/orb/internal/engine"
	"github.com/olivier-w/orb/internal/geom"
	"github.com/olivier-w/orb/internal/orb"
)

var shadeRamp = []byte(".:-=+*#%@")

const particleChar = '*'

// Terminal cells are roughly twice as tall as wide; the vertical
// scale compensates so the orb reads as a sphere.
const cellAspect = 0.5

var lightDir = geom.Vec3{X: -0.4, Y: 0.7, Z: 0.59}.Normalize()

type cell struct {
	ch    byte
	color colorRGB
	depth float64
	set   bool
}

// Renderer holds the reusable cell grid. One renderer serves one
// output surface.
type Renderer struct {
	profile colorProfile
	cells   []cell
	width   int
	height  int
}

func New() *Renderer {
	return &Renderer{profile: currentColorProfile()}
}

// Render draws the frame into a width×height character grid and
// returns it as newline-joined rows.
func (r *Renderer) Render(f *engine.Frame, width, height int) string {
	if f == nil || width < 4 || height < 2 {
		return ""
	}
	r.resize(width, height)

	// World-to-screen scale: the orb body has unit radius and the
	// particles orbit out to roughly 4 units; fit a bit beyond the
	// body so particles can fly off the edges.
	extent := 1.6
	scaleY := float64(height) / 2 / extent
	scaleX := scaleY / cellAspect
	if maxX := float64(width) / 2 / extent; scaleX > maxX {
		scaleX = maxX
		scaleY = scaleX * cellAspect
	}
	cx := float64(width) / 2
	cy := float64(height) / 2

	r.drawGlow(f, cx, cy, scaleX, scaleY)
	r.drawBody(f, cx, cy, scaleX, scaleY)
	r.drawParticles(f, cx, cy, scaleX, scaleY)

	var out strings.Builder
	color := newANSIState(r.profile)
	for row := range r.height {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range r.width {
			c := r.cells[row*r.width+col]
			if !c.set {
				out.WriteByte(' ')
				continue
			}
			color.set(&out, c.color)
			out.WriteByte(c.ch)
		}
		color.reset(&out)
	}
	return out.String()
}

func (r *Renderer) resize(width, height int) {
	if r.width != width || r.height != height {
		r.width = width
		r.height = height
		r.cells = make([]cell, width*height)
	}
	for i := range r.cells {
		r.cells[i] = cell{depth: math.Inf(-1)}
	}
}

// plot writes a character at a screen position if it wins the depth
// test. Depth increases toward the viewer.
func (r *Renderer) plot(x, y, depth float64, ch byte, c colorRGB) {
	col := int(x)
	row := int(y)
	if col < 0 || col >= r.width || row < 0 || row >= r.height {
		return
	}
	i := row*r.width + col
	if r.cells[i].set && r.cells[i].depth >= depth {
		return
	}
	r.cells[i] = cell{ch: ch, color: c, depth: depth, set: true}
}

// drawGlow tints the backdrop behind the body with the ambient glow
// color. It sits at far depth so everything else draws over it.
func (r *Renderer) drawGlow(f *engine.Frame, cx, cy, scaleX, scaleY float64) {
	radius := 1.45
	for row := range r.height {
		for col := range r.width {
			wx := (float64(col) + 0.5 - cx) / scaleX
			wy := (cy - float64(row) - 0.5) / scaleY
			d := math.Sqrt(wx*wx + wy*wy)
			if d > radius {
				continue
			}
			fade := 1 - d/radius
			r.plot(float64(col), float64(row), -100, '.', toByteColor(f.GlowColor, 0.15+fade*0.25))
		}
	}
}

func (r *Renderer) drawBody(f *engine.Frame, cx, cy, scaleX, scaleY float64) {
	mesh := f.Mesh
	if mesh == nil {
		return
	}
	for i, p := range mesh.Positions {
		p = p.Scale(f.UniformScale)
		p = p.RotateY(f.Yaw).RotateX(f.Pitch)
		n := mesh.Normals[i].RotateY(f.Yaw).RotateX(f.Pitch)

		// Back-facing vertices are hidden by the depth test anyway,
		// but skipping them halves the plotting work.
		if n.Z < 0 {
			continue
		}

		shade := clamp01(n.Dot(lightDir))*0.75 + 0.25
		idx := int(shade * float64(len(shadeRamp)-1))
		brightness := 0.35 + shade*0.65 + f.EmissiveGain*0.3
		col := toByteColor(f.BodyColor, brightness)

		if f.InnerCore && p.X*p.X+p.Y*p.Y < 0.2 {
			col = toByteColor(f.BodyEmissive, brightness+f.EmissiveGain)
		}

		r.plot(cx+p.X*scaleX, cy-p.Y*scaleY, p.Z, shadeRamp[idx], col)
	}
}

func (r *Renderer) drawParticles(f *engine.Frame, cx, cy, scaleX, scaleY float64) {
	for i, p := range f.ParticlePositions {
		// Particle space is wider than the body's; compress it so
		// orbits stay mostly on screen.
		p = p.Scale(0.35).RotateY(f.Yaw * 0.5)
		scale := f.ParticleScales[i]
		ch := particleChar
		if scale < 0.08 {
			ch = '.'
		}
		r.plot(cx+p.X*scaleX, cy-p.Y*scaleY, p.Z+2, byte(ch), toByteColor(orb.Color{R: 1, G: 1, B: 1}, 0.5+scale*3))
	}
}
