// Package engine drives the orb one frame at a time. All component
// updates run synchronously on the caller's goroutine in a fixed
// order: performance sampling, body, particles, glow. Nothing here
// blocks mid-frame; the only admission control is the visibility
// gate, which skips whole frames.
package engine

import (
	"math/rand"
	"time"

	"github.com/olivier-w/orb/internal/geom"
	"github.com/olivier-w/orb/internal/orb"
	"github.com/olivier-w/orb/internal/quality"
	"github.com/olivier-w/orb/internal/spectrum"
)

// Frame is the per-frame render snapshot handed to the renderer.
// Slices alias the engine's live buffers; the single-threaded frame
// model means they are stable until the next Advance call.
type Frame struct {
	Mesh         *geom.Mesh
	BodyColor    orb.Color
	BodyEmissive orb.Color
	EmissiveGain float64
	Yaw          float64
	Pitch        float64
	UniformScale float64

	ParticlePositions []geom.Vec3
	ParticleScales    []float64
	ParticleRotations []float64

	GlowColor    orb.Color
	GlowRotation float64

	Bands     spectrum.EnergyBands
	InnerCore bool
	Tier      quality.Tier
	Surface   quality.SurfaceConfig
}

// Engine owns the animated components and rebuilds them when the
// quality tier changes mesh resolution.
type Engine struct {
	ctrl    *quality.Controller
	monitor *quality.Monitor

	body  *orb.Body
	field *orb.Field
	glow  *orb.Glow

	emotion   orb.Emotion
	time      float64
	rng       *rand.Rand
	builtTier quality.Tier
}

// New wires an engine to a quality controller. seed fixes the
// particle parameter rolls so sessions can be reproduced in tests.
func New(ctrl *quality.Controller, emotion orb.Emotion, seed int64) *Engine {
	e := &Engine{
		ctrl:    ctrl,
		emotion: emotion,
		rng:     rand.New(rand.NewSource(seed)),
	}
	e.monitor = quality.NewMonitor(ctrl.Downgrade)
	e.glow = orb.NewGlow(emotion.Color())
	e.rebuild()
	return e
}

// rebuild reconstructs tier-sized resources: the body at the tier's
// mesh resolution (recapturing base positions) and the particle
// field at the tier's count, or no field at all.
func (e *Engine) rebuild() {
	tier := e.ctrl.Tier()
	segments, rings := tier.MeshResolution()
	e.body = orb.NewBody(segments, rings, e.emotion.Color())

	if n := tier.ParticleCount(); n > 0 {
		e.field = orb.NewField(n, e.rng)
	} else {
		e.field = nil
	}
	e.builtTier = tier
}

// SetEmotion retargets the palette. Unknown labels resolve to
// neutral; the visible transition happens over the following frames.
func (e *Engine) SetEmotion(label string) {
	e.SetEmotionValue(orb.ParseEmotion(label))
}

func (e *Engine) SetEmotionValue(emotion orb.Emotion) {
	e.emotion = emotion
	e.body.SetTarget(emotion.Color())
	e.glow.SetTarget(emotion.Color())
}

func (e *Engine) Emotion() orb.Emotion { return e.emotion }

// SetVisible gates the frame loop. While hidden no component
// receives frame callbacks and the animation clock stands still;
// rendering resumes from the current state without catch-up.
func (e *Engine) SetVisible(v bool) { e.ctrl.SetVisible(v) }

func (e *Engine) Controller() *quality.Controller { return e.ctrl }

// Advance runs one frame at wall-clock instant now with simulation
// step dt, consuming this frame's spectrum sample (nil when idle).
// It returns nil without touching any state when the orb is hidden.
func (e *Engine) Advance(now time.Time, dt float64, sample []byte) *Frame {
	if !e.ctrl.Visible() {
		return nil
	}

	e.monitor.Frame(now)
	if e.ctrl.Tier() != e.builtTier {
		e.rebuild()
	}

	bands := spectrum.Bands(sample, e.time)

	e.body.Update(e.time, bands, e.ctrl.VertexDetail())
	if e.field != nil {
		e.field.Update(dt, bands.High)
	}
	e.glow.Update()
	e.time += dt

	f := &Frame{
		Mesh:         e.body.Mesh(),
		BodyColor:    e.body.Color(),
		BodyEmissive: e.body.Emissive(),
		EmissiveGain: e.body.EmissiveIntensity(),
		Yaw:          e.body.Yaw(),
		Pitch:        e.body.Pitch(),
		UniformScale: e.body.UniformScale(),
		GlowColor:    e.glow.Color(),
		GlowRotation: e.glow.Rotation(),
		Bands:        bands,
		InnerCore:    e.ctrl.InnerCoreVisible(),
		Tier:         e.ctrl.Tier(),
		Surface:      e.ctrl.Surface(),
	}
	if e.field != nil {
		f.ParticlePositions = e.field.Positions()
		f.ParticleScales = e.field.Scales()
		f.ParticleRotations = e.field.Rotations()
	}
	return f
}
