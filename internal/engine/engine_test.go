package engine

import (
	"math"
	"testing"
	"time"

	"github.com/olivier-w/orb/internal/orb"
	"github.com/olivier-w/orb/internal/quality"
)

type caps struct {
	mem   float64
	width int
}

func (c caps) DeviceMemoryGB() float64 { return c.mem }
func (c caps) ViewportWidth() int      { return c.width }

func desktop() *quality.Controller {
	return quality.NewController(caps{mem: 16, width: 1920})
}

func TestJoyfulIdleConvergence(t *testing.T) {
	e := New(desktop(), orb.EmotionNeutral, 42)
	e.SetEmotion("joyful")

	now := time.Unix(0, 0)
	const dt = 1.0 / 60
	var f *Frame
	for i := range 60 {
		f = e.Advance(now.Add(time.Duration(i*16667)*time.Microsecond), dt, nil)
		if f == nil {
			t.Fatal("visible frame returned nil")
		}
		for vi, p := range f.Mesh.Positions {
			r := p.Len()
			if r < 0.7 || r > 1.3 {
				t.Fatalf("frame %d vertex %d radius %v outside [0.7, 1.3]", i, vi, r)
			}
		}
	}

	target := orb.EmotionJoyful.Color()
	if d := math.Sqrt(f.BodyColor.DistanceSq(target)); d > 0.1 {
		t.Fatalf("body color distance to joyful = %v after 60 frames", d)
	}
}

func TestSustainedLowFPSDowngradesAndDropsParticles(t *testing.T) {
	ctrl := desktop()
	e := New(ctrl, orb.EmotionNeutral, 1)

	sample := make([]byte, 32) // all-zero spectrum, valid but silent
	now := time.Unix(0, 0)
	const frameGap = 60 * time.Millisecond // ~16.7 FPS

	sawParticles := false
	downgradeFrame := -1
	for i := range 200 {
		f := e.Advance(now.Add(time.Duration(i)*frameGap), 0.06, sample)
		if f.Tier == quality.TierLow && downgradeFrame < 0 {
			downgradeFrame = i
		}
		if downgradeFrame < 0 && len(f.ParticlePositions) > 0 {
			sawParticles = true
		}
		if downgradeFrame >= 0 {
			if f.ParticlePositions != nil {
				t.Fatalf("frame %d: particles still updating after downgrade", i)
			}
			if f.Tier != quality.TierLow {
				t.Fatalf("frame %d: tier climbed back to %v", i, f.Tier)
			}
		}
	}

	if !sawParticles {
		t.Fatal("expected particle updates before the downgrade")
	}
	if downgradeFrame < 0 {
		t.Fatal("sustained low FPS never downgraded")
	}
	if !ctrl.LowPower() {
		t.Fatal("low-power latch not set")
	}
	if pr := ctrl.Surface().PixelRatio; pr != 1 {
		t.Fatalf("pixel ratio = %v after downgrade, want 1", pr)
	}
}

func TestDowngradeRebuildsCoarserBody(t *testing.T) {
	e := New(desktop(), orb.EmotionCalm, 5)
	now := time.Unix(0, 0)

	f := e.Advance(now, 1.0/60, nil)
	highVerts := len(f.Mesh.Positions)

	e.Controller().Downgrade()
	f = e.Advance(now.Add(time.Second/60), 1.0/60, nil)
	lowVerts := len(f.Mesh.Positions)

	if lowVerts >= highVerts {
		t.Fatalf("rebuilt body not coarser: %d -> %d vertices", highVerts, lowVerts)
	}
	if f.UniformScale == 1 && f.Bands.Bass > 0 {
		t.Fatalf("low tier should use the uniform-scale fallback, got %v", f.UniformScale)
	}
}

func TestHiddenFramesSkipEntirely(t *testing.T) {
	e := New(desktop(), orb.EmotionNeutral, 9)
	now := time.Unix(0, 0)
	const dt = 1.0 / 60

	f1 := e.Advance(now, dt, nil)
	yaw1 := f1.Yaw

	e.SetVisible(false)
	for i := range 50 {
		if f := e.Advance(now.Add(time.Duration(i+1)*time.Second/60), dt, nil); f != nil {
			t.Fatal("hidden frame produced output")
		}
	}

	e.SetVisible(true)
	f2 := e.Advance(now.Add(51*time.Second/60), dt, nil)

	// Idle mid band is zero, so each rendered frame steps yaw by
	// exactly -0.002. Hidden frames must not have advanced it.
	if got := f2.Yaw - yaw1; math.Abs(got+0.002) > 1e-12 {
		t.Fatalf("yaw advanced by %v across hidden stretch, want -0.002", got)
	}
}

func TestEmotionCyclingRetargetsGlow(t *testing.T) {
	e := New(desktop(), orb.EmotionNeutral, 2)
	e.SetEmotion("angry")

	now := time.Unix(0, 0)
	var f *Frame
	for i := range 600 {
		f = e.Advance(now.Add(time.Duration(i)*time.Second/60), 1.0/60, nil)
	}

	target := orb.EmotionAngry.Color()
	if d := math.Sqrt(f.GlowColor.DistanceSq(target)); d > 0.05 {
		t.Fatalf("glow distance to angry = %v after 600 frames", d)
	}
	if f.GlowRotation <= 0 {
		t.Fatalf("glow rotation = %v, want > 0", f.GlowRotation)
	}
}

func TestUnknownEmotionLabelFallsBackToNeutral(t *testing.T) {
	e := New(desktop(), orb.EmotionJoyful, 3)
	e.SetEmotion("melodramatic")
	if e.Emotion() != orb.EmotionNeutral {
		t.Fatalf("emotion = %v, want neutral", e.Emotion())
	}
}
