package noise

import (
	"math"
	"testing"

	"github.com/olivier-w/orb/internal/geom"
)

func TestValueDeterministic(t *testing.T) {
	dir := geom.Vec3{X: 0.267, Y: -0.535, Z: 0.802}
	for _, tm := range []float64{0, 0.5, 13.7, 1e4} {
		a := Value(dir, tm)
		b := Value(dir, tm)
		if a != b {
			t.Fatalf("t=%v: got %v then %v", tm, a, b)
		}
	}
}

func TestValueBounded(t *testing.T) {
	dirs := []geom.Vec3{
		{X: 1},
		{Y: -1},
		{X: 0.577, Y: 0.577, Z: 0.577},
		{X: -0.707, Z: 0.707},
		{},
	}
	for _, d := range dirs {
		for tm := 0.0; tm < 100; tm += 0.37 {
			v := Value(d, tm)
			if v < -2 || v > 2 {
				t.Fatalf("dir=%+v t=%v: value %v outside [-2,2]", d, tm, v)
			}
			if math.IsNaN(v) {
				t.Fatalf("dir=%+v t=%v: NaN", d, tm)
			}
		}
	}
}

func TestValueVariesOverTime(t *testing.T) {
	dir := geom.Vec3{X: 0.6, Y: 0.8}
	a := Value(dir, 0)
	b := Value(dir, 1)
	if a == b {
		t.Fatalf("expected time variation, got %v at both times", a)
	}
}
