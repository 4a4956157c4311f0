package render

import (
	"strings"
	"testing"
	"time"

	"github.com/olivier-w/orb/internal/engine"
	"github.com/olivier-w/orb/internal/orb"
	"github.com/olivier-w/orb/internal/quality"
)

type caps struct{}

func (caps) DeviceMemoryGB() float64 { return 16 }
func (caps) ViewportWidth() int      { return 1920 }

func testFrame(t *testing.T) *engine.Frame {
	t.Helper()
	e := engine.New(quality.NewController(caps{}), orb.EmotionJoyful, 4)
	f := e.Advance(time.Unix(0, 0), 1.0/60, nil)
	if f == nil {
		t.Fatal("engine produced no frame")
	}
	return f
}

func TestRenderGridShape(t *testing.T) {
	r := &Renderer{profile: colorNone}
	out := r.Render(testFrame(t), 60, 20)

	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d rows, want 20", len(lines))
	}
	for i, line := range lines {
		if len(line) != 60 {
			t.Fatalf("row %d has %d cells, want 60", i, len(line))
		}
	}
}

func TestRenderDrawsBody(t *testing.T) {
	r := &Renderer{profile: colorNone}
	out := r.Render(testFrame(t), 60, 20)
	if !strings.ContainsAny(out, string(shadeRamp)) {
		t.Fatal("no body cells in output")
	}
}

func TestRenderTinyViewportSafe(t *testing.T) {
	r := &Renderer{profile: colorNone}
	f := testFrame(t)
	if out := r.Render(f, 2, 1); out != "" {
		t.Fatalf("expected empty output for tiny viewport, got %q", out)
	}
	if out := r.Render(f, 4, 2); out == "" {
		t.Fatal("expected output at minimum viewport")
	}
}

func TestRenderNilFrame(t *testing.T) {
	r := &Renderer{profile: colorNone}
	if out := r.Render(nil, 60, 20); out != "" {
		t.Fatalf("nil frame rendered %q", out)
	}
}

func TestRenderResize(t *testing.T) {
	r := &Renderer{profile: colorNone}
	f := testFrame(t)
	r.Render(f, 60, 20)
	out := r.Render(f, 30, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 || len(lines[0]) != 30 {
		t.Fatalf("resize produced %dx%d grid", len(lines[0]), len(lines))
	}
}

func TestColorSequencesOnlyWithProfile(t *testing.T) {
	f := testFrame(t)

	plain := (&Renderer{profile: colorNone}).Render(f, 40, 12)
	if strings.Contains(plain, "\x1b[") {
		t.Fatal("colorNone output contains escape sequences")
	}

	colored := (&Renderer{profile: colorTrueColor}).Render(f, 40, 12)
	if !strings.Contains(colored, "\x1b[38;2;") {
		t.Fatal("truecolor output missing escape sequences")
	}
	if !strings.Contains(colored, "\x1b[0m") {
		t.Fatal("truecolor output never resets")
	}
}
