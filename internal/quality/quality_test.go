package quality

import (
	"testing"
	"time"
)

type fakeCaps struct {
	mem   float64
	width int
}

func (f fakeCaps) DeviceMemoryGB() float64 { return f.mem }
func (f fakeCaps) ViewportWidth() int      { return f.width }

// feedSecond delivers fps evenly spaced frames for the second
// starting at start.
func feedSecond(m *Monitor, start time.Time, fps int) {
	step := time.Second / time.Duration(fps)
	for i := range fps {
		m.Frame(start.Add(time.Duration(i) * step))
	}
}

func TestMonitorThreeBadSecondsDowngradeOnce(t *testing.T) {
	calls := 0
	m := NewMonitor(func() { calls++ })

	start := time.Unix(0, 0)
	for s := range 3 {
		feedSecond(m, start.Add(time.Duration(s)*time.Second), 23)
	}
	// The third window is evaluated when the next frame arrives.
	m.Frame(start.Add(3 * time.Second))

	if calls != 1 {
		t.Fatalf("downgrade fired %d times, want 1", calls)
	}
	if m.BadSeconds() != 0 {
		t.Fatalf("bad streak = %d after firing, want 0", m.BadSeconds())
	}
}

func TestMonitorGoodSecondResetsStreak(t *testing.T) {
	calls := 0
	m := NewMonitor(func() { calls++ })

	start := time.Unix(100, 0)
	feedSecond(m, start, 23)
	feedSecond(m, start.Add(1*time.Second), 23)
	feedSecond(m, start.Add(2*time.Second), 30) // good second
	feedSecond(m, start.Add(3*time.Second), 23)
	feedSecond(m, start.Add(4*time.Second), 23)
	m.Frame(start.Add(5 * time.Second))

	if calls != 0 {
		t.Fatalf("downgrade fired %d times, want 0", calls)
	}
	if m.BadSeconds() != 2 {
		t.Fatalf("bad streak = %d, want 2", m.BadSeconds())
	}
}

func TestMonitorExactFloorIsGood(t *testing.T) {
	calls := 0
	m := NewMonitor(func() { calls++ })

	start := time.Unix(7, 0)
	for s := range 6 {
		feedSecond(m, start.Add(time.Duration(s)*time.Second), 24)
	}
	m.Frame(start.Add(6 * time.Second))

	if calls != 0 {
		t.Fatalf("24 FPS triggered %d downgrades", calls)
	}
}

func TestControllerHeuristics(t *testing.T) {
	cases := []struct {
		name     string
		caps     Capabilities
		tier     Tier
		lowPower bool
	}{
		{"unconstrained", fakeCaps{mem: 8, width: 1920}, TierHigh, false},
		{"low memory", fakeCaps{mem: 2, width: 1920}, TierLow, true},
		{"mobile width", fakeCaps{mem: 8, width: 480}, TierLow, true},
		{"mid width", fakeCaps{mem: 8, width: 1024}, TierMedium, false},
		{"unknown", nil, TierHigh, false},
	}
	for _, tc := range cases {
		c := NewController(tc.caps)
		if c.Tier() != tc.tier {
			t.Fatalf("%s: tier = %v, want %v", tc.name, c.Tier(), tc.tier)
		}
		if c.LowPower() != tc.lowPower {
			t.Fatalf("%s: lowPower = %v, want %v", tc.name, c.LowPower(), tc.lowPower)
		}
	}
}

func TestControllerDowngradeLatches(t *testing.T) {
	c := NewController(fakeCaps{mem: 16, width: 2560})
	c.Downgrade()

	if c.Tier() != TierLow || !c.LowPower() {
		t.Fatalf("after downgrade: tier=%v lowPower=%v", c.Tier(), c.LowPower())
	}
	if c.VertexDetail() || c.ParticlesEnabled() || c.InnerCoreVisible() {
		t.Fatal("expensive branches still enabled after downgrade")
	}
	if got := c.Surface().PixelRatio; got != 1 {
		t.Fatalf("pixel ratio = %v, want 1", got)
	}

	// Idempotent, and nothing unlatches it.
	c.Downgrade()
	c.SetVisible(false)
	c.SetVisible(true)
	if !c.LowPower() {
		t.Fatal("lowPower reverted within session")
	}
}

func TestControllerVisibilityIndependentOfTier(t *testing.T) {
	c := NewController(fakeCaps{mem: 8, width: 1920})
	c.SetVisible(false)
	if c.Tier() != TierHigh {
		t.Fatalf("visibility change moved tier to %v", c.Tier())
	}
	c.SetVisible(true)
	if !c.Visible() {
		t.Fatal("visibility did not toggle back")
	}
}

func TestControllerForcedTier(t *testing.T) {
	c := NewControllerAt(TierMedium)
	if c.Tier() != TierMedium || c.LowPower() {
		t.Fatalf("forced medium: tier=%v lowPower=%v", c.Tier(), c.LowPower())
	}
	if !c.Visible() {
		t.Fatal("forced controller starts hidden")
	}

	c = NewControllerAt(TierLow)
	if !c.LowPower() {
		t.Fatal("forced low start did not latch low power")
	}
}

func TestParseTier(t *testing.T) {
	cases := []struct {
		label string
		tier  Tier
		ok    bool
	}{
		{"low", TierLow, true},
		{"medium", TierMedium, true},
		{"high", TierHigh, true},
		{"ultra", TierLow, false},
		{"", TierLow, false},
	}
	for _, tc := range cases {
		got, ok := ParseTier(tc.label)
		if got != tc.tier || ok != tc.ok {
			t.Fatalf("ParseTier(%q) = %v, %v", tc.label, got, ok)
		}
	}
}

func TestTierKnobs(t *testing.T) {
	if n := TierLow.ParticleCount(); n != 0 {
		t.Fatalf("low tier particle count = %d, want 0", n)
	}
	segLow, _ := TierLow.MeshResolution()
	segHigh, _ := TierHigh.MeshResolution()
	if segLow >= segHigh {
		t.Fatalf("low tier resolution %d not coarser than high %d", segLow, segHigh)
	}
}
