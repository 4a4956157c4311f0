package quality

// Capabilities reports static device characteristics. The host
// container supplies an implementation; the core has no environment
// sensing of its own. A zero memory reading means unknown.
type Capabilities interface {
	DeviceMemoryGB() float64
	ViewportWidth() int
}

// Heuristic thresholds for the initial tier.
const (
	lowMemoryGB      = 4.0
	mobileBreakpoint = 768
	mediumBreakpoint = 1200
)

// SurfaceConfig is handed to the renderer's surface setup and
// re-derived whenever the tier changes.
type SurfaceConfig struct {
	PixelRatio  float64
	Antialias   bool
	ToneMapping bool
}

// Controller holds the session-wide quality state. It is owned by
// the frame loop goroutine; the monitor's downgrade call is the only
// writer besides visibility toggles.
type Controller struct {
	tier     Tier
	lowPower bool
	visible  bool
}

// NewController seeds the tier from device heuristics before any
// frame is rendered. Constrained memory or a mobile-width viewport
// starts the session in low-power mode directly.
func NewController(caps Capabilities) *Controller {
	c := &Controller{tier: TierHigh, visible: true}
	if caps == nil {
		return c
	}
	mem := caps.DeviceMemoryGB()
	width := caps.ViewportWidth()
	switch {
	case (mem > 0 && mem < lowMemoryGB) || (width > 0 && width < mobileBreakpoint):
		c.tier = TierLow
		c.lowPower = true
	case width > 0 && width < mediumBreakpoint:
		c.tier = TierMedium
	}
	return c
}

// NewControllerAt starts at a host-chosen tier, bypassing the device
// heuristics. A low start latches low-power, matching the heuristic
// path; degradation from here is still one-way.
func NewControllerAt(tier Tier) *Controller {
	return &Controller{tier: tier, lowPower: tier == TierLow, visible: true}
}

// Downgrade drops to the lowest tier and latches low-power mode.
// There is no inverse operation; the latch holds for the session.
// Calling it again is a no-op.
func (c *Controller) Downgrade() {
	c.tier = TierLow
	c.lowPower = true
}

func (c *Controller) Tier() Tier     { return c.tier }
func (c *Controller) LowPower() bool { return c.lowPower }

// SetVisible records host visibility. Unlike low-power this toggles
// freely and never feeds back into the tier.
func (c *Controller) SetVisible(v bool) { c.visible = v }
func (c *Controller) Visible() bool     { return c.visible }

// VertexDetail reports whether per-vertex displacement may run.
func (c *Controller) VertexDetail() bool { return c.tier > TierLow }

// ParticlesEnabled reports whether the particle field exists at all.
func (c *Controller) ParticlesEnabled() bool { return c.tier > TierLow }

// InnerCoreVisible reports whether the inner glow layer renders.
func (c *Controller) InnerCoreVisible() bool { return c.tier > TierLow }

// Surface derives the renderer surface preferences for the current
// tier. Pixel ratio is clamped to 1 in low-power mode.
func (c *Controller) Surface() SurfaceConfig {
	switch c.tier {
	case TierHigh:
		return SurfaceConfig{PixelRatio: 2, Antialias: true, ToneMapping: true}
	case TierMedium:
		return SurfaceConfig{PixelRatio: 1.5, Antialias: true, ToneMapping: true}
	default:
		return SurfaceConfig{PixelRatio: 1}
	}
}
