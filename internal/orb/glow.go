package orb

// Glow is the slowly tinted backdrop plane behind the body. It
// deliberately ignores the audio bands so the background stays calm
// against the reactive foreground.
type Glow struct {
	color    Color
	target   Color
	rotation float64
}

const glowBlend = 0.02

func NewGlow(target Color) *Glow {
	return &Glow{color: target, target: target}
}

func (g *Glow) SetTarget(c Color) {
	g.target = c
}

// Update advances one frame: a slower color drift than the body and
// a constant slow spin.
func (g *Glow) Update() {
	g.color = g.color.Lerp(g.target, glowBlend)
	g.rotation += 0.0005
}

func (g *Glow) Color() Color      { return g.color }
func (g *Glow) Rotation() float64 { return g.rotation }
