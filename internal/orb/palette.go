// Package orb holds the animated pieces of the visualization: the
// deformable body, the orbiting particle field, and the ambient glow
// backdrop, plus the emotion palette that tints all three.
package orb

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Lerp moves c toward target by factor f and returns the result.
// For f in (0, 1) the distance to target strictly decreases and
// never overshoots.
func (c Color) Lerp(target Color, f float64) Color {
	return Color{
		R: c.R + (target.R-c.R)*f,
		G: c.G + (target.G-c.G)*f,
		B: c.B + (target.B-c.B)*f,
	}
}

// DistanceSq returns the squared RGB distance between two colors.
func (c Color) DistanceSq(o Color) float64 {
	dr := c.R - o.R
	dg := c.G - o.G
	db := c.B - o.B
	return dr*dr + dg*dg + db*db
}

func rgb(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Emotion is the closed set of moods the orb can express.
type Emotion int

const (
	EmotionNeutral Emotion = iota
	EmotionCalm
	EmotionJoyful
	EmotionSad
	EmotionAngry
	EmotionAnxious
	EmotionSurprised
)

var emotionNames = [...]string{
	EmotionNeutral:   "neutral",
	EmotionCalm:      "calm",
	EmotionJoyful:    "joyful",
	EmotionSad:       "sad",
	EmotionAngry:     "angry",
	EmotionAnxious:   "anxious",
	EmotionSurprised: "surprised",
}

// ParseEmotion maps a label to an Emotion. Unknown labels fall back
// to neutral; the caller never sees an error for bad input.
func ParseEmotion(label string) Emotion {
	for e, name := range emotionNames {
		if label == name {
			return Emotion(e)
		}
	}
	return EmotionNeutral
}

func (e Emotion) String() string {
	if e >= 0 && int(e) < len(emotionNames) {
		return emotionNames[e]
	}
	return "neutral"
}

// Next cycles to the following emotion, wrapping after the last.
func (e Emotion) Next() Emotion {
	n := e + 1
	if int(n) >= len(emotionNames) {
		n = EmotionNeutral
	}
	return n
}

// Color returns the palette entry for the emotion. The switch is
// exhaustive over the defined constants; anything else gets the
// neutral tint.
func (e Emotion) Color() Color {
	switch e {
	case EmotionNeutral:
		return rgb(0x38, 0xbd, 0xf8)
	case EmotionCalm:
		return rgb(0x34, 0xd3, 0x99)
	case EmotionJoyful:
		return rgb(0xea, 0xb3, 0x08)
	case EmotionSad:
		return rgb(0x63, 0x66, 0xf1)
	case EmotionAngry:
		return rgb(0xef, 0x44, 0x44)
	case EmotionAnxious:
		return rgb(0xa7, 0x8b, 0xfa)
	case EmotionSurprised:
		return rgb(0xf9, 0x73, 0x16)
	default:
		return rgb(0x38, 0xbd, 0xf8)
	}
}
