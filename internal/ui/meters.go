package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/olivier-w/orb/internal/spectrum"
)

var meterLabels = [3]string{"bass", "mid ", "high"}

// meters renders the three energy bands as gradient bars, spring-
// smoothed so the display eases instead of flickering.
type meters struct {
	bars   [3]progress.Model
	spring springField
}

func newMeters(fps int) *meters {
	m := &meters{
		spring: newSpringField(fps, 8.0, 0.6),
	}
	gradients := [3][2]string{
		{"#1e3a8a", "#38bdf8"},
		{"#14532d", "#34d399"},
		{"#713f12", "#eab308"},
	}
	for i := range m.bars {
		m.bars[i] = progress.New(
			progress.WithGradient(gradients[i][0], gradients[i][1]),
			progress.WithoutPercentage(),
		)
	}
	m.spring.resize(3)
	return m
}

func (m *meters) view(bands spectrum.EnergyBands, width int) string {
	barWidth := width - 8
	if barWidth < 10 {
		barWidth = 10
	}

	levels := [3]float64{bands.Bass, bands.Mid, bands.High}
	var out strings.Builder
	for i := range m.bars {
		if i > 0 {
			out.WriteByte('\n')
		}
		m.bars[i].Width = barWidth
		level := m.spring.step(i, levels[i])
		if level < 0 {
			level = 0
		}
		if level > 1 {
			level = 1
		}
		fmt.Fprintf(&out, "  %s %s", tierStyle.Render(meterLabels[i]), m.bars[i].ViewAs(level))
	}
	return out.String()
}
