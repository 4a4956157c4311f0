package quality

import "time"

const (
	fpsFloor       = 24
	badSecondLimit = 3
	windowLength   = time.Second
)

// Monitor samples rendered frames per wall-clock second and fires a
// one-way downgrade after sustained degradation. It never upgrades:
// a machine that struggled once is assumed to struggle again.
type Monitor struct {
	onDowngrade func()

	frames      int
	windowStart time.Time
	started     bool
	badSeconds  int
}

func NewMonitor(onDowngrade func()) *Monitor {
	return &Monitor{onDowngrade: onDowngrade}
}

// Frame records one rendered frame at the given instant. When the
// current window has run a full second, the frame count is read as
// that window's FPS: below the floor it extends the bad streak, at
// or above it the streak resets. Three consecutive bad seconds fire
// the downgrade exactly once, and the streak resets so the same
// stretch cannot fire again.
func (m *Monitor) Frame(now time.Time) {
	if !m.started {
		m.started = true
		m.windowStart = now
	}

	if now.Sub(m.windowStart) >= windowLength {
		if m.frames < fpsFloor {
			m.badSeconds++
		} else {
			m.badSeconds = 0
		}
		m.frames = 0
		m.windowStart = now

		if m.badSeconds >= badSecondLimit {
			m.badSeconds = 0
			if m.onDowngrade != nil {
				m.onDowngrade()
			}
		}
	}

	m.frames++
}

// BadSeconds exposes the current streak length.
func (m *Monitor) BadSeconds() int { return m.badSeconds }
