package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/orb/internal/engine"
	"github.com/olivier-w/orb/internal/orb"
	"github.com/olivier-w/orb/internal/player"
	"github.com/olivier-w/orb/internal/quality"
)

type fakeCaps struct {
	mem   float64
	width int
}

func (c fakeCaps) DeviceMemoryGB() float64 { return c.mem }
func (c fakeCaps) ViewportWidth() int      { return c.width }

func newTestModel() Model {
	ctrl := quality.NewController(fakeCaps{mem: 16, width: 1920})
	eng := engine.New(ctrl, orb.EmotionNeutral, 1)
	return New(eng, nil, player.Metadata{})
}

func TestEmotionKeyCycles(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m = next.(Model)
	if got := m.engine.Emotion(); got != orb.EmotionCalm {
		t.Fatalf("emotion after one cycle = %v, want calm", got)
	}
}

func TestBlurStopsFrames(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.BlurMsg{})
	m = next.(Model)

	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.frame != nil {
		t.Fatal("produced a frame while blurred")
	}

	next, _ = m.Update(tea.FocusMsg{})
	m = next.(Model)
	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.frame == nil {
		t.Fatal("no frame after regaining focus")
	}
}

func TestViewBeforeFirstFrame(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	view := m.View()
	if view == "" {
		t.Fatal("empty view before first frame")
	}
	if !strings.Contains(view, "neutral") {
		t.Fatal("view missing emotion label")
	}
}

func TestQuitKeyReturnsQuit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if m.View() != "" {
		t.Fatal("view not cleared after quit")
	}
}
