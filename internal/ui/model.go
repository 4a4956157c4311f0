package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/orb/internal/engine"
	"github.com/olivier-w/orb/internal/player"
	"github.com/olivier-w/orb/internal/render"
	"github.com/olivier-w/orb/internal/spectrum"
	"github.com/olivier-w/orb/internal/util"
)

const (
	targetFPS    = 30
	tickInterval = time.Second / targetFPS
	frameStep    = 1.0 / targetFPS
)

// pcmWindow is how many recent samples each frame pulls for
// analysis: one FFT window of stereo audio with headroom.
const pcmWindow = 4096

// Model is the Bubbletea model hosting the orb. It owns the frame
// tick, feeds the engine, and gates it on terminal focus.
type Model struct {
	engine   *engine.Engine
	renderer *render.Renderer
	analyzer *spectrum.Analyzer
	meters   *meters

	player   *player.Player // nil when idling without audio
	metadata player.Metadata

	frame    *engine.Frame
	lastTick time.Time
	fps      float64
	width    int
	height   int
	quitting bool
}

// New creates the model. p may be nil for the idle orb.
func New(eng *engine.Engine, p *player.Player, meta player.Metadata) Model {
	return Model{
		engine:   eng,
		renderer: render.New(),
		analyzer: spectrum.NewAnalyzer(),
		meters:   newMeters(targetFPS),
		player:   p,
		metadata: meta,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func checkDone(p *player.Player) tea.Cmd {
	return func() tea.Msg {
		<-p.Done()
		return playbackEndedMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), tea.SetWindowTitle(m.windowTitle())}
	if m.player != nil {
		cmds = append(cmds, checkDone(m.player))
	}
	return tea.Batch(cmds...)
}

func (m Model) windowTitle() string {
	if m.metadata.Title != "" {
		return "orb — " + m.metadata.Title
	}
	return "orb"
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			if m.player != nil {
				m.player.Close()
			}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch msg.String() {
		case "e":
			m.engine.SetEmotionValue(m.engine.Emotion().Next())
		case " ":
			if m.player != nil {
				m.player.TogglePause()
			}
		case "+", "=", "up", "k":
			if m.player != nil {
				m.player.AdjustVolume(0.05)
			}
		case "-", "down", "j":
			if m.player != nil {
				m.player.AdjustVolume(-0.05)
			}
		}
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			if gap := now.Sub(m.lastTick).Seconds(); gap > 0 {
				m.fps += (1/gap - m.fps) * 0.1
			}
		}
		m.lastTick = now

		var sample []byte
		if m.player != nil && !m.player.Paused() {
			sample = m.analyzer.Sample(m.player.Samples(pcmWindow))
		}
		if f := m.engine.Advance(now, frameStep, sample); f != nil {
			m.frame = f
		}
		return m, tickCmd()

	case tea.FocusMsg:
		m.engine.SetVisible(true)
		return m, nil

	case tea.BlurMsg:
		m.engine.SetVisible(false)
		return m, nil

	case playbackEndedMsg:
		// Loop the track; the orb keeps living as long as the host does.
		m.player.Restart()
		return m, checkDone(m.player)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 30 {
		w = 60
	}
	h := m.height
	if h < 12 {
		h = 20
	}

	header := "  " + headerStyle.Render("orb")
	if m.metadata.Title != "" {
		header += "  " + titleStyle.Render(m.metadata.Title)
	}
	header += "  " + emotionStyle.Render(m.engine.Emotion().String())

	tierLabel := "detail " + m.engine.Controller().Tier().String()
	if m.engine.Controller().LowPower() {
		tierLabel += " · low power"
	}
	if m.fps > 0 {
		tierLabel += fmt.Sprintf(" · %d fps", int(m.fps+0.5))
	}
	header += "  " + tierStyle.Render(tierLabel)

	viewportH := h - 8
	if viewportH < 5 {
		viewportH = 5
	}
	viewport := m.renderer.Render(m.frame, w-2, viewportH)
	if viewport == "" {
		viewport = strings.Repeat("\n", viewportH-1)
	}

	var bands spectrum.EnergyBands
	if m.frame != nil {
		bands = m.frame.Bands
	}
	meterBlock := m.meters.view(bands, w)

	status := "  " + statusStyle.Render(m.statusLine())
	help := "  " + helpStyle.Render(helpText(m.player != nil))

	return "\n" + header + "\n" + viewport + "\n" + meterBlock + "\n" + status + "\n" + help
}

func (m Model) statusLine() string {
	if m.player == nil {
		return "idle — no audio"
	}
	icon, state := "▶", "playing"
	if m.player.Paused() {
		icon, state = "❚❚", "paused"
	}
	return fmt.Sprintf("%s %s  %s / %s  vol %d%%",
		icon, state,
		util.FormatDuration(m.player.Position()),
		util.FormatDuration(m.player.Duration()),
		int(m.player.Volume()*100+0.5))
}
