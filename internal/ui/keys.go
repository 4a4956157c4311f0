package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(hasAudio bool) string {
	s := "e emotion"
	if hasAudio {
		s += "  space pause  +/- volume"
	}
	s += "  q quit"
	return s
}
