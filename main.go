package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/orb/internal/engine"
	"github.com/olivier-w/orb/internal/orb"
	"github.com/olivier-w/orb/internal/player"
	"github.com/olivier-w/orb/internal/quality"
	"github.com/olivier-w/orb/internal/ui"
)

func main() {
	emotionFlag := flag.String("emotion", "neutral", "starting emotion (neutral, calm, joyful, sad, angry, anxious, surprised)")
	detailFlag := flag.String("detail", "", "force a detail tier (low, medium, high); default senses the device")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: orb [flags] [audio file]\n\n")
		fmt.Fprintf(os.Stderr, "With no file the orb idles on its own pulse.\n")
		fmt.Fprintf(os.Stderr, "Supported formats: %s\n\n", strings.Join(player.SupportedExts, " "))
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		p    *player.Player
		meta player.Metadata
	)
	if flag.NArg() > 0 {
		path := flag.Arg(0)

		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			fmt.Fprintf(os.Stderr, "Error: %s is a directory\n", path)
			os.Exit(1)
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !player.IsSupportedExt(ext) {
			fmt.Fprintf(os.Stderr, "Error: unsupported format %s (supported: %s)\n", ext, strings.Join(player.SupportedExts, " "))
			os.Exit(1)
		}

		meta = player.ReadMetadata(path)

		p, err = player.New(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating player: %v\n", err)
			os.Exit(1)
		}
		defer p.Close()
	}

	ctrl := quality.NewController(termCaps{})
	if *detailFlag != "" {
		tier, ok := quality.ParseTier(*detailFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown detail tier %q (low, medium, high)\n", *detailFlag)
			os.Exit(1)
		}
		ctrl = quality.NewControllerAt(tier)
	}
	eng := engine.New(ctrl, orb.ParseEmotion(*emotionFlag), time.Now().UnixNano())

	model := ui.New(eng, p, meta)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// termCaps senses what little the terminal environment exposes.
// Either reading may come back zero, which the quality controller
// treats as unknown.
type termCaps struct{}

func (termCaps) ViewportWidth() int {
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		return v
	}
	return 0
}

func (termCaps) DeviceMemoryGB() float64 {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0
	}
	for _, line := range strings.Split(string(data), "\n") {
		after, ok := strings.CutPrefix(line, "MemTotal:")
		if !ok {
			continue
		}
		fields := strings.Fields(after)
		if len(fields) == 0 {
			return 0
		}
		kb, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0
		}
		return kb / (1024 * 1024)
	}
	return 0
}
