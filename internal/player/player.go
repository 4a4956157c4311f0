// Package player decodes an audio file, plays it through the system
// output, and exposes the decoded PCM stream for spectrum analysis.
package player

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/olivier-w/orb/internal/spectrum"
)

const bytesPerSample = 2 // 16-bit PCM

// ringSamples is sized for several FFT windows of stereo audio so
// the analyzer always finds a full window of recent samples.
const ringSamples = 8192

// Player manages audio playback for one file.
type Player struct {
	file      *os.File
	decoder   audioDecoder
	tap       *tapReader
	ring      *spectrum.RingBuffer
	otoCtx    *oto.Context
	otoPlayer *oto.Player
	duration  time.Duration
	volume    float64
	paused    bool
	done      chan struct{}
	mu        sync.Mutex
	closed    bool
}

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto(sampleRate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// New creates a Player for the given audio file path and starts
// playback immediately.
func New(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	dec, err := newDecoder(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	ctx, err := initOto(dec.SampleRate(), dec.ChannelCount())
	if err != nil {
		f.Close()
		return nil, err
	}

	bytesPerSec := dec.SampleRate() * dec.ChannelCount() * bytesPerSample
	dur := time.Duration(float64(dec.Length()) / float64(bytesPerSec) * float64(time.Second))

	ring := spectrum.NewRingBuffer(ringSamples)
	tap := newTapReader(dec, ring)

	p := &Player{
		file:     f,
		decoder:  dec,
		tap:      tap,
		ring:     ring,
		otoCtx:   ctx,
		duration: dur,
		volume:   0.8,
		done:     make(chan struct{}),
	}

	p.otoPlayer = ctx.NewPlayer(tap)
	p.otoPlayer.SetVolume(p.volume)
	p.otoPlayer.Play()

	// Monitor for playback end
	go p.monitor()

	return p, nil
}

func (p *Player) monitor() {
	// Poll until playback finishes or player is closed
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		pos := p.tap.Pos()
		total := p.decoder.Length()
		paused := p.paused
		p.mu.Unlock()

		if !paused && pos >= total {
			close(p.done)
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// Done returns a channel that closes when playback finishes.
func (p *Player) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Samples returns up to n of the most recently played PCM samples,
// the input to spectrum analysis. Empty while paused long enough for
// the device to drain.
func (p *Player) Samples(n int) []int16 {
	return p.ring.Recent(n)
}

// Restart seeks to the beginning and resumes playback. This resets
// the done channel so Done() can be used again.
func (p *Player) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.decoder.Seek(0, io.SeekStart)
	p.tap.SetPos(0)
	p.ring.Clear()

	p.otoPlayer.Pause()
	p.otoPlayer = p.otoCtx.NewPlayer(p.tap)
	p.otoPlayer.SetVolume(p.volume)

	p.done = make(chan struct{})
	p.paused = false
	p.otoPlayer.Play()

	go p.monitor()
}

// TogglePause toggles between play and pause.
func (p *Player) TogglePause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.paused {
		p.otoPlayer.Play()
		p.paused = false
	} else {
		p.otoPlayer.Pause()
		p.paused = true
	}
}

// Paused returns whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	bytesPerSec := p.decoder.SampleRate() * p.decoder.ChannelCount() * bytesPerSample
	secs := float64(p.tap.Pos()) / float64(bytesPerSec)
	return time.Duration(secs * float64(time.Second))
}

// Duration returns the total duration of the track.
func (p *Player) Duration() time.Duration {
	return p.duration
}

// Volume returns current volume (0.0 to 1.0).
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume sets volume (clamped to 0.0 - 1.0).
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume = v
	p.otoPlayer.SetVolume(v)
}

// AdjustVolume adjusts volume by delta.
func (p *Player) AdjustVolume(delta float64) {
	p.mu.Lock()
	v := p.volume + delta
	p.mu.Unlock()
	p.SetVolume(v) // SetVolume handles clamping
}

// Close releases all resources.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.otoPlayer.Pause()
	p.file.Close()
}
