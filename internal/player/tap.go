package player

import (
	"io"
	"sync"

	"github.com/olivier-w/orb/internal/spectrum"
)

// tapReader sits between the decoder and the audio device. It
// forwards 16-bit LE PCM untouched while copying each decoded sample
// into a ring buffer for spectrum analysis, and tracks the byte
// position for the elapsed-time display. Reads may split a sample
// across calls, so a carry byte bridges odd-length chunks.
type tapReader struct {
	reader io.ReadSeeker
	ring   *spectrum.RingBuffer

	pos int64
	mu  sync.Mutex

	carry    byte
	hasCarry bool
	scratch  []int16
}

func newTapReader(r io.ReadSeeker, ring *spectrum.RingBuffer) *tapReader {
	return &tapReader{reader: r, ring: ring}
}

func (t *tapReader) Read(p []byte) (int, error) {
	n, err := t.reader.Read(p)
	if n > 0 {
		t.mu.Lock()
		t.pos += int64(n)
		t.mu.Unlock()
		t.tap(p[:n])
	}
	return n, err
}

// tap converts the PCM bytes to int16 samples and pushes them into
// the ring buffer. Called only from the playback goroutine.
func (t *tapReader) tap(b []byte) {
	s := t.scratch[:0]
	i := 0
	if t.hasCarry && len(b) > 0 {
		s = append(s, int16(uint16(t.carry)|uint16(b[0])<<8))
		t.hasCarry = false
		i = 1
	}
	for ; i+1 < len(b); i += 2 {
		s = append(s, int16(uint16(b[i])|uint16(b[i+1])<<8))
	}
	if i < len(b) {
		t.carry = b[i]
		t.hasCarry = true
	}
	if len(s) > 0 {
		t.ring.Write(s)
	}
	t.scratch = s[:0]
}

func (t *tapReader) Pos() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}

func (t *tapReader) SetPos(pos int64) {
	t.mu.Lock()
	t.pos = pos
	t.mu.Unlock()
}
