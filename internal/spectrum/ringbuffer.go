package spectrum

import "sync"

// RingBuffer is a thread-safe circular sample buffer. The playback
// goroutine writes decoded PCM into it; the frame loop reads the most
// recent window out for analysis.
type RingBuffer struct {
	buf  []int16
	size int
	w    int // write position
	len  int // current fill level
	mu   sync.Mutex
}

// NewRingBuffer creates a ring buffer holding size samples.
func NewRingBuffer(size int) *RingBuffer {
	return &RingBuffer{
		buf:  make([]int16, size),
		size: size,
	}
}

// Write appends samples, overwriting the oldest data when full.
func (rb *RingBuffer) Write(p []int16) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	for _, s := range p {
		rb.buf[rb.w] = s
		rb.w = (rb.w + 1) % rb.size
	}
	rb.len += len(p)
	if rb.len > rb.size {
		rb.len = rb.size
	}
}

// Recent returns up to n of the most recently written samples.
func (rb *RingBuffer) Recent(n int) []int16 {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if n > rb.len {
		n = rb.len
	}
	if n == 0 {
		return nil
	}

	out := make([]int16, n)
	start := (rb.w - n + rb.size) % rb.size
	for i := range n {
		out[i] = rb.buf[(start+i)%rb.size]
	}
	return out
}

// Clear resets the buffer.
func (rb *RingBuffer) Clear() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.w = 0
	rb.len = 0
}
