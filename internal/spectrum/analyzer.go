package spectrum

import "math"

const (
	analyzerFFTSize = 1024
	analyzerDecay   = 0.3

	// SampleBins is the bin count of the spectrum samples the
	// analyzer emits, matching the banding ranges in Bands.
	SampleBins = 32
)

// Analyzer turns raw stereo int16 PCM into byte spectrum samples:
// mono mix, Hann window, FFT, logarithmic banding, exponential
// smoothing, then scaling relative to the running peak. One Analyzer
// serves one audio stream; buffers are allocated once and reused.
type Analyzer struct {
	real  []float64
	imag  []float64
	bands []float64
	out   []byte
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		real:  make([]float64, analyzerFFTSize),
		imag:  make([]float64, analyzerFFTSize),
		bands: make([]float64, SampleBins),
		out:   make([]byte, SampleBins),
	}
}

// Sample processes the most recent PCM window and returns the
// current spectrum sample. It returns nil when there is not enough
// audio buffered yet, which callers treat as the idle state. The
// returned slice is reused across calls.
func (a *Analyzer) Sample(samples []int16) []byte {
	if len(samples) < analyzerFFTSize {
		return nil
	}

	for i := range analyzerFFTSize {
		idx := i * 2 // stereo: average each frame's pair
		if idx+1 < len(samples) {
			a.real[i] = (float64(samples[idx]) + float64(samples[idx+1])) / 65536.0
		} else if idx < len(samples) {
			a.real[i] = float64(samples[idx]) / 32768.0
		} else {
			a.real[i] = 0
		}
		a.imag[i] = 0
		w := 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(analyzerFFTSize-1)))
		a.real[i] *= w
	}

	fft(a.real, a.imag)

	maxBin := analyzerFFTSize / 2
	for b := range SampleBins {
		lo := int(math.Pow(float64(maxBin), float64(b)/float64(SampleBins)))
		hi := int(math.Pow(float64(maxBin), float64(b+1)/float64(SampleBins)))
		if lo < 1 {
			lo = 1
		}
		if hi <= lo {
			hi = lo + 1
		}
		if hi > maxBin {
			hi = maxBin
		}

		sum := 0.0
		count := 0
		for i := lo; i < hi; i++ {
			sum += math.Sqrt(a.real[i]*a.real[i] + a.imag[i]*a.imag[i])
			count++
		}
		var mag float64
		if count > 0 {
			mag = sum / float64(count)
		}

		a.bands[b] = a.bands[b]*analyzerDecay + mag*(1-analyzerDecay)
	}

	// Scale to byte magnitudes relative to the current peak. The
	// floor keeps silence mapping to zero instead of blowing up.
	maxVal := 0.01
	for _, v := range a.bands {
		if v > maxVal {
			maxVal = v
		}
	}
	for i, v := range a.bands {
		level := v / maxVal
		if level > 1 {
			level = 1
		}
		a.out[i] = byte(level * 255)
	}

	return a.out
}
