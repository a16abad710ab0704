package halfband

const (
	historySize = 64
	historyMask = historySize - 1

	numTaps   = 39
	centerTap = 19
)

// centerCoeff is the single nonzero odd-indexed tap. The difference between
// the filter's two polyphase branches has constant magnitude 2*centerCoeff
// across the whole spectrum, which is the defining halfband property.
const centerCoeff = 0.632812500

// coeffs is the hardware-derived resampling filter. It is symmetric about
// the center tap; all other odd-indexed taps are exactly zero.
var coeffs = [numTaps]float64{
	-0.000275135, 0, -0.001467466, 0, -0.004356503, 0, -0.009765625, 0,
	-0.018493652, 0, -0.031494141, 0, -0.050598145, 0, -0.079833984, 0,
	-0.130859375, 0, -0.281494141,
	centerCoeff,
	-0.281494141, 0, -0.130859375, 0, -0.079833984, 0, -0.050598145, 0,
	-0.031494141, 0, -0.018493652, 0, -0.009765625, 0, -0.004356503, 0,
	-0.001467466, 0, -0.000275135,
}

// history is a fixed 64-slot ring of filter memory with a mask-wrapped
// cursor. The zero value is ready to use.
type history struct {
	ring [historySize]float64
	pos  int
}

func (h *history) push(x float64) {
	h.ring[h.pos&historyMask] = x
	h.pos++
}

func (h *history) reset() {
	for i := range h.ring {
		h.ring[i] = 0
	}
	h.pos = 0
}

// Decimator converts two consecutive high-rate samples into one half-rate
// sample. Each instance owns private filter memory; instances are never
// shared between channels.
type Decimator struct {
	h history
}

// NewDecimator returns a decimator with cleared filter memory.
func NewDecimator() *Decimator {
	return &Decimator{}
}

// Process consumes the sample pair (x0, x1) and returns one output sample.
// The full 39-tap convolution runs every call; skipping the zero taps would
// shorten the effective window and alias.
func (d *Decimator) Process(x0, x1 float64) float64 {
	d.h.push(x0)
	d.h.push(x1)

	var acc float64
	for k := 0; k < numTaps; k++ {
		acc += coeffs[k] * d.h.ring[(d.h.pos-1-k)&historyMask]
	}

	return acc
}

// Reset clears filter memory.
func (d *Decimator) Reset() {
	d.h.reset()
}

// Interpolator converts one half-rate sample into two consecutive high-rate
// samples by zero-stuffed polyphase synthesis.
type Interpolator struct {
	h history
}

// NewInterpolator returns an interpolator with cleared filter memory.
func NewInterpolator() *Interpolator {
	return &Interpolator{}
}

// Process consumes one input sample and returns the two output samples.
//
// Both polyphase sums anchor at the input sample just pushed: phase 0 runs
// the even-indexed taps over the real samples, phase 1 runs the odd-indexed
// taps, which land on the stuffed zeros and therefore sum to exactly 0.0.
// The zero push and the phase-1 convolution still happen so that cursor
// pacing and output alignment match the reference hardware stream; both
// sums are doubled to make up the zero-stuffing gain loss.
func (ip *Interpolator) Process(y float64) (x0, x1 float64) {
	ip.h.push(y)
	anchor := ip.h.pos

	var even float64
	for k := 0; k < numTaps; k += 2 {
		even += coeffs[k] * ip.h.ring[(anchor-1-k)&historyMask]
	}

	ip.h.push(0)

	var odd float64
	for k := 1; k < numTaps; k += 2 {
		odd += coeffs[k] * ip.h.ring[(anchor-1-k)&historyMask]
	}

	return even * 2, odd * 2
}

// Reset clears filter memory.
func (ip *Interpolator) Reset() {
	ip.h.reset()
}

// Coefficients returns a copy of the 39-tap filter table.
func Coefficients() [39]float64 {
	return coeffs
}
