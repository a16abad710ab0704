// Package workarea emulates the SPU's reverb sample RAM: a circular buffer
// of saturating 16-bit samples addressed relative to an advancing base
// cursor.
//
// All delay taps of the reverb network live in one arena and are expressed
// as offsets from the shared base; advancing the base by one sample per tick
// moves every delay line at once. Stores truncate toward zero and saturate
// to the signed 16-bit range, which reproduces the hardware's arithmetic
// distortion under heavy feedback instead of wrapping or rescaling.
package workarea

import (
	"fmt"
	"math/bits"
)

// MaxSize is the largest supported arena length in samples.
const MaxSize = 65536

const scale = 32768.0

// Area is a power-of-two sized circular buffer of int16 samples.
// It is not safe for concurrent use.
type Area struct {
	buf  []int16
	mask int
	base int
}

// New returns an arena sized to the next power of two >= minSize,
// capped at MaxSize.
func New(minSize int) (*Area, error) {
	if minSize <= 0 {
		return nil, fmt.Errorf("workarea: size must be > 0: %d", minSize)
	}

	size := nextPow2(minSize)
	if size > MaxSize {
		size = MaxSize
	}

	return &Area{
		buf:  make([]int16, size),
		mask: size - 1,
	}, nil
}

// Len returns the arena length in samples.
func (a *Area) Len() int {
	return len(a.buf)
}

// ReadRelative returns the sample at base+offset as a float in [-1, 1).
// Negative offsets are valid and wrap.
func (a *Area) ReadRelative(offset int) float64 {
	return float64(a.buf[(a.base+offset)&a.mask]) / scale
}

// WriteRelative stores v at base+offset, truncated toward zero and
// saturated to the signed 16-bit range.
func (a *Area) WriteRelative(offset int, v float64) {
	s := v * scale

	var q int16
	switch {
	case s >= 32767:
		q = 32767
	case s <= -32768:
		q = -32768
	default:
		q = int16(s)
	}

	a.buf[(a.base+offset)&a.mask] = q
}

// Advance moves the base cursor forward by n samples.
func (a *Area) Advance(n int) {
	a.base = (a.base + n) & a.mask
}

// Reset zeroes the arena contents and rewinds the base cursor.
func (a *Area) Reset() {
	for i := range a.buf {
		a.buf[i] = 0
	}
	a.base = 0
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
