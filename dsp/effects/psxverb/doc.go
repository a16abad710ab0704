// Package psxverb emulates the PlayStation 1 SPU hardware reverb
// sample-for-sample.
//
// The network is the SPU's fixed-function design: the stereo input is
// decimated to 22.05 kHz, fed through same-side and cross-side one-pole
// reflections, a four-tap comb bank and two cascaded Schroeder allpass
// diffusers, all addressed into a shared saturating work area, then
// interpolated back to 44.1 kHz and crossfaded with the dry signal. The six
// presets are the console's register tables; runtime coefficients are derived
// from them by fixed scaling plus the live decay / input-gain / reverb-level
// controls.
//
// A Reverb holds all state for one logical effect slot. Instances are fully
// independent and contain no locking: drive each instance from a single
// goroutine and change parameters between blocks, never during ProcessBlock.
package psxverb
