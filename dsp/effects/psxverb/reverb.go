package psxverb

import (
	"fmt"

	"github.com/cwbudde/algo-psxverb/dsp/halfband"
	"github.com/cwbudde/algo-psxverb/dsp/workarea"
)

const (
	defaultPreset      = 4 // Hall
	defaultDecay       = 0.7
	defaultMix         = 0.35
	defaultInputGain   = 0.5
	defaultReverbLevel = 0.5
)

// Reverb is one independent effect instance: the work area, the four
// resampler states, both coefficient sets and the live controls.
//
// It is not safe for concurrent use. Drive it from one goroutine and change
// parameters only between ProcessBlock calls.
type Reverb struct {
	work *workarea.Area

	decimL  halfband.Decimator
	decimR  halfband.Decimator
	interpL halfband.Interpolator
	interpR halfband.Interpolator

	base    scaledPreset
	current scaledPreset

	presetIndex int
	decay       float64
	mix         float64
	inputGain   float64
	reverbLevel float64
}

// Option configures a Reverb at construction time.
type Option func(*Reverb)

// WithPreset selects the initial preset; out-of-range indices are clamped.
func WithPreset(index int) Option {
	return func(r *Reverb) { r.presetIndex = clampPresetIndex(index) }
}

// WithDecay sets the initial decay control, clamped to [0, 1].
func WithDecay(v float64) Option {
	return func(r *Reverb) { r.decay = clamp01(v) }
}

// WithMix sets the initial dry/wet mix, clamped to [0, 1].
func WithMix(v float64) Option {
	return func(r *Reverb) { r.mix = clamp01(v) }
}

// WithInputGain sets the initial input gain control, clamped to [0, 1].
func WithInputGain(v float64) Option {
	return func(r *Reverb) { r.inputGain = clamp01(v) }
}

// WithReverbLevel sets the initial reverb level control, clamped to [0, 1].
func WithReverbLevel(v float64) Option {
	return func(r *Reverb) { r.reverbLevel = clamp01(v) }
}

// New creates a fully initialized instance. On error no partial instance is
// returned.
func New(opts ...Option) (*Reverb, error) {
	r := &Reverb{
		presetIndex: defaultPreset,
		decay:       defaultDecay,
		mix:         defaultMix,
		inputGain:   defaultInputGain,
		reverbLevel: defaultReverbLevel,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.applyPreset(r.presetIndex); err != nil {
		return nil, err
	}

	return r, nil
}

// ApplyPreset switches to the given register set, clamping out-of-range
// indices. The work area is resized to the preset's working set and
// cleared, and all live controls are reapplied to the fresh coefficients.
func (r *Reverb) ApplyPreset(index int) {
	// The table sizes are compile-time constants, so this cannot fail
	// once the instance exists.
	_ = r.applyPreset(index)
}

func (r *Reverb) applyPreset(index int) error {
	index = clampPresetIndex(index)
	p := &presetTable[index]

	elements := workElements(p)
	if r.work != nil && workFits(r.work.Len(), elements) {
		r.work.Reset()
	} else {
		w, err := workarea.New(elements)
		if err != nil {
			return fmt.Errorf("psxverb: preset %d: %w", index, err)
		}
		r.work = w
	}

	r.presetIndex = index
	r.base = scalePreset(p)
	r.current = r.base

	r.applyDecay()
	r.applyInputGain()
	r.applyReverbLevel()

	return nil
}

// workFits reports whether an existing arena of length have already matches
// the power-of-two sizing for want elements.
func workFits(have, want int) bool {
	if want > workarea.MaxSize {
		want = workarea.MaxSize
	}
	return have >= want && (have == workarea.MaxSize || have/2 < want)
}

// Preset returns the active preset index.
func (r *Reverb) Preset() int { return r.presetIndex }

// SetDecay updates the decay control, clamped to [0, 1].
func (r *Reverb) SetDecay(v float64) {
	r.decay = clamp01(v)
	r.applyDecay()
}

// Decay returns the decay control.
func (r *Reverb) Decay() float64 { return r.decay }

// SetMix updates the dry/wet mix, clamped to [0, 1]. The mix is a pure
// output crossfade and touches no network coefficient.
func (r *Reverb) SetMix(v float64) {
	r.mix = clamp01(v)
}

// Mix returns the dry/wet mix.
func (r *Reverb) Mix() float64 { return r.mix }

// SetInputGain updates the input gain control, clamped to [0, 1].
func (r *Reverb) SetInputGain(v float64) {
	r.inputGain = clamp01(v)
	r.applyInputGain()
}

// InputGain returns the input gain control.
func (r *Reverb) InputGain() float64 { return r.inputGain }

// SetReverbLevel updates the reverb level control, clamped to [0, 1].
func (r *Reverb) SetReverbLevel(v float64) {
	r.reverbLevel = clamp01(v)
	r.applyReverbLevel()
}

// ReverbLevel returns the reverb level control.
func (r *Reverb) ReverbLevel() float64 { return r.reverbLevel }

// Reset clears all audio state (work area and resampler memory) without
// touching presets or controls.
func (r *Reverb) Reset() {
	r.work.Reset()
	r.decimL.Reset()
	r.decimR.Reset()
	r.interpL.Reset()
	r.interpR.Reset()
}

// ProcessBlock runs the reverb over an interleaved stereo int16 buffer in
// place. Frames are consumed two at a time (one network tick each); with an
// odd frame count the trailing frame is left untouched, matching the
// hardware-accurate reference.
func (r *Reverb) ProcessBlock(buf []int16) {
	frames := len(buf) / 2
	ticks := frames / 2

	cur := &r.current
	wa := r.work

	for t := 0; t < ticks; t++ {
		i := t * 4

		dryL0 := float64(buf[i]) / 32768.0
		dryR0 := float64(buf[i+1]) / 32768.0
		dryL1 := float64(buf[i+2]) / 32768.0
		dryR1 := float64(buf[i+3]) / 32768.0

		lin := r.decimL.Process(dryL0, dryL1) * cur.vLIN
		rin := r.decimR.Process(dryR0, dryR1) * cur.vRIN

		// Same-side early reflections: one-pole IIR against the wall
		// feedback tap, history read one sample behind the write address.
		lHist := wa.ReadRelative(cur.mLSAME - 1)
		lSame := (lin+wa.ReadRelative(cur.dLSAME)*cur.vWALL-lHist)*cur.vIIR + lHist
		wa.WriteRelative(cur.mLSAME, lSame)

		rHist := wa.ReadRelative(cur.mRSAME - 1)
		rSame := (rin+wa.ReadRelative(cur.dRSAME)*cur.vWALL-rHist)*cur.vIIR + rHist
		wa.WriteRelative(cur.mRSAME, rSame)

		// Cross-side reflections: same structure, fed from the opposite
		// channel's diff tap.
		lHist = wa.ReadRelative(cur.mLDIFF - 1)
		lDiff := (lin+wa.ReadRelative(cur.dRDIFF)*cur.vWALL-lHist)*cur.vIIR + lHist
		wa.WriteRelative(cur.mLDIFF, lDiff)

		rHist = wa.ReadRelative(cur.mRDIFF - 1)
		rDiff := (rin+wa.ReadRelative(cur.dLDIFF)*cur.vWALL-rHist)*cur.vIIR + rHist
		wa.WriteRelative(cur.mRDIFF, rDiff)

		// Comb bank.
		lOut := cur.vCOMB1*wa.ReadRelative(cur.mLCOMB1) +
			cur.vCOMB2*wa.ReadRelative(cur.mLCOMB2) +
			cur.vCOMB3*wa.ReadRelative(cur.mLCOMB3) +
			cur.vCOMB4*wa.ReadRelative(cur.mLCOMB4)
		rOut := cur.vCOMB1*wa.ReadRelative(cur.mRCOMB1) +
			cur.vCOMB2*wa.ReadRelative(cur.mRCOMB2) +
			cur.vCOMB3*wa.ReadRelative(cur.mRCOMB3) +
			cur.vCOMB4*wa.ReadRelative(cur.mRCOMB4)

		// Allpass stage 1.
		d := wa.ReadRelative(cur.mLAPF1 - cur.dAPF1)
		lOut -= cur.vAPF1 * d
		wa.WriteRelative(cur.mLAPF1, lOut)
		lOut = lOut*cur.vAPF1 + d

		d = wa.ReadRelative(cur.mRAPF1 - cur.dAPF1)
		rOut -= cur.vAPF1 * d
		wa.WriteRelative(cur.mRAPF1, rOut)
		rOut = rOut*cur.vAPF1 + d

		// Allpass stage 2.
		d = wa.ReadRelative(cur.mLAPF2 - cur.dAPF2)
		lOut -= cur.vAPF2 * d
		wa.WriteRelative(cur.mLAPF2, lOut)
		lOut = lOut*cur.vAPF2 + d

		d = wa.ReadRelative(cur.mRAPF2 - cur.dAPF2)
		rOut -= cur.vAPF2 * d
		wa.WriteRelative(cur.mRAPF2, rOut)
		rOut = rOut*cur.vAPF2 + d

		wa.Advance(1)

		wetL0, wetL1 := r.interpL.Process(lOut * cur.vLOUT)
		wetR0, wetR1 := r.interpR.Process(rOut * cur.vROUT)

		buf[i] = mixSample(dryL0, wetL0, r.mix)
		buf[i+1] = mixSample(dryR0, wetR0, r.mix)
		buf[i+2] = mixSample(dryL1, wetL1, r.mix)
		buf[i+3] = mixSample(dryR1, wetR1, r.mix)
	}
}

// mixSample crossfades dry and wet, clamps to [-1, 1] and converts back to
// int16 by truncation.
func mixSample(dry, wet, mix float64) int16 {
	v := dry*(1.0-mix) + wet*mix
	v = clamp(v, -1.0, 1.0)
	return int16(v * 32767.0)
}
