package psxverb

// Address registers count in 8-byte steps; the work area is addressed in
// 16-bit samples, so every address and displacement scales by 4. The
// declared working-set size is in bytes, so it halves. This is the single
// unit interpretation used throughout; see DESIGN.md.
const addrStep = 4

const volScale = 1.0 / 32768.0

// scaledPreset is the floating-point runtime form of a register set.
// Two copies exist per instance: base, scaled straight from the preset and
// never touched afterwards, and current, derived from base by the live
// decay / input-gain / reverb-level controls. The engine only reads current.
type scaledPreset struct {
	dAPF1, dAPF2 int

	vIIR   float64
	vCOMB1 float64
	vCOMB2 float64
	vCOMB3 float64
	vCOMB4 float64
	vWALL  float64
	vAPF1  float64
	vAPF2  float64

	mLSAME, mRSAME   int
	mLCOMB1, mRCOMB1 int
	mLCOMB2, mRCOMB2 int
	dLSAME, dRSAME   int
	mLDIFF, mRDIFF   int
	mLCOMB3, mRCOMB3 int
	mLCOMB4, mRCOMB4 int
	dLDIFF, dRDIFF   int
	mLAPF1, mRAPF1   int
	mLAPF2, mRAPF2   int

	vLIN, vRIN   float64
	vLOUT, vROUT float64
}

func scalePreset(p *preset) scaledPreset {
	return scaledPreset{
		dAPF1: int(p.dAPF1) * addrStep,
		dAPF2: int(p.dAPF2) * addrStep,

		vIIR:   vol(p.vIIR),
		vCOMB1: vol(p.vCOMB1),
		vCOMB2: vol(p.vCOMB2),
		vCOMB3: vol(p.vCOMB3),
		vCOMB4: vol(p.vCOMB4),
		vWALL:  vol(p.vWALL),
		vAPF1:  vol(p.vAPF1),
		vAPF2:  vol(p.vAPF2),

		mLSAME: int(p.mLSAME) * addrStep, mRSAME: int(p.mRSAME) * addrStep,
		mLCOMB1: int(p.mLCOMB1) * addrStep, mRCOMB1: int(p.mRCOMB1) * addrStep,
		mLCOMB2: int(p.mLCOMB2) * addrStep, mRCOMB2: int(p.mRCOMB2) * addrStep,
		dLSAME: int(p.dLSAME) * addrStep, dRSAME: int(p.dRSAME) * addrStep,
		mLDIFF: int(p.mLDIFF) * addrStep, mRDIFF: int(p.mRDIFF) * addrStep,
		mLCOMB3: int(p.mLCOMB3) * addrStep, mRCOMB3: int(p.mRCOMB3) * addrStep,
		mLCOMB4: int(p.mLCOMB4) * addrStep, mRCOMB4: int(p.mRCOMB4) * addrStep,
		dLDIFF: int(p.dLDIFF) * addrStep, dRDIFF: int(p.dRDIFF) * addrStep,
		mLAPF1: int(p.mLAPF1) * addrStep, mRAPF1: int(p.mRAPF1) * addrStep,
		mLAPF2: int(p.mLAPF2) * addrStep, mRAPF2: int(p.mRAPF2) * addrStep,

		vLIN: vol(p.vLIN), vRIN: vol(p.vRIN),
		vLOUT: vol(p.vLOUT), vROUT: vol(p.vROUT),
	}
}

// vol reinterprets a raw volume register as signed and scales it to [-1, 1).
func vol(register uint16) float64 {
	return float64(int16(register)) * volScale
}

// workElements converts the declared working-set size in bytes to a sample
// count.
func workElements(p *preset) int {
	return int(p.workSize / 2)
}

// applyDecay derives current.vWALL from base.vWALL and the decay control.
//
// The mapping is two linear segments meeting at decay=0.5 (the preset's
// native feedback). The upper segment's ceiling is derived from the base
// coefficient so that presets with naturally strong walls get a tighter
// limit, and the final clamp keeps loop gain below unity for every preset
// and control value.
func (r *Reverb) applyDecay() {
	baseWall := r.base.vWALL
	absWall := baseWall
	if absWall < 0 {
		absWall = -absWall
	}
	if absWall < 1e-5 {
		absWall = 1e-5
	}

	maxScale := clamp(0.99/absWall, 0.5, 10.0)

	var scale float64
	if r.decay <= 0.5 {
		scale = 0.5 + r.decay
	} else {
		scale = 1.0 + (r.decay-0.5)*2.0*(maxScale-1.0)
	}

	r.current.vWALL = clamp(baseWall*scale, -0.995, 0.995)
}

// applyInputGain maps the gain control 0..1 onto 0x..2x of the preset's
// input volumes, with unity at the midpoint.
func (r *Reverb) applyInputGain() {
	g := r.inputGain * 2.0
	r.current.vLIN = r.base.vLIN * g
	r.current.vRIN = r.base.vRIN * g
}

// applyReverbLevel maps the level control 0..1 onto 0x..4x of the preset's
// output volumes; the midpoint (2x) is approximately unity for most presets.
func (r *Reverb) applyReverbLevel() {
	g := r.reverbLevel * 4.0
	r.current.vLOUT = r.base.vLOUT * g
	r.current.vROUT = r.base.vROUT * g
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
