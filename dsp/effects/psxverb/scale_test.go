package psxverb

import (
	"math"
	"testing"
)

func newTestReverb(t *testing.T, opts ...Option) *Reverb {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestDecaySweepKeepsWallStable(t *testing.T) {
	for idx := 0; idx < PresetCount; idx++ {
		r := newTestReverb(t, WithPreset(idx))

		for d := 0.0; d <= 1.0; d += 1.0 / 128 {
			r.SetDecay(d)
			w := r.current.vWALL
			if w < -0.995 || w > 0.995 {
				t.Fatalf("preset %d decay %v: vWALL=%v outside [-0.995, 0.995]", idx, d, w)
			}
		}
	}
}

func TestDecayMidpointIsNativeWall(t *testing.T) {
	r := newTestReverb(t)

	r.SetDecay(0.5)
	want := clamp(r.base.vWALL, -0.995, 0.995)
	if got := r.current.vWALL; math.Abs(got-want) > 1e-12 {
		t.Fatalf("decay=0.5: vWALL got %v want native %v", got, want)
	}
}

func TestDecayZeroHalvesWall(t *testing.T) {
	r := newTestReverb(t)

	r.SetDecay(0)
	want := clamp(r.base.vWALL*0.5, -0.995, 0.995)
	if got := r.current.vWALL; math.Abs(got-want) > 1e-12 {
		t.Fatalf("decay=0: vWALL got %v want %v", got, want)
	}
}

func TestInputGainMidpointIsUnity(t *testing.T) {
	r := newTestReverb(t)

	r.SetInputGain(0.5)
	if r.current.vLIN != r.base.vLIN || r.current.vRIN != r.base.vRIN {
		t.Fatalf("gain=0.5: got (%v, %v) want base (%v, %v)",
			r.current.vLIN, r.current.vRIN, r.base.vLIN, r.base.vRIN)
	}

	r.SetInputGain(0)
	if r.current.vLIN != 0 || r.current.vRIN != 0 {
		t.Fatalf("gain=0: got (%v, %v) want zero", r.current.vLIN, r.current.vRIN)
	}
}

func TestReverbLevelMidpointDoubles(t *testing.T) {
	r := newTestReverb(t)

	r.SetReverbLevel(0.5)
	if r.current.vLOUT != r.base.vLOUT*2 || r.current.vROUT != r.base.vROUT*2 {
		t.Fatalf("level=0.5: got (%v, %v) want doubled base (%v, %v)",
			r.current.vLOUT, r.current.vROUT, r.base.vLOUT*2, r.base.vROUT*2)
	}
}

func TestControlsNeverTouchBase(t *testing.T) {
	r := newTestReverb(t)
	saved := r.base

	r.SetDecay(1)
	r.SetInputGain(0.9)
	r.SetReverbLevel(0.1)
	r.SetMix(1)

	if r.base != saved {
		t.Fatal("live controls modified the base coefficient set")
	}
}

func TestControlsClampToUnitRange(t *testing.T) {
	r := newTestReverb(t)

	r.SetDecay(1.7)
	if r.Decay() != 1 {
		t.Fatalf("decay clamp: got %v want 1", r.Decay())
	}
	r.SetMix(-0.2)
	if r.Mix() != 0 {
		t.Fatalf("mix clamp: got %v want 0", r.Mix())
	}
	r.SetInputGain(5)
	if r.InputGain() != 1 {
		t.Fatalf("input gain clamp: got %v want 1", r.InputGain())
	}
	r.SetReverbLevel(math.Inf(1))
	if r.ReverbLevel() != 1 {
		t.Fatalf("reverb level clamp: got %v want 1", r.ReverbLevel())
	}
}
