package psxverb_test

import (
	"fmt"

	"github.com/cwbudde/algo-psxverb/dsp/effects/psxverb"
)

func ExampleNew() {
	rev, err := psxverb.New(
		psxverb.WithPreset(4),
		psxverb.WithDecay(0.8),
		psxverb.WithMix(0.35),
	)
	if err != nil {
		panic(err)
	}

	name, _ := rev.GetParam(psxverb.ParamPresetName)
	fmt.Printf("preset=%d (%s) decay=%.2f mix=%.2f\n",
		rev.Preset(), name, rev.Decay(), rev.Mix())

	// Interleaved stereo int16 at 44.1 kHz, processed in place.
	buf := make([]int16, 2048)
	rev.ProcessBlock(buf)

	// Output:
	// preset=4 (Hall) decay=0.80 mix=0.35
}

func ExampleReverb_SetParam() {
	rev, err := psxverb.New()
	if err != nil {
		panic(err)
	}

	rev.SetParam(psxverb.ParamPreset, "0")
	rev.SetParam(psxverb.ParamDecay, "0.25")

	name, _ := rev.GetParam(psxverb.ParamPresetName)
	decay, _ := rev.GetParam(psxverb.ParamDecay)
	fmt.Printf("%s decay=%s\n", name, decay)

	// Output:
	// Room decay=0.25
}

func ExampleReverb_GetParam_state() {
	rev, err := psxverb.New(psxverb.WithPreset(1))
	if err != nil {
		panic(err)
	}

	state, _ := rev.GetParam(psxverb.ParamState)
	fmt.Println(state)

	// Output:
	// {"preset":1,"decay":0.7,"mix":0.35,"input_gain":0.5,"reverb_level":0.5}
}
