package psxverb

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrUnknownParam is returned by GetParam for unrecognized keys.
var ErrUnknownParam = errors.New("psxverb: unknown parameter")

// Parameter keys accepted by SetParam / GetParam.
const (
	ParamPreset      = "preset"
	ParamDecay       = "decay"
	ParamMix         = "mix"
	ParamInputGain   = "input_gain"
	ParamReverbLevel = "reverb_level"
	ParamPresetName  = "preset_name" // read-only
	ParamPresetCount = "preset_count" // read-only
	ParamState       = "state"
)

// state is the persisted snapshot layout. Pointer fields let a written
// snapshot carry any subset of keys; absent keys leave the instance
// untouched.
type state struct {
	Preset      *int     `json:"preset,omitempty"`
	Decay       *float64 `json:"decay,omitempty"`
	Mix         *float64 `json:"mix,omitempty"`
	InputGain   *float64 `json:"input_gain,omitempty"`
	ReverbLevel *float64 `json:"reverb_level,omitempty"`
}

// SetParam applies a string-valued parameter update. Unknown keys and
// malformed values are silently ignored; numeric values are clamped to
// their documented ranges. Never call this during ProcessBlock.
func (r *Reverb) SetParam(key, value string) {
	switch key {
	case ParamPreset:
		if v, err := strconv.Atoi(value); err == nil {
			r.ApplyPreset(v)
		}
	case ParamDecay:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			r.SetDecay(v)
		}
	case ParamMix:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			r.SetMix(v)
		}
	case ParamInputGain:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			r.SetInputGain(v)
		}
	case ParamReverbLevel:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			r.SetReverbLevel(v)
		}
	case ParamState:
		r.setState(value)
	}
}

// GetParam reads a parameter as a string. Unknown keys return
// ErrUnknownParam.
func (r *Reverb) GetParam(key string) (string, error) {
	switch key {
	case ParamPreset:
		return strconv.Itoa(r.presetIndex), nil
	case ParamDecay:
		return formatControl(r.decay), nil
	case ParamMix:
		return formatControl(r.mix), nil
	case ParamInputGain:
		return formatControl(r.inputGain), nil
	case ParamReverbLevel:
		return formatControl(r.reverbLevel), nil
	case ParamPresetName:
		return presetTable[r.presetIndex].name, nil
	case ParamPresetCount:
		return strconv.Itoa(PresetCount), nil
	case ParamState:
		return r.getState(), nil
	default:
		return "", ErrUnknownParam
	}
}

// setState applies a JSON snapshot. Only keys present in the object are
// applied; the full preset rescale runs only when the preset key actually
// changes value. Malformed JSON is ignored.
func (r *Reverb) setState(value string) {
	var s state
	if err := json.Unmarshal([]byte(value), &s); err != nil {
		return
	}

	if s.Preset != nil && clampPresetIndex(*s.Preset) != r.presetIndex {
		r.ApplyPreset(*s.Preset)
	}
	if s.Decay != nil {
		r.SetDecay(*s.Decay)
	}
	if s.Mix != nil {
		r.SetMix(*s.Mix)
	}
	if s.InputGain != nil {
		r.SetInputGain(*s.InputGain)
	}
	if s.ReverbLevel != nil {
		r.SetReverbLevel(*s.ReverbLevel)
	}
}

func (r *Reverb) getState() string {
	s := state{
		Preset:      &r.presetIndex,
		Decay:       &r.decay,
		Mix:         &r.mix,
		InputGain:   &r.inputGain,
		ReverbLevel: &r.reverbLevel,
	}

	// Marshaling a struct of scalars cannot fail.
	out, _ := json.Marshal(s)

	return string(out)
}

func formatControl(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
