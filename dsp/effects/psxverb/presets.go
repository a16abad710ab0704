package psxverb

// PresetCount is the number of compiled-in hardware presets.
const PresetCount = 6

// preset holds one SPU reverb register set exactly as the hardware stores
// it: addresses and displacements in 8-byte units, volumes as signed 16-bit
// fractions, the working-set size in bytes. Volume registers are kept as
// raw uint16 and reinterpreted as signed at scale time.
type preset struct {
	dAPF1, dAPF2 uint16 // allpass displacements

	vIIR   uint16 // reflection one-pole coefficient
	vCOMB1 uint16 // comb volumes
	vCOMB2 uint16
	vCOMB3 uint16
	vCOMB4 uint16
	vWALL  uint16 // wall reflection (feedback) volume
	vAPF1  uint16 // allpass volumes
	vAPF2  uint16

	mLSAME, mRSAME   uint16 // same-side reflection write addresses
	mLCOMB1, mRCOMB1 uint16 // comb read addresses
	mLCOMB2, mRCOMB2 uint16
	dLSAME, dRSAME   uint16 // same-side feedback read addresses
	mLDIFF, mRDIFF   uint16 // cross-side reflection write addresses
	mLCOMB3, mRCOMB3 uint16
	mLCOMB4, mRCOMB4 uint16
	dLDIFF, dRDIFF   uint16 // cross-side feedback read addresses
	mLAPF1, mRAPF1   uint16 // allpass addresses
	mLAPF2, mRAPF2   uint16

	vLIN, vRIN   uint16 // input volumes
	vLOUT, vROUT uint16 // output volumes

	workSize uint32 // working set size in bytes
	name     string
}

// presetTable holds the six classic register sets. Plain immutable data;
// selection is by index only.
var presetTable = [PresetCount]preset{
	{
		dAPF1: 0x007D, dAPF2: 0x005B,
		vIIR: 0x6D80, vCOMB1: 0x54B8, vCOMB2: 0xBED0, vCOMB3: 0x0000, vCOMB4: 0x0000,
		vWALL: 0xBA80, vAPF1: 0x5800, vAPF2: 0x5300,
		mLSAME: 0x04D6, mRSAME: 0x0333,
		mLCOMB1: 0x03F0, mRCOMB1: 0x0227, mLCOMB2: 0x0374, mRCOMB2: 0x01EF,
		dLSAME: 0x0334, dRSAME: 0x01B5,
		mLDIFF: 0x0000, mRDIFF: 0x0000,
		mLCOMB3: 0x0000, mRCOMB3: 0x0000, mLCOMB4: 0x0000, mRCOMB4: 0x0000,
		dLDIFF: 0x0000, dRDIFF: 0x0000,
		mLAPF1: 0x01B4, mRAPF1: 0x0136, mLAPF2: 0x00B8, mRAPF2: 0x005C,
		vLIN: 0x8000, vRIN: 0x8000, vLOUT: 0x4000, vROUT: 0x4000,
		workSize: 0x26C0, name: "Room",
	},
	{
		dAPF1: 0x0033, dAPF2: 0x0025,
		vIIR: 0x70F0, vCOMB1: 0x4FA8, vCOMB2: 0xBCE0, vCOMB3: 0x4410, vCOMB4: 0xC0F0,
		vWALL: 0x9C00, vAPF1: 0x5280, vAPF2: 0x4EC0,
		mLSAME: 0x03E4, mRSAME: 0x031B,
		mLCOMB1: 0x03A4, mRCOMB1: 0x02AF, mLCOMB2: 0x0372, mRCOMB2: 0x0266,
		dLSAME: 0x031C, dRSAME: 0x025D,
		mLDIFF: 0x025C, mRDIFF: 0x018E,
		mLCOMB3: 0x022F, mRCOMB3: 0x0135, mLCOMB4: 0x01D2, mRCOMB4: 0x00B7,
		dLDIFF: 0x018F, dRDIFF: 0x00B5,
		mLAPF1: 0x00B4, mRAPF1: 0x0080, mLAPF2: 0x004C, mRAPF2: 0x0026,
		vLIN: 0x8000, vRIN: 0x8000, vLOUT: 0x4000, vROUT: 0x4000,
		workSize: 0x1F40, name: "Studio S",
	},
	{
		dAPF1: 0x00B1, dAPF2: 0x007F,
		vIIR: 0x70F0, vCOMB1: 0x4FA8, vCOMB2: 0xBCE0, vCOMB3: 0x4510, vCOMB4: 0xBEF0,
		vWALL: 0xB4C0, vAPF1: 0x5280, vAPF2: 0x4EC0,
		mLSAME: 0x0904, mRSAME: 0x076B,
		mLCOMB1: 0x0824, mRCOMB1: 0x065F, mLCOMB2: 0x07A2, mRCOMB2: 0x0616,
		dLSAME: 0x076C, dRSAME: 0x05ED,
		mLDIFF: 0x05EC, mRDIFF: 0x042E,
		mLCOMB3: 0x050F, mRCOMB3: 0x0305, mLCOMB4: 0x0462, mRCOMB4: 0x02B7,
		dLDIFF: 0x042F, dRDIFF: 0x0265,
		mLAPF1: 0x0264, mRAPF1: 0x01B2, mLAPF2: 0x0100, mRAPF2: 0x0080,
		vLIN: 0x8000, vRIN: 0x8000, vLOUT: 0x4000, vROUT: 0x4000,
		workSize: 0x4840, name: "Studio M",
	},
	{
		dAPF1: 0x00E3, dAPF2: 0x00A9,
		vIIR: 0x6F60, vCOMB1: 0x4FA8, vCOMB2: 0xBCE0, vCOMB3: 0x4510, vCOMB4: 0xBEF0,
		vWALL: 0xA680, vAPF1: 0x5680, vAPF2: 0x52C0,
		mLSAME: 0x0DFB, mRSAME: 0x0B58,
		mLCOMB1: 0x0D09, mRCOMB1: 0x0A3C, mLCOMB2: 0x0BD9, mRCOMB2: 0x0973,
		dLSAME: 0x0B59, dRSAME: 0x08DA,
		mLDIFF: 0x08D9, mRDIFF: 0x05E9,
		mLCOMB3: 0x07EC, mRCOMB3: 0x04B0, mLCOMB4: 0x06EF, mRCOMB4: 0x03D2,
		dLDIFF: 0x05EA, dRDIFF: 0x031D,
		mLAPF1: 0x031C, mRAPF1: 0x0238, mLAPF2: 0x0154, mRAPF2: 0x00AA,
		vLIN: 0x8000, vRIN: 0x8000, vLOUT: 0x4000, vROUT: 0x4000,
		workSize: 0x6FE0, name: "Studio L",
	},
	{
		dAPF1: 0x01A5, dAPF2: 0x0139,
		vIIR: 0x6000, vCOMB1: 0x5000, vCOMB2: 0x4C00, vCOMB3: 0xB800, vCOMB4: 0xBC00,
		vWALL: 0xC000, vAPF1: 0x6000, vAPF2: 0x5C00,
		mLSAME: 0x15BA, mRSAME: 0x11BB,
		mLCOMB1: 0x14C2, mRCOMB1: 0x10BD, mLCOMB2: 0x11BC, mRCOMB2: 0x0DC1,
		dLSAME: 0x11C0, dRSAME: 0x0DC3,
		mLDIFF: 0x0DC0, mRDIFF: 0x09C1,
		mLCOMB3: 0x0BC4, mRCOMB3: 0x07C1, mLCOMB4: 0x0A00, mRCOMB4: 0x06CD,
		dLDIFF: 0x09C2, dRDIFF: 0x05C1,
		mLAPF1: 0x05C0, mRAPF1: 0x041A, mLAPF2: 0x0274, mRAPF2: 0x013A,
		vLIN: 0x8000, vRIN: 0x8000, vLOUT: 0x4000, vROUT: 0x4000,
		workSize: 0xADE0, name: "Hall",
	},
	{
		dAPF1: 0x033D, dAPF2: 0x0231,
		vIIR: 0x7E00, vCOMB1: 0x5000, vCOMB2: 0xB400, vCOMB3: 0xB000, vCOMB4: 0x4C00,
		vWALL: 0xB000, vAPF1: 0x6000, vAPF2: 0x5400,
		mLSAME: 0x1ED6, mRSAME: 0x1A31,
		mLCOMB1: 0x1D14, mRCOMB1: 0x183B, mLCOMB2: 0x1BC2, mRCOMB2: 0x16B2,
		dLSAME: 0x1A32, dRSAME: 0x15EF,
		mLDIFF: 0x15EE, mRDIFF: 0x1055,
		mLCOMB3: 0x1334, mRCOMB3: 0x0F2D, mLCOMB4: 0x11F6, mRCOMB4: 0x0C5D,
		dLDIFF: 0x1056, dRDIFF: 0x0AE1,
		mLAPF1: 0x0AE0, mRAPF1: 0x07A2, mLAPF2: 0x0464, mRAPF2: 0x0232,
		vLIN: 0x8000, vRIN: 0x8000, vLOUT: 0x4000, vROUT: 0x4000,
		workSize: 0xF6C0, name: "Space Echo",
	},
}

// PresetName returns the display name for a preset index.
// Out-of-range indices are clamped.
func PresetName(index int) string {
	return presetTable[clampPresetIndex(index)].name
}

func clampPresetIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index >= PresetCount {
		return PresetCount - 1
	}
	return index
}
