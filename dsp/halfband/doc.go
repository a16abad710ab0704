// Package halfband implements the fixed 2:1 rate converter used by the SPU
// reverb core.
//
// The SPU runs its reverb network at half the mixing rate (22.05 kHz for a
// 44.1 kHz stream). Both directions use the same 39-tap linear-phase FIR, a
// true halfband design: every coefficient at an odd index other than the
// center is exactly zero. The coefficient values are hardware-derived data
// and must not be redesigned; every tap of the table is applied on each
// conversion so the output stays sample-exact against the reference.
package halfband
