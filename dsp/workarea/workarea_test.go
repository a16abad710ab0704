package workarea

import (
	"math"
	"testing"
)

// --- construction ---

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for size=0")
	}
	if _, err := New(-5); err == nil {
		t.Fatal("expected error for size=-5")
	}
}

func TestNewRoundsToPowerOfTwo(t *testing.T) {
	cases := []struct {
		min  int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{4000, 4096},
		{4960, 8192},
		{22264, 32768},
		{65536, 65536},
		{70000, MaxSize},
		{1 << 20, MaxSize},
	}

	for _, tc := range cases {
		a, err := New(tc.min)
		if err != nil {
			t.Fatalf("New(%d): %v", tc.min, err)
		}
		if a.Len() != tc.want {
			t.Fatalf("New(%d): Len=%d want %d", tc.min, a.Len(), tc.want)
		}
		if a.Len()&(a.Len()-1) != 0 {
			t.Fatalf("New(%d): Len=%d not a power of two", tc.min, a.Len())
		}
	}
}

// --- read/write round trip ---

func TestRoundTripQuantization(t *testing.T) {
	a, err := New(1024)
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range []float64{0, 0.5, -0.5, 0.25, -0.999, 0.999, 1.0 / 32768.0} {
		a.WriteRelative(7, v)
		got := a.ReadRelative(7)
		if math.Abs(got-v) > 1.0/32768.0 {
			t.Fatalf("write %v read %v: beyond one quantization step", v, got)
		}
	}
}

func TestWriteSaturates(t *testing.T) {
	a, err := New(64)
	if err != nil {
		t.Fatal(err)
	}

	a.WriteRelative(0, 2.0)
	if got, want := a.ReadRelative(0), 32767.0/32768.0; got != want {
		t.Fatalf("positive saturation: got %v want %v", got, want)
	}

	a.WriteRelative(0, -2.0)
	if got := a.ReadRelative(0); got != -1.0 {
		t.Fatalf("negative saturation: got %v want -1", got)
	}
}

func TestWriteTruncatesTowardZero(t *testing.T) {
	a, err := New(64)
	if err != nil {
		t.Fatal(err)
	}

	// 100.7/32768 truncates to 100, -100.7/32768 to -100.
	a.WriteRelative(0, 100.7/32768.0)
	if got, want := a.ReadRelative(0), 100.0/32768.0; got != want {
		t.Fatalf("positive truncation: got %v want %v", got, want)
	}

	a.WriteRelative(0, -100.7/32768.0)
	if got, want := a.ReadRelative(0), -100.0/32768.0; got != want {
		t.Fatalf("negative truncation: got %v want %v", got, want)
	}
}

// --- relative addressing ---

func TestNegativeOffsetWraps(t *testing.T) {
	a, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	// base=0, so offset -1 is the last slot.
	a.WriteRelative(-1, 0.5)
	if got := a.ReadRelative(15); math.Abs(got-0.5) > 1.0/32768.0 {
		t.Fatalf("offset -1 did not land on slot 15: got %v", got)
	}
}

func TestAdvanceShiftsAddressing(t *testing.T) {
	a, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	a.WriteRelative(3, 0.25)
	a.Advance(1)
	if got := a.ReadRelative(2); math.Abs(got-0.25) > 1.0/32768.0 {
		t.Fatalf("after advance: got %v want 0.25 at offset 2", got)
	}
}

func TestAdvanceWrapsBase(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	a.WriteRelative(0, 0.5)
	for i := 0; i < 8; i++ {
		a.Advance(1)
	}
	// One full revolution: offset 0 is the written slot again.
	if got := a.ReadRelative(0); math.Abs(got-0.5) > 1.0/32768.0 {
		t.Fatalf("after full revolution: got %v want 0.5", got)
	}
}

func TestReset(t *testing.T) {
	a, err := New(32)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 32; i++ {
		a.WriteRelative(i, 0.9)
		a.Advance(1)
	}
	a.Reset()

	for i := 0; i < 32; i++ {
		if got := a.ReadRelative(i); got != 0 {
			t.Fatalf("slot %d after reset: got %v want 0", i, got)
		}
	}
}
