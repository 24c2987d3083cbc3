package mphf

import "testing"

func TestIndirectionWire(t *testing.T) {
	tests := []struct {
		ind  Indirection
		wire int32
	}{
		{ind: Direct(0), wire: -1},
		{ind: Direct(1), wire: -2},
		{ind: Direct(Mask31), wire: -0x80000000},
		{ind: Seed(0), wire: 0},
		{ind: Seed(1), wire: 1},
		{ind: Seed(Mask31), wire: 0x7fffffff},
	}
	for _, tt := range tests {
		if got := tt.ind.Wire(); got != tt.wire {
			t.Errorf("%v.Wire() = %d, want %d", tt.ind, got, tt.wire)
		}
		if got := FromWire(tt.wire); got != tt.ind {
			t.Errorf("FromWire(%d) = %v, want %v", tt.wire, got, tt.ind)
		}
	}
}

func TestIndirectionTwosComplement(t *testing.T) {
	w := Direct(0).Wire()
	if uint32(w) != 0xffffffff {
		t.Fatalf("slot 0 should be stored as 0xffffffff, is %#x", uint32(w))
	}
	var raw uint32 = 0xffffffff
	back := FromWire(int32(raw))
	if !back.IsDirect() || back.Slot() != 0 {
		t.Fatalf("0xffffffff should decode to slot 0, is %v", back)
	}
}

func TestIndirectionZeroValue(t *testing.T) {
	var ind Indirection
	if ind.IsDirect() || ind.SeedValue() != 0 {
		t.Fatalf("zero indirection should be seed 0, is %v", ind)
	}
	if ind.String() != "seed(0)" || Direct(3).String() != "slot(3)" {
		t.Fatalf("unexpected string forms %q, %q", ind.String(), Direct(3).String())
	}
}
