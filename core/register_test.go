package core

import "testing"

func TestRegisterZeroAlwaysReadsZero(t *testing.T) {
	f := NewRegisterFile()
	for _, v := range []int32{0, 1, -1, 0x7fffffff, -2147483648 /* int32(0x80000000) */} {
		f.Store(0, v)
		if got := f.Load(0); got != 0 {
			t.Fatalf("after storing %d to x0, Load(0) = %d, want 0", v, got)
		}
	}
}

func TestRegisterGeneralRoundTrip(t *testing.T) {
	f := NewRegisterFile()
	f.Store(5, 42)
	if got := f.Load(5); got != 42 {
		t.Fatalf("x5 = %d, want 42", got)
	}
}

func TestRegisterStoreReturnsPriorValue(t *testing.T) {
	f := NewRegisterFile()
	f.Store(3, 10)
	prev := f.Store(3, 20)
	if prev != 10 {
		t.Fatalf("Store returned %d, want prior value 10", prev)
	}
}

func TestRegisterSnapshotZeroesX0(t *testing.T) {
	f := NewRegisterFile()
	snap := f.Snapshot()
	if snap[0] != 0 {
		t.Fatalf("snapshot x0 = %d, want 0", snap[0])
	}
}

func TestRegisterResetClearsAll(t *testing.T) {
	f := NewRegisterFile()
	for i := uint8(1); i < 32; i++ {
		f.Store(i, int32(i))
	}
	f.Reset()
	for i := uint8(0); i < 32; i++ {
		if got := f.Load(i); got != 0 {
			t.Fatalf("after Reset, x%d = %d, want 0", i, got)
		}
	}
}
