package main

import "testing"

func TestFetch8NoInterpolationAtFullStep(t *testing.T) {
	sm := newSampleMemory()
	sm.poke(10, byte(int8(50)))
	sm.poke(11, byte(int8(60)))

	got := sm.fetch8(10<<PhaseFracBits, PhaseFracOne)
	want := int32(50) << 8
	if got != want {
		t.Fatalf("fetch8 at full step = %d, want %d", got, want)
	}
}

func TestFetch8InterpolatesBelowFullStep(t *testing.T) {
	sm := newSampleMemory()
	sm.poke(10, byte(int8(0)))
	sm.poke(11, byte(int8(100)))

	// Half a step into the interval: expect roughly halfway between the
	// two samples, scaled by 2^8.
	waveAddr := uint32(10)<<PhaseFracBits | (PhaseFracOne / 2)
	got := sm.fetch8(waveAddr, PhaseFracOne/2)
	want := int32(50 * 256)
	if diff := got - want; diff > 256 || diff < -256 {
		t.Fatalf("fetch8 interpolated = %d, want close to %d", got, want)
	}
}

func TestFetch8SkipsInterpolationAboveCutoff(t *testing.T) {
	sm := newSampleMemory()
	sm.poke(10, byte(int8(10)))
	sm.poke(11, byte(int8(120)))

	waveAddr := uint32(10)<<PhaseFracBits | (PhaseFracOne / 2)
	got := sm.fetch8(waveAddr, PhaseFracOne) // wave_add == 2^9, cutoff is exclusive
	want := int32(10) << 8
	if got != want {
		t.Fatalf("fetch8 at/above cutoff = %d, want unfiltered %d", got, want)
	}
}

func TestFetch16BankedAddressing(t *testing.T) {
	sm := newSampleMemory()
	// base=0x40000 (bit 18 set -> hold = 0x40000 passes through, low bits 0x40000&0x1FFFF=0, so addr = 0x40000)
	base := uint32(0x40000)
	hold := base & 0x0C0000
	addr := hold | ((base & 0x1FFFF) << 1)

	sm.poke(addr, 0x34)
	sm.poke(addr+1, 0x12)

	got := sm.fetch16(base<<PhaseFracBits, PhaseFracOne)
	want := int32(int16(0x1234))
	if got != want {
		t.Fatalf("fetch16 = 0x%04X, want 0x%04X", got, want)
	}
}

func TestPeekPokeWrapAround(t *testing.T) {
	sm := newSampleMemory()
	sm.poke(SampleMemorySize, 0x42)
	if got := sm.peek(0); got != 0x42 {
		t.Fatalf("poke at SampleMemorySize should wrap to address 0, got %v", got)
	}
}

func TestInExtendedI16Range(t *testing.T) {
	cases := []struct {
		w    int32
		want bool
	}{
		{0, true},
		{32767, true},
		{-32768, true},
		{32768, false},
		{-32769, false},
	}
	for _, c := range cases {
		if got := inExtendedI16Range(c.w); got != c.want {
			t.Errorf("inExtendedI16Range(%d) = %v, want %v", c.w, got, c.want)
		}
	}
}
