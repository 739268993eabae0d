// gf1_volume_table.go - precomputed logarithmic volume lookup

package main

// volumeTable maps a 12-bit ramp index to a linear gain. Built once and
// shared read-only across every voice instead of calling math functions
// per sample.
type volumeTable [VolumeTableSize]float32

// newVolumeTable builds the table top-down: table[4095] = 1.0 and each lower
// entry is the next entry divided by the per-step ratio, giving ~0.0235 dB
// resolution per step.
func newVolumeTable() *volumeTable {
	var t volumeTable
	t[VolumeTableMax] = 1.0
	for i := VolumeTableMax; i > 0; i-- {
		t[i-1] = t[i] / VolumeTableStep
	}
	t[0] = 0.0
	return &t
}

func (t *volumeTable) at(index uint16) float32 {
	return t[index&VolumeTableMax]
}
