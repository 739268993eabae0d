// gf1_pan_table.go - precomputed constant-power stereo pan positions

package main

import "math"

// panPair is one constant-power (left, right) gain pair: left^2 + right^2 == 1.
type panPair struct {
	left, right float32
}

type panTable [PanTableSize]panPair

// newPanTable builds the 16 pan positions from position 0 (hard left)
// through 7 (center) to 15 (hard right), following a quarter-circle law.
func newPanTable() *panTable {
	var t panTable
	for p := 0; p < PanTableSize; p++ {
		denom := 7.0
		if p >= 7 {
			denom = 8.0
		}
		norm := (float64(p) - 7.0) / denom
		angle := (norm + 1.0) * math.Pi / 4.0
		t[p] = panPair{
			left:  float32(math.Cos(angle)),
			right: float32(math.Sin(angle)),
		}
	}
	return &t
}

func (t *panTable) at(potPosition uint8) panPair {
	if potPosition > PanTableSize-1 {
		potPosition = PanTableSize - 1
	}
	return t[potPosition]
}
