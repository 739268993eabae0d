// gf1_limiter.go - per-block peak tracking and release-based gain reduction

package main

// applyLimiter converts the float accumulator to 16-bit stereo frames,
// reducing gain only on the channel(s) that would otherwise clip, then
// releases the tracked peak by one volume-table step per block while it
// stays above the ceiling.
func applyLimiter(peak *peakAmplitude, leftAcc, rightAcc []float32, out []int16) {
	n := len(leftAcc)

	leftOver := peak.left >= LimiterCeiling
	rightOver := peak.right >= LimiterCeiling

	if !leftOver && !rightOver {
		for i := 0; i < n; i++ {
			out[2*i] = int16(leftAcc[i])
			out[2*i+1] = int16(rightAcc[i])
		}
		return
	}

	rl, rr := float32(1.0), float32(1.0)
	if leftOver {
		rl = limiterRatio(peak.left)
	}
	if rightOver {
		rr = limiterRatio(peak.right)
	}

	for i := 0; i < n; i++ {
		out[2*i] = int16(leftAcc[i] * rl)
		out[2*i+1] = int16(rightAcc[i] * rr)
	}

	if leftOver {
		peak.left -= LimiterRelease
	}
	if rightOver {
		peak.right -= LimiterRelease
	}
}

func limiterRatio(peak float32) float32 {
	r := float32(LimiterCeiling) / peak
	if r > 1.0 {
		return 1.0
	}
	return r
}
