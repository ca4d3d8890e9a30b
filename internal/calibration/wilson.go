package calibration

import "math"

// wilsonZ is the normal quantile for a 95% interval.
const wilsonZ = 1.96

// WilsonInterval computes the 95% Wilson score interval for a proportion of
// successes out of n trials. It stays stable at small n where the normal
// approximation collapses. WilsonInterval(0, 0) returns the vacuous [0, 1].
func WilsonInterval(successes, n int) (low, high float64) {
	if n <= 0 {
		return 0, 1
	}

	p := float64(successes) / float64(n)
	nf := float64(n)
	z2 := wilsonZ * wilsonZ

	denom := 1 + z2/nf
	center := (p + z2/(2*nf)) / denom
	margin := wilsonZ * math.Sqrt(p*(1-p)/nf+z2/(4*nf*nf)) / denom

	low = center - margin
	high = center + margin
	if low < 0 {
		low = 0
	}
	if high > 1 {
		high = 1
	}
	return low, high
}
