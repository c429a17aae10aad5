package ana

import "math"

// GlenLawScaling reports the factor by which the driving stress (taud) must
// be scaled alongside a scaling alpha of the Glen-law rate factor ATT so that
// the DIVA fixed point is left unchanged (spec §8 testable property 7:
// "ATT scaled by alpha and taud scaled by alpha^n_glen produces the same
// velocities"). Callers scale ATT by alpha and taud by this returned factor,
// then re-solve and compare the two velocity fields within tolerance.
func GlenLawScaling(alpha, nGlen float64) float64 {
	return math.Pow(alpha, nGlen)
}
