// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical reference solutions used to validate the
// DIVA solver against closed-form cases (spec §8, scenarios S1-S4).
package ana

import "math"

// SIASlabSurfaceVelocity returns the analytical surface velocity of an
// infinite, uniform-thickness slab of ice deforming purely by internal shear
// (no sliding) under Glen's flow law -- spec §8 scenario S1:
//
//	u_surf = (2*A/(n+1)) * (rho*g*alpha)^n * H^(n+1)
//
// att is the Glen-law rate factor A, nGlen is the flow-law exponent n, rho
// and g are density and gravity, alpha is the surface slope, h is the ice
// thickness.
func SIASlabSurfaceVelocity(att, nGlen, rho, g, alpha, h float64) float64 {
	driving := rho * g * alpha
	return (2 * att / (nGlen + 1)) * math.Pow(driving, nGlen) * math.Pow(h, nGlen+1)
}

// SIASlabShearIncrement returns the shear contribution to the surface
// velocity alone, i.e. u_surf - u_base, for the same slab (spec §8 scenario
// S2: "surface velocity exceeds basal velocity by the SIA shear increment").
func SIASlabShearIncrement(att, nGlen, rho, g, alpha, h float64) float64 {
	return SIASlabSurfaceVelocity(att, nGlen, rho, g, alpha, h)
}

// SIASlabDepthAverage returns the depth-averaged velocity of the same slab,
// obtained by integrating the SIA shear profile tau(z)^n from the bed to the
// surface and dividing by H. For the standard SIA profile this is the
// surface value scaled by n+1 over n+2.
func SIASlabDepthAverage(att, nGlen, rho, g, alpha, h float64) float64 {
	surf := SIASlabSurfaceVelocity(att, nGlen, rho, g, alpha, h)
	return surf * (nGlen + 1) / (nGlen + 2)
}
