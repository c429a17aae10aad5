// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/tgoelles/yelmo/config"
	"github.com/tgoelles/yelmo/grid"
)

// Inputs bundles everything the basal-drag engine reads.
type Inputs struct {
	G        *grid.Grid
	CBed     *grid.FieldAA
	UxB      *grid.FieldAC // acx, basal velocity (spec §4.2 sliding laws are u_b relations)
	UyB      *grid.FieldAC // acy, basal velocity
	HIce     *grid.FieldAA
	HGrnd    *grid.FieldAA
	FGrnd    *grid.FieldAA
	FGrndACX *grid.FieldAC
	FGrndACY *grid.FieldAC
	ZBed     *grid.FieldAA
	ZSl      *grid.FieldAA
	F2       *grid.FieldAA // from viscosity.Outputs
}

// Outputs bundles everything the basal-drag engine produces.
type Outputs struct {
	Beta              *grid.FieldAA
	NEff              *grid.FieldAA
	BetaACX, BetaACY  *grid.FieldAC
	BetaEff           *grid.FieldAA
	BetaEffACX        *grid.FieldAC
	BetaEffACY        *grid.FieldAC
	BetaDiva          *grid.FieldAA // diagnostic; always == Beta (spec §9(b))
}

// Compute runs the full basal-drag pipeline of spec §4.2: sliding law,
// effective pressure scaling, grounding-line scalings, flooring, smoothing
// and staggering.
func Compute(in Inputs, p *config.Params) (Outputs, error) {
	g := in.G
	law, err := New(string(p.BetaMethod))
	if err != nil {
		return Outputs{}, err
	}
	prms := fun.Prms{&fun.Prm{N: "q", V: p.BetaQ}}
	if p.BetaMethod == config.BetaCoulomb {
		prms = append(prms, &fun.Prm{N: "u0", V: p.BetaU0})
	}
	if err := law.Init(prms); err != nil {
		return Outputs{}, err
	}

	nEff := EffectivePressure(g, in.HIce, in.ZBed, in.ZSl, p.Const, p.PConnect)

	beta := g.NewFieldAA()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			uMag := velocityMagnitude(in.UxB, in.UyB, i, j, p.UBMin)
			beta.Set(i, j, law.Beta(in.CBed.At(i, j), uMag))
		}
	}

	if p.BetaGLScale {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				beta.Set(i, j, nEff.At(i, j)*beta.At(i, j))
			}
		}
	}

	ApplyGLDamping(beta, in.FGrnd, p.BetaGLF)

	if p.HGrndScale {
		ApplyHGrndLimScale(beta, in.HGrnd, p.HGrndLim)
	} else if p.ZstarScale {
		ApplyZstarScale(beta, in.HIce, in.ZBed, in.ZSl, p.Const, p.ZstarNormHIce)
	}

	// invariant: beta >= beta_min wherever grounded, beta = 0 wherever fully
	// floating (spec §3 Invariants).
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			if in.FGrnd.At(i, j) <= 0 {
				beta.Set(i, j, 0)
			} else if beta.At(i, j) < p.BetaMin {
				beta.Set(i, j, p.BetaMin)
			}
		}
	}

	SmoothGrounded(beta, in.FGrnd, in.HIce, p.NSmooth)

	betaACX := StaggerX(beta, in.FGrnd, in.FGrndACX, p.BetaGLStag)
	betaACY := StaggerY(beta, in.FGrnd, in.FGrndACY, p.BetaGLStag)

	betaEff := g.NewFieldAA()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			f2 := in.F2.At(i, j)
			if p.NoSlip {
				if f2 <= 0 {
					f2 = 1e-30
				}
				betaEff.Set(i, j, 1.0/f2)
			} else {
				b := beta.At(i, j)
				betaEff.Set(i, j, b/(1+b*f2))
			}
		}
	}
	betaEffACX := StaggerX(betaEff, in.FGrnd, in.FGrndACX, p.BetaGLStag)
	betaEffACY := StaggerY(betaEff, in.FGrnd, in.FGrndACY, p.BetaGLStag)

	return Outputs{
		Beta:       beta,
		NEff:       nEff,
		BetaACX:    betaACX,
		BetaACY:    betaACY,
		BetaEff:    betaEff,
		BetaEffACX: betaEffACX,
		BetaEffACY: betaEffACY,
		BetaDiva:   beta, // spec §9(b): diagnostic inversion is inert; expose beta unchanged
	}, nil
}

// velocityMagnitude assembles |u_b| at aa-node (i,j) from neighboring acx/acy
// basal-velocity values with a small positive floor (spec §4.2).
func velocityMagnitude(uxB, uyB *grid.FieldAC, i, j int, floor float64) float64 {
	ux := 0.5 * (uxB.At(i-1, j) + uxB.At(i, j))
	uy := 0.5 * (uyB.At(i, j-1) + uyB.At(i, j))
	mag := math.Sqrt(ux*ux + uy*uy)
	if mag < floor {
		mag = floor
	}
	return mag
}
