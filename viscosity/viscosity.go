// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package viscosity implements the DIVA viscosity & strain engine (V):
// builds the 3-D effective viscosity field from the depth-averaged velocity
// and vertical shear, plus its depth integral and the F1/F2 coupling
// integrals (spec §4.1).
package viscosity

import (
	"math"

	"github.com/tgoelles/yelmo/config"
	"github.com/tgoelles/yelmo/grid"
)

// Inputs bundles everything the viscosity engine reads.
type Inputs struct {
	G       *grid.Grid
	UxBar   *grid.FieldAC // acx
	UyBar   *grid.FieldAC // acy
	DuxDz   *grid.FieldAC3
	DuyDz   *grid.FieldAC3
	ATT     *grid.FieldAA3
	HIce    *grid.FieldAA
	Eps0    float64
	NGlen   float64
	ViscMin float64
}

// Outputs bundles everything the viscosity engine produces.
type Outputs struct {
	ViscEff    *grid.FieldAA3 // Pa.a
	ViscEffInt *grid.FieldAA  // Pa.a.m
	F1, F2     *grid.FieldAA
}

// hIceFloor is the nominal thickness used only when H_ice=0 so that F1/F2
// evaluate to a nonzero floor instead of vanishing (spec §4.1: "At ice-free
// points, F_n is assigned a nonzero floor evaluated with visc_min").
const hIceFloor = 1.0

// Compute builds visc_eff, visc_eff_int, F1 and F2 from in.
func Compute(in Inputs) Outputs {
	g := in.G
	n := in.NGlen
	visMin := in.ViscMin
	if visMin <= 0 {
		visMin = config.ViscMin
	}
	eps0sq := in.Eps0 * in.Eps0

	viscEffAB := make([][]float64, g.Nz) // viscEffAB[k] is an ab-node layer
	for k := range viscEffAB {
		viscEffAB[k] = make([]float64, (g.Nx-1)*(g.Ny-1))
	}

	for k := 0; k < g.Nz; k++ {
		abField := &grid.FieldAB{G: g, Data: viscEffAB[k]}
		for j := 0; j < g.Ny-1; j++ {
			for i := 0; i < g.Nx-1; i++ {
				dudx := dFieldDx(in.UxBar, i, j, g.Dx)
				dvdy := dFieldDy(in.UyBar, i, j, g.Dy)
				dudy := dFieldDy(in.UxBar, i, j, g.Dy)
				dvdx := dFieldDx(in.UyBar, i, j, g.Dx)
				duxdzAB := 0.5 * (in.DuxDz.At(i, j, k) + in.DuxDz.At(i, j+1, k))
				duydzAB := 0.5 * (in.DuyDz.At(i, j, k) + in.DuyDz.At(i+1, j, k))

				epsSq := dudx*dudx + dvdy*dvdy + dudx*dvdy +
					0.25*(dudy+dvdx)*(dudy+dvdx) +
					0.25*duxdzAB*duxdzAB + 0.25*duydzAB*duydzAB +
					eps0sq
				if epsSq < eps0sq {
					epsSq = eps0sq
				}

				attAB := 0.25 * (in.ATT.At(i, j, k) + in.ATT.At(i+1, j, k) + in.ATT.At(i, j+1, k) + in.ATT.At(i+1, j+1, k))
				if attAB <= 0 {
					attAB = 1e-30
				}

				visc := 0.5 * math.Pow(epsSq, (1-n)/(2*n)) * math.Pow(attAB, -1/n)
				if visc < visMin {
					visc = visMin
				}
				abField.Set(i, j, visc)
			}
		}
		grid.CornerFixAverageEdges(abField)
	}

	viscEff := g.NewFieldAA3()
	for k := 0; k < g.Nz; k++ {
		abField := &grid.FieldAB{G: g, Data: viscEffAB[k]}
		aa := grid.ABToAA(abField)
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				v := aa.At(i, j)
				if v < visMin {
					v = visMin
				}
				viscEff.Set(i, j, k, v)
			}
		}
	}

	viscEffInt := g.NewFieldAA()
	f1 := g.NewFieldAA()
	f2 := g.NewFieldAA()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			col := viscEff.Column(i, j)
			integral := grid.TrapzZetaAA(g.ZetaAA, col)
			h := in.HIce.At(i, j)
			if h > 0 {
				viscEffInt.Set(i, j, integral*h)
			} else {
				viscEffInt.Set(i, j, integral)
			}

			hEff := h
			if hEff <= 0 {
				hEff = hIceFloor
			}
			f1Col := make([]float64, g.Nz)
			f2Col := make([]float64, g.Nz)
			for k := 0; k < g.Nz; k++ {
				visc := col[k]
				if h <= 0 {
					visc = visMin
				}
				w := hEff / visc
				oneMinusZeta := 1 - g.ZetaAA[k]
				f1Col[k] = w * oneMinusZeta
				f2Col[k] = w * oneMinusZeta * oneMinusZeta
			}
			f1.Set(i, j, grid.TrapzZetaAA(g.ZetaAA, f1Col))
			f2.Set(i, j, grid.TrapzZetaAA(g.ZetaAA, f2Col))
		}
	}

	return Outputs{ViscEff: viscEff, ViscEffInt: viscEffInt, F1: f1, F2: f2}
}

// F1Profile builds the partial-depth F1(k) integrand used to reconstruct the
// full 3-D velocity profile after the fixed-point loop exits (spec §4.4):
// F1_ac(k) = integral from 0 to zeta_aa[k] of (H_ice/visc_eff)*(1-zeta') dzeta'.
func F1Profile(g *grid.Grid, viscEff *grid.FieldAA3, hIce *grid.FieldAA, viscMin float64) *grid.FieldAA3 {
	out := g.NewFieldAA3()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			h := hIce.At(i, j)
			hEff := h
			if hEff <= 0 {
				hEff = hIceFloor
			}
			col := viscEff.Column(i, j)
			w := make([]float64, g.Nz)
			for k := 0; k < g.Nz; k++ {
				visc := col[k]
				if h <= 0 {
					visc = viscMin
				}
				w[k] = hEff / visc * (1 - g.ZetaAA[k])
			}
			for k := 0; k < g.Nz; k++ {
				out.Set(i, j, k, grid.TrapzZetaAATo(g.ZetaAA, w, g.ZetaAA[k]))
			}
		}
	}
	return out
}

// dFieldDx computes the ab-node x-derivative of an acx field via the 4-point
// averaged centered difference with step 4*dx (spec §4.1).
func dFieldDx(ux *grid.FieldAC, i, j int, dx float64) float64 {
	return (ux.At(i+1, j) - ux.At(i-1, j) + ux.At(i+1, j+1) - ux.At(i-1, j+1)) / (4 * dx)
}

// dFieldDy computes the ab-node y-derivative of an acy field via the 4-point
// averaged centered difference with step 4*dy (spec §4.1).
func dFieldDy(uy *grid.FieldAC, i, j int, dy float64) float64 {
	return (uy.At(i, j+1) - uy.At(i, j-1) + uy.At(i+1, j+1) - uy.At(i+1, j-1)) / (4 * dy)
}
