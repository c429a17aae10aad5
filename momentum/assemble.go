// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package momentum implements the DIVA depth-integrated momentum solver
// interface (M): assembly of the depth-integrated stress-balance operator
// into a sparse system and delegation of the actual linear solve to an
// external collaborator (spec §4.3).
//
// Grounded on fem/domain.go's Kb *la.Triplet / AddToKb(Kb *la.Triplet, ...)
// element-assembly idiom and fem/essenbcs.go's constraint handling, adapted
// from unstructured FEM element loops to the regular C-grid stencil spec §4.3
// names directly.
package momentum

import (
	"github.com/cpmech/gosl/la"
	"github.com/tgoelles/yelmo/config"
	"github.com/tgoelles/yelmo/grid"
)

// Inputs bundles everything the momentum solver reads.
type Inputs struct {
	G           *grid.Grid
	ViscEffInt  *grid.FieldAA
	BetaEffACX  *grid.FieldAC
	BetaEffACY  *grid.FieldAC
	TaudACX     *grid.FieldAC
	TaudACY     *grid.FieldAC
	MaskACX     *grid.FieldAC // > 0 : solve; <= 0 : held fixed at Prev value
	MaskACY     *grid.FieldAC
	PrevACX     *grid.FieldAC // current iterate, used both as warm start and as the frozen-cell value
	PrevACY     *grid.FieldAC
	Boundaries  config.BoundaryPolicy
}

// System is the assembled sparse linear system A*u = b over the combined
// (ux_bar, uy_bar) unknown vector, acx unknowns first then acy unknowns,
// matching grid.FieldAC's own row-major layout.
type System struct {
	G    *grid.Grid
	A    *la.Triplet
	B    []float64
	NAcx int
	NAcy int
	NTot int
}

// Assemble builds the sparse DIVA momentum operator described in spec §4.3:
// divergence of 2*visc_eff_int*(strain tensor) on the standard C-grid
// stencil, plus beta_eff_ac on the diagonal at solved nodes, with RHS
// taud_ac. Frozen (masked-out) neighbors are substituted by their current
// value and moved to the right-hand side rather than carried as unknowns.
func Assemble(in Inputs) *System {
	g := in.G
	policy := in.Boundaries
	etaAB := grid.AAToAB(in.ViscEffInt)

	nAcx := (g.Nx - 1) * g.Ny
	nAcy := g.Nx * (g.Ny - 1)
	nTot := nAcx + nAcy

	sys := &System{G: g, A: new(la.Triplet), B: make([]float64, nTot), NAcx: nAcx, NAcy: nAcy, NTot: nTot}
	sys.A.Init(nTot, nTot, nTot*11) // at most 11 entries per solved row: 6 same-component, 4 cross-coupling, 1 beta diagonal

	dx, dy := g.Dx, g.Dy

	// x-momentum rows, one per acx(i,j)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			row := globalACX(g, i, j, policy)
			if in.MaskACX.At(i, j) <= 0 {
				sys.A.Put(row, row, 1.0)
				sys.B[row] = in.PrevACX.At(i, j)
				continue
			}

			etaL := aaAt(in.ViscEffInt, i, j, policy)
			etaR := aaAt(in.ViscEffInt, i+1, j, policy)
			etaAbove := abAt(etaAB, i, j, policy)
			etaBelow := abAt(etaAB, i, j-1, policy)

			add := func(ci, cj int, coeff float64) {
				addACXTerm(sys, in, g, policy, row, ci, cj, coeff)
			}
			addY := func(ci, cj int, coeff float64) {
				addACYTerm(sys, in, g, policy, row, ci, cj, coeff)
			}

			// -4*d/dx(eta du/dx)
			add(i+1, j, -4*etaR/(dx*dx))
			add(i, j, 4*(etaR+etaL)/(dx*dx))
			add(i-1, j, -4*etaL/(dx*dx))

			// -4*d/dy(eta*0.5*(du/dy+dv/dx)) -- u part
			add(i, j+1, -2*etaAbove/(dy*dy))
			add(i, j, 2*etaAbove/(dy*dy)+2*etaBelow/(dy*dy))
			add(i, j-1, -2*etaBelow/(dy*dy))

			// -4*d/dy(eta*0.5*(du/dy+dv/dx)) -- v cross-coupling part
			addY(i+1, j, -2*etaAbove/(dy*dx))
			addY(i, j, 2*etaAbove/(dy*dx))
			addY(i+1, j-1, 2*etaBelow/(dy*dx))
			addY(i, j-1, -2*etaBelow/(dy*dx))

			// beta_eff_ac diagonal
			sys.A.Put(row, row, in.BetaEffACX.At(i, j))

			sys.B[row] += in.TaudACX.At(i, j)
		}
	}

	// y-momentum rows, one per acy(i,j) -- the transposed equation
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			row := globalACY(g, i, j, policy)
			if in.MaskACY.At(i, j) <= 0 {
				sys.A.Put(row, row, 1.0)
				sys.B[row] = in.PrevACY.At(i, j)
				continue
			}

			etaBelow := aaAt(in.ViscEffInt, i, j, policy)
			etaAbove := aaAt(in.ViscEffInt, i, j+1, policy)
			etaRight := abAt(etaAB, i, j, policy)
			etaLeft := abAt(etaAB, i-1, j, policy)

			addX := func(ci, cj int, coeff float64) {
				addACXTerm(sys, in, g, policy, row, ci, cj, coeff)
			}
			add := func(ci, cj int, coeff float64) {
				addACYTerm(sys, in, g, policy, row, ci, cj, coeff)
			}

			// -4*d/dy(eta dv/dy)
			add(i, j+1, -4*etaAbove/(dy*dy))
			add(i, j, 4*(etaAbove+etaBelow)/(dy*dy))
			add(i, j-1, -4*etaBelow/(dy*dy))

			// -4*d/dx(eta*0.5*(dv/dx+du/dy)) -- v part
			add(i+1, j, -2*etaRight/(dx*dx))
			add(i, j, 2*etaRight/(dx*dx)+2*etaLeft/(dx*dx))
			add(i-1, j, -2*etaLeft/(dx*dx))

			// -4*d/dx(eta*0.5*(dv/dx+du/dy)) -- u cross-coupling part
			addX(i, j+1, -2*etaRight/(dx*dy))
			addX(i, j, 2*etaRight/(dx*dy))
			addX(i-1, j+1, 2*etaLeft/(dx*dy))
			addX(i-1, j, -2*etaLeft/(dx*dy))

			sys.A.Put(row, row, in.BetaEffACY.At(i, j))

			sys.B[row] += in.TaudACY.At(i, j)
		}
	}

	return sys
}

// addACXTerm adds coeff to the (row, col) entry where col is the global
// unknown index of acx(i,j), or -- if that node is frozen -- subtracts
// coeff*frozenValue from the right-hand side instead.
func addACXTerm(sys *System, in Inputs, g *grid.Grid, policy config.BoundaryPolicy, row, i, j int, coeff float64) {
	if in.MaskACX.At(wrapIdx(i, g.Nx-1, policy), wrapIdx(j, g.Ny, policy)) <= 0 {
		frozen := getACX(in.PrevACX, i, j, policy)
		sys.B[row] -= coeff * frozen
		return
	}
	col := globalACX(g, i, j, policy)
	sys.A.Put(row, col, coeff)
}

// addACYTerm is the acy analogue of addACXTerm.
func addACYTerm(sys *System, in Inputs, g *grid.Grid, policy config.BoundaryPolicy, row, i, j int, coeff float64) {
	if in.MaskACY.At(wrapIdx(i, g.Nx, policy), wrapIdx(j, g.Ny-1, policy)) <= 0 {
		frozen := getACY(in.PrevACY, i, j, policy)
		sys.B[row] -= coeff * frozen
		return
	}
	col := globalACY(g, i, j, policy)
	sys.A.Put(row, col, coeff)
}

func wrapIdx(i, n int, policy config.BoundaryPolicy) int {
	return resolveIndex(i, n, policy)
}
