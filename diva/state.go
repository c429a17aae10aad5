// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diva implements the DIVA coordinator (D): the outer fixed-point
// loop that drives the viscosity engine (V), the basal-drag engine (B) and
// the depth-integrated momentum solver (M) to a converged depth-averaged
// velocity field, then reconstructs the full 3-D velocity profile (spec
// §4.4).
package diva

import "github.com/tgoelles/yelmo/grid"

// State holds every field named in the DIVA input/output contract (spec §6),
// owned by the caller for the duration of a Solve call and updated in place.
// A zero-initialized State (via NewState) is a valid cold start.
type State struct {
	G *grid.Grid

	// static geometry & boundary fields, set by the caller before Solve
	HIce     *grid.FieldAA
	HGrnd    *grid.FieldAA
	FGrnd    *grid.FieldAA
	FGrndACX *grid.FieldAC
	FGrndACY *grid.FieldAC
	ZBed     *grid.FieldAA
	ZSl      *grid.FieldAA
	HW       *grid.FieldAA
	CBed     *grid.FieldAA
	ATT      *grid.FieldAA3
	TaudACX  *grid.FieldAC
	TaudACY  *grid.FieldAC

	// velocity iterate, warm-started from the previous outer step or zero
	Ux, Uy         *grid.FieldAA3
	UxBar, UyBar   *grid.FieldAC
	UxB, UyB       *grid.FieldAC
	UxI, UyI       *grid.FieldAA3
	DuxDz, DuyDz   *grid.FieldAC3
	TaubACX        *grid.FieldAC
	TaubACY        *grid.FieldAC
	ViscEff        *grid.FieldAA3
	ViscEffInt     *grid.FieldAA
	F1Ac, F2Ac     *grid.FieldAA // aa-node F1/F2 depth integrals; F2Ac feeds drag and u_b, F1Ac is diagnostic only

	// masks: > 0 solve, <= 0 held fixed at the current iterate
	SSAMaskACX *grid.FieldAC
	SSAMaskACY *grid.FieldAC

	// drag outputs
	Beta       *grid.FieldAA
	BetaACX    *grid.FieldAC
	BetaACY    *grid.FieldAC
	BetaEff    *grid.FieldAA
	BetaEffACX *grid.FieldAC
	BetaEffACY *grid.FieldAC
	BetaDiva   *grid.FieldAA

	// per-iteration diagnostics
	SSAErrACX *grid.FieldAC
	SSAErrACY *grid.FieldAC
	SSAIterNow int
}

// NewState allocates a cold-start State: every field zeroed, masks set to
// "solve everywhere".
func NewState(g *grid.Grid) *State {
	s := &State{
		G:          g,
		HIce:       g.NewFieldAA(),
		HGrnd:      g.NewFieldAA(),
		FGrnd:      g.NewFieldAA(),
		FGrndACX:   g.NewFieldACX(),
		FGrndACY:   g.NewFieldACY(),
		ZBed:       g.NewFieldAA(),
		ZSl:        g.NewFieldAA(),
		HW:         g.NewFieldAA(),
		CBed:       g.NewFieldAA(),
		ATT:        g.NewFieldAA3(),
		TaudACX:    g.NewFieldACX(),
		TaudACY:    g.NewFieldACY(),
		Ux:         g.NewFieldAA3(),
		Uy:         g.NewFieldAA3(),
		UxBar:      g.NewFieldACX(),
		UyBar:      g.NewFieldACY(),
		UxB:        g.NewFieldACX(),
		UyB:        g.NewFieldACY(),
		UxI:        g.NewFieldAA3(),
		UyI:        g.NewFieldAA3(),
		DuxDz:      g.NewFieldACX3(),
		DuyDz:      g.NewFieldACY3(),
		TaubACX:    g.NewFieldACX(),
		TaubACY:    g.NewFieldACY(),
		ViscEff:    g.NewFieldAA3(),
		ViscEffInt: g.NewFieldAA(),
		F1Ac:       g.NewFieldAA(),
		F2Ac:       g.NewFieldAA(),
		SSAMaskACX: g.NewFieldACX(),
		SSAMaskACY: g.NewFieldACY(),
		Beta:       g.NewFieldAA(),
		BetaACX:    g.NewFieldACX(),
		BetaACY:    g.NewFieldACY(),
		BetaEff:    g.NewFieldAA(),
		BetaEffACX: g.NewFieldACX(),
		BetaEffACY: g.NewFieldACY(),
		BetaDiva:   g.NewFieldAA(),
		SSAErrACX:  g.NewFieldACX(),
		SSAErrACY:  g.NewFieldACY(),
	}
	for i := range s.SSAMaskACX.Data {
		s.SSAMaskACX.Data[i] = 1
	}
	for i := range s.SSAMaskACY.Data {
		s.SSAMaskACY.Data[i] = 1
	}
	return s
}
