package diva

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/tgoelles/yelmo/config"
	"github.com/tgoelles/yelmo/drag"
	"github.com/tgoelles/yelmo/grid"
	"github.com/tgoelles/yelmo/momentum"
	"github.com/tgoelles/yelmo/viscosity"
)

// Solve runs the DIVA fixed-point loop (spec §4.4) to convergence or
// ssa_iter_max, updating s in place. Non-convergence is reported through
// s.SSAIterNow and a log line, never as an error: only a configuration
// problem or a linear-solver failure is fatal (spec §7).
func Solve(s *State, p *config.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	g := s.G

	for iter := 1; iter <= p.SSAIterMax; iter++ {
		s.SSAIterNow = iter

		prevACX := copyAC(s.UxBar)
		prevACY := copyAC(s.UyBar)

		// viscosity.Compute and drag.Compute read neighbors through
		// FieldAA/FieldAC.At, which clamps at the domain edge rather than
		// wrapping; re-wire the seam explicitly so those stencils see a
		// periodic neighbor instead of a clamped one. momentum.Assemble
		// wraps on its own terms via wrapIdx, so it needs no such pass.
		if p.Boundaries == config.BoundPeriodic {
			grid.ApplyPeriodicAA(s.HIce)
			grid.ApplyPeriodicACX(s.UxBar)
			grid.ApplyPeriodicACY(s.UyBar)
		}

		updateVerticalShear(s)

		vOut := viscosity.Compute(viscosity.Inputs{
			G:       g,
			UxBar:   s.UxBar,
			UyBar:   s.UyBar,
			DuxDz:   s.DuxDz,
			DuyDz:   s.DuyDz,
			ATT:     s.ATT,
			HIce:    s.HIce,
			Eps0:    p.Eps0,
			NGlen:   p.NGlen,
			ViscMin: config.ViscMin,
		})
		s.ViscEff = vOut.ViscEff
		s.ViscEffInt = vOut.ViscEffInt
		s.F1Ac = vOut.F1
		s.F2Ac = vOut.F2

		dOut, err := drag.Compute(drag.Inputs{
			G:        g,
			CBed:     s.CBed,
			UxB:      s.UxB,
			UyB:      s.UyB,
			HIce:     s.HIce,
			HGrnd:    s.HGrnd,
			FGrnd:    s.FGrnd,
			FGrndACX: s.FGrndACX,
			FGrndACY: s.FGrndACY,
			ZBed:     s.ZBed,
			ZSl:      s.ZSl,
			F2:       s.F2Ac,
		}, p)
		if err != nil {
			return err
		}
		s.Beta = dOut.Beta
		s.BetaACX = dOut.BetaACX
		s.BetaACY = dOut.BetaACY
		s.BetaEff = dOut.BetaEff
		s.BetaEffACX = dOut.BetaEffACX
		s.BetaEffACY = dOut.BetaEffACY
		s.BetaDiva = dOut.BetaDiva

		if iter > 1 {
			pruneMask(s.SSAMaskACX, s.SSAErrACX)
			pruneMask(s.SSAMaskACY, s.SSAErrACY)
		}

		sys := momentum.Assemble(momentum.Inputs{
			G:          g,
			ViscEffInt: s.ViscEffInt,
			BetaEffACX: s.BetaEffACX,
			BetaEffACY: s.BetaEffACY,
			TaudACX:    s.TaudACX,
			TaudACY:    s.TaudACY,
			MaskACX:    s.SSAMaskACX,
			MaskACY:    s.SSAMaskACY,
			PrevACX:    s.UxBar,
			PrevACY:    s.UyBar,
			Boundaries: p.Boundaries,
		})
		res, err := momentum.Solve(sys, p)
		if err != nil {
			return err
		}

		relax(s.UxBar, res.UxBar, prevACX, p.SSAIterRel)
		relax(s.UyBar, res.UyBar, prevACY, p.SSAIterRel)

		errACX := l1RelativeError(s.UxBar, prevACX, s.SSAMaskACX)
		errACY := l1RelativeError(s.UyBar, prevACY, s.SSAMaskACY)
		s.SSAErrACX = errACX
		s.SSAErrACY = errACY

		resNorm := l2RelativeNorm(s.UxBar, prevACX, s.SSAMaskACX) +
			l2RelativeNorm(s.UyBar, prevACY, s.SSAMaskACY)

		computeDerivedFields(s)

		if resNorm < p.SSAIterConv {
			if p.SSAWriteLog {
				io.Pfgreen("diva: converged at iter=%d resNorm=%.3e\n", iter, resNorm)
			}
			break
		}
		if iter == p.SSAIterMax && p.SSAWriteLog {
			io.PfMag("diva: max iterations reached (%d), resNorm=%.3e\n", iter, resNorm)
		}
	}

	reconstruct3D(s)
	return nil
}

// updateVerticalShear fills s.DuxDz/DuyDz from the current basal stress and
// layer viscosity: duxdz = (taub_acx/eta_ac)*(1-zeta), analogously duydz
// (spec §4.4 step 2).
func updateVerticalShear(s *State) {
	g := s.G
	etaACX := grid.AAToACX3(s.ViscEff)
	etaACY := grid.AAToACY3(s.ViscEff)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			taub := s.TaubACX.At(i, j)
			for k := 0; k < g.Nz; k++ {
				eta := etaACX.At(i, j, k)
				if eta < config.ViscMin {
					eta = config.ViscMin
				}
				s.DuxDz.Set(i, j, k, (taub/eta)*(1-g.ZetaAA[k]))
			}
		}
	}
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			taub := s.TaubACY.At(i, j)
			for k := 0; k < g.Nz; k++ {
				eta := etaACY.At(i, j, k)
				if eta < config.ViscMin {
					eta = config.ViscMin
				}
				s.DuyDz.Set(i, j, k, (taub/eta)*(1-g.ZetaAA[k]))
			}
		}
	}
}

// pruneMask freezes (mask <= 0) any cell whose previous-iteration error has
// already dropped below 1e-5 (spec §4.4 step 6).
func pruneMask(mask, errField *grid.FieldAC) {
	for i, e := range errField.Data {
		if math.Abs(e) < 1e-5 {
			mask.Data[i] = 0
		}
	}
}

// relax blends the newly solved iterate with the previous one in place:
// dst = rel*solved + (1-rel)*prev (spec §4.4 step 8).
func relax(dst, solved, prev *grid.FieldAC, rel float64) {
	for i := range dst.Data {
		dst.Data[i] = rel*solved.Data[i] + (1-rel)*prev.Data[i]
	}
}

func copyAC(f *grid.FieldAC) *grid.FieldAC {
	out := &grid.FieldAC{G: f.G, Nu: f.Nu, Nv: f.Nv, Data: make([]float64, len(f.Data))}
	copy(out.Data, f.Data)
	return out
}

// l1RelativeError records, per edge, |new-prev|/max(|new|,floor) (spec §4.4
// step 9: "record per-cell L1 relative error into ssa_err_*").
func l1RelativeError(newF, prevF, mask *grid.FieldAC) *grid.FieldAC {
	out := &grid.FieldAC{G: newF.G, Nu: newF.Nu, Nv: newF.Nv, Data: make([]float64, len(newF.Data))}
	for i := range newF.Data {
		if mask.Data[i] <= 0 {
			out.Data[i] = 0
			continue
		}
		denom := math.Abs(newF.Data[i])
		if denom < 1e-6 {
			denom = 1e-6
		}
		out.Data[i] = math.Abs(newF.Data[i]-prevF.Data[i]) / denom
	}
	return out
}

// l2RelativeNorm computes ||new-prev||_2 / ||new||_2 over masked edges only.
func l2RelativeNorm(newF, prevF, mask *grid.FieldAC) float64 {
	var num, den float64
	for i := range newF.Data {
		if mask.Data[i] <= 0 {
			continue
		}
		d := newF.Data[i] - prevF.Data[i]
		num += d * d
		den += newF.Data[i] * newF.Data[i]
	}
	if den < 1e-30 {
		return 0
	}
	return math.Sqrt(num / den)
}

// computeDerivedFields fills taub_ac = beta_eff_ac*u_bar_ac and
// u_b_ac = u_bar_ac - taub_ac*F2_ac (spec §4.4 step 10).
func computeDerivedFields(s *State) {
	g := s.G
	f2ACX := grid.AAToACXOneSided(s.F2Ac, s.HIce)
	f2ACY := grid.AAToACYOneSided(s.F2Ac, s.HIce)

	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			taub := s.BetaEffACX.At(i, j) * s.UxBar.At(i, j)
			s.TaubACX.Set(i, j, taub)
			s.UxB.Set(i, j, s.UxBar.At(i, j)-taub*f2ACX.At(i, j))
		}
	}
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			taub := s.BetaEffACY.At(i, j) * s.UyBar.At(i, j)
			s.TaubACY.Set(i, j, taub)
			s.UyB.Set(i, j, s.UyBar.At(i, j)-taub*f2ACY.At(i, j))
		}
	}
}

// reconstruct3D rebuilds the full ux(i,j,k)/uy(i,j,k) profile after the loop
// exits: ux(i,j,k) = ux_b + taub_acx*F1_ac(k) (spec §4.4 post-loop step).
func reconstruct3D(s *State) {
	g := s.G
	f1 := viscosity.F1Profile(g, s.ViscEff, s.HIce, config.ViscMin)
	f1ACX := grid.AAToACX3OneSided(f1, s.HIce)
	f1ACY := grid.AAToACY3OneSided(f1, s.HIce)

	uxACX3 := g.NewFieldACX3()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			base := s.UxB.At(i, j)
			taub := s.TaubACX.At(i, j)
			for k := 0; k < g.Nz; k++ {
				uxACX3.Set(i, j, k, base+taub*f1ACX.At(i, j, k))
			}
		}
	}
	uyACY3 := g.NewFieldACY3()
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			base := s.UyB.At(i, j)
			taub := s.TaubACY.At(i, j)
			for k := 0; k < g.Nz; k++ {
				uyACY3.Set(i, j, k, base+taub*f1ACY.At(i, j, k))
			}
		}
	}

	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			for k := 0; k < g.Nz; k++ {
				ux := 0.5 * (uxACX3.At(i-1, j, k) + uxACX3.At(i, j, k))
				uy := 0.5 * (uyACY3.At(i, j-1, k) + uyACY3.At(i, j, k))
				s.Ux.Set(i, j, k, ux)
				s.Uy.Set(i, j, k, uy)

				uxB := 0.5 * (s.UxB.At(i-1, j) + s.UxB.At(i, j))
				uyB := 0.5 * (s.UyB.At(i, j-1) + s.UyB.At(i, j))
				s.UxI.Set(i, j, k, ux-uxB)
				s.UyI.Set(i, j, k, uy-uyB)
			}
		}
	}
}
