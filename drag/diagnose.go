package drag

import (
	"github.com/cpmech/gosl/num"
)

// DiagnoseBetaDIVA inverts the effective-pressure/sliding relation for a
// target beta value by Newton iteration, given a fixed c_bed and an
// effective-pressure/velocity relation expressed through f (which should
// return beta(uMag) for trial uMag values). It is not called anywhere in
// the main fixed-point iteration: spec §9(b) documents the source routine
// this mirrors (diagnose_beta_diva) as declared but inert, a pure
// calibration diagnostic kept outside the active core.
//
// Grounded on the teacher's own use of num.NlSolver for single-equation
// Newton root-finds (e.g. msolid/princstrainsup.go's principal-strain
// inversion).
func DiagnoseBetaDIVA(target float64, f func(uMag float64) float64, uGuess float64) (uMag float64, err error) {
	var nls num.NlSolver
	defer nls.Clean()

	ffcn := func(fx, x []float64) error {
		fx[0] = f(x[0]) - target
		return nil
	}

	res := []float64{uGuess}
	nls.Init(1, ffcn, nil, nil, false, true, nil)
	err = nls.Solve(res, true)
	return res[0], err
}
