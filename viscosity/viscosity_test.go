package viscosity

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/tgoelles/yelmo/grid"
)

func Test_visc01(tst *testing.T) {

	chk.PrintTitle("visc01: floor is respected everywhere")

	g := grid.New(5, 5, 3, 100.0, 100.0, []float64{0.0, 0.5, 1.0})
	in := Inputs{
		G:       g,
		UxBar:   g.NewFieldACX(),
		UyBar:   g.NewFieldACY(),
		DuxDz:   g.NewFieldACX3(),
		DuyDz:   g.NewFieldACY3(),
		ATT:     g.NewFieldAA3(),
		HIce:    g.NewFieldAA(),
		Eps0:    1e-8,
		NGlen:   3.0,
		ViscMin: 1e3,
	}
	for i := range in.ATT.Data {
		in.ATT.Data[i] = 1e-16
	}
	for i := range in.HIce.Data {
		in.HIce.Data[i] = 500.0
	}

	out := Compute(in)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			for k := 0; k < g.Nz; k++ {
				v := out.ViscEff.At(i, j, k)
				if v < in.ViscMin {
					tst.Errorf("visc_eff(%d,%d,%d)=%g below floor %g", i, j, k, v, in.ViscMin)
				}
			}
		}
	}
}

func Test_visc02(tst *testing.T) {

	chk.PrintTitle("visc02: ice-free points still integrate to a nonzero F1/F2")

	g := grid.New(4, 4, 3, 50.0, 50.0, []float64{0.0, 0.5, 1.0})
	in := Inputs{
		G:     g,
		UxBar: g.NewFieldACX(),
		UyBar: g.NewFieldACY(),
		DuxDz: g.NewFieldACX3(),
		DuyDz: g.NewFieldACY3(),
		ATT:   g.NewFieldAA3(),
		HIce:  g.NewFieldAA(), // all zero: ice-free domain
		Eps0:  1e-8,
		NGlen: 3.0,
	}
	for i := range in.ATT.Data {
		in.ATT.Data[i] = 1e-16
	}

	out := Compute(in)
	if out.F1.At(1, 1) <= 0 {
		tst.Errorf("F1 at ice-free point should be a nonzero floor, got %g", out.F1.At(1, 1))
	}
	if out.F2.At(1, 1) <= 0 {
		tst.Errorf("F2 at ice-free point should be a nonzero floor, got %g", out.F2.At(1, 1))
	}
}
