package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ana01(tst *testing.T) {

	chk.PrintTitle("ana01: S1 uniform slab SIA surface velocity")

	att := 1e-16
	n := 3.0
	rho := 910.0
	g := 9.81
	alpha := 1e-3
	h := 1000.0

	u := SIASlabSurfaceVelocity(att, n, rho, g, alpha, h)
	driving := rho * g * alpha
	expected := (2 * att / (n + 1)) * math.Pow(driving, n) * math.Pow(h, n+1)
	chk.Scalar(tst, "u_surf", 1e-20, u, expected)
	if u <= 0 {
		tst.Errorf("expected a positive surface velocity, got %g", u)
	}
}

func Test_ana02(tst *testing.T) {

	chk.PrintTitle("ana02: ISMIP-HOM EXPA bed is radially symmetric")

	z1 := ISMIPHOMBed(30000, 0, 80)
	z2 := ISMIPHOMBed(0, 30000, 80)
	chk.Scalar(tst, "z_bed radial symmetry", 1e-9, z1, z2)
}

func Test_ana03(tst *testing.T) {

	chk.PrintTitle("ana03: Glen-law self-similarity scaling factor")

	alpha := 2.0
	n := 3.0
	factor := GlenLawScaling(alpha, n)
	chk.Scalar(tst, "alpha^n", 1e-13, factor, 8.0)
}

func Test_ana04(tst *testing.T) {

	chk.PrintTitle("ana04: shelf velocity is linear in distance")

	u0, dudx := 100.0, 0.01
	u1 := ShelfVelocity(1000, u0, dudx)
	u2 := ShelfVelocity(2000, u0, dudx)
	chk.Scalar(tst, "du", 1e-13, u2-u1, dudx*1000)
}

func Test_ana05(tst *testing.T) {

	chk.PrintTitle("ana05: S2 surface velocity exceeds basal by the SIA shear increment")

	att, n, rho, g, alpha, h := 1e-16, 3.0, 910.0, 9.81, 1e-3, 800.0

	surf := SIASlabSurfaceVelocity(att, n, rho, g, alpha, h)
	shear := SIASlabShearIncrement(att, n, rho, g, alpha, h)
	uBase := 0.0
	chk.Scalar(tst, "u_surf - u_base == shear increment", 1e-20, surf-uBase, shear)

	avg := SIASlabDepthAverage(att, n, rho, g, alpha, h)
	if avg <= 0 || avg >= surf {
		tst.Errorf("expected 0 < depth-average (%g) < surface (%g)", avg, surf)
	}
}

func Test_ana06(tst *testing.T) {

	chk.PrintTitle("ana06: shelf spreading rate scales linearly with the thickness slope")

	r1 := ShelfSpreadingRate(400.0, -0.01, 1e-16, 3.0, 910.0, 1028.0, 9.81)
	r2 := ShelfSpreadingRate(400.0, -0.02, 1e-16, 3.0, 910.0, 1028.0, 9.81)
	chk.Scalar(tst, "rate scales with dhdx", 1e-13, r2, 2*r1)
}
