package drag

import (
	"math"

	"github.com/tgoelles/yelmo/config"
	"github.com/tgoelles/yelmo/grid"
)

// EffectivePressure computes N_eff (bar) on every aa-node using the Leguy
// et al. (2014) connectivity-exponent parameterization (spec §4.2).
func EffectivePressure(g *grid.Grid, hIce, zBed, zSl *grid.FieldAA, c config.Constants, pConnect float64) *grid.FieldAA {
	out := g.NewFieldAA()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			h := hIce.At(i, j)
			hFloat := math.Max(0, (c.RhoSw/c.RhoIce)*(zSl.At(i, j)-zBed.At(i, j)))

			var pW float64
			if h <= 0 {
				out.Set(i, j, 0)
				continue
			}
			if h < hFloat {
				pW = c.RhoIce * c.G * h // water pressure equals ice pressure
			} else {
				frac := hFloat / h
				if frac > 1 {
					frac = 1
				}
				pW = c.RhoIce * c.G * h * (1 - math.Pow(1-frac, pConnect))
			}
			nEff := 1e-5 * (c.RhoIce*c.G*h - pW)
			if nEff < 0 {
				nEff = 0
			}
			out.Set(i, j, nEff)
		}
	}
	return out
}
