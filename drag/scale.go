package drag

import (
	"math"

	"github.com/tgoelles/yelmo/config"
	"github.com/tgoelles/yelmo/grid"
)

// ApplyGLDamping multiplies beta by betaGLF at any aa-node whose 4-neighborhood
// contains a fully floating cell (f_grnd==0), per spec §4.2.
func ApplyGLDamping(beta *grid.FieldAA, fGrnd *grid.FieldAA, betaGLF float64) {
	g := beta.G
	src := append([]float64{}, beta.Data...)
	orig := &grid.FieldAA{G: g, Data: src}
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			near := fGrnd.At(i-1, j) == 0 || fGrnd.At(i+1, j) == 0 ||
				fGrnd.At(i, j-1) == 0 || fGrnd.At(i, j+1) == 0
			if near {
				beta.Set(i, j, betaGLF*orig.At(i, j))
			}
		}
	}
}

// ApplyHGrndLimScale multiplies beta by min(H_grnd,H_grnd_lim)/H_grnd_lim.
func ApplyHGrndLimScale(beta *grid.FieldAA, hGrnd *grid.FieldAA, hGrndLim float64) {
	g := beta.G
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			hg := hGrnd.At(i, j)
			scale := math.Min(hg, hGrndLim) / hGrndLim
			if scale < 0 {
				scale = 0
			}
			beta.Set(i, j, scale*beta.At(i, j))
		}
	}
}

// ApplyZstarScale multiplies beta by the Zstar grounding-fraction scale
// (spec §4.2): f_scale = land ? H_ice : max(0, H_ice - (z_sl-z_bed)*rho_sw/rho_ice),
// optionally normalized by H_ice.
func ApplyZstarScale(beta, hIce, zBed, zSl *grid.FieldAA, c config.Constants, normByHIce bool) {
	g := beta.G
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			h := hIce.At(i, j)
			land := zBed.At(i, j) >= zSl.At(i, j)
			var fScale float64
			if land {
				fScale = h
			} else {
				fScale = math.Max(0, h-(zSl.At(i, j)-zBed.At(i, j))*c.RhoSw/c.RhoIce)
			}
			if normByHIce && h > 0 {
				fScale /= h
			}
			beta.Set(i, j, fScale*beta.At(i, j))
		}
	}
}
