package drag

import (
	"github.com/tgoelles/yelmo/config"
	"github.com/tgoelles/yelmo/grid"
)

// StaggerX applies the configured staggering policy to an aa-node field,
// producing its x-staggered (acx) counterpart (spec §4.2).
func StaggerX(aa, fGrnd *grid.FieldAA, fGrndACX *grid.FieldAC, policy config.GLStagger) *grid.FieldAC {
	g := aa.G
	out := g.NewFieldACX()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			v := staggerPair(policy, aa.At(i, j), aa.At(i+1, j), fGrnd.At(i, j), fGrnd.At(i+1, j), fGrndACX.At(i, j))
			out.Set(i, j, v)
		}
	}
	return out
}

// StaggerY applies the configured staggering policy to an aa-node field,
// producing its y-staggered (acy) counterpart.
func StaggerY(aa, fGrnd *grid.FieldAA, fGrndACY *grid.FieldAC, policy config.GLStagger) *grid.FieldAC {
	g := aa.G
	out := g.NewFieldACY()
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			v := staggerPair(policy, aa.At(i, j), aa.At(i, j+1), fGrnd.At(i, j), fGrnd.At(i, j+1), fGrndACY.At(i, j))
			out.Set(i, j, v)
		}
	}
	return out
}

// staggerPair implements the three admissible edge-staggering rules of spec
// §4.2 for a single edge between two aa-node neighbors.
func staggerPair(policy config.GLStagger, vA, vB, fA, fB, fAC float64) float64 {
	switch policy {
	case config.GLStagSimple:
		return 0.5 * (vA + vB)

	case config.GLStagUpstream:
		aFloat := fA == 0
		bFloat := fB == 0
		switch {
		case aFloat && bFloat:
			return 0
		case aFloat && !bFloat:
			return vB
		case !aFloat && bFloat:
			return vA
		default:
			return 0.5 * (vA + vB)
		}

	case config.GLStagSubgrid:
		aFloat := fA == 0
		bFloat := fB == 0
		switch {
		case aFloat && bFloat:
			return 0
		case aFloat && !bFloat:
			return fAC*vB + (1-fAC)*vA
		case !aFloat && bFloat:
			return fAC*vA + (1-fAC)*vB
		default:
			return 0.5 * (vA + vB)
		}
	}
	return 0.5 * (vA + vB)
}
