package momentum

import (
	"github.com/tgoelles/yelmo/config"
	"github.com/tgoelles/yelmo/grid"
)

// resolveIndex maps a possibly out-of-range edge index back into [0,n) per
// the configured boundary policy: periodic wraps, zero-gradient/infinite
// clamp to the nearest valid edge (spec §4.3 "Boundary policies").
func resolveIndex(idx, n int, policy config.BoundaryPolicy) int {
	if policy == config.BoundPeriodic {
		return grid.WrapIndex(idx, n)
	}
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// getACX reads an x-staggered field at (i,j) honoring the boundary policy.
func getACX(f *grid.FieldAC, i, j int, policy config.BoundaryPolicy) float64 {
	ii := resolveIndex(i, f.Nu, policy)
	jj := resolveIndex(j, f.Nv, policy)
	return f.Data[jj*f.Nu+ii]
}

// getACY reads a y-staggered field at (i,j) honoring the boundary policy.
func getACY(f *grid.FieldAC, i, j int, policy config.BoundaryPolicy) float64 {
	ii := resolveIndex(i, f.Nu, policy)
	jj := resolveIndex(j, f.Nv, policy)
	return f.Data[jj*f.Nu+ii]
}

// globalACX returns the global unknown-vector row/column for acx(i,j).
func globalACX(g *grid.Grid, i, j int, policy config.BoundaryPolicy) int {
	i = resolveIndex(i, g.Nx-1, policy)
	j = resolveIndex(j, g.Ny, policy)
	return j*(g.Nx-1) + i
}

// globalACY returns the global unknown-vector row/column for acy(i,j),
// offset past all acx unknowns.
func globalACY(g *grid.Grid, i, j int, policy config.BoundaryPolicy) int {
	i = resolveIndex(i, g.Nx, policy)
	j = resolveIndex(j, g.Ny-1, policy)
	return (g.Nx-1)*g.Ny + j*g.Nx + i
}

// aaAt reads an aa-node field at (i,j) honoring the boundary policy.
func aaAt(f *grid.FieldAA, i, j int, policy config.BoundaryPolicy) float64 {
	ii := resolveIndex(i, f.G.Nx, policy)
	jj := resolveIndex(j, f.G.Ny, policy)
	return f.Data[jj*f.G.Nx+ii]
}

// abAt reads an ab-node field at (i,j) honoring the boundary policy.
func abAt(f *grid.FieldAB, i, j int, policy config.BoundaryPolicy) float64 {
	ii := resolveIndex(i, f.G.Nx-1, policy)
	jj := resolveIndex(j, f.G.Ny-1, policy)
	return f.Data[jj*(f.G.Nx-1)+ii]
}
