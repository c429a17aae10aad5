// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the regular map-plane staggered grid shared by
// every DIVA component: cell-center (aa), x-staggered (acx), y-staggered
// (acy) and corner (ab) node flavors (spec §3, §9 "staggered-grid indexing").
//
// Representing each flavor as a distinct field type instead of a bare
// []float64 indexed by convention prevents mixing node flavors at compile
// time, the weakness spec §9 flags in the original Fortran source.
package grid

import "github.com/cpmech/gosl/chk"

// Grid describes a regular 2-D map-plane grid plus its vertical sigma axis.
type Grid struct {
	Nx, Ny int       // number of aa-node columns/rows
	Nz     int       // number of vertical layers
	Dx, Dy float64   // grid spacing (m)
	ZetaAA []float64 // layer-center sigma samples, 0 at base, 1 at surface
	ZetaAC []float64 // layer-interface sigma samples, len == Nz-1
}

// New validates geometry and derives the interface sigma samples.
func New(nx, ny, nz int, dx, dy float64, zetaAA []float64) *Grid {
	if nx < 2 || ny < 2 {
		chk.Panic("grid: nx and ny must be >= 2, got nx=%d ny=%d", nx, ny)
	}
	if nz < 2 {
		chk.Panic("grid: nz must be >= 2, got %d", nz)
	}
	if dx <= 0 || dy <= 0 {
		chk.Panic("grid: dx and dy must be > 0, got dx=%g dy=%g", dx, dy)
	}
	if len(zetaAA) != nz {
		chk.Panic("grid: len(zetaAA)=%d must equal nz=%d", len(zetaAA), nz)
	}
	g := &Grid{Nx: nx, Ny: ny, Nz: nz, Dx: dx, Dy: dy, ZetaAA: append([]float64{}, zetaAA...)}
	g.ZetaAC = make([]float64, nz-1)
	for k := 0; k < nz-1; k++ {
		g.ZetaAC[k] = 0.5 * (zetaAA[k] + zetaAA[k+1])
	}
	return g
}

// FieldAA is a dense scalar field over aa-nodes (cell centers), row-major
// with i the fastest-varying index: idx = j*Nx + i.
type FieldAA struct {
	G    *Grid
	Data []float64
}

// NewFieldAA allocates a zeroed aa-node field.
func (g *Grid) NewFieldAA() *FieldAA {
	return &FieldAA{G: g, Data: make([]float64, g.Nx*g.Ny)}
}

// At returns the value at (i,j), clamped to the domain (zero-gradient
// ghost policy used by differencing helpers that need one ring of padding).
func (f *FieldAA) At(i, j int) float64 {
	i = clampInt(i, 0, f.G.Nx-1)
	j = clampInt(j, 0, f.G.Ny-1)
	return f.Data[j*f.G.Nx+i]
}

// Set stores v at (i,j).
func (f *FieldAA) Set(i, j int, v float64) {
	f.Data[j*f.G.Nx+i] = v
}

// FieldAA3 is a dense scalar field over aa-nodes x nz layers.
type FieldAA3 struct {
	G    *Grid
	Data []float64 // idx = (j*Nx+i)*Nz + k
}

// NewFieldAA3 allocates a zeroed 3-D aa-node field.
func (g *Grid) NewFieldAA3() *FieldAA3 {
	return &FieldAA3{G: g, Data: make([]float64, g.Nx*g.Ny*g.Nz)}
}

// At returns the value at (i,j,k).
func (f *FieldAA3) At(i, j, k int) float64 {
	i = clampInt(i, 0, f.G.Nx-1)
	j = clampInt(j, 0, f.G.Ny-1)
	return f.Data[(j*f.G.Nx+i)*f.G.Nz+k]
}

// Set stores v at (i,j,k).
func (f *FieldAA3) Set(i, j, k int, v float64) {
	f.Data[(j*f.G.Nx+i)*f.G.Nz+k] = v
}

// Column returns a copy of the nz values at (i,j), clamped to the domain.
func (f *FieldAA3) Column(i, j int) []float64 {
	i = clampInt(i, 0, f.G.Nx-1)
	j = clampInt(j, 0, f.G.Ny-1)
	base := (j*f.G.Nx + i) * f.G.Nz
	col := make([]float64, f.G.Nz)
	copy(col, f.Data[base:base+f.G.Nz])
	return col
}

// FieldAC is a dense scalar field over x- or y-staggered edge nodes. acx
// edges sit between (i,j) and (i+1,j); there are Nx-1 of them per row. acy
// edges sit between (i,j) and (i,j+1); there are Ny-1 per column. Both share
// this type; the caller picks the right accessor (NewFieldACX/NewFieldACY).
type FieldAC struct {
	G    *Grid
	Nu   int // number of edges along the staggered axis
	Nv   int // number of rows/columns along the other axis
	Data []float64
}

// NewFieldACX allocates a zeroed x-staggered edge field: (Nx-1) x Ny.
func (g *Grid) NewFieldACX() *FieldAC {
	return &FieldAC{G: g, Nu: g.Nx - 1, Nv: g.Ny, Data: make([]float64, (g.Nx-1)*g.Ny)}
}

// NewFieldACY allocates a zeroed y-staggered edge field: Nx x (Ny-1).
func (g *Grid) NewFieldACY() *FieldAC {
	return &FieldAC{G: g, Nu: g.Nx, Nv: g.Ny - 1, Data: make([]float64, g.Nx*(g.Ny-1))}
}

// At returns the value at staggered index (u,v), clamped.
func (f *FieldAC) At(u, v int) float64 {
	u = clampInt(u, 0, f.Nu-1)
	v = clampInt(v, 0, f.Nv-1)
	return f.Data[v*f.Nu+u]
}

// Set stores v at staggered index (u,w).
func (f *FieldAC) Set(u, w int, v float64) {
	f.Data[w*f.Nu+u] = v
}

// FieldAC3 is a dense scalar field over ac-nodes x nz layers.
type FieldAC3 struct {
	G    *Grid
	Nu   int
	Nv   int
	Data []float64
}

// NewFieldACX3 allocates a zeroed 3-D x-staggered edge field.
func (g *Grid) NewFieldACX3() *FieldAC3 {
	return &FieldAC3{G: g, Nu: g.Nx - 1, Nv: g.Ny, Data: make([]float64, (g.Nx-1)*g.Ny*g.Nz)}
}

// NewFieldACY3 allocates a zeroed 3-D y-staggered edge field.
func (g *Grid) NewFieldACY3() *FieldAC3 {
	return &FieldAC3{G: g, Nu: g.Nx, Nv: g.Ny - 1, Data: make([]float64, g.Nx*(g.Ny-1)*g.Nz)}
}

// At returns the value at (u,v,k).
func (f *FieldAC3) At(u, v, k int) float64 {
	u = clampInt(u, 0, f.Nu-1)
	v = clampInt(v, 0, f.Nv-1)
	return f.Data[(v*f.Nu+u)*f.G.Nz+k]
}

// Set stores val at (u,v,k).
func (f *FieldAC3) Set(u, v, k int, val float64) {
	f.Data[(v*f.Nu+u)*f.G.Nz+k] = val
}

// FieldAB is a dense scalar field over corner nodes: (Nx-1) x (Ny-1).
type FieldAB struct {
	G    *Grid
	Data []float64
}

// NewFieldAB allocates a zeroed ab-node field.
func (g *Grid) NewFieldAB() *FieldAB {
	return &FieldAB{G: g, Data: make([]float64, (g.Nx-1)*(g.Ny-1))}
}

// At returns the value at corner (i,j), i,j in [0,Nx-2]x[0,Ny-2].
func (f *FieldAB) At(i, j int) float64 {
	i = clampInt(i, 0, f.G.Nx-2)
	j = clampInt(j, 0, f.G.Ny-2)
	return f.Data[j*(f.G.Nx-1)+i]
}

// Set stores v at corner (i,j).
func (f *FieldAB) Set(i, j int, v float64) {
	f.Data[j*(f.G.Nx-1)+i] = v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
