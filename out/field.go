// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
	"github.com/tgoelles/yelmo/grid"
)

// PlotField draws a filled contour of an aa-node field over the map-plane
// grid, gated behind an explicit enable flag so it is never reached from the
// solve path -- spec.md's core has no I/O (spec §6: "no file formats, no
// wire protocols... belong to the core"). Grounded on
// `msolid/plotter.go`'s `plt.ContourSimple(xx, yy, zz, args)` diagnostic
// contour calls, adapted from yield-surface cross sections to a regular
// map-plane field.
func PlotField(g *grid.Grid, f *grid.FieldAA, title, args string, enable bool) {
	if !enable {
		return
	}
	xx := make([][]float64, g.Ny)
	yy := make([][]float64, g.Ny)
	zz := make([][]float64, g.Ny)
	for j := 0; j < g.Ny; j++ {
		xx[j] = make([]float64, g.Nx)
		yy[j] = make([]float64, g.Nx)
		zz[j] = make([]float64, g.Nx)
		for i := 0; i < g.Nx; i++ {
			xx[j][i] = float64(i) * g.Dx
			yy[j][i] = float64(j) * g.Dy
			zz[j][i] = f.At(i, j)
		}
	}
	plt.ContourSimple(xx, yy, zz, args)
	plt.Title(title, "")
}
