package drag

import (
	"math"

	"github.com/tgoelles/yelmo/grid"
)

// SmoothGrounded applies Gaussian smoothing to beta restricted to grounded
// cells (f_grnd > 0): the kernel is renormalized over only the grounded,
// ice-covered neighbors actually sampled, so floating or ice-free neighbors
// never bleed into a grounded cell's smoothed value (spec §4.2). sigma is
// n_smooth grid cells along both axes, i.e. n_smooth*dx along x and
// n_smooth*dy along y; when dx != dy the y-axis sigma is not rescaled to
// n_smooth*dx.
//
// No library in this module's dependency closure implements 2-D grid
// convolution (see DESIGN.md); the kernel is rolled by hand on stdlib math,
// matching the teacher's own habit of hand-rolling small numerical kernels
// (e.g. the Newmark/HHT coefficients) rather than reaching for a library
// that doesn't fit.
func SmoothGrounded(beta *grid.FieldAA, fGrnd, hIce *grid.FieldAA, nSmooth float64) {
	if nSmooth <= 0 {
		return
	}
	g := beta.G
	sigma := nSmooth // in grid-cell units
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		return
	}

	kernel := make([]float64, 2*radius+1)
	for d := -radius; d <= radius; d++ {
		kernel[d+radius] = math.Exp(-float64(d*d) / (2 * sigma * sigma))
	}

	src := append([]float64{}, beta.Data...)
	orig := &grid.FieldAA{G: g, Data: src}
	mask := func(i, j int) bool {
		if i < 0 || i >= g.Nx || j < 0 || j >= g.Ny {
			return false
		}
		return fGrnd.At(i, j) > 0 && hIce.At(i, j) > 0
	}

	// separable pass: horizontal then vertical, each renormalized over the
	// grounded, ice-covered samples actually used.
	tmp := g.NewFieldAA()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			if !mask(i, j) {
				tmp.Set(i, j, orig.At(i, j))
				continue
			}
			sum, wsum := 0.0, 0.0
			for d := -radius; d <= radius; d++ {
				ii := i + d
				if !mask(ii, j) {
					continue
				}
				w := kernel[d+radius]
				sum += w * orig.At(ii, j)
				wsum += w
			}
			if wsum <= 0 {
				tmp.Set(i, j, orig.At(i, j))
			} else {
				tmp.Set(i, j, sum/wsum)
			}
		}
	}
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			if !mask(i, j) {
				continue
			}
			sum, wsum := 0.0, 0.0
			for d := -radius; d <= radius; d++ {
				jj := j + d
				if !mask(i, jj) {
					continue
				}
				w := kernel[d+radius]
				sum += w * tmp.At(i, jj)
				wsum += w
			}
			if wsum <= 0 {
				beta.Set(i, j, tmp.At(i, j))
			} else {
				beta.Set(i, j, sum/wsum)
			}
		}
	}
}
