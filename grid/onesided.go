package grid

// AAToACXOneSided averages an aa-node field onto x-staggered edges, but at an
// ice margin (one neighbor with H_ice <= 0) takes the ice-covered neighbor's
// value outright instead of averaging in the ice-free side (spec §4.4: F2
// staggered to ac "with one-sided selection at ice margins").
func AAToACXOneSided(f, hIce *FieldAA) *FieldAC {
	g := f.G
	out := g.NewFieldACX()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			out.Set(i, j, oneSidedPair(f.At(i, j), f.At(i+1, j), hIce.At(i, j), hIce.At(i+1, j)))
		}
	}
	return out
}

// AAToACYOneSided is the acy analogue of AAToACXOneSided.
func AAToACYOneSided(f, hIce *FieldAA) *FieldAC {
	g := f.G
	out := g.NewFieldACY()
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			out.Set(i, j, oneSidedPair(f.At(i, j), f.At(i, j+1), hIce.At(i, j), hIce.At(i, j+1)))
		}
	}
	return out
}

// AAToACX3OneSided is the layer-wise analogue of AAToACXOneSided, used to
// stagger the F1(k) reconstruction profile onto acx nodes.
func AAToACX3OneSided(f *FieldAA3, hIce *FieldAA) *FieldAC3 {
	g := f.G
	out := g.NewFieldACX3()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			hA, hB := hIce.At(i, j), hIce.At(i+1, j)
			for k := 0; k < g.Nz; k++ {
				out.Set(i, j, k, oneSidedPair(f.At(i, j, k), f.At(i+1, j, k), hA, hB))
			}
		}
	}
	return out
}

// AAToACY3OneSided is the acy analogue of AAToACX3OneSided.
func AAToACY3OneSided(f *FieldAA3, hIce *FieldAA) *FieldAC3 {
	g := f.G
	out := g.NewFieldACY3()
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			hA, hB := hIce.At(i, j), hIce.At(i, j+1)
			for k := 0; k < g.Nz; k++ {
				out.Set(i, j, k, oneSidedPair(f.At(i, j, k), f.At(i, j+1, k), hA, hB))
			}
		}
	}
	return out
}

func oneSidedPair(vA, vB, hA, hB float64) float64 {
	switch {
	case hA > 0 && hB <= 0:
		return vA
	case hB > 0 && hA <= 0:
		return vB
	default:
		return 0.5 * (vA + vB)
	}
}
