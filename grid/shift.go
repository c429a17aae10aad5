package grid

// ShiftAAPeriodic returns a copy of f translated by (di,dj) cells under
// periodic wraparound, used to build translation-invariant test fixtures
// for the periodic-boundary self-test (spec §8 testable property 8).
func ShiftAAPeriodic(f *FieldAA, di, dj int) *FieldAA {
	g := f.G
	out := g.NewFieldAA()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			si := WrapIndex(i-di, g.Nx)
			sj := WrapIndex(j-dj, g.Ny)
			out.Set(i, j, f.Data[sj*g.Nx+si])
		}
	}
	return out
}

// ShiftACXPeriodic is the acx analogue of ShiftAAPeriodic.
func ShiftACXPeriodic(f *FieldAC, di, dj int) *FieldAC {
	g := f.G
	out := &FieldAC{G: g, Nu: f.Nu, Nv: f.Nv, Data: make([]float64, len(f.Data))}
	for j := 0; j < f.Nv; j++ {
		for i := 0; i < f.Nu; i++ {
			si := WrapIndex(i-di, f.Nu)
			sj := WrapIndex(j-dj, f.Nv)
			out.Set(i, j, f.Data[sj*f.Nu+si])
		}
	}
	return out
}

// ShiftACYPeriodic is the acy analogue of ShiftAAPeriodic.
func ShiftACYPeriodic(f *FieldAC, di, dj int) *FieldAC {
	return ShiftACXPeriodic(f, di, dj)
}
