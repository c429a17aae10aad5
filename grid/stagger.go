package grid

// AAToACX averages an aa-node field onto x-staggered edges: the edge between
// (i,j) and (i+1,j) is the arithmetic mean of its two neighbors.
func AAToACX(aa *FieldAA) *FieldAC {
	g := aa.G
	out := g.NewFieldACX()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			out.Set(i, j, 0.5*(aa.At(i, j)+aa.At(i+1, j)))
		}
	}
	return out
}

// AAToACY averages an aa-node field onto y-staggered edges.
func AAToACY(aa *FieldAA) *FieldAC {
	g := aa.G
	out := g.NewFieldACY()
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			out.Set(i, j, 0.5*(aa.At(i, j)+aa.At(i, j+1)))
		}
	}
	return out
}

// AAToACX3 averages a 3-D aa-node field onto x-staggered edges, layer by layer.
func AAToACX3(aa *FieldAA3) *FieldAC3 {
	g := aa.G
	out := g.NewFieldACX3()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx-1; i++ {
			for k := 0; k < g.Nz; k++ {
				out.Set(i, j, k, 0.5*(aa.At(i, j, k)+aa.At(i+1, j, k)))
			}
		}
	}
	return out
}

// AAToACY3 averages a 3-D aa-node field onto y-staggered edges, layer by layer.
func AAToACY3(aa *FieldAA3) *FieldAC3 {
	g := aa.G
	out := g.NewFieldACY3()
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx; i++ {
			for k := 0; k < g.Nz; k++ {
				out.Set(i, j, k, 0.5*(aa.At(i, j, k)+aa.At(i, j+1, k)))
			}
		}
	}
	return out
}

// AAToAB averages an aa-node field onto corner (ab) nodes with a 4-point
// average: ab(i,j) is the mean of aa(i,j), aa(i+1,j), aa(i,j+1), aa(i+1,j+1).
func AAToAB(aa *FieldAA) *FieldAB {
	g := aa.G
	out := g.NewFieldAB()
	for j := 0; j < g.Ny-1; j++ {
		for i := 0; i < g.Nx-1; i++ {
			v := 0.25 * (aa.At(i, j) + aa.At(i+1, j) + aa.At(i, j+1) + aa.At(i+1, j+1))
			out.Set(i, j, v)
		}
	}
	return out
}

// ACXToAA averages an x-staggered field back onto aa-nodes: cell (i,j) is the
// mean of its two bounding acx edges, one-sided at the domain boundary.
func ACXToAA(acx *FieldAC) *FieldAA {
	g := acx.G
	out := g.NewFieldAA()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			left := acx.At(i-1, j)
			right := acx.At(i, j)
			out.Set(i, j, 0.5*(left+right))
		}
	}
	return out
}

// ACYToAA averages a y-staggered field back onto aa-nodes.
func ACYToAA(acy *FieldAC) *FieldAA {
	g := acy.G
	out := g.NewFieldAA()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			down := acy.At(i, j-1)
			up := acy.At(i, j)
			out.Set(i, j, 0.5*(down+up))
		}
	}
	return out
}

// ABToAA unstaggers a corner (ab) field back to cell centers with a 4-point
// average, one-sided at the domain boundary rows/columns (spec §4.1: "4-point
// unstaggered back to aa-nodes").
func ABToAA(ab *FieldAB) *FieldAA {
	g := ab.G
	out := g.NewFieldAA()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			sum := 0.0
			n := 0
			for _, c := range [][2]int{{i - 1, j - 1}, {i, j - 1}, {i - 1, j}, {i, j}} {
				ci, cj := c[0], c[1]
				if ci < 0 || ci > g.Nx-2 || cj < 0 || cj > g.Ny-2 {
					continue
				}
				sum += ab.At(ci, cj)
				n++
			}
			if n == 0 {
				n = 1
			}
			out.Set(i, j, sum/float64(n))
		}
	}
	return out
}

// CornerFixAverageEdges replaces the values at the four domain corners of an
// ab-node field with the average of their two edge neighbors (spec §4.1:
// "Corner cells of the domain are set to the average of their two edge
// neighbors to suppress extremes").
func CornerFixAverageEdges(ab *FieldAB) {
	nx, ny := ab.G.Nx-1, ab.G.Ny-1
	type corner struct{ i, j, ni1, nj1, ni2, nj2 int }
	corners := []corner{
		{0, 0, 1, 0, 0, 1},
		{nx - 1, 0, nx - 2, 0, nx - 1, 1},
		{0, ny - 1, 1, ny - 1, 0, ny - 2},
		{nx - 1, ny - 1, nx - 2, ny - 1, nx - 1, ny - 2},
	}
	for _, c := range corners {
		if nx == 1 || ny == 1 {
			continue
		}
		v := 0.5 * (ab.At(c.ni1, c.nj1) + ab.At(c.ni2, c.nj2))
		ab.Set(c.i, c.j, v)
	}
}
