package grid

// TrapzZetaAA integrates y (sampled at ZetaAA) over zeta in [0,1] using the
// trapezoid rule on the non-uniform layer-center samples.
func TrapzZetaAA(zetaAA, y []float64) float64 {
	sum := 0.0
	for k := 0; k < len(zetaAA)-1; k++ {
		dz := zetaAA[k+1] - zetaAA[k]
		sum += 0.5 * dz * (y[k] + y[k+1])
	}
	return sum
}

// TrapzZetaAATo integrates y over zeta in [0, zTarget], stopping partway
// through the layer that straddles zTarget with a linear interpolation of y
// at zTarget. Used to build F1(k) = integral from 0 to zeta_aa[k] (spec
// §4.4's reconstruction of the 3-D velocity profile).
func TrapzZetaAATo(zetaAA, y []float64, zTarget float64) float64 {
	if zTarget <= zetaAA[0] {
		return 0
	}
	sum := 0.0
	for k := 0; k < len(zetaAA)-1; k++ {
		z0, z1 := zetaAA[k], zetaAA[k+1]
		if zTarget >= z1 {
			dz := z1 - z0
			sum += 0.5 * dz * (y[k] + y[k+1])
			continue
		}
		if zTarget > z0 {
			frac := (zTarget - z0) / (z1 - z0)
			yTarget := y[k] + frac*(y[k+1]-y[k])
			dz := zTarget - z0
			sum += 0.5 * dz * (y[k] + yTarget)
		}
		break
	}
	return sum
}
