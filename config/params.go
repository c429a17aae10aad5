// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config holds the parameter block threaded through the DIVA
// coordinator and its collaborators: physical constants, solver knobs, and
// the closed enums selecting sliding law, grounding-line staggering and
// boundary policy.
package config

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
)

// BetaMethod selects the basal sliding law evaluated on aa-nodes (spec §4.2).
type BetaMethod string

// admissible sliding laws
const (
	BetaLinear  BetaMethod = "linear"
	BetaPower   BetaMethod = "power"
	BetaCoulomb BetaMethod = "coulomb"
)

// Valid reports whether m is one of the admissible sliding laws.
func (m BetaMethod) Valid() bool {
	switch m {
	case BetaLinear, BetaPower, BetaCoulomb:
		return true
	}
	return false
}

// GLStagger selects the grounding-line beta staggering policy (spec §4.2).
type GLStagger string

// admissible staggering policies
const (
	GLStagSimple   GLStagger = "simple"
	GLStagUpstream GLStagger = "upstream"
	GLStagSubgrid  GLStagger = "subgrid"
)

// Valid reports whether g is one of the admissible staggering policies.
func (g GLStagger) Valid() bool {
	switch g {
	case GLStagSimple, GLStagUpstream, GLStagSubgrid:
		return true
	}
	return false
}

// BoundaryPolicy selects the momentum solver's boundary treatment (spec §4.3).
type BoundaryPolicy string

// admissible boundary policies
const (
	BoundZeroGradient BoundaryPolicy = "zero-gradient"
	BoundPeriodic     BoundaryPolicy = "periodic"
	BoundInfinite     BoundaryPolicy = "infinite"
)

// Valid reports whether b is one of the admissible boundary policies.
func (b BoundaryPolicy) Valid() bool {
	switch b {
	case BoundZeroGradient, BoundPeriodic, BoundInfinite:
		return true
	}
	return false
}

// Constants holds the process-wide physical constants threaded read-only
// through every component (spec §5 "Global constants").
type Constants struct {
	G       float64 // gravitational acceleration (m/s^2 scaled to m/a^2 consumers as needed)
	RhoIce  float64 // ice density (kg/m^3)
	RhoSw   float64 // seawater density (kg/m^3)
	RhoW    float64 // freshwater density (kg/m^3)
	T0      float64 // reference temperature (K)
	LIce    float64 // latent heat of fusion of ice (J/kg)
	SecYear float64 // seconds per year
}

// SetDefault fills o with the standard glaciological constants.
func (o *Constants) SetDefault() {
	o.G = 9.81
	o.RhoIce = 910.0
	o.RhoSw = 1028.0
	o.RhoW = 1000.0
	o.T0 = 273.15
	o.LIce = 3.35e5
	o.SecYear = 31556926.0
}

// LinSolData holds parameters for the external sparse linear solver
// consumed by the momentum solver (spec §4.3, §6 ssa_solver_opt).
//
// Mirrors inp.LinSolData in the gofem lineage: Name is an opaque string
// passed straight through to the solver collaborator.
type LinSolData struct {
	Name      string `json:"name"`      // opaque solver name, e.g. "umfpack", "mumps"
	Symmetric bool   `json:"symmetric"` // solver may assume a symmetric operator
	Verbose   bool   `json:"verbose"`   // solver-side verbosity
	Timing    bool   `json:"timing"`    // report factorization/solve timings
}

// SetDefault fills in the default single-rank solver selection.
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// PostProcess re-selects the solver name under MPI, mirroring
// inp.LinSolData.PostProcess: a multi-rank run switches to a distributed
// sparse solver regardless of what was requested.
func (o *LinSolData) PostProcess() {
	if mpi.IsOn() && mpi.Size() > 1 {
		o.Name = "mumps"
		return
	}
	if o.Name == "" {
		o.Name = "umfpack"
	}
}

// Params is the full parameter block supplied to the DIVA coordinator on
// every call (spec §6 "Input contract").
type Params struct {
	// sparse linear solver passed through to the momentum solver
	LinSol LinSolData `json:"linsol"`

	// boundary & sliding law selection
	Boundaries BoundaryPolicy `json:"boundaries"`
	NoSlip     bool           `json:"no_slip"`
	BetaMethod BetaMethod     `json:"beta_method"`

	// sliding law coefficients
	BetaConst float64 `json:"beta_const"` // not read by drag.Compute, which always takes c_bed from the CBed field
	BetaQ     float64 `json:"beta_q"`     // == 1/m_drag
	BetaU0    float64 `json:"beta_u0"`    // regularized-Coulomb velocity scale u_0

	// grounding-line drag scalings
	BetaGLScale bool      `json:"beta_gl_scale"` // enable N_eff scaling
	BetaGLStag  GLStagger `json:"beta_gl_stag"`
	BetaGLF     float64   `json:"beta_gl_f"` // f_beta_gl damping factor
	HGrndLim    float64   `json:"h_grnd_lim"`

	// floors
	BetaMin float64 `json:"beta_min"`
	Eps0    float64 `json:"eps_0"`

	// momentum solve
	SSAVelMax float64 `json:"ssa_vel_max"`

	// fixed-point iteration
	SSAIterMax  int     `json:"ssa_iter_max"`
	SSAIterRel  float64 `json:"ssa_iter_rel"`
	SSAIterConv float64 `json:"ssa_iter_conv"`
	SSAWriteLog bool    `json:"ssa_write_log"`

	// rheology
	NGlen float64 `json:"n_glen"`

	// effective pressure connectivity exponent (Leguy et al. 2014)
	PConnect float64 `json:"p_connect"`

	// Zstar scaling
	ZstarScale   bool `json:"zstar_scale"`
	ZstarNormHIce bool `json:"zstar_norm_h_ice"`

	// enables the min(H_grnd,H_grnd_lim)/H_grnd_lim scaling; when set,
	// ZstarScale is ignored
	HGrndScale bool `json:"h_grnd_scale"`

	// smoothing
	NSmooth float64 `json:"n_smooth"` // standard deviation in units of dx, 0 disables

	// velocity floor used when assembling |u_b| for the sliding law
	UBMin float64 `json:"u_b_min"`

	Const Constants `json:"-"`
}

// SetDefault fills o with the documented default floors and tolerances,
// among them eps_0 = 1e-8 a^-1. The viscosity floor is not a Params field:
// it is the package constant ViscMin.
func (o *Params) SetDefault() {
	o.LinSol.SetDefault()
	o.Boundaries = BoundZeroGradient
	o.BetaMethod = BetaPower
	o.BetaGLStag = GLStagSubgrid
	o.BetaQ = 3.0
	o.BetaU0 = 100.0
	o.BetaGLF = 1.0
	o.HGrndLim = 500.0
	o.BetaMin = 1.0
	o.Eps0 = 1e-8
	o.SSAVelMax = 5000.0
	o.SSAIterMax = 50
	o.SSAIterRel = 0.7
	o.SSAIterConv = 1e-3
	o.NGlen = 3.0
	o.PConnect = 1.0
	o.NSmooth = 0
	o.UBMin = 1e-3
	o.Const.SetDefault()
}

// VelocityFloor is a velocity floor in m/a. No component reads it: the
// sliding laws floor |u_b| with Params.UBMin.
const VelocityFloor = 1.0 // m/a

// ViscMin is the minimal effective viscosity floor (spec.md §3 invariants,
// §9(c)). It is a package constant, not a Params field: diva.Solve passes it
// to the viscosity engine and uses it directly in the vertical-shear and F1
// reconstruction steps, so it cannot be changed per call.
const ViscMin = 1.0e3 // Pa.a

// Validate performs the *configuration invalid* checks of spec.md §7: a
// violation here is fatal and must be reported before any iteration begins.
func (o *Params) Validate() error {
	var problems []string
	if o.HGrndLim <= 0 {
		problems = append(problems, fmt.Sprintf("h_grnd_lim must be > 0, got %g", o.HGrndLim))
	}
	if o.BetaGLF < 0 || o.BetaGLF > 1 {
		problems = append(problems, fmt.Sprintf("beta_gl_f must be in [0,1], got %g", o.BetaGLF))
	}
	if o.PConnect < 0 || o.PConnect > 1 {
		problems = append(problems, fmt.Sprintf("p_connect must be in [0,1], got %g", o.PConnect))
	}
	if !o.Boundaries.Valid() {
		problems = append(problems, fmt.Sprintf("unknown boundaries option %q", o.Boundaries))
	}
	if !o.BetaMethod.Valid() {
		problems = append(problems, fmt.Sprintf("unknown beta_method option %q", o.BetaMethod))
	}
	if !o.BetaGLStag.Valid() {
		problems = append(problems, fmt.Sprintf("unknown beta_gl_stag option %q", o.BetaGLStag))
	}
	if o.SSAIterMax <= 0 {
		problems = append(problems, fmt.Sprintf("ssa_iter_max must be > 0, got %d", o.SSAIterMax))
	}
	if o.SSAIterRel <= 0 || o.SSAIterRel > 1 {
		problems = append(problems, fmt.Sprintf("ssa_iter_rel must be in (0,1], got %g", o.SSAIterRel))
	}
	if o.BetaMin < 0 {
		problems = append(problems, fmt.Sprintf("beta_min must be >= 0, got %g", o.BetaMin))
	}
	if len(problems) > 0 {
		return chk.Err("diva: invalid configuration:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
