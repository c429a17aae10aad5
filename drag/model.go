// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package drag implements the DIVA basal-drag engine (B): the sliding-law
// dispatch, effective-pressure model, grounding-line scalings, smoothing and
// aa->ac staggering of the basal friction coefficient (spec §4.2).
//
// The sliding-law dispatch follows the mreten/mconduct allocator-map pattern
// from the gofem lineage: each law is a Model with Init(fun.Prms)/GetPrms,
// registered in a package-level map keyed by name.
package drag

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model computes the basal friction coefficient beta on a single aa-node
// from the bed roughness coefficient and the sliding velocity magnitude.
type Model interface {
	Init(prms fun.Prms) error      // initialises this sliding law
	GetPrms(example bool) fun.Prms // gets (an example) of parameters
	Beta(cBed, uMag float64) float64
}

// allocators holds all available sliding laws, keyed by config.BetaMethod.
var allocators = map[string]func() Model{}

// New returns a new sliding-law model by name.
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("drag: sliding law %q is not available in the model database", name)
	}
	return allocator(), nil
}

func init() {
	allocators["linear"] = func() Model { return new(Linear) }
	allocators["power"] = func() Model { return new(Power) }
	allocators["coulomb"] = func() Model { return new(Coulomb) }
}

// Linear implements beta = c_bed (spec §4.2 "linear").
type Linear struct{}

// Init initialises this model; the linear law takes no extra parameters.
func (o *Linear) Init(prms fun.Prms) error { return nil }

// GetPrms gets (an example) of parameters.
func (o *Linear) GetPrms(example bool) fun.Prms { return fun.Prms{} }

// Beta computes beta = c_bed.
func (o *Linear) Beta(cBed, uMag float64) float64 { return cBed }

// Power implements beta = c_bed^(1/m) * |u_b|^((1-m)/m) (spec §4.2 "power").
type Power struct {
	q float64 // == 1/m_drag, i.e. beta_q
}

// Init reads the "q" (== beta_q == 1/m) parameter.
func (o *Power) Init(prms fun.Prms) error {
	o.q = 3.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "q":
			o.q = p.V
		default:
			return chk.Err("drag: power: parameter named %q is incorrect\n", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters.
func (o *Power) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "q", V: 3.0}}
}

// Beta computes beta = c_bed^(1/m) * |u_b|^((1-m)/m) with m = 1/q.
func (o *Power) Beta(cBed, uMag float64) float64 {
	m := 1.0 / o.q
	return powSafe(cBed, 1.0/m) * powSafe(uMag, (1.0-m)/m)
}

// Coulomb implements the regularized Coulomb law
// beta = c_bed * (|u_b|/(|u_b|+u_0))^(1/m) * |u_b|^-1 (spec §4.2 "regularized
// Coulomb").
type Coulomb struct {
	q  float64 // == 1/m_drag
	u0 float64 // velocity scale
}

// Init reads the "q" and "u0" parameters.
func (o *Coulomb) Init(prms fun.Prms) error {
	o.q = 3.0
	o.u0 = 100.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "q":
			o.q = p.V
		case "u0":
			o.u0 = p.V
		default:
			return chk.Err("drag: coulomb: parameter named %q is incorrect\n", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters.
func (o *Coulomb) GetPrms(example bool) fun.Prms {
	return fun.Prms{&fun.Prm{N: "q", V: 3.0}, &fun.Prm{N: "u0", V: 100.0}}
}

// Beta computes the regularized Coulomb friction coefficient.
func (o *Coulomb) Beta(cBed, uMag float64) float64 {
	m := 1.0 / o.q
	return cBed * powSafe(uMag/(uMag+o.u0), 1.0/m) / uMag
}

func powSafe(base, exp float64) float64 {
	if base <= 0 {
		return 0
	}
	return math.Pow(base, exp)
}
