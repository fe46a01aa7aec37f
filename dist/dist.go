// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "gonum.org/v1/gonum/floats"

// A Dist is an empirical distribution over a numeric domain.
//
// Xs holds the domain values in ascending order and Ps holds the
// weight at each domain value. For a distribution produced by PDF,
// Xs are bin midpoints, Ps are densities, and the total mass
// sum(Ps[i]) * Width is 1. For a distribution produced by CDF, Ps are
// cumulative and non-decreasing, and the final entry is exactly 1.
//
// A Dist is produced fresh by each call and is never retained or
// mutated by this package.
type Dist struct {
	// Xs are the domain values, ascending.
	Xs []float64

	// Ps are the weights, one per domain value. Each is
	// non-negative.
	Ps []float64

	// Width is the bin width of a histogram-derived distribution,
	// or 0 when the domain is discrete.
	Width float64
}

// Len returns the number of domain values in d.
func (d *Dist) Len() int {
	return len(d.Xs)
}

// Mass returns the total probability mass of d: the sum of Ps
// weighted by the bin width, or the plain sum when Width is 0.
func (d *Dist) Mass() float64 {
	if len(d.Ps) == 0 {
		return 0
	}
	if d.Width == 0 {
		return floats.Sum(d.Ps)
	}
	return floats.Sum(d.Ps) * d.Width
}
