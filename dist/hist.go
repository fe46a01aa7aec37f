// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the bin count used by PDF and CDF when the caller
// passes bins <= 0.
const DefaultBins = 200

// PDF estimates the probability density of data using an equal-width
// histogram over [min(data), max(data)]. The observed range is split
// into bins half-open intervals (the top bin is closed so the maximum
// is counted) and each bin's count is divided by n*width, so the
// density integrates to 1 over the observed range. The returned
// distribution is keyed by bin midpoint, ascending.
//
// PDF returns an EmptyInputError if data is empty and a
// DegenerateRangeError if all values in data are equal, since the bin
// width would be zero.
func PDF(data []float64, bins int) (*Dist, error) {
	if len(data) == 0 {
		return nil, &EmptyInputError{Op: "PDF"}
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	min, max := floats.Min(data), floats.Max(data)
	if min == max {
		return nil, &DegenerateRangeError{Op: "PDF", Value: min}
	}

	// stat.Histogram wants its input sorted.
	xs := slices.Clone(data)
	slices.Sort(xs)

	// stat.Histogram requires every observation to lie within the
	// dividers, so pin the endpoints against rounding in Span.
	dividers := floats.Span(make([]float64, bins+1), min, max)
	dividers[0], dividers[bins] = min, max
	counts := stat.Histogram(nil, dividers, xs, nil)

	width := (max - min) / float64(bins)
	n := float64(len(data))
	mids := make([]float64, bins)
	ps := make([]float64, bins)
	for i, c := range counts {
		mids[i] = (dividers[i] + dividers[i+1]) / 2
		ps[i] = c / (n * width)
	}
	return &Dist{Xs: mids, Ps: ps, Width: width}, nil
}

// CDF estimates the cumulative distribution of data from the
// histogram density computed by PDF(data, bins). The cumulative value
// at each bin midpoint is the density mass of all bins up to and
// including it; the whole sequence is then rescaled by its maximum so
// the final entry is exactly 1. The result is non-decreasing across
// ascending domain values.
//
// CDF fails the same ways PDF does.
func CDF(data []float64, bins int) (*Dist, error) {
	pdf, err := PDF(data, bins)
	if err != nil {
		return nil, err
	}

	cum := make([]float64, len(pdf.Ps))
	mass := 0.0
	for i, p := range pdf.Ps {
		mass += p * pdf.Width
		cum[i] = mass
	}
	for i := range cum {
		cum[i] /= mass
	}
	return &Dist{Xs: pdf.Xs, Ps: cum, Width: pdf.Width}, nil
}
