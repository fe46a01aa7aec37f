// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Normalize rescales data into [lower, upper], mapping the minimum of
// data to exactly lower and the maximum to exactly upper. The result
// is a new slice with result[i] corresponding to data[i]; data is not
// modified.
//
// Normalize returns an EmptyInputError if data is empty and a
// DegenerateRangeError if all values in data are equal.
func Normalize(data []float64, lower, upper float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, &EmptyInputError{Op: "Normalize"}
	}
	if lower >= upper {
		return nil, fmt.Errorf("Normalize: invalid bounds [%v, %v]", lower, upper)
	}

	min, max := floats.Min(data), floats.Max(data)
	if min == max {
		return nil, &DegenerateRangeError{Op: "Normalize", Value: min}
	}

	out := make([]float64, len(data))
	for i, x := range data {
		// (x-min)/(max-min) is exactly 1 at the maximum, so the
		// endpoints land on lower and upper exactly.
		out[i] = lower + (upper-lower)*((x-min)/(max-min))
	}
	return out, nil
}
