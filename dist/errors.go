// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "fmt"

// An EmptyInputError reports an operation that was given no data.
type EmptyInputError struct {
	// Op is the operation that failed.
	Op string
}

func (e *EmptyInputError) Error() string {
	return e.Op + ": empty input"
}

// A DegenerateRangeError reports a sample whose minimum and maximum
// are equal, leaving no width to rescale or bin over.
type DegenerateRangeError struct {
	// Op is the operation that failed.
	Op string

	// Value is the single value observed in the sample.
	Value float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("%s: degenerate range: all values equal %v", e.Op, e.Value)
}
