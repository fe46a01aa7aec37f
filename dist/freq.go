// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"cmp"
	"slices"
)

// A FreqDist is a discrete relative-frequency distribution.
//
// Values holds the distinct observed values in ascending order and
// Probs holds the relative frequency of each. Probs sums to 1 for any
// non-empty input.
type FreqDist[T cmp.Ordered] struct {
	Values []T
	Probs  []float64
}

// Frequency returns the relative frequency of each distinct value in
// data. The result depends only on the multiset of values in data,
// not their order. An empty or nil input yields an empty
// distribution, not an error.
func Frequency[T cmp.Ordered](data []T) FreqDist[T] {
	if len(data) == 0 {
		return FreqDist[T]{}
	}

	counts := make(map[T]int, len(data))
	for _, v := range data {
		counts[v]++
	}

	values := make([]T, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	slices.Sort(values)

	probs := make([]float64, len(values))
	n := float64(len(data))
	for i, v := range values {
		probs[i] = float64(counts[v]) / n
	}
	return FreqDist[T]{Values: values, Probs: probs}
}

// Len returns the number of distinct values in f.
func (f FreqDist[T]) Len() int {
	return len(f.Values)
}

// At returns the relative frequency of v, or 0 if v was not observed.
func (f FreqDist[T]) At(v T) float64 {
	i, ok := slices.BinarySearch(f.Values, v)
	if !ok {
		return 0
	}
	return f.Probs[i]
}
