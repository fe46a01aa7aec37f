// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sample draws random samples from record collections.
package sample // import "github.com/cxdata/go-datautil/sample"

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Size resolves a sample request against a population of n records.
// A size below 1 is treated as a fraction of n; otherwise it is an
// absolute count.
func Size(n int, size float64) int {
	if size < 1 {
		return int(float64(n) * size)
	}
	return int(size)
}

// Records draws a without-replacement random sample from rs. size is
// interpreted by Size; a request of len(rs) or more returns rs
// itself. src may be nil, in which case the global random source is
// used.
func Records[T any](rs []T, size float64, src rand.Source) ([]T, error) {
	if size < 0 {
		return nil, errors.Errorf("sample: negative size %v", size)
	}
	k := Size(len(rs), size)
	if k >= len(rs) {
		return rs, nil
	}

	idxs := make([]int, k)
	sampleuv.WithoutReplacement(idxs, len(rs), src)
	out := make([]T, k)
	for i, idx := range idxs {
		out[i] = rs[idx]
	}
	return out, nil
}
