// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvutil

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Column extracts column col of records as float64s. If header is
// true the first record is skipped. Parse failures are reported with
// the record and column they occurred at.
func Column(records [][]string, col int, header bool) ([]float64, error) {
	if header && len(records) > 0 {
		records = records[1:]
	}
	out := make([]float64, 0, len(records))
	for i, rec := range records {
		if col < 0 || col >= len(rec) {
			return nil, errors.Errorf("csvutil: record %d has %d fields, want column %d", i, len(rec), col)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "csvutil: record %d, column %d", i, col)
		}
		out = append(out, v)
	}
	return out, nil
}
