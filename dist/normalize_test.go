// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize([]float64{10, 20, 30}, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0.5, 1}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Normalize([10 20 30], 0, 1)[%d] = %v, want %v", i, got[i], w)
		}
	}
}

func TestNormalizeEndpoints(t *testing.T) {
	// The minimum and maximum must map to the bounds exactly, not
	// just within tolerance.
	data := []float64{3.7, -1.2, 9.9, 0.1, 9.9, -1.2}
	got, err := Normalize(data, -5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(data) {
		t.Fatalf("len = %d, want %d", len(got), len(data))
	}
	for i, y := range got {
		if y < -5 || y > 5 {
			t.Errorf("got[%d] = %v, outside [-5, 5]", i, y)
		}
		if data[i] == -1.2 && y != -5 {
			t.Errorf("minimum mapped to %v, want exactly -5", y)
		}
		if data[i] == 9.9 && y != 5 {
			t.Errorf("maximum mapped to %v, want exactly 5", y)
		}
	}
}

func TestNormalizeInputUnchanged(t *testing.T) {
	data := []float64{10, 20, 30}
	if _, err := Normalize(data, 0, 1); err != nil {
		t.Fatal(err)
	}
	if data[0] != 10 || data[1] != 20 || data[2] != 30 {
		t.Errorf("input mutated: %v", data)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	_, err := Normalize([]float64{5, 5, 5}, 0, 1)
	var derr *DegenerateRangeError
	if !errors.As(err, &derr) {
		t.Fatalf("Normalize([5 5 5], 0, 1) = %v, want DegenerateRangeError", err)
	}
	if derr.Value != 5 {
		t.Errorf("DegenerateRangeError.Value = %v, want 5", derr.Value)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	_, err := Normalize(nil, 0, 1)
	var eerr *EmptyInputError
	if !errors.As(err, &eerr) {
		t.Fatalf("Normalize(nil, 0, 1) = %v, want EmptyInputError", err)
	}
}

func TestNormalizeBadBounds(t *testing.T) {
	if _, err := Normalize([]float64{1, 2}, 1, 1); err == nil {
		t.Error("Normalize with lower == upper did not fail")
	}
	if _, err := Normalize([]float64{1, 2}, 2, 1); err == nil {
		t.Error("Normalize with lower > upper did not fail")
	}
}
