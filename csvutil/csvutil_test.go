// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testCSV = "x,y\n1,10\n2,20\n3,30\n"

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeGzFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(contents)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadAll(t *testing.T) {
	path := writeFile(t, "data.csv", testCSV)
	records, err := ReadAll(path)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"x", "y"}, {"1", "10"}, {"2", "20"}, {"3", "30"}}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("ReadAll mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAllGzip(t *testing.T) {
	path := writeGzFile(t, "data.csv.gz", testCSV)
	records, err := ReadAll(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Errorf("read %d records, want 4", len(records))
	}
}

func TestReadAllMissing(t *testing.T) {
	if _, err := ReadAll(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("ReadAll on a missing file did not fail")
	}
}

func TestReadFunc(t *testing.T) {
	path := writeFile(t, "data.csv", testCSV)
	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var rows int
	n, err := ReadFunc(r, path, func(source string, record []string, recordNum int, err error) error {
		if err != nil {
			return err
		}
		rows++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || rows != 4 {
		t.Errorf("ReadFunc read %d records and called fn %d times, want 4 and 4", n, rows)
	}
}

func TestReadFuncStop(t *testing.T) {
	path := writeFile(t, "data.csv", testCSV)
	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	// Returning io.EOF stops the read without reporting an error.
	n, err := ReadFunc(r, path, func(source string, record []string, recordNum int, err error) error {
		if recordNum == 1 {
			return io.EOF
		}
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("ReadFunc read %d records before stopping, want 1", n)
	}
}

func TestColumn(t *testing.T) {
	records := [][]string{{"x", "y"}, {"1", "10"}, {"2", " 20"}, {"3", "30"}}
	got, err := Column(records, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{10, 20, 30}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Column mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnBadCell(t *testing.T) {
	records := [][]string{{"1"}, {"oops"}}
	_, err := Column(records, 0, false)
	if err == nil {
		t.Fatal("Column with a non-numeric cell did not fail")
	}
	if !strings.Contains(err.Error(), "record 1") {
		t.Errorf("error %q does not name the failing record", err)
	}
}

func TestColumnShortRecord(t *testing.T) {
	records := [][]string{{"1", "2"}, {"3"}}
	if _, err := Column(records, 1, false); err == nil {
		t.Error("Column past the end of a record did not fail")
	}
}
