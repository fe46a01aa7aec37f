// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// csvutil loads delimited files in chunks.
package csvutil // import "github.com/cxdata/go-datautil/csvutil"

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ChunkSize is the number of records ReadAll accumulates per chunk
// before appending to the result.
const ChunkSize = 100000

// A RecordReader yields CSV records one at a time.
type RecordReader interface {
	Read() (record []string, err error)
}

// A ReaderCloser pairs a csv.Reader with the file (and, for .gz
// paths, the decompressor) underneath it.
type ReaderCloser struct {
	*csv.Reader
	closers []io.Closer
}

// Open opens path for CSV reading. Paths ending in ".gz" are
// decompressed transparently.
func Open(path string) (*ReaderCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "csvutil: open")
	}
	var r io.Reader = f
	closers := []io.Closer{f}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "csvutil: open %s", path)
		}
		r = gr
		closers = []io.Closer{gr, f}
		glog.V(1).Infof("Opened compressed file for reading: %s", path)
	} else {
		glog.V(1).Infof("Opened file for reading: %s", path)
	}
	return &ReaderCloser{Reader: csv.NewReader(r), closers: closers}, nil
}

// Close closes the underlying file and any decompressor. It is safe
// to call more than once.
func (r *ReaderCloser) Close() error {
	closers := r.closers
	r.closers = nil
	r.Reader = nil
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ReadAll loads every record of the CSV file at path, accumulating
// ChunkSize records at a time.
func ReadAll(path string) ([][]string, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	glog.V(1).Infof("start to read %s", path)
	var records [][]string
	chunk := make([][]string, 0, ChunkSize)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "csvutil: read %s", path)
		}
		chunk = append(chunk, rec)
		if len(chunk) == ChunkSize {
			records = append(records, chunk...)
			chunk = chunk[:0]
		}
	}
	records = append(records, chunk...)
	glog.V(1).Infof("read %d records from %s", len(records), path)
	return records, nil
}

// A RecordFunc processes one record, or the non-EOF error encountered
// reading it. Returning a non-nil error stops the read; io.EOF is
// converted to nil before ReadFunc returns.
type RecordFunc func(source string, record []string, recordNum int, err error) error

// ReadFunc streams records from r to fn. It returns the number of
// records successfully read and the first error fn returned, if any.
func ReadFunc(r RecordReader, source string, fn RecordFunc) (numRecords int, err error) {
	for {
		record, rerr := r.Read()
		if rerr == io.EOF {
			return numRecords, nil
		}
		if rerr != nil {
			glog.Warningf("Error reading record %d from %s: %v", numRecords+1, source, rerr)
		}
		if ferr := fn(source, record, numRecords, rerr); ferr != nil {
			if ferr == io.EOF {
				ferr = nil
			}
			return numRecords, ferr
		}
		if rerr == nil {
			numRecords++
		}
	}
}
