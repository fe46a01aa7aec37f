// Copyright 2019 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist reads newline-separated numbers from stdin, or a column of a
// CSV file, and describes their distribution.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"

	"github.com/cxdata/go-datautil/csvutil"
	"github.com/cxdata/go-datautil/dist"
	"github.com/cxdata/go-datautil/distplot"
)

var (
	csvPath = flag.String("csv", "", "read data from a column of this CSV file instead of stdin")
	col     = flag.Int("col", 0, "CSV column to read (with -csv)")
	header  = flag.Bool("header", false, "skip the first CSV record (with -csv)")
	bins    = flag.Int("bins", dist.DefaultBins, "number of histogram bins")
	cdf     = flag.Bool("cdf", false, "print the cumulative distribution instead of the density")
	freq    = flag.Bool("freq", false, "print the discrete relative-frequency distribution")
	norm    = flag.Bool("norm", false, "min-max normalize the data to [0, 1] first")
	output  = flag.String("o", "", "also render the distribution to this PNG file")
	panels  = flag.Int("panels", 2, "number of plot panels, 1 to 3 (with -o)")
	styleF  = flag.String("style", "", "YAML plot style file (with -o)")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	xs, err := readInput()
	if err != nil {
		fatal(err)
	}

	if *norm {
		if xs, err = dist.Normalize(xs, 0, 1); err != nil {
			fatal(err)
		}
	}

	if *freq {
		f := dist.Frequency(xs)
		for i, v := range f.Values {
			fmt.Printf("%12.6g %.6g\n", v, f.Probs[i])
		}
		return
	}

	var d *dist.Dist
	if *cdf {
		d, err = dist.CDF(xs, *bins)
	} else {
		d, err = dist.PDF(xs, *bins)
	}
	if err != nil {
		fatal(err)
	}

	fmt.Printf("N %d  bins %d  width %.6g\n\n", len(xs), d.Len(), d.Width)
	for i := range d.Xs {
		fmt.Printf("%12.6g %.6g\n", d.Xs[i], d.Ps[i])
	}

	if *output != "" {
		opt := distplot.Options{Bins: *bins, CDF: *cdf, Panels: *panels}
		if *styleF != "" {
			style, err := distplot.LoadStyle(*styleF)
			if err != nil {
				fatal(err)
			}
			opt.Style = &style
		}
		if err := distplot.Distribution(xs, *output, opt); err != nil {
			fatal(err)
		}
		glog.V(1).Infof("wrote %s", *output)
	}
}

func readInput() ([]float64, error) {
	if *csvPath != "" {
		records, err := csvutil.ReadAll(*csvPath)
		if err != nil {
			return nil, err
		}
		return csvutil.Column(records, *col, *header)
	}
	return readNumbers(os.Stdin)
}

func readNumbers(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	glog.Flush()
	os.Exit(1)
}
