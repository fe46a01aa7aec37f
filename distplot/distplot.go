// Copyright 2019 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distplot renders empirical distributions with gonum/plot.
package distplot // import "github.com/cxdata/go-datautil/distplot"

import (
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cxdata/go-datautil/dist"
)

// A Scale selects the axis scaling of one panel.
type Scale int

const (
	// Linear plots both axes linearly.
	Linear Scale = iota

	// LogLog plots both axes logarithmically.
	LogLog

	// SemiLog plots a linear x axis against a logarithmic y axis.
	SemiLog
)

func (s Scale) title() string {
	switch s {
	case LogLog:
		return "log-log"
	case SemiLog:
		return "semi-log"
	}
	return "Distribution"
}

// points converts d to plotter points. For logarithmic scales,
// non-positive values cannot be drawn and are dropped.
func points(d *dist.Dist, scale Scale) plotter.XYs {
	pts := make(plotter.XYs, 0, d.Len())
	for i := range d.Xs {
		x, y := d.Xs[i], d.Ps[i]
		if scale == LogLog && (x <= 0 || y <= 0) {
			continue
		}
		if scale == SemiLog && y <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

// Panel builds one plot of d with the given axis scaling.
func Panel(d *dist.Dist, scale Scale, style Style) (*plot.Plot, error) {
	pts := points(d, scale)
	if len(pts) == 0 {
		return nil, errors.Errorf("distplot: no drawable points on a %s panel", scale.title())
	}

	p := plot.New()
	p.Title.Text = scale.title()

	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, errors.Wrap(err, "distplot")
	}
	line.Width = vg.Points(style.LineWidth)
	p.Add(line, scatter)

	switch scale {
	case LogLog:
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		fallthrough
	case SemiLog:
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if style.Grid {
		p.Add(plotter.NewGrid())
	}
	return p, nil
}

// Panels builds n panels of d: the distribution itself, then log-log,
// then semi-log, mirroring the usual way of eyeballing a heavy tail.
// n must be between 1 and 3.
func Panels(d *dist.Dist, n int, style Style) ([]*plot.Plot, error) {
	if n < 1 || n > 3 {
		return nil, errors.Errorf("distplot: %d panels, want 1 to 3", n)
	}
	scales := []Scale{Linear, LogLog, SemiLog}
	plots := make([]*plot.Plot, 0, n)
	for _, s := range scales[:n] {
		p, err := Panel(d, s, style)
		if err != nil {
			return nil, err
		}
		plots = append(plots, p)
	}
	return plots, nil
}

// Save renders plots side by side into a PNG file at path.
func Save(plots []*plot.Plot, path string, style Style) error {
	if len(plots) == 0 {
		return errors.New("distplot: no plots to save")
	}

	w := vg.Length(style.PanelWidth*float64(len(plots))) * vg.Inch
	h := vg.Length(style.PanelHeight) * vg.Inch
	img := vgimg.New(w, h)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: len(plots)}
	for i, p := range plots {
		p.Draw(tiles.At(dc, i, 0))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "distplot: save")
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrap(err, "distplot: save")
	}
	return f.Close()
}

// Options configures Distribution.
type Options struct {
	// Bins is the histogram bin count; 0 selects dist.DefaultBins.
	Bins int

	// CDF plots the cumulative distribution instead of the
	// density.
	CDF bool

	// Normalize rescales the sample to [0, 1] before estimating.
	Normalize bool

	// Panels is the number of panels to draw (1 to 3); 0 means 2,
	// the distribution and its log-log view.
	Panels int

	// Style overrides DefaultStyle.
	Style *Style
}

// Distribution estimates the distribution of data and renders it to a
// PNG file at path.
func Distribution(data []float64, path string, opt Options) error {
	if opt.Normalize {
		nd, err := dist.Normalize(data, 0, 1)
		if err != nil {
			return err
		}
		data = nd
	}

	var (
		d   *dist.Dist
		err error
	)
	ylabel := "Prob"
	if opt.CDF {
		d, err = dist.CDF(data, opt.Bins)
		ylabel = "CCDF"
	} else {
		d, err = dist.PDF(data, opt.Bins)
	}
	if err != nil {
		return err
	}

	style := DefaultStyle()
	if opt.Style != nil {
		style = *opt.Style
	}
	n := opt.Panels
	if n == 0 {
		n = 2
	}
	plots, err := Panels(d, n, style)
	if err != nil {
		return err
	}
	for _, p := range plots {
		p.Y.Label.Text = ylabel
	}
	return Save(plots, path, style)
}
