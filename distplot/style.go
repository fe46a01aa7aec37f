// Copyright 2019 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Style controls how panels are rendered.
type Style struct {
	// PanelWidth and PanelHeight are the size of one panel in
	// inches.
	PanelWidth  float64 `yaml:"panel_width"`
	PanelHeight float64 `yaml:"panel_height"`

	// LineWidth is the plotted line width in points.
	LineWidth float64 `yaml:"line_width"`

	// Grid draws grid lines behind the data.
	Grid bool `yaml:"grid"`
}

// DefaultStyle returns the style used when no configuration is
// supplied.
func DefaultStyle() Style {
	return Style{
		PanelWidth:  4,
		PanelHeight: 3,
		LineWidth:   1,
		Grid:        true,
	}
}

// LoadStyle reads a YAML style file. Fields absent from the file keep
// their default values.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	b, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "distplot: load style")
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, errors.Wrapf(err, "distplot: parse style %s", path)
	}
	if s.PanelWidth <= 0 || s.PanelHeight <= 0 {
		return s, errors.Errorf("distplot: non-positive panel size in %s", path)
	}
	return s, nil
}
