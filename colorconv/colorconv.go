// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// colorconv converts between hex color strings and 8-bit RGB.
package colorconv // import "github.com/cxdata/go-datautil/colorconv"

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToRGB parses a six-digit hex color such as "#6F1958" into its
// red, green, and blue components. The leading "#" is optional and
// digits may be in either case.
func HexToRGB(s string) (r, g, b uint8, err error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("colorconv: %q is not a six-digit hex color", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("colorconv: %q is not a hex color", s)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// RGBToHex formats red, green, and blue components as an upper-case
// "#RRGGBB" string.
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
