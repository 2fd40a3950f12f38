// seehuhn.de/go/heatmap - coordinate heatmap overlays
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases defines named heatmap scenarios which are shared by
// the package tests and the reference image tools.
package testcases

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// TestCase defines a single heatmap rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Input  string        // coordinate text, as typed into the form
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	CTM    matrix.Matrix // grid to device transformation (zero-value means 16px cells)
}

// record formats a single well-formed segment.
func record(x, y, count int) string {
	return fmt.Sprintf("(%d, %d) %d", x, y, count)
}

// grid builds the input for a w×h block of cells, with counts
// increasing from the top-left to the bottom-right corner.
func grid(w, h int) string {
	segs := make([]string, 0, w*h)
	for y := range h {
		for x := range w {
			segs = append(segs, record(x, y, x+y))
		}
	}
	return strings.Join(segs, ";")
}
