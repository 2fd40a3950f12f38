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

package testcases

import "seehuhn.de/go/geom/matrix"

// clipCases place cells partly or completely outside the canvas.
var clipCases = []TestCase{
	{
		Name:   "right_edge",
		Input:  "(2, 0) 1;(0, 0) 2",
		Width:  40,
		Height: 16,
	},
	{
		Name:   "bottom_edge",
		Input:  "(0, 2) 1",
		Width:  16,
		Height: 40,
	},
	{
		Name:   "outside",
		Input:  "(10, 10) 3;(0, 0) 1",
		Width:  32,
		Height: 32,
	},
}

// transformCases use a non-default grid to device transformation,
// e.g. for a map drawn with a margin or at a different zoom level.
var transformCases = []TestCase{
	{
		Name:   "offset_origin",
		Input:  "(0, 0) 1;(1, 1) 2",
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(16, 16).Translate(8, 8),
	},
	{
		Name:   "double_size",
		Input:  "(0, 0) 2;(1, 0) 1",
		Width:  64,
		Height: 32,
		CTM:    matrix.Scale(32, 32),
	},
	{
		Name:   "subpixel_offset",
		Input:  "(1, 1) 4;(2, 1) 1",
		Width:  64,
		Height: 48,
		CTM:    matrix.Scale(16, 16).Translate(0.5, 0.25),
	},
	{
		Name:   "fractional_scale",
		Input:  "(0, 0) 1;(1, 0) 2;(2, 0) 3",
		Width:  40,
		Height: 16,
		CTM:    matrix.Scale(12.5, 12.5),
	},
}

// largeCases cover whole maps.
var largeCases = []TestCase{
	{
		Name:   "grid_20x15",
		Input:  grid(20, 15),
		Width:  320,
		Height: 240,
	},
	{
		Name:   "grid_40x40",
		Input:  grid(40, 40),
		Width:  640,
		Height: 640,
	},
}
