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

var basicCases = []TestCase{
	{
		Name:   "single_cell",
		Input:  "(1, 1) 5",
		Width:  48,
		Height: 48,
	},
	{
		Name:   "origin_cell",
		Input:  "(0, 0) 1",
		Width:  32,
		Height: 32,
	},
	{
		Name:   "example",
		Input:  "(1, 2) 3;(4, 5) 10;(1, 2) 1",
		Width:  96,
		Height: 96,
	},
	{
		Name:   "diagonal",
		Input:  "(0, 0) 1;(1, 1) 2;(2, 2) 3;(3, 3) 4",
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zero_counts",
		Input:  "(0, 0) 0;(1, 0) 0",
		Width:  32,
		Height: 16,
	},
}

// toleranceCases contain malformed segments, which must be skipped
// without affecting the well-formed ones.
var toleranceCases = []TestCase{
	{
		Name:   "garbage_segment",
		Input:  "(1, 2) 3;garbage;(4, 5) 10",
		Width:  96,
		Height: 96,
	},
	{
		Name:   "trailing_separator",
		Input:  "(0, 1) 2;(1, 0) 4;",
		Width:  32,
		Height: 32,
	},
	{
		Name:   "surrounding_text",
		Input:  "fired from (2, 1) 7 times; then (0, 0) 3 more",
		Width:  48,
		Height: 32,
	},
	{
		Name:   "nothing_valid",
		Input:  "(1,2) 3;(-1, 0) 2;hello",
		Width:  32,
		Height: 32,
	},
	{
		Name:   "empty",
		Input:  "",
		Width:  16,
		Height: 16,
	},
}

// overlapCases repeat cells; repeated squares are stacked, not merged.
var overlapCases = []TestCase{
	{
		Name:   "same_cell_twice",
		Input:  "(1, 1) 1;(1, 1) 1",
		Width:  48,
		Height: 48,
	},
	{
		Name:   "same_cell_different_counts",
		Input:  "(0, 0) 10;(0, 0) 1;(1, 0) 5",
		Width:  32,
		Height: 16,
	},
}
