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

// Package heatmap renders visit counts of grid cells as a colour-coded
// overlay for a grid-based map.
//
// The input is a list of records in the text form "(x, y) count;...",
// see [Parse]. [Render] normalises the counts by their maximum, maps each
// frequency to a translucent colour between green (rare) and red
// (frequent), and issues one draw command per record to a [Surface].
// Concrete surfaces live in the sub-packages canvas (raster images) and
// term (terminal preview).
package heatmap

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import "errors"

// CellSize is the pitch of the map grid, in pixels.
// Cell (x, y) covers the square [x*CellSize, (x+1)*CellSize) ×
// [y*CellSize, (y+1)*CellSize).
const CellSize = 16

// ErrEmptyInput is returned by [Render] if there are no records, since
// no maximum count exists in this case.
var ErrEmptyInput = errors.New("heatmap: no records to render")

// Surface receives the draw commands of the renderer.
//
// DrawCell paints a CellSize×CellSize square at pixel position
// (x*CellSize, y*CellSize), filled with the translucent colour c and
// stacked above everything drawn before, without a border.
type Surface interface {
	DrawCell(x, y int, c Color)
}

// Render draws one square per record onto s, in input order.
//
// If records is empty, Render returns [ErrEmptyInput] without drawing
// anything. Otherwise rendering cannot fail. Render keeps no state, so
// repeated calls add more squares on top of the existing ones.
func Render(records []Record, s Surface) error {
	maxCount, err := MaxCount(records)
	if err != nil {
		return err
	}
	for _, rec := range records {
		c := FrequencyToColor(Frequency(rec.Count, maxCount))
		s.DrawCell(rec.X, rec.Y, c)
	}
	return nil
}

// MaxCount returns the largest count of all records.
// If records is empty, [ErrEmptyInput] is returned.
func MaxCount(records []Record) (int, error) {
	if len(records) == 0 {
		return 0, ErrEmptyInput
	}
	m := records[0].Count
	for _, rec := range records[1:] {
		m = max(m, rec.Count)
	}
	return m, nil
}

// Frequency normalises count to the range [0, 1] by dividing by maxCount.
// If maxCount is zero, all counts are zero and the frequency is 0.
func Frequency(count, maxCount int) float64 {
	if maxCount <= 0 {
		return 0
	}
	return float64(count) / float64(maxCount)
}
