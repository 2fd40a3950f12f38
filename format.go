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

package heatmap

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Format writes records in the text form understood by [Parse].
// Every record is terminated by ";", for example "(1, 2) 3;(4, 5) 10;".
func Format(records []Record) string {
	var b strings.Builder
	for _, rec := range records {
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(rec.X))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(rec.Y))
		b.WriteString(") ")
		b.WriteString(strconv.Itoa(rec.Count))
		b.WriteString(segmentSep)
	}
	return b.String()
}

// Cell identifies a grid cell.
type Cell struct {
	X, Y int
}

// Tally counts how often each grid cell was visited.
// The zero value is an empty tally, ready to use.
type Tally struct {
	counts map[Cell]int
}

// Add records one visit of cell (x, y).
func (t *Tally) Add(x, y int) {
	t.AddN(x, y, 1)
}

// AddN records n visits of cell (x, y).
func (t *Tally) AddN(x, y, n int) {
	if t.counts == nil {
		t.counts = make(map[Cell]int)
	}
	t.counts[Cell{X: x, Y: y}] += n
}

// Len returns the number of distinct cells.
func (t *Tally) Len() int {
	return len(t.counts)
}

// Records returns one record per visited cell, most frequent first.
// Ties are ordered by row and then by column.
func (t *Tally) Records() []Record {
	cells := slices.SortedFunc(maps.Keys(t.counts), func(a, b Cell) int {
		if c := cmp.Compare(t.counts[b], t.counts[a]); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})

	res := make([]Record, len(cells))
	for i, c := range cells {
		res[i] = Record{X: c.X, Y: c.Y, Count: t.counts[c]}
	}
	return res
}

// MaxTableCells limits the number of entries printed by [WriteTable].
const MaxTableCells = 1 << 20

// ErrTableTooLarge is returned by [WriteTable] if the table would have
// more than [MaxTableCells] entries.
var ErrTableTooLarge = errors.New("heatmap: count table too large")

// WriteTable prints the counts as a matrix with one line per grid row,
// from row 0 to the largest row present. Counts of repeated cells are
// summed, and unvisited cells show as 0. Nothing is written if records
// is empty.
//
// The table covers all cells from (0, 0) to the largest coordinates,
// so a single distant record makes it large. If it would exceed
// [MaxTableCells] entries, an error wrapping [ErrTableTooLarge] is
// returned and nothing is written.
func WriteTable(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	var t Tally
	width, height := 0, 0
	for _, rec := range records {
		t.AddN(rec.X, rec.Y, rec.Count)
		width = max(width, rec.X)
		height = max(height, rec.Y)
	}
	if width >= MaxTableCells || height >= MaxTableCells ||
		width+1 > MaxTableCells/(height+1) {
		return fmt.Errorf("%w: columns 0 to %d, rows 0 to %d", ErrTableTooLarge, width, height)
	}
	width++
	height++

	maxCount := 0
	for _, n := range t.counts {
		maxCount = max(maxCount, n)
	}
	digits := len(strconv.Itoa(maxCount))

	out := bufio.NewWriter(w)
	for y := range height {
		out.WriteByte('|')
		for x := range width {
			if x > 0 {
				out.WriteString(", ")
			}
			s := strconv.Itoa(t.counts[Cell{X: x, Y: y}])
			out.WriteString(strings.Repeat(" ", digits-len(s)))
			out.WriteString(s)
		}
		out.WriteString("|\n")
	}
	return out.Flush()
}
