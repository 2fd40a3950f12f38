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
	"strconv"
	"strings"
)

// Record is one parsed grid observation: the cell (X, Y) was seen Count
// times. All fields are non-negative.
type Record struct {
	X     int // grid column
	Y     int // grid row
	Count int // observed frequency
}

// segmentSep separates records in the input text.
const segmentSep = ";"

// Parse converts text of the form "(x, y) count;(x, y) count;..." into
// records, in input order.
//
// Each ";"-separated segment must contain a substring of the form
// "(<x>, <y>) <count>", where the three values are runs of decimal
// digits. Text before and after the match is ignored. Segments without
// such a substring are silently dropped, so Parse never fails; the worst
// case is an empty result.
func Parse(text string) []Record {
	return ParseFunc(text, nil)
}

// ParseFunc is like Parse, but calls skipped for every segment which is
// dropped because it does not contain a record. Blank segments, such as
// the one following a trailing ";", are not reported. The index counts
// all segments, starting from 0. skipped may be nil.
func ParseFunc(text string, skipped func(index int, segment string)) []Record {
	if text == "" {
		return nil
	}

	var res []Record
	for i, seg := range strings.Split(text, segmentSep) {
		rec, ok := ParseSegment(seg)
		if ok {
			res = append(res, rec)
			continue
		}
		if skipped != nil && strings.TrimSpace(seg) != "" {
			skipped(i, seg)
		}
	}
	return res
}

// ParseSegment extracts the leftmost record from a single segment.
// The second return value is false if the segment contains no record.
func ParseSegment(seg string) (Record, bool) {
	for start := 0; start < len(seg); start++ {
		k := strings.IndexByte(seg[start:], '(')
		if k < 0 {
			break
		}
		start += k
		if rec, ok := matchRecord(seg[start:]); ok {
			return rec, true
		}
	}
	return Record{}, false
}

// matchRecord matches "(" digits ", " digits ") " digits at the start of s.
// Digit runs are greedy.
func matchRecord(s string) (Record, bool) {
	sc := scanner{s: s}
	if !sc.literal("(") {
		return Record{}, false
	}
	x, ok := sc.number()
	if !ok || !sc.literal(", ") {
		return Record{}, false
	}
	y, ok := sc.number()
	if !ok || !sc.literal(") ") {
		return Record{}, false
	}
	count, ok := sc.number()
	if !ok {
		return Record{}, false
	}
	return Record{X: x, Y: y, Count: count}, true
}

// scanner walks over a segment one token at a time.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) literal(lit string) bool {
	if !strings.HasPrefix(sc.s[sc.pos:], lit) {
		return false
	}
	sc.pos += len(lit)
	return true
}

// number consumes a maximal run of ASCII digits. Runs which do not fit
// into an int are rejected.
func (sc *scanner) number() (int, bool) {
	end := sc.pos
	for end < len(sc.s) && sc.s[end] >= '0' && sc.s[end] <= '9' {
		end++
	}
	if end == sc.pos {
		return 0, false
	}
	v, err := strconv.Atoi(sc.s[sc.pos:end])
	if err != nil {
		return 0, false
	}
	sc.pos = end
	return v, true
}
