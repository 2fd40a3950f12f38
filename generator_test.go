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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// reentrant is a Surface which triggers its generator again from
// inside the first DrawCell call.
type reentrant struct {
	gen   *Generator
	cells int
	err   error
}

func (s *reentrant) DrawCell(x, y int, c Color) {
	if s.cells == 0 {
		_, s.err = s.gen.Generate("(9, 9) 9")
	}
	s.cells++
}

func TestGeneratorBusy(t *testing.T) {
	s := &reentrant{}
	g := &Generator{Surface: s}
	s.gen = g

	n, err := g.Generate("(0, 0) 1;(1, 0) 2")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || s.cells != 2 {
		t.Errorf("Generate drew %d cells (returned %d), want 2", s.cells, n)
	}
	if !errors.Is(s.err, ErrBusy) {
		t.Errorf("nested Generate error = %v, want ErrBusy", s.err)
	}

	// the generator is usable again once the first pass returned
	if _, err := g.Generate("(0, 0) 1"); err != nil {
		t.Errorf("second Generate: %v", err)
	}
}

func TestGeneratorOnce(t *testing.T) {
	var s recorder
	g := &Generator{Surface: &s, Once: true}

	if _, err := g.Generate("nothing useful"); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Generate error = %v, want ErrEmptyInput", err)
	}
	if len(s.calls) != 0 {
		t.Fatalf("failed pass drew %d cells", len(s.calls))
	}

	if _, err := g.Generate("(3, 4) 5"); err != nil {
		t.Fatalf("first successful pass: %v", err)
	}
	if _, err := g.Generate("(3, 4) 5"); !errors.Is(err, ErrDone) {
		t.Errorf("repeated Generate error = %v, want ErrDone", err)
	}

	want := []drawCall{{3, 4, FrequencyToColor(1)}}
	if d := cmp.Diff(want, s.calls); d != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", d)
	}
}

func TestGeneratorRepeat(t *testing.T) {
	var s recorder
	g := &Generator{Surface: &s}
	for range 3 {
		if _, err := g.Generate("(0, 0) 1"); err != nil {
			t.Fatal(err)
		}
	}
	if len(s.calls) != 3 {
		t.Errorf("got %d draw calls, want 3", len(s.calls))
	}
}

func TestGeneratorSkipped(t *testing.T) {
	type skip struct {
		Index   int
		Segment string
	}
	var got []skip
	g := &Generator{
		Surface: &recorder{},
		Skipped: func(index int, segment string) {
			got = append(got, skip{index, segment})
		},
	}

	n, err := g.Generate("(1, 1) 2;oops;(2, 2) x;(3, 3) 4")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Generate returned %d, want 2", n)
	}
	want := []skip{{1, "oops"}, {2, "(2, 2) x"}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("skipped segments mismatch (-want +got):\n%s", d)
	}
}
