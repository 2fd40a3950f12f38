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
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/heatmap/testcases"
)

// drawCall is one DrawCell invocation seen by recorder.
type drawCall struct {
	X, Y  int
	Color Color
}

// recorder is a Surface which remembers all draw commands.
type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawCell(x, y int, c Color) {
	r.calls = append(r.calls, drawCall{x, y, c})
}

func TestRender(t *testing.T) {
	records := Parse("(1, 2) 3;(4, 5) 10;(1, 2) 1;(0, 0) 0")

	var s recorder
	if err := Render(records, &s); err != nil {
		t.Fatal(err)
	}

	want := []drawCall{
		{1, 2, FrequencyToColor(0.3)},
		{4, 5, FrequencyToColor(1)},
		{1, 2, FrequencyToColor(0.1)},
		{0, 0, FrequencyToColor(0)},
	}
	if d := cmp.Diff(want, s.calls); d != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", d)
	}
}

func TestRenderMaximumIsRed(t *testing.T) {
	records := []Record{{0, 0, 7}, {1, 0, 3}, {2, 0, 7}}

	var s recorder
	if err := Render(records, &s); err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 2} {
		if h := s.calls[i].Color.Hue; h != 0 {
			t.Errorf("cell %d: hue %g, want 0", i, h)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	var s recorder
	err := Render(nil, &s)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Render(nil) = %v, want ErrEmptyInput", err)
	}
	if len(s.calls) != 0 {
		t.Errorf("Render(nil) issued %d draw calls", len(s.calls))
	}
}

func TestRenderAllZero(t *testing.T) {
	var s recorder
	if err := Render([]Record{{0, 0, 0}, {1, 1, 0}}, &s); err != nil {
		t.Fatal(err)
	}
	for _, c := range s.calls {
		if c.Color.Hue != MaxHue {
			t.Errorf("zero count drawn with hue %g", c.Color.Hue)
		}
	}
}

func TestRenderIsAdditive(t *testing.T) {
	var s recorder
	for range 3 {
		if err := Render([]Record{{1, 1, 1}}, &s); err != nil {
			t.Fatal(err)
		}
	}
	if len(s.calls) != 3 {
		t.Errorf("got %d draw calls, want 3", len(s.calls))
	}
}

func TestRenderScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				records := Parse(tc.Input)

				var s recorder
				err := Render(records, &s)
				if len(records) == 0 {
					if !errors.Is(err, ErrEmptyInput) {
						t.Errorf("got %v, want ErrEmptyInput", err)
					}
					return
				}
				if err != nil {
					t.Fatal(err)
				}
				if len(s.calls) != len(records) {
					t.Fatalf("got %d draw calls for %d records", len(s.calls), len(records))
				}
				for i, rec := range records {
					if s.calls[i].X != rec.X || s.calls[i].Y != rec.Y {
						t.Errorf("call %d at (%d, %d), want (%d, %d)",
							i, s.calls[i].X, s.calls[i].Y, rec.X, rec.Y)
					}
				}
			})
		}
	}
}

func TestMaxCount(t *testing.T) {
	if _, err := MaxCount(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("MaxCount(nil) error = %v", err)
	}
	m, err := MaxCount([]Record{{0, 0, 4}, {0, 0, 9}, {0, 0, 2}})
	if err != nil || m != 9 {
		t.Errorf("MaxCount = %d, %v, want 9", m, err)
	}
}

func TestFrequency(t *testing.T) {
	cases := []struct {
		count, max int
		want       float64
	}{
		{10, 10, 1},
		{5, 10, 0.5},
		{0, 10, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := Frequency(tc.count, tc.max); got != tc.want {
			t.Errorf("Frequency(%d, %d) = %g, want %g", tc.count, tc.max, got, tc.want)
		}
	}
}
