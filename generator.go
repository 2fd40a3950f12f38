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
	"sync"
)

var (
	// ErrBusy is returned by [Generator.Generate] while another pass of
	// the same generator is still drawing.
	ErrBusy = errors.New("heatmap: generation already in progress")

	// ErrDone is returned by a one-shot [Generator] after its first
	// successful pass.
	ErrDone = errors.New("heatmap: heatmap already generated")
)

// Generator runs the complete parse-then-render pipeline as a single
// action, for use behind an interactive trigger such as a button.
//
// The zero value is not usable; set Surface before calling Generate.
type Generator struct {
	// Surface receives the draw commands.
	Surface Surface

	// Once disables the generator after the first successful pass.
	Once bool

	// Skipped, if not nil, is called for every malformed segment.
	Skipped func(index int, segment string)

	mu   sync.Mutex
	done bool
}

// Generate parses text and renders the records onto g.Surface.
// It returns the number of cells drawn.
//
// A call made while a previous pass has not finished returns [ErrBusy]
// and draws nothing. If g.Once is set, calls after the first successful
// pass return [ErrDone]. A failed pass (for example because text
// contains no records) does not count as a success.
func (g *Generator) Generate(text string) (int, error) {
	if !g.mu.TryLock() {
		return 0, ErrBusy
	}
	defer g.mu.Unlock()

	if g.done {
		return 0, ErrDone
	}

	records := ParseFunc(text, g.Skipped)
	if err := Render(records, g.Surface); err != nil {
		return 0, err
	}
	if g.Once {
		g.done = true
	}
	return len(records), nil
}
