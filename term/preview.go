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

package term

import (
	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/heatmap"
)

// Draw clears scr, renders the records onto it and shows the result.
func Draw(scr tcell.Screen, records []heatmap.Record) error {
	scr.Clear()
	if err := heatmap.Render(records, New(scr)); err != nil {
		return err
	}
	scr.Show()
	return nil
}

// Preview draws the records and waits until a key is pressed.
// The screen must be initialised; Preview does not finalise it.
func Preview(scr tcell.Screen, records []heatmap.Record) error {
	if err := Draw(scr, records); err != nil {
		return err
	}
	for {
		switch scr.PollEvent().(type) {
		case *tcell.EventResize:
			scr.Sync()
		case *tcell.EventKey, nil:
			return nil
		}
	}
}
