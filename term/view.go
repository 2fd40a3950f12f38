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

// Package term shows heatmaps in a terminal window.
//
// Every grid cell is shown as [CellWidth] character cells, whose
// background is the cell colour blended over the existing background.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/heatmap"
)

// CellWidth is the number of terminal columns used for one grid cell.
// Terminal character cells are about twice as high as wide.
const CellWidth = 2

// View is a [heatmap.Surface] which paints onto a tcell screen.
// The caller is responsible for calling Show on the underlying screen.
type View struct {
	tcell.Screen

	// OriginX and OriginY give the terminal position of grid cell (0, 0).
	OriginX, OriginY int

	// Base is the colour assumed below cells whose background is the
	// terminal default.
	Base colorful.Color
}

// New returns a surface which draws onto scr, with the grid origin in
// the top-left corner and a black base colour.
func New(scr tcell.Screen) *View {
	return &View{Screen: scr}
}

// DrawCell implements the [heatmap.Surface] interface.
func (v *View) DrawCell(x, y int, c heatmap.Color) {
	row := v.OriginY + y
	for i := range CellWidth {
		col := v.OriginX + x*CellWidth + i
		mainc, combc, style, _ := v.GetContent(col, row)
		if mainc == 0 {
			mainc = ' '
		}

		_, bg, _ := style.Decompose()
		base := v.Base
		if bg.Valid() {
			r, g, b := bg.RGB()
			base = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		}
		blended := base.BlendRgb(c.RGB(), c.Alpha)

		v.SetContent(col, row, mainc, combc, style.Background(tcell.FromImageColor(blended)))
	}
}
