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

// Package canvas implements a heatmap surface which paints onto an image,
// typically a screenshot or export of the grid map.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/heatmap"
)

// Canvas is a [heatmap.Surface] which composites cells onto an image.
// Cells are drawn with the Porter-Duff "over" operator, so that every
// cell appears above the base image and above all cells drawn before.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Dst is the image the cells are painted on.
	Dst draw.Image

	// CTM maps grid coordinates to device pixels. Cell (x, y) is the
	// unit square [x, x+1] × [y, y+1] in grid coordinates.
	CTM matrix.Matrix

	r     *Rasteriser
	cells int
}

// New returns a Canvas which draws onto dst, with cells of
// [heatmap.CellSize] pixels and the grid origin at the top-left corner
// of dst's bounds.
func New(dst draw.Image) *Canvas {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Canvas{
		Dst: dst,
		CTM: matrix.Scale(heatmap.CellSize, heatmap.CellSize).
			Translate(float64(b.Min.X), float64(b.Min.Y)),
		r: NewRasteriser(clip),
	}
}

// DrawCell implements the [heatmap.Surface] interface.
func (c *Canvas) DrawCell(x, y int, col heatmap.Color) {
	c.cells++
	c.r.CTM = c.CTM

	sr, sg, sb, sa := col.RGBA()
	c.r.Fill(cellPath(x, y), func(py, xMin int, coverage []float32) {
		for i, cov := range coverage {
			px := xMin + i
			c.Dst.Set(px, py, over(c.Dst.At(px, py), sr, sg, sb, sa, cov))
		}
	})
}

// Cells returns the number of DrawCell calls so far.
func (c *Canvas) Cells() int {
	return c.cells
}

// over composites the premultiplied source colour, scaled by the pixel
// coverage, on top of dst.
func over(dst color.Color, sr, sg, sb, sa uint32, coverage float32) color.RGBA64 {
	k := uint32(coverage*0xffff + 0.5)
	sr = sr * k / 0xffff
	sg = sg * k / 0xffff
	sb = sb * k / 0xffff
	sa = sa * k / 0xffff

	dr, dg, db, da := dst.RGBA()
	inv := 0xffff - sa
	return color.RGBA64{
		R: uint16(sr + dr*inv/0xffff),
		G: uint16(sg + dg*inv/0xffff),
		B: uint16(sb + db*inv/0xffff),
		A: uint16(sa + da*inv/0xffff),
	}
}

// cellPath returns the outline of grid cell (x, y).
func cellPath(x, y int) path.Path {
	x0, y0 := float64(x), float64(y)
	x1, y1 := x0+1, y0+1
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y0}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y0}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: x0, Y: y1}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// MaxBlankPixels limits the size of the images created by [Blank].
// An RGBA image of this size takes 256 MiB.
const MaxBlankPixels = 1 << 26

// ErrTooLarge is returned by [Blank] if the records do not fit into an
// image of at most [MaxBlankPixels] pixels.
var ErrTooLarge = errors.New("canvas: grid too large for a blank canvas")

// GridSize returns the number of columns and rows needed to show all
// records. The results saturate at math.MaxInt.
func GridSize(records []heatmap.Record) (cols, rows int) {
	for _, rec := range records {
		cols = max(cols, cellsUpTo(rec.X))
		rows = max(rows, cellsUpTo(rec.Y))
	}
	return cols, rows
}

// cellsUpTo returns the number of cells from 0 to i inclusive.
func cellsUpTo(i int) int {
	if i == math.MaxInt {
		return i
	}
	return i + 1
}

// Blank returns a transparent image which is just large enough to show
// all records, with grid cell (0, 0) at pixel (originX, originY).
// If the image would have more than [MaxBlankPixels] pixels, an error
// wrapping [ErrTooLarge] is returned.
func Blank(records []heatmap.Record, originX, originY int) (*image.RGBA, error) {
	cols, rows := GridSize(records)
	w, okX := blankExtent(originX, cols)
	h, okY := blankExtent(originY, rows)
	if !okX || !okY || (h > 0 && w > MaxBlankPixels/h) {
		return nil, fmt.Errorf("%w: %d×%d cells at offset (%d, %d)",
			ErrTooLarge, cols, rows, originX, originY)
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

// blankExtent returns origin+cells*CellSize, or false if the result
// is negative or exceeds MaxBlankPixels.
func blankExtent(origin, cells int) (int, bool) {
	if origin < 0 || origin > MaxBlankPixels {
		return 0, false
	}
	if cells > (MaxBlankPixels-origin)/heatmap.CellSize {
		return 0, false
	}
	return origin + cells*heatmap.CellSize, true
}
