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

package canvas

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasteriser converts filled paths to pixel coverage values: the fraction
// of each pixel's area covered by the path, from 0 (outside) to 1
// (inside). Paths are filled using the nonzero winding rule.
//
// Create one instance and reuse it for multiple paths. Internal buffers
// grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	z        *vector.Rasterizer
	mask     *image.Alpha
	coverage []float32
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and
// the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:  matrix.Identity,
		Clip: clip,
		z:    vector.NewRasterizer(0, 0),
	}
}

// transform maps a point from user space to device space.
func (r *Rasteriser) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// Fill fills the path using the nonzero winding rule. The emit callback
// receives coverage row-by-row, from top to bottom; its slice argument
// is valid only during the call. Rows and columns without coverage are
// not emitted.
func (r *Rasteriser) Fill(p path.Path, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.deviceBounds(p)
	if !ok {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	r.z.Reset(width, height)
	r.z.DrawOp = draw.Src
	ox, oy := float64(xMin), float64(yMin)
	point := func(p vec.Vec2) (float32, float32) {
		d := r.transform(p)
		return float32(d.X - ox), float32(d.Y - oy)
	}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.z.MoveTo(point(pts[0]))
		case path.CmdLineTo:
			r.z.LineTo(point(pts[0]))
		case path.CmdQuadTo:
			bx, by := point(pts[0])
			cx, cy := point(pts[1])
			r.z.QuadTo(bx, by, cx, cy)
		case path.CmdCubeTo:
			bx, by := point(pts[0])
			cx, cy := point(pts[1])
			dx, dy := point(pts[2])
			r.z.CubeTo(bx, by, cx, cy, dx, dy)
		case path.CmdClose:
			r.z.ClosePath()
		}
	}

	bounds := image.Rect(0, 0, width, height)
	if r.mask == nil || r.mask.Rect != bounds {
		r.mask = image.NewAlpha(bounds)
	}
	r.z.Draw(r.mask, bounds, image.Opaque, image.Point{})

	if cap(r.coverage) < width {
		r.coverage = make([]float32, width)
	}
	coverage := r.coverage[:width]
	for row := range height {
		pix := r.mask.Pix[row*r.mask.Stride : row*r.mask.Stride+width]
		for i, a := range pix {
			coverage[i] = float32(a) / 0xff
		}
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// deviceBounds returns the integer bounding box of the path in device
// space, clamped to the clip rectangle. Bézier control points are
// included, which gives a conservative box.
func (r *Rasteriser) deviceBounds(p path.Path) (xMin, xMax, yMin, yMax int, ok bool) {
	first := true
	var llx, lly, urx, ury float64
	for _, pts := range p {
		for _, pt := range pts {
			d := r.transform(pt)
			if first {
				llx, urx = d.X, d.X
				lly, ury = d.Y, d.Y
				first = false
				continue
			}
			llx = min(llx, d.X)
			urx = max(urx, d.X)
			lly = min(lly, d.Y)
			ury = max(ury, d.Y)
		}
	}
	if first {
		return 0, 0, 0, 0, false // empty path
	}

	// Clamp before converting, since far away cells do not fit into an int.
	llx = max(llx, r.Clip.LLx)
	urx = min(urx, r.Clip.URx)
	lly = max(lly, r.Clip.LLy)
	ury = min(ury, r.Clip.URy)
	if !(llx < urx && lly < ury) {
		return 0, 0, 0, 0, false
	}

	xMin = int(math.Floor(llx))
	xMax = int(math.Ceil(urx))
	yMin = int(math.Floor(lly))
	yMax = int(math.Ceil(ury))
	return xMin, xMax, yMin, yMax, true
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}
