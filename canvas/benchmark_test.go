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
	"fmt"
	"image"
	"image/draw"
	"testing"

	"seehuhn.de/go/heatmap"
)

// BenchmarkCanvasGrid benchmarks rendering a full map of cells.
func BenchmarkCanvasGrid(b *testing.B) {
	sizes := []int{8, 40, 100}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			records := gridRecords(size)
			dst := image.NewRGBA(image.Rect(0, 0, size*heatmap.CellSize, size*heatmap.CellSize))
			c := New(dst)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if err := heatmap.Render(records, c); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDrawMaskGrid benchmarks image/draw compositing the same cells,
// as a baseline for the canvas.
func BenchmarkDrawMaskGrid(b *testing.B) {
	sizes := []int{8, 40, 100}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			records := gridRecords(size)
			dst := image.NewRGBA(image.Rect(0, 0, size*heatmap.CellSize, size*heatmap.CellSize))
			maxCount, _ := heatmap.MaxCount(records)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				for _, rec := range records {
					col := heatmap.FrequencyToColor(heatmap.Frequency(rec.Count, maxCount))
					cell := image.Rect(0, 0, heatmap.CellSize, heatmap.CellSize).
						Add(image.Pt(rec.X*heatmap.CellSize, rec.Y*heatmap.CellSize))
					draw.Draw(dst, cell, image.NewUniform(col), image.Point{}, draw.Over)
				}
			}
		})
	}
}

// BenchmarkParse benchmarks parsing the text form of a full map.
func BenchmarkParse(b *testing.B) {
	text := heatmap.Format(gridRecords(100))

	b.ReportAllocs()
	for b.Loop() {
		heatmap.Parse(text)
	}
}

// gridRecords returns one record per cell of a size×size map.
func gridRecords(size int) []heatmap.Record {
	records := make([]heatmap.Record, 0, size*size)
	for y := range size {
		for x := range size {
			records = append(records, heatmap.Record{X: x, Y: y, Count: x + y})
		}
	}
	return records
}
