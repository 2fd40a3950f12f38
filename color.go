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
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Fixed parameters of the heatmap colour scale.
const (
	// MaxHue is the hue used for frequency 0 (green), in degrees.
	// Frequency 1 maps to hue 0 (red).
	MaxHue = 120

	cellSaturation = 1.0
	cellLightness  = 0.5
	cellAlpha      = 0.5
)

// Color is a translucent colour in the HSL colour space.
// Color implements [color.Color].
type Color struct {
	Hue        float64 // degrees, [0, 360)
	Saturation float64 // [0, 1]
	Lightness  float64 // [0, 1]
	Alpha      float64 // [0, 1], 0 is fully transparent
}

// FrequencyToColor maps a frequency in [0, 1] to the heatmap colour.
// The hue is (1-frequency)*120 degrees, so that the most frequent cells
// are red and the least frequent ones are green. Saturation is 100%,
// lightness 50% and alpha 0.5.
//
// Values outside [0, 1] are clamped, and NaN is treated as 0.
func FrequencyToColor(frequency float64) Color {
	if math.IsNaN(frequency) || frequency < 0 {
		frequency = 0
	} else if frequency > 1 {
		frequency = 1
	}
	return Color{
		Hue:        (1 - frequency) * MaxHue,
		Saturation: cellSaturation,
		Lightness:  cellLightness,
		Alpha:      cellAlpha,
	}
}

// RGB returns the colour without alpha.
func (c Color) RGB() colorful.Color {
	return colorful.Hsl(c.Hue, c.Saturation, c.Lightness).Clamped()
}

// RGBA implements the [color.Color] interface.
// The returned values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	r, g, b, _ = c.RGB().RGBA()
	a = uint32(c.Alpha*0xffff + 0.5)
	r = r * a / 0xffff
	g = g * a / 0xffff
	b = b * a / 0xffff
	return r, g, b, a
}

// NRGBA returns the colour as non-premultiplied 8-bit components.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.RGB().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(c.Alpha*0xff + 0.5)}
}

// String returns the colour in CSS notation, for example
// "hsla(60,100%,50%,0.5)".
func (c Color) String() string {
	return fmt.Sprintf("hsla(%s,%s%%,%s%%,%s)",
		formatFloat(c.Hue),
		formatFloat(c.Saturation*100),
		formatFloat(c.Lightness*100),
		formatFloat(c.Alpha))
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
