// This file is part of snake6502.
//
// snake6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// snake6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with snake6502.  If not, see <https://www.gnu.org/licenses/>.

package display

import "image/color"

// Colour is one of the named colours that a cell can be.
type Colour int

// List of valid Colour values.
const (
	Black Colour = iota
	White
	Grey
	Red
	Green
	Blue
	Magenta
	Yellow
	Cyan
)

func (c Colour) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Grey:
		return "grey"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Yellow:
		return "yellow"
	case Cyan:
		return "cyan"
	}
	return "unknown colour"
}

var palette = [...]color.RGBA{
	Black:   {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	White:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Grey:    {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	Red:     {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	Green:   {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	Blue:    {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	Magenta: {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	Yellow:  {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	Cyan:    {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
}

// RGBA returns the colour as a color.RGBA value.
func (c Colour) RGBA() color.RGBA {
	if c < 0 || int(c) >= len(palette) {
		return palette[Cyan]
	}
	return palette[c]
}

// RGB returns the red, green and blue components of the colour.
func (c Colour) RGB() (uint8, uint8, uint8) {
	col := c.RGBA()
	return col.R, col.G, col.B
}

// ColourOf returns the colour for a byte in the display region. Values 9 to
// 14 are aliases of the values 2 to 7. Any other value is Cyan.
func ColourOf(v uint8) Colour {
	switch v {
	case 0:
		return Black
	case 1:
		return White
	case 2, 9:
		return Grey
	case 3, 10:
		return Red
	case 4, 11:
		return Green
	case 5, 12:
		return Blue
	case 6, 13:
		return Magenta
	case 7, 14:
		return Yellow
	}
	return Cyan
}
