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

import (
	"image"
	"image/color"

	"github.com/jetsetilly/snake6502/hardware/memory/addresses"
)

// Dimensions of the display in cells.
const (
	Width  = addresses.DisplayWidth
	Height = addresses.DisplayHeight
)

// Renderer is implemented by frontends that can present a Frame.
type Renderer interface {
	Render(frame *Frame) error
}

// Frame is a snapshot of the display region as colours.
type Frame struct {
	cells [Width * Height]Colour
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame() *Frame {
	return &Frame{}
}

// Clear sets every cell to Black.
func (f *Frame) Clear() {
	clear(f.cells[:])
}

// Update the frame from the display region of memory. Returns true if any
// cell has changed colour.
func (f *Frame) Update(data []uint8) bool {
	var changed bool
	for i := 0; i < len(data) && i < len(f.cells); i++ {
		c := ColourOf(data[i])
		if f.cells[i] != c {
			f.cells[i] = c
			changed = true
		}
	}
	return changed
}

// Cell returns the colour of the cell at the coordinates. Coordinates outside
// of the frame are Black.
func (f *Frame) Cell(x int, y int) Colour {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Black
	}
	return f.cells[y*Width+x]
}

// Cells returns a copy of every cell in the frame, row by row.
func (f *Frame) Cells() []Colour {
	c := make([]Colour, len(f.cells))
	copy(c, f.cells[:])
	return c
}

// RGB returns the RGB triples for every cell, row by row. The returned slice
// has three bytes per cell.
func (f *Frame) RGB() []uint8 {
	b := make([]uint8, 0, len(f.cells)*3)
	for _, c := range f.cells {
		r, g, bl := c.RGB()
		b = append(b, r, g, bl)
	}
	return b
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At implements the image.Image interface.
func (f *Frame) At(x int, y int) color.Color {
	return f.Cell(x, y).RGBA()
}

// Scale returns an image of the frame with each cell scaled to be a square of
// scale pixels. A scale of less than one is treated as one.
func (f *Frame) Scale(scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	return &scaled{frame: f, scale: scale}
}

type scaled struct {
	frame *Frame
	scale int
}

func (s *scaled) ColorModel() color.Model {
	return color.RGBAModel
}

func (s *scaled) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width*s.scale, Height*s.scale)
}

func (s *scaled) At(x int, y int) color.Color {
	return s.frame.At(x/s.scale, y/s.scale)
}
