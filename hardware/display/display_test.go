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

package display_test

import (
	"bytes"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/jetsetilly/snake6502/hardware/display"
	"github.com/jetsetilly/snake6502/test"
)

func TestColourOf(t *testing.T) {
	expected := []display.Colour{
		display.Black, display.White,
		display.Grey, display.Red, display.Green, display.Blue, display.Magenta, display.Yellow,
		display.Cyan,
		display.Grey, display.Red, display.Green, display.Blue, display.Magenta, display.Yellow,
		display.Cyan,
	}
	for v, c := range expected {
		test.ExpectEquality(t, display.ColourOf(uint8(v)), c, v)
	}

	// anything else is the fallback colour
	test.ExpectEquality(t, display.ColourOf(0x10), display.Cyan)
	test.ExpectEquality(t, display.ColourOf(0xff), display.Cyan)
}

func TestRGB(t *testing.T) {
	r, g, b := display.Red.RGB()
	test.ExpectEquality(t, r, uint8(0xff))
	test.ExpectEquality(t, g, uint8(0x00))
	test.ExpectEquality(t, b, uint8(0x00))

	test.ExpectEquality(t, display.Colour(100).RGBA(), display.Cyan.RGBA())
}

func TestFrameUpdate(t *testing.T) {
	f := display.NewFrame()
	data := make([]uint8, display.Width*display.Height)

	// all black to begin with
	test.ExpectFailure(t, f.Update(data))

	data[0] = 1
	data[display.Width+2] = 3
	test.ExpectSuccess(t, f.Update(data))
	test.ExpectEquality(t, f.Cell(0, 0), display.White)
	test.ExpectEquality(t, f.Cell(2, 1), display.Red)

	// aliased value is the same colour so nothing has changed
	data[display.Width+2] = 10
	test.ExpectFailure(t, f.Update(data))

	// out of range
	test.ExpectEquality(t, f.Cell(-1, 0), display.Black)
	test.ExpectEquality(t, f.Cell(display.Width, 0), display.Black)

	rgb := f.RGB()
	test.ExpectEquality(t, len(rgb), display.Width*display.Height*3)
	test.ExpectEquality(t, rgb[0], uint8(0xff))
	test.ExpectEquality(t, rgb[3], uint8(0x00))

	f.Clear()
	test.ExpectEquality(t, f.Cell(0, 0), display.Black)
}

func TestImage(t *testing.T) {
	f := display.NewFrame()
	data := make([]uint8, display.Width*display.Height)
	data[display.Width*display.Height-1] = 4
	f.Update(data)

	img := f.Scale(10)
	test.ExpectEquality(t, img.Bounds().Dx(), 320)
	test.ExpectEquality(t, img.Bounds().Dy(), 320)
	test.ExpectEquality(t, img.At(319, 319), color.Color(display.Green.RGBA()))
	test.ExpectEquality(t, img.At(309, 319), color.Color(display.Black.RGBA()))
}

func TestWriteBMP(t *testing.T) {
	f := display.NewFrame()
	data := make([]uint8, display.Width*display.Height)
	data[0] = 5
	f.Update(data)

	b := &bytes.Buffer{}
	test.DemandSuccess(t, display.WriteBMP(b, f, 2))

	img, err := bmp.Decode(b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 64)

	r, g, bl, _ := img.At(1, 1).RGBA()
	test.ExpectEquality(t, r, uint32(0))
	test.ExpectEquality(t, g, uint32(0))
	test.ExpectEquality(t, bl, uint32(0xffff))
}
