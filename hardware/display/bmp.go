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
	"fmt"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// WriteBMP encodes the frame as a BMP image to the io.Writer.
func WriteBMP(w io.Writer, frame *Frame, scale int) error {
	if err := bmp.Encode(w, frame.Scale(scale)); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// SaveBMP saves the frame as a BMP image to the named file.
func SaveBMP(filename string, frame *Frame, scale int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("display: %w", err)
		}
	}()
	return WriteBMP(f, frame, scale)
}
