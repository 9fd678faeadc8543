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

// Package display converts the display region of memory into a Frame of
// colours that can be presented by a frontend. A frontend implements the
// Renderer interface.
//
// Each byte of the display region is one cell of a 32x32 grid. Only the
// lower values of a byte are meaningful. See the ColourOf() function for the
// mapping.
//
// The Frame type implements the image.Image interface, with one pixel per
// cell. The Scale() function returns an image.Image of the frame with each
// cell occupying a square block of pixels. This is suitable for encoding with
// the standard image encoders or with WriteBMP().
package display
