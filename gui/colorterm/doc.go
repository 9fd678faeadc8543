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

// Package colorterm implements a frontend for the emulation that draws the
// display in a colour terminal. The ColorTerm type satisfies both the
// display.Renderer and the input.Source interfaces.
//
// Each cell of the display is drawn as two character spaces with the
// background colour of the cell. The terminal must be at least 64 columns
// wide and 32 rows high.
//
// Keyboard input is read in a separate goroutine. The cursor keys and the
// WASD keys steer. The Q and Escape keys quit.
package colorterm
