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

// Package ansi defines the ANSI control sequences used to position the
// cursor and to clear the terminal.
package ansi

import "fmt"

// Control sequences.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
	NormalPen   = "\033[0m"
)

// CursorMove returns the sequence that moves the cursor to the row and column.
// Rows and columns are numbered from one.
func CursorMove(row int, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}
