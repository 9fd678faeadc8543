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

// Package memory implements the memory of the machine. The memory is a fixed
// array of 2048 bytes. Every access is bounds checked.
//
// Two areas of memory have special behaviour:
//
// Reading the random address (addresses.Random) returns a new value every
// time. The value comes from the Noise implementation attached to the memory.
// The random package has implementations suitable for normal use and for
// testing.
//
// Writing a new value to the display region raises the dirty flag. Writing a
// value that is already present does not. The flag is cleared by whichever
// part of the emulation consumes the display.
package memory
