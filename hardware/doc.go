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

// Package hardware is the base package for the emulated machine. The Machine
// type owns every component of the emulation: the CPU, the memory, the
// display frame and the input handler. A program is placed in memory with
// the Load() or LoadJmp() functions, or with AttachCartridge().
//
// The Boot() function runs the program paced to the clock preference. After
// each instruction the display is rendered (if the display region of memory
// has changed) and input is processed. The Run() function runs the program as
// quickly as possible and is intended for performance measurement and for
// scripting.
//
// The Step() function executes a single instruction and is the basis of both
// Boot() and Run().
package hardware
