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

// Package addresses contains the memory layout of the machine: the location
// of the stack, the display region, the two special zero page addresses and
// the interrupt vector. The input codes written to the last key address are
// also defined here.
//
// The Symbols map gives each special address a canonical name. It is used by
// the disassembly package to annotate operands.
package addresses
