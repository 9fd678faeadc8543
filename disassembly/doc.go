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

// Package disassembly produces a linear listing of a program. The program is
// decoded with the same decoding table as the CPU, starting at the origin and
// proceeding one instruction at a time until the end of the program.
//
// Bytes that do not decode to an instruction are listed as data. Addresses
// that are the target of a branch, jump or subroutine call are given a label
// and the operands of those instructions refer to the label. Operands that
// refer to the special addresses of the machine are given the symbol for that
// address.
package disassembly
