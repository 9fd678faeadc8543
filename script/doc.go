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

// Package script allows the machine to be controlled by a Lua script. The
// following functions are available to scripts in addition to the Lua base
// library:
//
//	peek(addr)             returns the byte at the address
//	poke(addr, value)      writes the byte to the address
//	step([n])              executes n instructions (default 1) and returns
//	                       the status of the last instruction
//	run([limit])           runs the program until it halts, or until limit
//	                       instructions have been executed, and returns the
//	                       state of the machine ("Halted" or "Ending")
//	reg(name [, value])    returns or sets a register (a, x, y, sp, pc)
//	flag(name [, value])   returns or sets a status flag (c, z, i, d, b, v, n)
//	load(bytes [, origin]) loads the table of bytes at origin (default 0x0600)
//	                       and sets the program counter to the origin
//	reset()                resets the machine
//	dump(from, to)         prints the contents of memory in the range
//	print(...)             prints the values to the script output
//
// Errors raised by the machine are raised as Lua errors and will stop the
// script unless caught with pcall().
package script
