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

package cpu

// Sentinal errors raised by the cpu package.
const (
	AddressCalculation = "cpu: address calculation overflow (%s)"
	UnknownOpcode      = "cpu: unknown opcode (%#02x) at (%#04x)"
	TruncatedOperand   = "cpu: truncated operand for opcode (%#02x) at (%#04x)"
	StackOverflow      = "cpu: stack overflow"
	StackUnderflow     = "cpu: stack underflow"
	InvalidTarget      = "cpu: invalid jump target (%#04x)"
	UnsupportedMode    = "cpu: unsupported addressing mode (%s) for %s"
	Unimplemented      = "cpu: unimplemented instruction (%s)"
)
