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

import (
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/cpu/registers"
	"github.com/jetsetilly/snake6502/hardware/memory/addresses"
)

// push a byte onto the stack.
func (mc *CPU) push(v uint8) error {
	if mc.SP == 0 {
		return curated.Errorf(StackOverflow)
	}
	if err := mc.mem.Write(addresses.Stack+uint16(mc.SP), v); err != nil {
		return err
	}
	mc.SP--
	return nil
}

// pop a byte from the stack.
func (mc *CPU) pop() (uint8, error) {
	if mc.SP == 0xff {
		return 0, curated.Errorf(StackUnderflow)
	}
	mc.SP++
	return mc.mem.Read(addresses.Stack + uint16(mc.SP))
}

// push16 pushes the high byte followed by the low byte.
func (mc *CPU) push16(v uint16) error {
	if err := mc.push(uint8(v >> 8)); err != nil {
		return err
	}
	return mc.push(uint8(v))
}

func (mc *CPU) pop16() (uint16, error) {
	lo, err := mc.pop()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pop()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// pushStatus pushes the status register with the additional flags set. The
// status register itself is not changed.
func (mc *CPU) pushStatus(override registers.Flag) error {
	return mc.push(mc.Status.Value() | uint8(override))
}

func (mc *CPU) popStatus() error {
	v, err := mc.pop()
	if err != nil {
		return err
	}
	mc.Status.FromValue(v)
	return nil
}
