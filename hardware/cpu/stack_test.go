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
	"testing"

	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/cpu/registers"
	"github.com/jetsetilly/snake6502/hardware/memory"
	"github.com/jetsetilly/snake6502/test"
)

func TestStackRoundTrip(t *testing.T) {
	mc := NewCPU(memory.NewMemory(nil))

	test.DemandSuccess(t, mc.push16(0x1234))
	test.ExpectEquality(t, mc.SP, uint8(0xfd))

	v, err := mc.pop16()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x1234))
	test.ExpectEquality(t, mc.SP, uint8(0xff))

	_, err = mc.pop16()
	test.ExpectSuccess(t, curated.Is(err, StackUnderflow))
}

func TestStackLimit(t *testing.T) {
	mc := NewCPU(memory.NewMemory(nil))

	for i := 0; i < 255; i++ {
		test.DemandSuccess(t, mc.push(uint8(i)))
	}
	test.ExpectSuccess(t, curated.Is(mc.push(0), StackOverflow))

	for i := 254; i >= 0; i-- {
		v, err := mc.pop()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, uint8(i))
	}
	_, err := mc.pop()
	test.ExpectSuccess(t, curated.Is(err, StackUnderflow))
}

func TestStatusStack(t *testing.T) {
	mc := NewCPU(memory.NewMemory(nil))
	mc.Status.SetCarry(true)

	test.DemandSuccess(t, mc.pushStatus(registers.Break))
	test.ExpectFailure(t, mc.Status.Break())

	mc.Status.Reset()
	test.DemandSuccess(t, mc.popStatus())
	test.ExpectSuccess(t, mc.Status.Carry())
	test.ExpectSuccess(t, mc.Status.Break())

	// unused bit 5 is discarded on restore
	test.DemandSuccess(t, mc.push(0xff))
	test.DemandSuccess(t, mc.popStatus())
	test.ExpectEquality(t, mc.Status.Value(), uint8(0xdf))
}
