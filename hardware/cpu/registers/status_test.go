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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/snake6502/hardware/cpu/registers"
	"github.com/jetsetilly/snake6502/test"
)

func TestStatus(t *testing.T) {
	var sr registers.Status
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
	test.ExpectEquality(t, sr.Value(), uint8(0x00))

	sr.SetCarry(true)
	sr.SetZero(true)
	test.ExpectEquality(t, sr.String(), "nv-bdiZC")
	test.ExpectEquality(t, sr.Value(), uint8(0x03))

	sr.SetCarry(false)
	test.ExpectFailure(t, sr.Carry())
	test.ExpectSuccess(t, sr.Zero())

	sr.SetNegative(true)
	sr.SetOverflow(true)
	sr.SetBreak(true)
	sr.SetDecimal(true)
	sr.SetInterruptDisable(true)
	test.ExpectEquality(t, sr.String(), "NV-BDIZc")
	test.ExpectEquality(t, sr.Value(), uint8(0xde))

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(0x00))
}

func TestFromValue(t *testing.T) {
	var sr registers.Status

	// the unused bit is discarded
	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.Value(), uint8(0xdf))
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")

	sr.FromValue(0x20)
	test.ExpectEquality(t, sr.Value(), uint8(0x00))

	sr.FromValue(0x81)
	test.ExpectSuccess(t, sr.Negative())
	test.ExpectSuccess(t, sr.Carry())
	test.ExpectFailure(t, sr.Zero())
}

func TestZeroNegative(t *testing.T) {
	var sr registers.Status
	for v := 0; v <= 0xff; v++ {
		sr.SetZeroNegative(uint8(v))
		test.ExpectEquality(t, sr.Zero(), v == 0, v)
		test.ExpectEquality(t, sr.Negative(), v&0x80 == 0x80, v)
	}
}
