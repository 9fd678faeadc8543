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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/snake6502/cartridgeloader"
	"github.com/jetsetilly/snake6502/disassembly"
	"github.com/jetsetilly/snake6502/test"
)

func TestLinear(t *testing.T) {
	dsm, err := disassembly.FromData(0x0600, []uint8{0xa9, 0x05, 0x69, 0x03, 0xff})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 3)
	test.ExpectEquality(t, dsm.Entries[0].String(), "LDA #$05")
	test.ExpectEquality(t, dsm.Entries[1].String(), "ADC #$03")
	test.ExpectEquality(t, dsm.Entries[2].String(), "HALT")
	test.ExpectEquality(t, dsm.Entries[1].Address, "$0602")
	test.ExpectEquality(t, dsm.Entries[1].Bytecode, "69 03")

	w := &test.CompareWriter{}
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectSuccess(t, w.Compare("  $0600  a9 05     LDA #$05\n  $0602  69 03     ADC #$03\n  $0604  ff        HALT\n"))

	w.Clear()
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectSuccess(t, w.Compare("  $0600  LDA #$05\n  $0602  ADC #$03\n  $0604  HALT\n"))
}

func TestData(t *testing.T) {
	// unknown opcode followed by a NOP and an instruction with a missing
	// operand byte
	dsm, err := disassembly.FromData(0x0600, []uint8{0x02, 0xea, 0xa9})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 3)
	test.ExpectEquality(t, dsm.Entries[0].Level, disassembly.EntryLevelData)
	test.ExpectEquality(t, dsm.Entries[0].String(), ".byte $02")
	test.ExpectEquality(t, dsm.Entries[1].Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, dsm.Entries[1].String(), "NOP")
	test.ExpectEquality(t, dsm.Entries[2].Level, disassembly.EntryLevelData)
	test.ExpectEquality(t, dsm.Entries[2].String(), ".byte $a9")
}

func TestLabelsAndSymbols(t *testing.T) {
	// JSR $0606; LDA $fe; HALT; INX; BNE $0606 (offset -3); RTS
	dsm, err := disassembly.FromData(0x0600, []uint8{
		0x20, 0x06, 0x06, 0xa5, 0xfe, 0xff, 0xe8, 0xd0, 0xfd, 0x60,
	})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 6)
	test.ExpectEquality(t, dsm.Entries[0].String(), "JSR L0606")
	test.ExpectEquality(t, dsm.Entries[1].String(), "LDA RANDOM")
	test.ExpectEquality(t, dsm.Entries[3].Label, "L0606")
	test.ExpectEquality(t, dsm.Entries[4].String(), "BNE L0606")

	e, ok := dsm.Get(0x0606)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "INX")

	_, ok = dsm.Get(0x0607)
	test.ExpectSuccess(t, ok)
	_, ok = dsm.Get(0x0608)
	test.ExpectFailure(t, ok)

	w := &test.CompareWriter{}
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectSuccess(t, strings.Contains(w.String(), "L0606:\n  $0606  INX\n"))
}

func TestDemo(t *testing.T) {
	dsm, err := disassembly.FromLoader(cartridgeloader.NewDemoLoader())
	test.DemandSuccess(t, err)

	e, ok := dsm.Get(0x0600)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "JSR L0606")

	e, ok = dsm.Get(0x0735)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "HALT")
	test.ExpectEquality(t, e.Label, "L0735")

	for _, e := range dsm.Entries {
		test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded, e.Address)
	}
}

func TestTooLarge(t *testing.T) {
	_, err := disassembly.FromData(0x0600, make([]uint8, 0x0300))
	test.ExpectFailure(t, err)
}
