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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/snake6502/cartridgeloader"
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/cpu"
	"github.com/jetsetilly/snake6502/hardware/memory"
	"github.com/jetsetilly/snake6502/hardware/memory/addresses"
)

// Disassembly represents the annotated disassembly of a program.
type Disassembly struct {
	// the address of the first byte of the program
	Origin uint16

	// entries in address order
	Entries []*Entry

	// entries indexed by address
	byAddress map[uint16]*Entry
}

// FromLoader disassembles the program in the Loader. The program is assumed to
// start at the program origin.
func FromLoader(cl cartridgeloader.Loader) (*Disassembly, error) {
	if err := cl.Load(); err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}
	return FromData(addresses.ProgramOrigin, cl.Data)
}

// FromData disassembles the data as though it had been loaded at the origin.
func FromData(origin uint16, data []uint8) (*Disassembly, error) {
	// memory without a noise source so that the random address reads as
	// regular memory
	mem := memory.NewMemory(nil)
	if err := mem.Load(origin, data); err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	dsm := &Disassembly{
		Origin:    origin,
		byAddress: make(map[uint16]*Entry),
	}

	mc := cpu.NewCPU(mem)
	end := int(origin) + len(data)

	for a := origin; int(a) < end; {
		if err := mc.LoadPC(a); err != nil {
			return nil, curated.Errorf("disassembly: %v", err)
		}

		ins, err := mc.Decode()
		if err != nil {
			if !curated.Is(err, cpu.UnknownOpcode) && !curated.Is(err, cpu.TruncatedOperand) {
				return nil, curated.Errorf("disassembly: %v", err)
			}
			dsm.add(newDataEntry(a, data[int(a)-int(origin)]))
			a++
			continue
		}

		if ins == nil {
			break
		}

		// operand extends past the end of the program
		if int(ins.Address)+ins.Defn.Bytes > end {
			dsm.add(newDataEntry(a, data[int(a)-int(origin)]))
			a++
			continue
		}

		dsm.add(newEntry(*ins))
		a = ins.Next()
	}

	dsm.annotate()

	return dsm, nil
}

func (dsm *Disassembly) add(e *Entry) {
	dsm.Entries = append(dsm.Entries, e)
	dsm.byAddress[e.Instruction.Address] = e
}

// annotate adds labels to the targets of control flow instructions and
// replaces operands with labels and symbols.
func (dsm *Disassembly) annotate() {
	for _, e := range dsm.Entries {
		if t, ok := e.target(); ok {
			if te, ok := dsm.byAddress[t]; ok {
				te.Label = fmt.Sprintf("L%04x", t)
			}
		}
	}

	for _, e := range dsm.Entries {
		if t, ok := e.target(); ok {
			if te, ok := dsm.byAddress[t]; ok {
				e.Operand = te.Label
			}
			continue
		}

		if a, ok := e.address(); ok {
			if s, ok := addresses.Symbols[a]; ok {
				e.Operand = s
			}
		}
	}
}

// Get returns the Entry that starts at the address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.byAddress[address]
	return e, ok
}
