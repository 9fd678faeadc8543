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

package hardware

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/cpu"
	"github.com/jetsetilly/snake6502/hardware/memory"
)

// State stores the machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		CPU: s.CPU.Snapshot(),
		Mem: s.Mem.Snapshot(),
	}
}

// Snapshot the state of the machine sub-systems.
func (mch *Machine) Snapshot() *State {
	return &State{
		CPU: mch.CPU.Snapshot(),
		Mem: mch.Mem.Snapshot(),
	}
}

// Plumb a previously snapshotted system. The display region is treated as
// having changed.
func (mch *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// copy the state so that the machine does not change what is stored in
	// the state
	mch.CPU = state.CPU.Snapshot()
	mch.Mem = state.Mem.Snapshot()

	mch.CPU.Plumb(mch.Mem)
	mch.Input.Plumb(mch.Mem)
	mch.Mem.SetDirty()
}

// number of bytes in each row of DumpMemory() output
const dumpRowLength = 16

// DumpMemory writes the contents of memory in the half open range [from, to)
// to the io.Writer. Each row is prefixed with the address of the first byte
// in the row.
func (mch *Machine) DumpMemory(w io.Writer, from uint16, to uint16) error {
	if int(to) > memory.Size {
		to = memory.Size
	}

	for a := from; a < to; a++ {
		if (a-from)%dumpRowLength == 0 {
			if a != from {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return curated.Errorf("machine: %v", err)
				}
			}
			if _, err := fmt.Fprintf(w, "%04x:", a); err != nil {
				return curated.Errorf("machine: %v", err)
			}
		}

		v, err := mch.Mem.Peek(a)
		if err != nil {
			return curated.Errorf("machine: %v", err)
		}

		if _, err := fmt.Fprintf(w, " %02x", v); err != nil {
			return curated.Errorf("machine: %v", err)
		}
	}

	if to > from {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return curated.Errorf("machine: %v", err)
		}
	}

	return nil
}

// DumpStructure writes a graphviz description of the CPU to the io.Writer.
// The CPU's view of memory is included.
func (mch *Machine) DumpStructure(w io.Writer) {
	memviz.Map(w, mch.CPU)
}
