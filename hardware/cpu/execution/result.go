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

package execution

import (
	"fmt"

	"github.com/jetsetilly/snake6502/hardware/cpu/instructions"
)

// Status indicates how the run loop should proceed after an instruction.
type Status int

// List of valid Status values.
const (
	// execution can continue with the next instruction
	Continue Status = iota

	// the halt instruction has been executed
	Halted

	// there are no more instructions in memory
	Ended
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Halted:
		return "halted"
	case Ended:
		return "ended"
	}
	return "unknown status"
}

// Result records the outcome of a single call to CPU.ExecuteInstruction().
type Result struct {
	instructions.Instruction

	Status Status

	// whether the instruction caused a change of flow. ie. a jump or a
	// taken branch
	Jumped bool

	// whether the instruction has completed execution
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Status == Ended {
		return "end of program"
	}
	if r.Defn == nil {
		return "no instruction"
	}
	return fmt.Sprintf("%#04x %s", r.Address, r.Instruction)
}
