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
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Status == Ended {
		if r.Defn != nil {
			return curated.Errorf("cpu: instruction recorded at end of program")
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: no instruction definition in result")
	}

	// byte count
	if len(r.Data)+1 != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", len(r.Data)+1, r.Defn.Bytes)
	}

	switch r.Status {
	case Halted:
		if r.Defn.Operator != instructions.Halt {
			return curated.Errorf("cpu: %s instruction reported as halted", r.Defn.Operator)
		}
	case Continue:
		if r.Defn.Operator == instructions.Halt {
			return curated.Errorf("cpu: halt instruction did not stop execution")
		}
	}

	// only flow control instructions can cause a jump
	if r.Jumped {
		switch r.Defn.Effect {
		case instructions.Flow, instructions.Subroutine, instructions.Interrupt:
		default:
			return curated.Errorf("cpu: %s instruction should not change the flow of the program", r.Defn.Operator)
		}
	}

	return nil
}
