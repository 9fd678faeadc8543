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
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/govern"
	"github.com/jetsetilly/snake6502/hardware/cpu/execution"
	"github.com/jetsetilly/snake6502/logger"
)

// Step executes a single instruction. The returned status is Halted if the
// instruction was a halt instruction and Ended if the program counter has run
// off the end of memory.
//
// The state of the machine is updated accordingly but a Running state is not
// entered. Step() does not render the display or process input.
func (mch *Machine) Step() (execution.Status, error) {
	if err := mch.CPU.ExecuteInstruction(); err != nil {
		return execution.Continue, curated.Errorf("machine: %v", err)
	}

	res := mch.CPU.LastResult
	mch.Instructions++

	if mch.trace {
		logger.Log(logger.Allow, "trace", res.String())
		logger.Log(logger.Allow, "trace", mch.CPU.String())
	}

	switch res.Status {
	case execution.Halted:
		mch.state = govern.Halted
		logger.Logf(logger.Allow, "machine", "halted at %#04x after %d instructions", res.Address, mch.Instructions)
	case execution.Ended:
		mch.state = govern.Ending
		logger.Logf(logger.Allow, "machine", "end of memory after %d instructions", mch.Instructions)
	}

	return res.Status, nil
}

// Render updates the display frame and sends it to the attached Renderer, but
// only if the display region of memory has changed since the last render.
func (mch *Machine) Render() error {
	if !mch.Mem.Dirty() {
		return nil
	}

	mch.Frame.Update(mch.Mem.Display())

	if mch.renderer != nil {
		if err := mch.renderer.Render(mch.Frame); err != nil {
			return curated.Errorf("machine: %v", err)
		}
	}

	mch.Mem.ClearDirty()

	return nil
}
