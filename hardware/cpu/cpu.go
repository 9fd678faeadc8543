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
	"fmt"

	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/cpu/execution"
	"github.com/jetsetilly/snake6502/hardware/cpu/registers"
	"github.com/jetsetilly/snake6502/hardware/memory"
	"github.com/jetsetilly/snake6502/hardware/memory/bus"
)

// CPU implements the MOS 6502.
type CPU struct {
	PC            uint16
	InstructionPC uint16

	A  uint8
	X  uint8
	Y  uint8
	SP uint8

	Status registers.Status

	mem bus.CPUBus

	// the result of the most recent call to ExecuteInstruction()
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem bus.CPUBus) *CPU {
	mc := &CPU{
		mem: mem,
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new CPUBus into the CPU.
func (mc *CPU) Plumb(mem bus.CPUBus) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x %s=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. The stack pointer is set to the top of
// the stack window.
func (mc *CPU) Reset() {
	mc.PC = 0
	mc.InstructionPC = 0
	mc.A = 0
	mc.X = 0
	mc.Y = 0
	mc.SP = 0xff
	mc.Status.Reset()
	mc.LastResult.Reset()
}

// LoadPC sets the program counter to the address. The address must lie inside
// memory.
func (mc *CPU) LoadPC(address uint16) error {
	return mc.jump(address)
}

// advance commits the program counter, as advanced by the decoding of the
// current instruction, as the start of the next instruction.
func (mc *CPU) advance() {
	mc.InstructionPC = mc.PC
}

// jump transfers control to the address.
func (mc *CPU) jump(address uint16) error {
	if int(address) >= memory.Size {
		return curated.Errorf(InvalidTarget, address)
	}
	mc.PC = address
	mc.InstructionPC = address
	return nil
}

func (mc *CPU) loadA(v uint8) {
	mc.A = v
	mc.Status.SetZeroNegative(v)
}

func (mc *CPU) loadX(v uint8) {
	mc.X = v
	mc.Status.SetZeroNegative(v)
}

func (mc *CPU) loadY(v uint8) {
	mc.Y = v
	mc.Status.SetZeroNegative(v)
}

// ExecuteInstruction decodes and executes the instruction at the program
// counter. The LastResult field is updated on success.
//
// Errors from memory, the stack or the resolution of an address are returned
// as is. The state of the CPU after an error is undefined.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()

	ins, err := mc.Decode()
	if err != nil {
		return err
	}

	if ins == nil {
		mc.LastResult.Status = execution.Ended
		mc.LastResult.Final = true
		return nil
	}

	mc.LastResult.Instruction = *ins

	status, err := mc.Execute(ins)
	if err != nil {
		return err
	}

	mc.LastResult.Status = status
	mc.LastResult.Final = true

	return nil
}
