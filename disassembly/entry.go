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
	"strings"

	"github.com/jetsetilly/snake6502/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel values.
//
// Data entries are single bytes that could not be decoded as an instruction,
// either because the opcode is unknown or because the operand extends past
// the end of the program.
const (
	EntryLevelData EntryLevel = iota
	EntryLevelDecoded
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// the decoded instruction. the Defn field is nil for data entries
	Instruction instructions.Instruction

	// string representations of the instruction
	Label    string
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

func newDataEntry(address uint16, v uint8) *Entry {
	return &Entry{
		Level: EntryLevelData,
		Instruction: instructions.Instruction{
			Address: address,
			Data:    []uint8{v},
		},
		Bytecode: fmt.Sprintf("%02x", v),
		Address:  fmt.Sprintf("$%04x", address),
		Operator: ".byte",
		Operand:  fmt.Sprintf("$%02x", v),
	}
}

func newEntry(ins instructions.Instruction) *Entry {
	b := ins.Bytes()
	bc := make([]string, len(b))
	for i := range b {
		bc[i] = fmt.Sprintf("%02x", b[i])
	}

	return &Entry{
		Level:       EntryLevelDecoded,
		Instruction: ins,
		Bytecode:    strings.Join(bc, " "),
		Address:     fmt.Sprintf("$%04x", ins.Address),
		Operator:    ins.Defn.Operator.String(),
		Operand:     ins.OperandString(),
	}
}

// target returns the address the instruction transfers control to, if the
// address is known from the instruction alone.
func (e *Entry) target() (uint16, bool) {
	if e.Level != EntryLevelDecoded {
		return 0, false
	}

	ins := e.Instruction
	switch ins.Defn.Operator {
	case instructions.Jmp, instructions.Jsr:
		if ins.Defn.Mode == instructions.Absolute && ins.Defn.Index == instructions.IndexNone {
			return ins.Operand(), true
		}
	}

	if ins.Defn.IsBranch() {
		return ins.BranchTarget(), true
	}

	return 0, false
}

// address returns the address referred to by the operand of instructions that
// read from or write to memory directly.
func (e *Entry) address() (uint16, bool) {
	if e.Level != EntryLevelDecoded {
		return 0, false
	}

	ins := e.Instruction
	if ins.Defn.Index != instructions.IndexNone {
		return 0, false
	}

	switch ins.Defn.Mode {
	case instructions.ZeroPage, instructions.Absolute:
		return ins.Operand(), true
	}

	return 0, false
}
