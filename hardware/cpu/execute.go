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
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/cpu/execution"
	"github.com/jetsetilly/snake6502/hardware/cpu/instructions"
	"github.com/jetsetilly/snake6502/hardware/cpu/registers"
	"github.com/jetsetilly/snake6502/hardware/memory/addresses"
)

// Execute applies the effect of a decoded instruction. The instruction should
// have been returned by the most recent call to Decode().
//
// The halt instruction returns the Halted status and leaves the CPU
// untouched. The Jumped field of LastResult is updated.
func (mc *CPU) Execute(ins *instructions.Instruction) (execution.Status, error) {
	if ins.Defn.Operator == instructions.Halt {
		return execution.Halted, nil
	}

	jumped, err := mc.execute(ins)
	if err != nil {
		return execution.Continue, err
	}
	mc.LastResult.Jumped = jumped

	if !jumped {
		mc.advance()
	}

	return execution.Continue, nil
}

// execute returns true if the instruction transferred control to a new
// address.
func (mc *CPU) execute(ins *instructions.Instruction) (bool, error) {
	switch ins.Defn.Operator {
	case instructions.Adc, instructions.And, instructions.Bit, instructions.Cmp,
		instructions.Cpx, instructions.Cpy, instructions.Eor, instructions.Lda,
		instructions.Ldx, instructions.Ldy, instructions.Ora, instructions.Sbc:
		v, err := mc.read(ins)
		if err != nil {
			return false, err
		}
		mc.alu(ins.Defn.Operator, v)

	case instructions.Sta:
		return false, mc.store(ins, mc.A)
	case instructions.Stx:
		return false, mc.store(ins, mc.X)
	case instructions.Sty:
		return false, mc.store(ins, mc.Y)

	case instructions.Asl:
		return false, mc.modify(ins, mc.asl)
	case instructions.Lsr:
		return false, mc.modify(ins, mc.lsr)
	case instructions.Rol:
		return false, mc.modify(ins, mc.rol)
	case instructions.Ror:
		return false, mc.modify(ins, mc.ror)
	case instructions.Inc:
		return false, mc.modify(ins, func(v uint8) uint8 { return v + 1 })
	case instructions.Dec:
		return false, mc.modify(ins, func(v uint8) uint8 { return v - 1 })

	case instructions.Bpl:
		return mc.branch(ins, !mc.Status.Negative())
	case instructions.Bmi:
		return mc.branch(ins, mc.Status.Negative())
	case instructions.Bvc:
		return mc.branch(ins, !mc.Status.Overflow())
	case instructions.Bvs:
		return mc.branch(ins, mc.Status.Overflow())
	case instructions.Bcc:
		return mc.branch(ins, !mc.Status.Carry())
	case instructions.Bcs:
		return mc.branch(ins, mc.Status.Carry())
	case instructions.Bne:
		return mc.branch(ins, !mc.Status.Zero())
	case instructions.Beq:
		return mc.branch(ins, mc.Status.Zero())

	case instructions.Jmp:
		address, err := mc.target(ins)
		if err != nil {
			return false, err
		}
		return true, mc.jump(address)

	case instructions.Jsr:
		address, err := mc.target(ins)
		if err != nil {
			return false, err
		}
		// the return address is the instruction following the JSR
		if err := mc.push16(mc.PC); err != nil {
			return false, err
		}
		return true, mc.jump(address)

	case instructions.Rts:
		address, err := mc.pop16()
		if err != nil {
			return false, err
		}
		return true, mc.jump(address)

	case instructions.Brk:
		if err := mc.push16(mc.PC); err != nil {
			return false, err
		}
		if err := mc.pushStatus(registers.Break); err != nil {
			return false, err
		}
		mc.Status.SetInterruptDisable(true)
		address, err := mc.mem.Read16(addresses.IRQ)
		if err != nil {
			return false, err
		}
		return true, mc.jump(address)

	case instructions.Rti:
		if err := mc.popStatus(); err != nil {
			return false, err
		}
		address, err := mc.pop16()
		if err != nil {
			return false, err
		}
		return true, mc.jump(address)

	case instructions.Clc:
		mc.Status.SetCarry(false)
	case instructions.Sec:
		mc.Status.SetCarry(true)
	case instructions.Cli:
		mc.Status.SetInterruptDisable(false)
	case instructions.Sei:
		mc.Status.SetInterruptDisable(true)
	case instructions.Clv:
		mc.Status.SetOverflow(false)
	case instructions.Cld:
		mc.Status.SetDecimal(false)
	case instructions.Sed:
		mc.Status.SetDecimal(true)

	case instructions.Tax:
		mc.loadX(mc.A)
	case instructions.Tay:
		mc.loadY(mc.A)
	case instructions.Txa:
		mc.loadA(mc.X)
	case instructions.Tya:
		mc.loadA(mc.Y)
	case instructions.Tsx:
		mc.loadX(mc.SP)
	case instructions.Txs:
		mc.SP = mc.X

	case instructions.Inx:
		mc.loadX(mc.X + 1)
	case instructions.Iny:
		mc.loadY(mc.Y + 1)
	case instructions.Dex:
		mc.loadX(mc.X - 1)
	case instructions.Dey:
		mc.loadY(mc.Y - 1)

	case instructions.Pha:
		return false, mc.push(mc.A)
	case instructions.Pla:
		v, err := mc.pop()
		if err != nil {
			return false, err
		}
		mc.loadA(v)
	case instructions.Php:
		return false, mc.pushStatus(registers.Break)
	case instructions.Plp:
		return false, mc.popStatus()

	case instructions.Nop:

	case instructions.Halt:
		// halt is dealt with by Execute()

	default:
		return false, curated.Errorf(Unimplemented, ins.Defn.Operator)
	}

	return false, nil
}

// alu performs the operations that take a value and affect the registers.
func (mc *CPU) alu(op instructions.Operator, v uint8) {
	switch op {
	case instructions.Adc:
		mc.adc(v)
	case instructions.Sbc:
		mc.sbc(v)
	case instructions.And:
		mc.loadA(mc.A & v)
	case instructions.Ora:
		mc.loadA(mc.A | v)
	case instructions.Eor:
		mc.loadA(mc.A ^ v)
	case instructions.Lda:
		mc.loadA(v)
	case instructions.Ldx:
		mc.loadX(v)
	case instructions.Ldy:
		mc.loadY(v)
	case instructions.Cmp:
		mc.compare(mc.A, v)
	case instructions.Cpx:
		mc.compare(mc.X, v)
	case instructions.Cpy:
		mc.compare(mc.Y, v)
	case instructions.Bit:
		mc.Status.SetZero(mc.A&v == 0)
		mc.Status.SetNegative(v&0x80 == 0x80)
		mc.Status.SetOverflow(v&0x40 == 0x40)
	}
}

func (mc *CPU) carryBit() uint8 {
	if mc.Status.Carry() {
		return 1
	}
	return 0
}

// adc adds the value and the carry bit in two stages. the carry flag is set if
// either stage overflows.
func (mc *CPU) adc(v uint8) {
	a := mc.A

	r := a + v
	carry := r < a

	rc := r + mc.carryBit()
	carry = carry || rc < r

	mc.loadA(rc)
	mc.Status.SetCarry(carry)

	sign := rc & 0x80
	mc.Status.SetOverflow(sign != v&0x80 && sign != a&0x80)
}

// sbc subtracts the value and the inverse of the carry bit in two stages. the
// carry flag is cleared if either stage borrows.
func (mc *CPU) sbc(v uint8) {
	a := mc.A
	borrow := 1 - mc.carryBit()

	r := a - v
	carry := v > a

	rc := r - borrow
	carry = carry || borrow > r

	mc.loadA(rc)
	mc.Status.SetCarry(!carry)

	sign := rc & 0x80
	mc.Status.SetOverflow(sign != a&0x80 && sign == v&0x80)
}

func (mc *CPU) compare(reg uint8, v uint8) {
	mc.Status.SetCarry(reg >= v)
	mc.Status.SetZero(reg == v)
	mc.Status.SetNegative((reg-v)&0x80 == 0x80)
}

func (mc *CPU) asl(v uint8) uint8 {
	mc.Status.SetCarry(v&0x80 == 0x80)
	return v << 1
}

func (mc *CPU) lsr(v uint8) uint8 {
	mc.Status.SetCarry(v&0x01 == 0x01)
	return v >> 1
}

func (mc *CPU) rol(v uint8) uint8 {
	c := mc.carryBit()
	mc.Status.SetCarry(v&0x80 == 0x80)
	return v<<1 | c
}

func (mc *CPU) ror(v uint8) uint8 {
	c := mc.carryBit() << 7
	mc.Status.SetCarry(v&0x01 == 0x01)
	return v>>1 | c
}

// modify applies the function to the accumulator or to memory depending on
// the addressing mode of the instruction. the zero and negative flags are set
// according to the result.
func (mc *CPU) modify(ins *instructions.Instruction, f func(uint8) uint8) error {
	if ins.Defn.Mode == instructions.Accumulator {
		mc.loadA(f(mc.A))
		return nil
	}

	address, err := mc.target(ins)
	if err != nil {
		return err
	}

	v, err := mc.mem.Read(address)
	if err != nil {
		return err
	}

	v = f(v)
	if err := mc.mem.Write(address, v); err != nil {
		return err
	}
	mc.Status.SetZeroNegative(v)

	return nil
}

func (mc *CPU) store(ins *instructions.Instruction, v uint8) error {
	address, err := mc.target(ins)
	if err != nil {
		return err
	}
	return mc.mem.Write(address, v)
}

// branch jumps to the resolved address if the condition is true.
func (mc *CPU) branch(ins *instructions.Instruction, condition bool) (bool, error) {
	if !condition {
		return false, nil
	}
	address, err := mc.target(ins)
	if err != nil {
		return false, err
	}
	return true, mc.jump(address)
}
