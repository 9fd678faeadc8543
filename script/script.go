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

package script

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/govern"
	"github.com/jetsetilly/snake6502/hardware"
	"github.com/jetsetilly/snake6502/hardware/cpu/execution"
	"github.com/jetsetilly/snake6502/hardware/cpu/registers"
	"github.com/jetsetilly/snake6502/hardware/memory/addresses"
	"github.com/jetsetilly/snake6502/logger"
)

// DefaultRunLimit is the maximum number of instructions executed by the run()
// function if no limit is given.
const DefaultRunLimit = 1000000

// Script is a Lua interpreter attached to a machine.
type Script struct {
	L   *lua.LState
	mch *hardware.Machine
	out io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the print() and dump() functions is written to out.
func NewScript(mch *hardware.Machine, out io.Writer) *Script {
	scr := &Script{
		L:   lua.NewState(),
		mch: mch,
		out: out,
	}

	funcs := map[string]lua.LGFunction{
		"peek":  scr.peek,
		"poke":  scr.poke,
		"step":  scr.step,
		"run":   scr.run,
		"reg":   scr.reg,
		"flag":  scr.flag,
		"load":  scr.load,
		"reset": scr.reset,
		"dump":  scr.dump,
		"print": scr.print,
	}
	for n, f := range funcs {
		scr.L.SetGlobal(n, scr.L.NewFunction(f))
	}

	return scr
}

// Close the Lua interpreter.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunString executes the Lua source.
func (scr *Script) RunString(src string) error {
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// RunFile executes the Lua source in the named file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

func (scr *Script) checkAddress(n int) uint16 {
	a := scr.L.CheckInt(n)
	if a < 0 || a > 0xffff {
		scr.L.ArgError(n, "address out of range")
	}
	return uint16(a)
}

func (scr *Script) checkByte(n int) uint8 {
	v := scr.L.CheckInt(n)
	if v < 0 || v > 0xff {
		scr.L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.mch.Mem.Peek(scr.checkAddress(1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	if err := scr.mch.Mem.Write(scr.checkAddress(1), scr.checkByte(2)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)

	status := execution.Continue
	for i := 0; i < n && status == execution.Continue; i++ {
		var err error
		status, err = scr.mch.Step()
		if err != nil {
			L.RaiseError("%v", err)
		}
	}

	L.Push(lua.LString(status.String()))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	limit := L.OptInt(1, DefaultRunLimit)

	err := scr.mch.Run(func() (govern.State, error) {
		limit--
		if limit <= 0 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		L.RaiseError("%v", err)
	}

	L.Push(lua.LString(scr.mch.State().String()))
	return 1
}

func (scr *Script) reg(L *lua.LState) int {
	name := strings.ToLower(L.CheckString(1))
	mc := scr.mch.CPU

	if L.GetTop() >= 2 {
		switch name {
		case "a":
			mc.A = scr.checkByte(2)
		case "x":
			mc.X = scr.checkByte(2)
		case "y":
			mc.Y = scr.checkByte(2)
		case "sp":
			mc.SP = scr.checkByte(2)
		case "pc":
			if err := mc.LoadPC(scr.checkAddress(2)); err != nil {
				L.RaiseError("%v", err)
			}
		default:
			L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
		}
		return 0
	}

	var v int
	switch name {
	case "a":
		v = int(mc.A)
	case "x":
		v = int(mc.X)
	case "y":
		v = int(mc.Y)
	case "sp":
		v = int(mc.SP)
	case "pc":
		v = int(mc.PC)
	case "sr":
		v = int(mc.Status.Value())
	default:
		L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) flag(L *lua.LState) int {
	name := strings.ToLower(L.CheckString(1))

	var f registers.Flag
	switch name {
	case "c", "carry":
		f = registers.Carry
	case "z", "zero":
		f = registers.Zero
	case "i", "interruptdisable":
		f = registers.InterruptDisable
	case "d", "decimal":
		f = registers.Decimal
	case "b", "break":
		f = registers.Break
	case "v", "overflow":
		f = registers.Overflow
	case "n", "negative":
		f = registers.Negative
	default:
		L.ArgError(1, fmt.Sprintf("unknown flag (%s)", name))
	}

	if L.GetTop() >= 2 {
		scr.mch.CPU.Status.Set(f, L.CheckBool(2))
		return 0
	}

	L.Push(lua.LBool(scr.mch.CPU.Status.Is(f)))
	return 1
}

func (scr *Script) load(L *lua.LState) int {
	tbl := L.CheckTable(1)
	origin := addresses.ProgramOrigin
	if L.GetTop() >= 2 {
		origin = scr.checkAddress(2)
	}

	data := make([]uint8, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		n, ok := tbl.RawGetInt(i).(lua.LNumber)
		if !ok || n < 0 || n > 0xff {
			L.ArgError(1, fmt.Sprintf("invalid byte at index %d", i))
		}
		data = append(data, uint8(n))
	}

	if err := scr.mch.LoadJmp(origin, data); err != nil {
		L.RaiseError("%v", err)
	}

	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.mch.Reset()
	return 0
}

func (scr *Script) dump(L *lua.LState) int {
	from := scr.checkAddress(1)
	to := scr.checkAddress(2)
	if err := scr.mch.DumpMemory(scr.out, from, to); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	if _, err := fmt.Fprintln(scr.out, strings.Join(s, "\t")); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}
