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

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/snake6502/hardware"
	"github.com/jetsetilly/snake6502/hardware/preferences"
	"github.com/jetsetilly/snake6502/random"
	"github.com/jetsetilly/snake6502/script"
	"github.com/jetsetilly/snake6502/test"
)

func newScript(t *testing.T) (*script.Script, *hardware.Machine, *test.CompareWriter) {
	t.Helper()
	p := preferences.Defaults()
	test.DemandSuccess(t, p.ClockMicros.Set(0))
	mch := hardware.NewMachine(p, random.NewSequence(5))
	w := &test.CompareWriter{}
	scr := script.NewScript(mch, w)
	t.Cleanup(scr.Close)
	return scr, mch, w
}

func TestPeekPoke(t *testing.T) {
	scr, mch, w := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		poke(0x10, 0x42)
		print(peek(0x10))
	`))
	test.ExpectSuccess(t, w.Compare("66\n"))

	v, err := mch.Mem.Peek(0x10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	// out of bounds
	test.ExpectFailure(t, scr.RunString(`peek(0x0800)`))
	test.ExpectFailure(t, scr.RunString(`poke(0x10, 256)`))
}

func TestStep(t *testing.T) {
	scr, mch, w := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		load({0xa9, 0x05, 0x69, 0x03, 0xff})
		print(step())
		print(reg("a"))
		print(step(10))
		print(reg("a"), flag("c"), flag("z"))
	`))
	test.ExpectSuccess(t, w.Compare("continue\n5\nhalted\n8\tfalse\tfalse\n"))
	test.ExpectEquality(t, mch.CPU.A, uint8(0x08))
}

func TestRun(t *testing.T) {
	scr, _, w := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		load({0xa9, 0x00, 0xff})
		print(run())
		print(flag("zero"))
		load({0x4c, 0x00, 0x06})
		print(run(100))
	`))
	test.ExpectSuccess(t, w.Compare("Halted\ntrue\nEnding\n"))
}

func TestRegistersAndFlags(t *testing.T) {
	scr, mch, _ := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		reg("x", 0x12)
		reg("pc", 0x0700)
		flag("n", true)
		flag("c", true)
		flag("c", false)
	`))
	test.ExpectEquality(t, mch.CPU.X, uint8(0x12))
	test.ExpectEquality(t, mch.CPU.PC, uint16(0x0700))
	test.ExpectSuccess(t, mch.CPU.Status.Negative())
	test.ExpectFailure(t, mch.CPU.Status.Carry())

	test.ExpectFailure(t, scr.RunString(`reg("q")`))
	test.ExpectFailure(t, scr.RunString(`flag("q")`))
	test.ExpectFailure(t, scr.RunString(`reg("pc", 0x0800)`))
}

func TestDumpAndReset(t *testing.T) {
	scr, mch, w := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		load({0xa9, 0x05}, 0x0010)
		dump(0x0010, 0x0012)
		reset()
	`))
	test.ExpectSuccess(t, w.Compare("0010: a9 05\n"))
	test.ExpectEquality(t, mch.CPU.PC, uint16(0))

	v, err := mch.Mem.Peek(0x10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))
}

func TestErrorsAreCatchable(t *testing.T) {
	scr, _, w := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		load({0x02})
		local ok, err = pcall(step)
		print(ok)
	`))
	test.ExpectSuccess(t, w.Compare("false\n"))
}

func TestRunFile(t *testing.T) {
	scr, _, w := newScript(t)

	pth := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(pth, []byte(`print("hello")`), 0o644))
	test.DemandSuccess(t, scr.RunFile(pth))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "hello"))

	test.ExpectFailure(t, scr.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}
