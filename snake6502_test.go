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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/snake6502/modalflag"
	"github.com/jetsetilly/snake6502/test"
)

func parseMode(t *testing.T, w *test.CompareWriter, args ...string) *modalflag.Modes {
	t.Helper()
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "SCRIPT", "PERFORMANCE")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	return md
}

func TestDisasmMode(t *testing.T) {
	w := &test.CompareWriter{}
	md := parseMode(t, w, "disasm", "-bytecode")
	test.ExpectEquality(t, md.Mode(), "DISASM")
	test.DemandSuccess(t, disasm(md))

	out := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(out, "  $0600"), out)
	test.ExpectSuccess(t, strings.Contains(out, "JSR"))
}

func TestDisasmTooManyArgs(t *testing.T) {
	w := &test.CompareWriter{}
	md := parseMode(t, w, "disasm", "a.bin", "b.bin")
	test.ExpectFailure(t, disasm(md))
}

func TestScriptMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.lua")
	src := "load({0xa9, 0x2a, 0xff}, 0x600)\nrun()\nprint(reg(\"a\"))\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(src), 0o600))

	w := &test.CompareWriter{}
	md := parseMode(t, w, "script", fn)
	test.DemandSuccess(t, runScript(md))
	test.ExpectSuccess(t, w.Compare("42\n"), w.String())
}

func TestScriptModeNoScript(t *testing.T) {
	w := &test.CompareWriter{}
	md := parseMode(t, w, "script")
	test.ExpectFailure(t, runScript(md))
}

func TestPerformanceMode(t *testing.T) {
	w := &test.CompareWriter{}
	md := parseMode(t, w, "performance", "-duration", "100ms", "-c", "0")
	test.DemandSuccess(t, perform(md))
	test.ExpectSuccess(t, strings.Contains(w.String(), "instructions per second"), w.String())
}

func TestPerformanceBadProfile(t *testing.T) {
	w := &test.CompareWriter{}
	md := parseMode(t, w, "performance", "-profile", "gpu")
	test.ExpectFailure(t, perform(md))
}
