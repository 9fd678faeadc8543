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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/snake6502/cartridgeloader"
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/preferences"
	"github.com/jetsetilly/snake6502/performance"
	"github.com/jetsetilly/snake6502/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,foo")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestCalcRate(t *testing.T) {
	ips, accuracy := performance.CalcRate(20000, 2.0, 100*time.Microsecond)
	test.ExpectEquality(t, ips, 10000.0)
	test.ExpectEquality(t, accuracy, 100.0)

	ips, accuracy = performance.CalcRate(20000, 2.0, 0)
	test.ExpectEquality(t, ips, 10000.0)
	test.ExpectEquality(t, accuracy, 0.0)

	ips, _ = performance.CalcRate(20000, 0, 0)
	test.ExpectEquality(t, ips, 0.0)
}

func TestCheck(t *testing.T) {
	p := preferences.Defaults()
	test.DemandSuccess(t, p.Seed.Set(1))

	s := &strings.Builder{}
	err := performance.Check(s, performance.ProfileNone, cartridgeloader.NewDemoLoader(), p, "100ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(s.String(), "instructions per second"))

	err = performance.Check(s, performance.ProfileNone, cartridgeloader.NewDemoLoader(), p, "foo")
	test.ExpectFailure(t, err)
}
