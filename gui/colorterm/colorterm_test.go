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

package colorterm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/snake6502/hardware/display"
	"github.com/jetsetilly/snake6502/hardware/input"
	"github.com/jetsetilly/snake6502/test"
)

func TestParseKeys(t *testing.T) {
	evs := parseKeys([]byte{27, '[', 'A', 27, '[', 'B', 27, '[', 'C', 27, '[', 'D'})
	test.DemandEquality(t, len(evs), 4)
	test.ExpectEquality(t, evs[0], input.Up)
	test.ExpectEquality(t, evs[1], input.Down)
	test.ExpectEquality(t, evs[2], input.Right)
	test.ExpectEquality(t, evs[3], input.Left)

	evs = parseKeys([]byte("wasdx"))
	test.DemandEquality(t, len(evs), 4)
	test.ExpectEquality(t, evs[0], input.Up)
	test.ExpectEquality(t, evs[1], input.Left)
	test.ExpectEquality(t, evs[2], input.Down)
	test.ExpectEquality(t, evs[3], input.Right)

	// escape on its own
	evs = parseKeys([]byte{27})
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0], input.Quit)

	evs = parseKeys([]byte("q"))
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0], input.Quit)
}

func TestPoll(t *testing.T) {
	ct := newColorTerm(&bytes.Buffer{})
	ct.keys <- []byte("w")
	ct.keys <- []byte{27, '[', 'D'}

	evs, err := ct.Poll()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0], input.Up)
	test.ExpectEquality(t, evs[1], input.Left)

	evs, err = ct.Poll()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(evs), 0)
}

func TestRender(t *testing.T) {
	out := &bytes.Buffer{}
	ct := newColorTerm(out)

	f := display.NewFrame()
	data := make([]uint8, display.Width*display.Height)
	data[0] = 3
	f.Update(data)

	test.DemandSuccess(t, ct.Render(f))

	s := out.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "\033[H"))

	// red background for the first cell
	test.ExpectSuccess(t, strings.Contains(s, "\033[41m  "))

	// one line per row
	test.ExpectEquality(t, strings.Count(s, "\r\n"), display.Height-1)
}
