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

package input_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/input"
	"github.com/jetsetilly/snake6502/hardware/memory"
	"github.com/jetsetilly/snake6502/hardware/memory/addresses"
	"github.com/jetsetilly/snake6502/random"
	"github.com/jetsetilly/snake6502/test"
)

type source struct {
	events []input.Event
	err    error
}

func (s *source) Poll() ([]input.Event, error) {
	evs := s.events
	s.events = nil
	return evs, s.err
}

func lastKey(t *testing.T, mem *memory.Memory) uint8 {
	t.Helper()
	v, err := mem.Peek(addresses.LastKey)
	test.DemandSuccess(t, err)
	return v
}

func TestHandle(t *testing.T) {
	mem := memory.NewMemory(random.NewSequence(1))

	var stopped bool
	inp := input.NewInput(mem, func() { stopped = true })

	test.ExpectSuccess(t, inp.Handle(input.Up))
	test.ExpectEquality(t, lastKey(t, mem), addresses.KeyUp)
	test.ExpectSuccess(t, inp.Handle(input.Down))
	test.ExpectEquality(t, lastKey(t, mem), addresses.KeyDown)
	test.ExpectSuccess(t, inp.Handle(input.Left))
	test.ExpectEquality(t, lastKey(t, mem), addresses.KeyLeft)
	test.ExpectSuccess(t, inp.Handle(input.Right))
	test.ExpectEquality(t, lastKey(t, mem), addresses.KeyRight)

	// no event leaves memory unchanged
	test.ExpectSuccess(t, inp.Handle(input.NoEvent))
	test.ExpectEquality(t, lastKey(t, mem), addresses.KeyRight)

	test.ExpectFailure(t, stopped)
	test.ExpectSuccess(t, inp.Handle(input.Quit))
	test.ExpectSuccess(t, stopped)
	test.ExpectEquality(t, inp.LastEvent, input.Quit)

	err := inp.Handle(input.Event(99))
	test.ExpectSuccess(t, curated.Is(err, input.UnknownEvent))
}

func TestProcess(t *testing.T) {
	mem := memory.NewMemory(random.NewSequence(1))
	inp := input.NewInput(mem, nil)

	// nothing to do
	test.ExpectSuccess(t, inp.Process())

	src := &source{events: []input.Event{input.Left}}
	inp.AttachSource(src)

	// pushed events are handled before polled events
	test.ExpectSuccess(t, inp.Push(input.Up))
	test.ExpectSuccess(t, inp.Process())
	test.ExpectEquality(t, lastKey(t, mem), addresses.KeyLeft)

	// quit without a stop function is not an error
	test.ExpectSuccess(t, inp.Push(input.Quit))
	test.ExpectSuccess(t, inp.Process())

	src.err = fmt.Errorf("test error")
	test.ExpectFailure(t, inp.Process())
}

func TestQueueFull(t *testing.T) {
	mem := memory.NewMemory(random.NewSequence(1))
	inp := input.NewInput(mem, nil)

	var err error
	for i := 0; i < 100 && err == nil; i++ {
		err = inp.Push(input.Down)
	}
	test.ExpectSuccess(t, curated.Is(err, input.QueueFull))

	test.ExpectSuccess(t, inp.Process())
	test.ExpectSuccess(t, inp.Push(input.Down))
}
