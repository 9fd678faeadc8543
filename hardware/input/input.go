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

package input

import (
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/memory/addresses"
	"github.com/jetsetilly/snake6502/hardware/memory/bus"
)

// Sentinal errors.
const (
	QueueFull    = "input: event queue is full: input dropped"
	UnknownEvent = "input: unknown event (%v)"
)

// size of the pushed event queue
const queueLength = 64

// Input handles all forms of input into the emulation.
type Input struct {
	mem    bus.DebugBus
	source Source

	// called when a Quit event is handled
	stop func()

	// events pushed onto the input queue
	pushed chan Event

	// the most recent event that was handled
	LastEvent Event
}

// NewInput is the preferred method of initialisation for the Input type. The
// stop function is called whenever a Quit event is handled and can be nil.
func NewInput(mem bus.DebugBus, stop func()) *Input {
	return &Input{
		mem:    mem,
		stop:   stop,
		pushed: make(chan Event, queueLength),
	}
}

// Plumb a new memory instance into the Input.
func (inp *Input) Plumb(mem bus.DebugBus) {
	inp.mem = mem
}

// AttachSource sets the Source to be polled by Process(). A nil value
// removes any existing Source.
func (inp *Input) AttachSource(source Source) {
	inp.source = source
}

// Push an Event onto the queue. Will drop the event and return an error if
// the queue is full. Safe to call from any goroutine.
func (inp *Input) Push(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull)
	}
	return nil
}

// Handle a single Event. Direction events write the corresponding key value
// to the LastKey address.
func (inp *Input) Handle(ev Event) error {
	var key uint8

	switch ev {
	case NoEvent:
		return nil
	case Up:
		key = addresses.KeyUp
	case Down:
		key = addresses.KeyDown
	case Left:
		key = addresses.KeyLeft
	case Right:
		key = addresses.KeyRight
	case Quit:
		inp.LastEvent = ev
		if inp.stop != nil {
			inp.stop()
		}
		return nil
	default:
		return curated.Errorf(UnknownEvent, ev)
	}

	inp.LastEvent = ev
	return inp.mem.Poke(addresses.LastKey, key)
}

// Process handles all pushed events and then polls the attached Source.
func (inp *Input) Process() error {
	if err := inp.handlePushed(); err != nil {
		return err
	}

	if inp.source == nil {
		return nil
	}

	evs, err := inp.source.Poll()
	if err != nil {
		return err
	}
	for _, ev := range evs {
		if err := inp.Handle(ev); err != nil {
			return err
		}
	}

	return nil
}

func (inp *Input) handlePushed() error {
	for {
		select {
		case ev := <-inp.pushed:
			if err := inp.Handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
