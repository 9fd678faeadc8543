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

package hardware

import (
	"github.com/jetsetilly/snake6502/cartridgeloader"
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/govern"
	"github.com/jetsetilly/snake6502/hardware/cpu"
	"github.com/jetsetilly/snake6502/hardware/display"
	"github.com/jetsetilly/snake6502/hardware/input"
	"github.com/jetsetilly/snake6502/hardware/memory"
	"github.com/jetsetilly/snake6502/hardware/memory/addresses"
	"github.com/jetsetilly/snake6502/hardware/preferences"
	"github.com/jetsetilly/snake6502/logger"
	"github.com/jetsetilly/snake6502/performance/limiter"
	"github.com/jetsetilly/snake6502/prefs"
	"github.com/jetsetilly/snake6502/random"
)

// Machine is the main container for the emulated components.
type Machine struct {
	Prefs *preferences.Preferences

	CPU   *cpu.CPU
	Mem   *memory.Memory
	Input *input.Input
	Frame *display.Frame

	// the number of instructions executed since the most recent reset
	Instructions int

	state   govern.State
	limiter *limiter.Limiter

	// the frontend. nil if no frontend is attached
	renderer display.Renderer

	// log every instruction
	trace bool
}

// NewMachine creates a new machine and everything associated with the
// hardware. If p is nil then the default preferences are used. If noise is
// nil then a random source seeded with the seed preference is used.
func NewMachine(p *preferences.Preferences, noise memory.Noise) *Machine {
	if p == nil {
		p = preferences.Defaults()
	}

	if noise == nil {
		noise = random.NewRandom(int64(p.Seed.Get().(int)))
	}

	mch := &Machine{
		Prefs: p,
		Frame: display.NewFrame(),
	}

	mch.Mem = memory.NewMemory(noise)
	mch.CPU = cpu.NewCPU(mch.Mem)
	mch.Input = input.NewInput(mch.Mem, mch.Stop)
	mch.limiter = limiter.NewLimiter(p.CycleDuration())

	p.ClockMicros.SetHookPost(func(_ prefs.Value) error {
		mch.limiter.SetLimit(mch.Prefs.CycleDuration())
		return nil
	})

	return mch
}

// AttachFrontend sets the Renderer and the input Source used by Boot(). Either
// can be nil.
func (mch *Machine) AttachFrontend(renderer display.Renderer, source input.Source) {
	mch.renderer = renderer
	mch.Input.AttachSource(source)

	// make sure the frontend is drawn at least once
	mch.Mem.SetDirty()
}

// SetTrace enables or disables the logging of every instruction.
func (mch *Machine) SetTrace(trace bool) {
	mch.trace = trace
}

// State returns the current state of the emulation.
func (mch *Machine) State() govern.State {
	return mch.state
}

// Stop the emulation. The run loop will end after the current instruction.
func (mch *Machine) Stop() {
	mch.state = govern.Ending
}

// Reset the machine. Registers, memory and the display frame are zeroed. The
// dirty flag is raised so that the cleared display is rendered.
func (mch *Machine) Reset() {
	mch.CPU.Reset()
	mch.Mem.Clear()
	mch.Frame.Clear()
	mch.Instructions = 0
	mch.limiter.Overruns = 0
	mch.state = govern.Initialising
}

// Load copies the data into memory at origin.
func (mch *Machine) Load(origin uint16, data []uint8) error {
	if err := mch.Mem.Load(origin, data); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	return nil
}

// LoadJmp copies the data into memory at origin and sets the program counter
// to the origin.
func (mch *Machine) LoadJmp(origin uint16, data []uint8) error {
	if err := mch.Load(origin, data); err != nil {
		return err
	}
	if err := mch.CPU.LoadPC(origin); err != nil {
		return curated.Errorf("machine: %v", err)
	}
	return nil
}

// AttachCartridge resets the machine and loads the cartridge data at the
// program origin.
func (mch *Machine) AttachCartridge(cl *cartridgeloader.Loader) error {
	if err := cl.Load(); err != nil {
		return curated.Errorf("machine: %v", err)
	}

	mch.Reset()

	if err := mch.LoadJmp(addresses.ProgramOrigin, cl.Data); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "machine", "attached %s (%d bytes) [%s]", cl.ShortName(), len(cl.Data), cl.Hash)

	return nil
}
