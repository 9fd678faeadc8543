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

package memory

import (
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/memory/addresses"
)

// Size of the memory in bytes.
const Size = 2048

// Sentinal errors raised by the memory package.
const (
	OutOfBounds        = "memory: address out of bounds (%#04x)"
	InsufficientMemory = "memory: insufficient memory to load %d bytes at %#04x"
)

// Noise is the source of values for the random address.
type Noise interface {
	Noise() uint8
}

// Memory is the complete address space of the machine.
type Memory struct {
	data  [Size]uint8
	noise Noise
	dirty bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(noise Noise) *Memory {
	return &Memory{
		noise: noise,
	}
}

// SetNoise changes the source of values for the random address.
func (mem *Memory) SetNoise(noise Noise) {
	mem.noise = noise
}

// Clear zeroes every byte of memory. The dirty flag is raised.
func (mem *Memory) Clear() {
	clear(mem.data[:])
	mem.dirty = true
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address == addresses.Random && mem.noise != nil {
		return mem.noise.Noise(), nil
	}
	if int(address) >= Size {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return mem.data[address], nil
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(OutOfBounds, address)
	}
	if addresses.InDisplay(address) && mem.data[address] != data {
		mem.dirty = true
	}
	mem.data[address] = data
	return nil
}

// Read16 implements the bus.CPUBus interface. The value is read little-endian.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}

	if address == 0xffff {
		return 0, curated.Errorf(OutOfBounds, uint32(address)+1)
	}

	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

// Peek implements the bus.DebugBus interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return mem.data[address], nil
}

// Poke implements the bus.DebugBus interface.
func (mem *Memory) Poke(address uint16, value uint8) error {
	if int(address) >= Size {
		return curated.Errorf(OutOfBounds, address)
	}
	mem.data[address] = value
	return nil
}

// Load copies data into memory starting at origin. The display region is not
// treated specially but the dirty flag is raised.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) >= Size {
		return curated.Errorf(InsufficientMemory, len(data), origin)
	}
	copy(mem.data[origin:], data)
	mem.dirty = true
	return nil
}

// Dirty returns true if the display region has changed since the last call to
// ClearDirty().
func (mem *Memory) Dirty() bool {
	return mem.dirty
}

// SetDirty forces the dirty flag to be raised.
func (mem *Memory) SetDirty() {
	mem.dirty = true
}

// ClearDirty lowers the dirty flag.
func (mem *Memory) ClearDirty() {
	mem.dirty = false
}

// Display returns the display region of memory. The returned slice shares the
// underlying memory and must not be retained.
func (mem *Memory) Display() []uint8 {
	return mem.data[addresses.DisplayOrigin : addresses.DisplayMemtop+1]
}

// Snapshot creates a copy of the memory in its current state. The noise
// source is shared with the copy.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}
