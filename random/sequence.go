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

package random

// Sequence returns values from a fixed list, wrapping back to the start of the
// list when it has been exhausted.
type Sequence struct {
	values []uint8
	idx    int
}

// NewSequence is the preferred method of initialisation for the Sequence type.
// An empty list will cause Noise() to always return NoiseMin.
func NewSequence(values ...uint8) *Sequence {
	return &Sequence{values: values}
}

// Noise returns the next value in the sequence.
func (seq *Sequence) Noise() uint8 {
	if len(seq.values) == 0 {
		return NoiseMin
	}
	v := seq.values[seq.idx]
	seq.idx = (seq.idx + 1) % len(seq.values)
	return v
}
