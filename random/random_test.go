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

package random_test

import (
	"testing"

	"github.com/jetsetilly/snake6502/random"
	"github.com/jetsetilly/snake6502/test"
)

func TestNoiseRange(t *testing.T) {
	rnd := random.NewRandom(0)
	for i := 0; i < 10000; i++ {
		v := rnd.Noise()
		if v < random.NoiseMin || v >= random.NoiseMax {
			t.Fatalf("noise value out of range (%d)", v)
		}
	}
}

func TestSeeded(t *testing.T) {
	a := random.NewRandom(100)
	b := random.NewRandom(100)
	test.ExpectEquality(t, a.Seed(), int64(100))
	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, a.Noise(), b.Noise())
	}
}

func TestSequence(t *testing.T) {
	seq := random.NewSequence(3, 5, 7)
	test.ExpectEquality(t, seq.Noise(), uint8(3))
	test.ExpectEquality(t, seq.Noise(), uint8(5))
	test.ExpectEquality(t, seq.Noise(), uint8(7))
	test.ExpectEquality(t, seq.Noise(), uint8(3))

	empty := random.NewSequence()
	test.ExpectEquality(t, empty.Noise(), uint8(random.NoiseMin))
}
