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

import (
	"math/rand"
	"time"
)

// NoiseMin and NoiseMax define the half open range [NoiseMin, NoiseMax) of
// values returned by the Noise() function.
const (
	NoiseMin = 1
	NoiseMax = 16
)

// Random is a seeded random number generator.
type Random struct {
	seed int64
	rng  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed value of zero will cause the seed to be taken from the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed used to initialise the generator.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Intn returns a number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rng.Intn(n)
}

// Noise returns a value in the range [NoiseMin, NoiseMax).
func (rnd *Random) Noise() uint8 {
	return uint8(NoiseMin + rnd.rng.Intn(NoiseMax-NoiseMin))
}
