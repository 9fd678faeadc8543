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

// Package limiter provides a way of limiting the rate of the emulation's run
// loop. The duration of each cycle is a floor and never a deadline. If the
// work done in a cycle takes longer than the duration then the next cycle
// starts immediately.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(100 * time.Microsecond)
//
// Each cycle of a loop is then bracketed by the Start() and Wait() functions:
//
//	for {
//		lim.Start()
//		doWork()
//		lim.Wait()
//	}
package limiter
