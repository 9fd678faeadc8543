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

package limiter

import (
	"time"
)

// Limiter enforces a minimum duration for each cycle of a loop.
type Limiter struct {
	duration time.Duration
	start    time.Time

	// the number of cycles that took longer than the duration
	Overruns int

	// replaced during testing
	sleep func(time.Duration)
	now   func() time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(duration time.Duration) *Limiter {
	return &Limiter{
		duration: duration,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// SetLimit changes the minimum duration of each cycle. A value of zero or
// less removes the limit.
func (lim *Limiter) SetLimit(duration time.Duration) {
	lim.duration = duration
}

// Limit returns the current minimum duration of each cycle.
func (lim *Limiter) Limit() time.Duration {
	return lim.duration
}

// Start records the start of a cycle.
func (lim *Limiter) Start() {
	lim.start = lim.now()
}

// Wait sleeps for whatever remains of the cycle duration since the most
// recent call to Start().
func (lim *Limiter) Wait() {
	if lim.duration <= 0 {
		return
	}

	elapsed := lim.now().Sub(lim.start)
	if elapsed < lim.duration {
		lim.sleep(lim.duration - elapsed)
	} else {
		lim.Overruns++
	}
}
