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
	"testing"
	"time"

	"github.com/jetsetilly/snake6502/test"
)

type fakeClock struct {
	t     time.Time
	slept time.Duration
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) sleep(d time.Duration) {
	c.slept += d
	c.t = c.t.Add(d)
}

func newFakeLimiter(d time.Duration) (*Limiter, *fakeClock) {
	c := &fakeClock{t: time.Unix(0, 0)}
	lim := NewLimiter(d)
	lim.now = c.now
	lim.sleep = c.sleep
	return lim, c
}

func TestWait(t *testing.T) {
	lim, c := newFakeLimiter(100 * time.Microsecond)

	// work took less time than the duration
	lim.Start()
	c.t = c.t.Add(30 * time.Microsecond)
	lim.Wait()
	test.ExpectEquality(t, c.slept, 70*time.Microsecond)
	test.ExpectEquality(t, lim.Overruns, 0)

	// work took longer than the duration
	c.slept = 0
	lim.Start()
	c.t = c.t.Add(150 * time.Microsecond)
	lim.Wait()
	test.ExpectEquality(t, c.slept, time.Duration(0))
	test.ExpectEquality(t, lim.Overruns, 1)
}

func TestNoLimit(t *testing.T) {
	lim, c := newFakeLimiter(0)
	lim.Start()
	lim.Wait()
	test.ExpectEquality(t, c.slept, time.Duration(0))

	lim.SetLimit(time.Millisecond)
	test.ExpectEquality(t, lim.Limit(), time.Millisecond)
	lim.Start()
	lim.Wait()
	test.ExpectEquality(t, c.slept, time.Millisecond)
}

func TestRealClock(t *testing.T) {
	lim := NewLimiter(2 * time.Millisecond)
	s := time.Now()
	lim.Start()
	lim.Wait()
	test.ExpectSuccess(t, time.Since(s) >= 2*time.Millisecond)
}
