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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/snake6502/cartridgeloader"
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/govern"
	"github.com/jetsetilly/snake6502/hardware"
	"github.com/jetsetilly/snake6502/hardware/preferences"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator using the supplied program.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument. The emulation is not paced but the rate is reported relative to
// the clock preference.
func Check(output io.Writer, profile Profile, cl cartridgeloader.Loader, prefs *preferences.Preferences, duration string) error {
	if prefs == nil {
		prefs = preferences.Defaults()
	}

	mch := hardware.NewMachine(prefs, nil)

	if err := mch.AttachCartridge(&cl); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var instructions int
	var restarts int

	runner := func() error {
		// the timer channel is buffered so that the timer never blocks if the
		// run loop has already returned
		timerChan := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		// only check for end of measurement period every PerformanceBrake
		// instructions. checking the timerChan is relatively expensive
		performanceBrake := 0

		continueCheck := func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timerChan:
					return govern.Ending, timedOut
				default:
				}
			}
			return govern.Running, nil
		}

		for {
			err := mch.Run(continueCheck)
			instructions += mch.Instructions
			if err != nil {
				return err
			}

			// the program has halted or run off the end of memory before the
			// duration has elapsed. restart it
			if err := mch.AttachCartridge(&cl); err != nil {
				return err
			}
			restarts++
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	ips, accuracy := CalcRate(instructions, dur.Seconds(), prefs.CycleDuration())
	_, err = fmt.Fprintf(output, "%.2f instructions per second (%d instructions in %.2f seconds, %d restarts) %.1f%%\n",
		ips, instructions, dur.Seconds(), restarts, accuracy)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
