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
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/govern"
	"github.com/jetsetilly/snake6502/hardware/cpu/execution"
	"github.com/jetsetilly/snake6502/logger"
)

// Boot runs the program from the current program counter until the program
// halts, runs off the end of memory or the machine is stopped. Each
// instruction takes at least the duration given by the clock preference.
//
// After every instruction the display is rendered and input is processed.
// Rendering and input do not happen after a halting instruction.
func (mch *Machine) Boot() error {
	mch.state = govern.Running
	mch.limiter.SetLimit(mch.Prefs.CycleDuration())

	logger.Logf(logger.Allow, "machine", "booting at %#04x (cycle %v)", mch.CPU.PC, mch.limiter.Limit())

	for mch.state == govern.Running {
		mch.limiter.Start()

		status, err := mch.Step()
		if err != nil {
			return err
		}
		if status != execution.Continue {
			return nil
		}

		if err := mch.Render(); err != nil {
			return err
		}

		if err := mch.Input.Process(); err != nil {
			return curated.Errorf("machine: %v", err)
		}

		mch.limiter.Wait()
	}

	logger.Logf(logger.Allow, "machine", "stopped at %#04x after %d instructions (%d overruns)",
		mch.CPU.PC, mch.Instructions, mch.limiter.Overruns)

	return nil
}

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The display is not
// rendered and input is not processed. The continueCheck function is called
// after every instruction and can be nil.
//
// Run returns when the program halts, runs off the end of memory or when
// continueCheck returns a final state.
func (mch *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	mch.state = govern.Running

	for {
		switch mch.state {
		case govern.Running:
			status, err := mch.Step()
			if err != nil {
				return err
			}
			if status != execution.Continue {
				return nil
			}
		case govern.Paused:
		case govern.Halted, govern.Ending:
			return nil
		default:
			return curated.Errorf("machine: unsupported emulation state (%s) in Run() function", mch.state)
		}

		state, err := continueCheck()
		if err != nil {
			return err
		}

		// a stop request from inside the Step() function takes precedence
		if !mch.state.Final() {
			mch.state = state
		}
	}
}
