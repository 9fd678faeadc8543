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

import "time"

// CalcRate takes the number of instructions and duration (in seconds) and
// returns the instructions-per-second and the rate as a percentage of the
// target rate implied by the cycle duration.
//
// A cycle duration of zero means there is no target rate and the accuracy is
// returned as zero.
func CalcRate(instructions int, duration float64, cycle time.Duration) (ips float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	ips = float64(instructions) / duration
	if cycle > 0 {
		target := float64(time.Second) / float64(cycle)
		accuracy = 100 * ips / target
	}
	return ips, accuracy
}
