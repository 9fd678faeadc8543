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

// Package statsview serves runtime statistics for the running emulator over
// HTTP. The server is only built when the statsview build tag is given:
//
//	go build -tags statsview .
//
// Without the tag the Available() function returns false and Launch() does
// nothing.
//
// Graphs of memory use and goroutine counts are then found at:
//
//	localhost:12650/debug/statsview
//
// The standard pprof pages are also served, at:
//
//	localhost:12650/debug/pprof/
package statsview
