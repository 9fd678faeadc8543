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

// Package input translates frontend events into writes to the LastKey address
// of memory, or into a request to stop the emulation.
//
// Events reach the Input type in one of two ways. A Source attached with
// AttachSource() is polled every time Process() is called. Events can also be
// pushed from another goroutine with the Push() function. Pushed events are
// queued and handled on the next call to Process(), before the Source is
// polled.
package input
