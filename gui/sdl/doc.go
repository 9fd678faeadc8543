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

// Package sdl implements a frontend for the emulation using SDL. The GUI type
// satisfies both the display.Renderer and the input.Source interfaces.
//
// SDL requires that all calls are made from the main thread. The GUI type
// does not start any goroutines of its own and so the run loop of the
// machine must be running in the main thread.
package sdl
