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

// Package cartridgeloader is used to specify the program data that is to be
// attached to the emulated machine.
//
// When the program is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.NewLoader("programs/snake.bin")
//
// The built-in demonstration program is available with the NewDemoLoader()
// function.
package cartridgeloader
