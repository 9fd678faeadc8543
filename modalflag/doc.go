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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, with a different set of flags for each
// mode.
//
// Arguments are given with NewArgs() and flags for the top level are added
// before the first call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	trace := md.AddBool("trace", false, "log every instruction")
//
// The first sub-mode is the default mode. The selected mode is returned by
// the Mode() function after Parse() returns ParseContinue:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		clock := md.AddUint("c", 100, "clock duration in microseconds")
//		...
//	}
//
// After the call to NewMode() the flags for the sub-mode can be added and
// Parse() called again. Arguments that are neither flags nor modes are
// returned by RemainingArgs() and GetArg().
//
// A request for help ("-help" or "-h") causes Parse() to print the flags and
// sub-modes of the current mode to the Output writer and to return ParseHelp.
package modalflag
