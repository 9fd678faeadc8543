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

// Package logger is the central log for the emulator. Entries are made with
// the Log() and Logf() functions and are tagged with a short string naming
// the area of the emulator making the entry:
//
//	logger.Log(logger.Allow, "machine", "booting")
//	logger.Logf(logger.Allow, "cpu", "%04x: %s", pc, ins)
//
// The log has a maximum number of entries. Older entries are dropped as new
// entries arrive. Consecutive entries with the same tag and detail are
// collapsed into a single entry with a repeat count.
//
// The Permission interface allows the caller to decide at the point of the
// call whether logging should take place. The Allow value can be used when a
// log entry should always be made.
//
// Entries can be echoed to an io.Writer as they are made with SetEcho().
package logger
