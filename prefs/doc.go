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

// Package prefs facilitates the storage of preferential values in the
// snake6502 system. It is a key/value store and is intended to be used by
// other packages to persist user preferences.
//
// The Disk type is the key component of the package. Values of the types
// provided by the package are added to a Disk instance with the Add()
// function, along with a key. The Disk can then be saved to and loaded from
// a file.
//
//	var scale prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("display.scale", &scale)
//	_ = scale.Set(10)
//	_ = dsk.Save()
//
// The file format is a plain text file with one "key :: value" entry per line.
// Keys not added to the Disk are preserved when the file is saved, meaning
// that more than one Disk instance can share the same file.
//
// Preference values can also be specified on the command line, in the form
// of a "key::value; key::value" string. These are pushed onto a stack with
// PushCommandLineStack() and take precedence over values loaded from disk.
package prefs
