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

// Package paths contains functions to prepare paths to snake6502 resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the screenshots directory.
//
//	d, err := paths.ResourcePath("screenshots", "")
//
// In development builds the base path is ".snake6502" in the current
// directory. Release builds (built with the release tag) use the user's config
// directory instead. The package uses os.UserConfigDir() from the go standard
// library for this.
//
// In the example above, on a modern Linux system with a release build, the path
// returned will be:
//
//	/home/user/.config/snake6502/screenshots
package paths
