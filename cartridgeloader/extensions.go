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

package cartridgeloader

import (
	"path"
	"slices"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".BIN", ".ROM", ".PRG", ".6502"}

// IsRecognised returns true if the file extension of the Loader's filename is
// one of the FileExtensions.
func (cl Loader) IsRecognised() bool {
	ext := strings.ToUpper(path.Ext(cl.Filename))
	return slices.Contains(FileExtensions[:], ext)
}
