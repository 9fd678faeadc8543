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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/snake6502/paths"
	"github.com/jetsetilly/snake6502/test"
)

func TestPaths(t *testing.T) {
	// run in a temporary directory so that the base path is created there
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".snake6502", "foo", "bar", "baz"))

	// directory has been created
	info, err := os.Stat(filepath.Join(".snake6502", "foo", "bar"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".snake6502", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".snake6502", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".snake6502")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "snake", "bmp")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_snake_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".bmp"))

	fn = paths.UniqueFilename("memviz", "", ".dot")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_2"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".dot"))
}
