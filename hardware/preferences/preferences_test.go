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

package preferences_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/preferences"
	"github.com/jetsetilly/snake6502/prefs"
	"github.com/jetsetilly/snake6502/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.Defaults()
	test.ExpectEquality(t, p.CycleDuration(), 100*time.Microsecond)
	test.ExpectEquality(t, p.Scale.Get(), prefs.Value(10))
	test.ExpectEquality(t, p.FrontendName(), preferences.FrontendSDL)

	test.ExpectSuccess(t, curated.Is(p.Save(), preferences.NoDisk))
}

func TestValidation(t *testing.T) {
	p := preferences.Defaults()

	err := p.ClockMicros.Set(-1)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidValue))
	test.ExpectEquality(t, p.ClockMicros.Get(), prefs.Value(100))

	test.ExpectFailure(t, p.Scale.Set(0))
	test.ExpectFailure(t, p.Frontend.Set("VULKAN"))

	test.ExpectSuccess(t, p.Frontend.Set("term"))
	test.ExpectEquality(t, p.FrontendName(), preferences.FrontendTerm)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.ClockMicros.Set(250))
	test.ExpectSuccess(t, p.Save())

	p, err = preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ClockMicros.Get(), prefs.Value(250))

	// command line values override the file
	prefs.PushCommandLineStack("clock.micros::50")
	defer prefs.PopCommandLineStack()
	p, err = preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.CycleDuration(), 50*time.Microsecond)
}
