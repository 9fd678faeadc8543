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

package preferences

import (
	"strings"
	"time"

	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/paths"
	"github.com/jetsetilly/snake6502/prefs"
)

// Default preference values.
const (
	DefaultClockMicros = 100
	DefaultScale       = 10
	DefaultFrontend    = FrontendSDL
)

// List of valid frontend names.
const (
	FrontendSDL  = "SDL"
	FrontendTerm = "TERM"
	FrontendNone = "NONE"
)

// Sentinal errors raised by the preferences package.
const (
	InvalidValue = "preferences: invalid value for %s (%v)"
	NoDisk       = "preferences: not backed by a prefs file"
)

// Preferences defines and collates all the preference values used by the
// machine.
type Preferences struct {
	dsk *prefs.Disk

	// the minimum duration of each cycle of the run loop, in microseconds
	ClockMicros prefs.Int

	// the number of screen pixels for each cell of the display
	Scale prefs.Int

	// the name of the frontend to use
	Frontend prefs.String

	// the seed for the random number generator. zero means seed from the
	// clock
	Seed prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

func newPreferences() *Preferences {
	p := &Preferences{}

	p.ClockMicros.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidValue, "clock.micros", v)
		}
		return nil
	})

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(InvalidValue, "display.scale", v)
		}
		return nil
	})

	p.Frontend.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case FrontendSDL, FrontendTerm, FrontendNone:
			return nil
		}
		return curated.Errorf(InvalidValue, "frontend", v)
	})

	p.SetDefaults()

	return p
}

// Defaults returns a Preferences instance that is not backed by a file.
func Defaults() *Preferences {
	return newPreferences()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the prefs file in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() except that the path
// to the prefs file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := newPreferences()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Add("clock.micros", &p.ClockMicros)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("display.scale", &p.Scale)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("frontend", &p.Frontend)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("random.seed", &p.Seed)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.ClockMicros.Set(DefaultClockMicros)
	_ = p.Scale.Set(DefaultScale)
	_ = p.Frontend.Set(DefaultFrontend)
	_ = p.Seed.Set(0)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NoDisk)
	}
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NoDisk)
	}
	return p.dsk.Save()
}

// CycleDuration returns the ClockMicros value as a time.Duration.
func (p *Preferences) CycleDuration() time.Duration {
	return time.Duration(p.ClockMicros.Get().(int)) * time.Microsecond
}

// FrontendName returns the normalised name of the frontend.
func (p *Preferences) FrontendName() string {
	return strings.ToUpper(p.Frontend.String())
}
