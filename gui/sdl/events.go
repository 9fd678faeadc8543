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

package sdl

import (
	"github.com/jetsetilly/snake6502/hardware/input"

	"github.com/veandco/go-sdl2/sdl"
)

// Poll implements the input.Source interface. All pending SDL events are
// serviced.
func (gui *GUI) Poll() ([]input.Event, error) {
	var evs []input.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			evs = append(evs, input.Quit)

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				continue
			}
			if e := translateKey(ev.Keysym.Sym); e != input.NoEvent {
				evs = append(evs, e)
			}
		}
	}

	return evs, nil
}

func translateKey(sym sdl.Keycode) input.Event {
	switch sym {
	case sdl.K_UP, sdl.K_w:
		return input.Up
	case sdl.K_DOWN, sdl.K_s:
		return input.Down
	case sdl.K_LEFT, sdl.K_a:
		return input.Left
	case sdl.K_RIGHT, sdl.K_d:
		return input.Right
	case sdl.K_ESCAPE:
		return input.Quit
	}
	return input.NoEvent
}
