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

package input

// Event is a single user input.
type Event int

// List of valid Event values.
const (
	NoEvent Event = iota
	Up
	Down
	Left
	Right
	Quit
)

func (ev Event) String() string {
	switch ev {
	case NoEvent:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Quit:
		return "quit"
	}
	return "unknown event"
}

// Source is implemented by frontends that can be polled for user input.
type Source interface {
	Poll() ([]Event, error)
}
