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

package colorterm

import (
	"bytes"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/gui/colorterm/easyterm"
	"github.com/jetsetilly/snake6502/gui/colorterm/easyterm/ansi"
	"github.com/jetsetilly/snake6502/hardware/display"
	"github.com/jetsetilly/snake6502/hardware/input"
)

// Sentinal errors.
const (
	TooSmall = "colorterm: terminal is too small (%dx%d)"
)

// the number of characters used for each cell
const cellWidth = 2

// ColorTerm is the colour terminal implementation of the frontend.
type ColorTerm struct {
	easyterm.Terminal

	// bytes read from the terminal input
	keys chan []byte

	// the frame is drawn into the buffer before being written to the output
	buf bytes.Buffer
	out io.Writer

	// a pen for each colour
	pens map[display.Colour]*color.Color
}

// NewColorTerm is the preferred method of initialisation for the ColorTerm
// type. The terminal is put into cbreak mode.
func NewColorTerm(inputFile *os.File, outputFile *os.File) (*ColorTerm, error) {
	ct := newColorTerm(outputFile)

	if err := ct.Initialise(inputFile, outputFile); err != nil {
		return nil, curated.Errorf("colorterm: %v", err)
	}

	if ct.Geometry.Cols < display.Width*cellWidth || ct.Geometry.Rows < display.Height {
		return nil, curated.Errorf(TooSmall, ct.Geometry.Cols, ct.Geometry.Rows)
	}

	ct.CBreakMode()
	ct.Print("%s%s", ansi.ClearScreen, ansi.HideCursor)

	go ct.readKeys()

	return ct, nil
}

func newColorTerm(out io.Writer) *ColorTerm {
	ct := &ColorTerm{
		keys: make(chan []byte, 16),
		out:  out,
		pens: make(map[display.Colour]*color.Color),
	}

	background := map[display.Colour]color.Attribute{
		display.Black:   color.BgBlack,
		display.White:   color.BgHiWhite,
		display.Grey:    color.BgHiBlack,
		display.Red:     color.BgRed,
		display.Green:   color.BgGreen,
		display.Blue:    color.BgBlue,
		display.Magenta: color.BgMagenta,
		display.Yellow:  color.BgYellow,
		display.Cyan:    color.BgCyan,
	}
	for c, a := range background {
		p := color.New(a)
		p.EnableColor()
		ct.pens[c] = p
	}

	return ct
}

// Destroy returns the terminal to its normal state.
func (ct *ColorTerm) Destroy() {
	ct.Print("%s%s%s", ansi.NormalPen, ansi.ShowCursor, ansi.CursorMove(display.Height+1, 1))
	ct.CleanUp()
}

// Render implements the display.Renderer interface.
func (ct *ColorTerm) Render(frame *display.Frame) error {
	ct.buf.Reset()
	ct.buf.WriteString(ansi.CursorHome)

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			_, _ = ct.pens[frame.Cell(x, y)].Fprint(&ct.buf, "  ")
		}
		ct.buf.WriteString(ansi.NormalPen)
		if y < display.Height-1 {
			ct.buf.WriteString("\r\n")
		}
	}

	if _, err := ct.out.Write(ct.buf.Bytes()); err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	return nil
}

// readKeys runs in its own goroutine and never returns.
func (ct *ColorTerm) readKeys() {
	b := make([]byte, 16)
	for {
		n, err := ct.Read(b)
		if err != nil {
			return
		}
		k := make([]byte, n)
		copy(k, b[:n])
		ct.keys <- k
	}
}

// Poll implements the input.Source interface.
func (ct *ColorTerm) Poll() ([]input.Event, error) {
	var evs []input.Event
	for {
		select {
		case k := <-ct.keys:
			evs = append(evs, parseKeys(k)...)
		default:
			return evs, nil
		}
	}
}

// parseKeys converts the bytes read from the terminal into events. Bytes that
// do not correspond to an event are ignored.
func parseKeys(b []byte) []input.Event {
	var evs []input.Event

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case easyterm.KeyEsc:
			// a cursor key sequence or the escape key on its own
			if i+2 < len(b) && b[i+1] == easyterm.EscCursor {
				switch b[i+2] {
				case easyterm.CursorUp:
					evs = append(evs, input.Up)
				case easyterm.CursorDown:
					evs = append(evs, input.Down)
				case easyterm.CursorForward:
					evs = append(evs, input.Right)
				case easyterm.CursorBackward:
					evs = append(evs, input.Left)
				}
				i += 2
			} else {
				evs = append(evs, input.Quit)
			}
		case 'w', 'W':
			evs = append(evs, input.Up)
		case 's', 'S':
			evs = append(evs, input.Down)
		case 'a', 'A':
			evs = append(evs, input.Left)
		case 'd', 'D':
			evs = append(evs, input.Right)
		case 'q', 'Q', easyterm.KeyInterrupt:
			evs = append(evs, input.Quit)
		}
	}

	return evs
}
