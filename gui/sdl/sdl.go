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
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/display"
	"github.com/jetsetilly/snake6502/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// WindowTitle is the title of the SDL window.
const WindowTitle = "Snake Game"

// GUI is the SDL implementation of the frontend.
type GUI struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// the number of screen pixels along each side of a cell
	scale int32

	// the rectangle for each cell. reused on every render
	rect sdl.Rect
}

// NewGUI is the preferred method of initialisation for the GUI type. The
// window is opened immediately.
func NewGUI(scale int) (*GUI, error) {
	if scale < 1 {
		scale = 1
	}

	gui := &GUI{
		scale: int32(scale),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	gui.window, err = sdl.CreateWindow(WindowTitle,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		display.Width*gui.scale, display.Height*gui.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	gui.renderer, err = sdl.CreateRenderer(gui.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		_ = gui.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	// cells are drawn as one unit rectangles and scaled by the renderer
	err = gui.renderer.SetScale(float32(gui.scale), float32(gui.scale))
	if err != nil {
		gui.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}
	gui.rect.W = 1
	gui.rect.H = 1

	logger.Logf(logger.Allow, "sdl", "window opened (%dx%d)", display.Width*gui.scale, display.Height*gui.scale)

	return gui, nil
}

// Destroy closes the window and releases all SDL resources.
func (gui *GUI) Destroy() {
	if gui.renderer != nil {
		_ = gui.renderer.Destroy()
		gui.renderer = nil
	}
	if gui.window != nil {
		_ = gui.window.Destroy()
		gui.window = nil
	}
	sdl.Quit()
}

// Render implements the display.Renderer interface.
func (gui *GUI) Render(frame *display.Frame) error {
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			r, g, b := frame.Cell(x, y).RGB()
			if err := gui.renderer.SetDrawColor(r, g, b, 0xff); err != nil {
				return curated.Errorf("sdl: %v", err)
			}
			gui.rect.X = int32(x)
			gui.rect.Y = int32(y)
			if err := gui.renderer.FillRect(&gui.rect); err != nil {
				return curated.Errorf("sdl: %v", err)
			}
		}
	}

	gui.renderer.Present()

	return nil
}
