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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/fatih/color"

	"github.com/jetsetilly/snake6502/cartridgeloader"
	"github.com/jetsetilly/snake6502/disassembly"
	"github.com/jetsetilly/snake6502/gui/colorterm"
	"github.com/jetsetilly/snake6502/gui/sdl"
	"github.com/jetsetilly/snake6502/hardware"
	"github.com/jetsetilly/snake6502/hardware/display"
	"github.com/jetsetilly/snake6502/hardware/input"
	"github.com/jetsetilly/snake6502/hardware/preferences"
	"github.com/jetsetilly/snake6502/logger"
	"github.com/jetsetilly/snake6502/modalflag"
	"github.com/jetsetilly/snake6502/performance"
	"github.com/jetsetilly/snake6502/prefs"
	"github.com/jetsetilly/snake6502/script"
	"github.com/jetsetilly/snake6502/statsview"
)

// SDL requires that window creation and event handling happen on the thread
// that initialised it. the emulation is run from the main goroutine so it is
// sufficient to lock that goroutine to the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DISASM", "SCRIPT", "PERFORMANCE")
	md.AdditionalHelp("the demo program is used when no program file is given")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		printError(os.Stderr, "* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "SCRIPT":
		err = runScript(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		printError(os.Stderr, "* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

func printError(output io.Writer, format string, args ...any) {
	color.New(color.FgRed, color.Bold).Fprintf(output, format, args...)
}

// loaderFromArgs returns a loader for the single remaining argument or for the
// demo program if there are no remaining arguments.
func loaderFromArgs(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.NewDemoLoader(), nil
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

// loadPreferences reads the preferences file after the command line overrides
// have been pushed. the values of any flags that have been set on the command
// line take precedence over both.
func loadPreferences(prefsOverride string) *preferences.Preferences {
	if prefsOverride != "" {
		prefs.PushCommandLineStack(prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	pr, err := preferences.NewPreferences()
	if err != nil {
		// a missing or unwritable configuration directory is not fatal
		logger.Log(logger.Allow, "prefs", err)
		pr = preferences.Defaults()
	}

	return pr
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	var clock uint
	md.AddUintVar(&clock, "clock-micros", preferences.DefaultClockMicros, "minimum duration of each instruction in microseconds")
	md.AddUintVar(&clock, "c", preferences.DefaultClockMicros, "short form of -clock-micros")
	frontend := md.AddString("frontend", preferences.DefaultFrontend, "frontend to use: SDL, TERM, NONE")
	scale := md.AddInt("scale", preferences.DefaultScale, "screen pixels for each display cell (SDL only)")
	seed := md.AddInt("seed", 0, "seed for the random number generator. zero seeds from the clock")
	trace := md.AddBool("trace", false, "log every instruction")
	log := md.AddBool("log", false, "echo log to stdout")
	memviz := md.AddString("memviz", "", "write a graphviz diagram of the machine to file on exit")
	screenshot := md.AddString("screenshot", "", "save the final display to a BMP file on exit")
	prefsOverride := md.AddString("prefs", "", "preference overrides: key::value; key::value")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	cl, err := loaderFromArgs(md)
	if err != nil {
		return err
	}

	pr := loadPreferences(*prefsOverride)

	// flags given on the command line override the preferences
	md.Visit(func(flg string) {
		if err != nil {
			return
		}
		switch flg {
		case "clock-micros", "c":
			err = pr.ClockMicros.Set(clock)
		case "frontend":
			err = pr.Frontend.Set(*frontend)
		case "scale":
			err = pr.Scale.Set(*scale)
		case "seed":
			err = pr.Seed.Set(*seed)
		}
	})
	if err != nil {
		return err
	}

	mch := hardware.NewMachine(pr, nil)
	mch.SetTrace(*trace)

	err = mch.AttachCartridge(&cl)
	if err != nil {
		return err
	}

	switch pr.FrontendName() {
	case preferences.FrontendSDL:
		gui, err := sdl.NewGUI(pr.Scale.Get().(int))
		if err != nil {
			return err
		}
		defer gui.Destroy()
		mch.AttachFrontend(gui, gui)

	case preferences.FrontendTerm:
		term, err := colorterm.NewColorTerm(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		defer term.Destroy()
		mch.AttachFrontend(term, term)

	case preferences.FrontendNone:
		logger.Log(logger.Allow, "snake6502", "running without a frontend")
	}

	// ctrl-c is forwarded to the machine as a quit event so that the run loop
	// ends in the same way as it would if the quit key was pressed
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	done := make(chan bool)
	defer func() {
		signal.Stop(intChan)
		close(done)
	}()
	go func() {
		select {
		case <-intChan:
			_ = mch.Input.Push(input.Quit)
		case <-done:
		}
	}()

	err = mch.Boot()
	if err != nil {
		return err
	}

	if *screenshot != "" {
		err = display.SaveBMP(*screenshot, mch.Frame, pr.Scale.Get().(int))
		if err != nil {
			return err
		}
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		mch.DumpStructure(f)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, err := loaderFromArgs(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromLoader(cl)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("the program file is optional. the script can load its own data")

	seed := md.AddInt("seed", 1, "seed for the random number generator. zero seeds from the clock")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	args := md.RemainingArgs()
	if len(args) == 0 {
		return fmt.Errorf("lua script required for %s mode", md)
	}
	if len(args) > 2 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pr := preferences.Defaults()
	err = pr.Seed.Set(*seed)
	if err != nil {
		return err
	}

	// scripts run as quickly as possible
	err = pr.ClockMicros.Set(0)
	if err != nil {
		return err
	}

	mch := hardware.NewMachine(pr, nil)

	if len(args) == 2 {
		cl := cartridgeloader.NewLoader(args[1])
		err = mch.AttachCartridge(&cl)
		if err != nil {
			return err
		}
	}

	scr := script.NewScript(mch, md.Output)
	defer scr.Close()

	return scr.RunFile(args[0])
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	var clock uint
	md.AddUintVar(&clock, "clock-micros", preferences.DefaultClockMicros, "clock duration used to calculate accuracy")
	md.AddUintVar(&clock, "c", preferences.DefaultClockMicros, "short form of -clock-micros")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	cl, err := loaderFromArgs(md)
	if err != nil {
		return err
	}

	pr := preferences.Defaults()
	err = pr.ClockMicros.Set(clock)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, cl, pr, *duration)
}
