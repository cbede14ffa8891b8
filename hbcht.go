// This file is part of hbcht.
//
// hbcht is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// hbcht is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with hbcht.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/debugger"
	"github.com/nqpz/hbcht/debugger/terminal"
	"github.com/nqpz/hbcht/debugger/terminal/colorterm"
	"github.com/nqpz/hbcht/debugger/terminal/plainterm"
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/logger"
	"github.com/nqpz/hbcht/modalflag"
	"github.com/nqpz/hbcht/performance"
	"github.com/nqpz/hbcht/program"
	"github.com/nqpz/hbcht/programloader"
	"github.com/nqpz/hbcht/regression"
	"github.com/nqpz/hbcht/runmode"
	"github.com/nqpz/hbcht/statsview"
	"github.com/nqpz/hbcht/translate"
	"github.com/nqpz/hbcht/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "TRANSLATE", "REGRESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "TRANSLATE":
		err = translateToC(md)
	case "REGRESS":
		err = regress(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Fprintf(md.Output, "%s v%s\n", version.ApplicationName, version.Number)
		if version.Revision != "" {
			fmt.Fprintf(md.Output, "  revision: %s\n", version.Revision)
		}
	}

	if err != nil {
		// the timeout notices have already been written alongside the
		// results for each direction
		if curated.Is(err, runmode.Timeout) {
			os.Exit(1)
		}

		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// gather a program loader and the input values from the remaining command
// line arguments.
func loaderAndInput(md *modalflag.Modes) (programloader.Loader, []string, error) {
	args := md.RemainingArgs()
	if len(args) == 0 {
		return programloader.Loader{}, nil, fmt.Errorf("hbcht program required for %s mode", md)
	}
	return programloader.NewLoader(md.GetArg(0)), args[1:], nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	dirs := md.AddMultiString("d", "starting direction, may be given more than once: up, right, down, left")
	brute := md.AddBool("b", false, "run all four starting directions")
	steps := md.AddInt("steps", 0, "maximum number of steps per direction (0 means no limit)")
	forceInText := md.AddBool("t", false, "treat input as text even without the @intext directive")
	noInText := md.AddBool("T", false, "never treat input as text")
	forceOutText := md.AddBool("s", false, "show output as text even without the @outtext directive")
	noOutText := md.AddBool("S", false, "never show output as text")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "launch statistics server (requires the statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "! statsview not available in this build")
		}
	}

	if *steps < 0 {
		return fmt.Errorf("negative step budget (%d)", *steps)
	}

	loader, input, err := loaderAndInput(md)
	if err != nil {
		return err
	}

	opts := runmode.Options{
		AllDirections: *brute,
		StepLimit:     uint64(*steps),
		InText:        override(*forceInText, *noInText),
		OutText:       override(*forceOutText, *noOutText),
	}

	for _, ds := range *dirs {
		d, ok := direction.Parse(ds)
		if !ok {
			return fmt.Errorf("unknown direction (%s)", ds)
		}
		opts.Directions = append(opts.Directions, d)
	}

	return runmode.Run(md.Output, loader, input, opts)
}

func override(forceOn, forceOff bool) runmode.Override {
	if forceOn {
		return runmode.ForceOn
	}
	if forceOff {
		return runmode.ForceOff
	}
	return runmode.FromProgram
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	dirSpec := md.AddString("d", "", "starting direction (default: chosen at random)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	loader, input, err := loaderAndInput(md)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.New(term, loader, *dirSpec, input)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func translateToC(md *modalflag.Modes) error {
	md.NewMode()

	outFile := md.AddString("o", "", "file to write the C source to (default: stdout)")
	functionOnly := md.AddBool("f", false, "emit only the hbcht_run() function, without main()")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	loader, _, err := loaderAndInput(md)
	if err != nil {
		return err
	}

	err = loader.Load()
	if err != nil {
		return err
	}

	prg, err := program.Load(loader.Data)
	if err != nil {
		return err
	}

	cc := translate.Compile(prg)

	output := md.Output
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}

	return translate.CWriter{FunctionOnly: *functionOnly}.Write(output, loader.ShortName(), prg, cc)
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "stop the run on the first error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRunTests(md.Output, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) != 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		md.NewMode()

		dirSpec := md.AddString("d", regression.AllDirections, "starting direction for the test, or all")
		steps := md.AddInt("steps", 100000, "step budget per direction")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if *steps < 0 {
			return fmt.Errorf("negative step budget (%d)", *steps)
		}

		loader, input, err := loaderAndInput(md)
		if err != nil {
			return err
		}

		rec, err := regression.NewRunRecord(loader, *dirSpec, input, uint64(*steps))
		if err != nil {
			return err
		}

		return regression.RegressAdd(md.Output, rec)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	dirSpec := md.AddString("d", "", "starting direction (default: chosen at random)")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "profiles to create: none, cpu, mem, all")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, ok := performance.ParseProfile(*profile)
	if !ok {
		return fmt.Errorf("unknown profile type (%s)", *profile)
	}

	loader, input, err := loaderAndInput(md)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prof, loader, *dirSpec, input, *duration)
}
