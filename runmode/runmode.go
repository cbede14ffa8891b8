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

// Package runmode drives the execution of an hbcht program from the command
// line: load the program, seed the memory tape from the input arguments,
// run the car to the exit and write the formatted output.
//
// Unless told otherwise the initial direction of the car is chosen at
// random. The directions to run can be given explicitly, including all four
// at once, in which case each run gets a fresh tape and the outputs are
// reported per direction.
package runmode

import (
	"fmt"
	"io"
	"strings"

	"github.com/nqpz/hbcht/convert"
	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/engine"
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/engine/memory"
	"github.com/nqpz/hbcht/logger"
	"github.com/nqpz/hbcht/program"
	"github.com/nqpz/hbcht/programloader"
	"github.com/nqpz/hbcht/random"
)

// Timeout is the pattern of the error returned when a step budget was
// imposed and the car did not reach the exit within it. It is a report
// rather than a genuine failure: a program that does not halt is a valid
// program.
const Timeout = "timeout: car did not halt within %d steps"

// Override controls whether a directive from the program file is honoured,
// forced on or forced off.
type Override int

// A list of valid Override values.
const (
	FromProgram Override = iota
	ForceOn
	ForceOff
)

func (ov Override) resolve(directive bool) bool {
	switch ov {
	case ForceOn:
		return true
	case ForceOff:
		return false
	}
	return directive
}

// Options for the Run() function. The zero value runs one random direction
// with no step budget, honouring the program's directives.
type Options struct {
	// directions to run. empty means one direction chosen at random
	Directions []direction.Direction

	// run all four directions, overriding the Directions field
	AllDirections bool

	// maximum number of steps per direction. zero means no budget
	StepLimit uint64

	// honour or override the @intext/@outtext directives
	InText  Override
	OutText Override

	// source of randomness for direction selection. nil means a fresh
	// generator
	Rand *random.Random
}

// Run executes the loaded program with the supplied input arguments,
// writing formatted output to the output writer.
func Run(output io.Writer, loader programloader.Loader, input []string, opts Options) error {
	err := loader.Load()
	if err != nil {
		return err
	}

	prg, err := program.Load(loader.Data)
	if err != nil {
		return err
	}

	logger.Logf("runmode", "%s: %d x %d grid", loader.ShortName(), prg.Rows(), prg.Cols())

	inText := opts.InText.resolve(prg.InText)
	outText := opts.OutText.resolve(prg.OutText)

	directions := opts.Directions
	if opts.AllDirections {
		directions = direction.List[:]
	} else if len(directions) == 0 {
		rnd := opts.Rand
		if rnd == nil {
			rnd = random.NewRandom()
		}
		directions = []direction.Direction{direction.List[rnd.Intn(direction.NumDirections)]}
	}

	// the tape is seeded once and snapshotted for each direction, so every
	// run starts from an identical tape
	seed := memory.NewTape()
	if inText {
		// in text mode the input arguments are concatenated and the
		// ordinal value of every character is written to the tape
		convert.SeedText(seed, strings.Join(input, ""))
	} else {
		values, err := convert.ParseNumbers(input)
		if err != nil {
			return err
		}
		err = convert.SeedNumbers(seed, values)
		if err != nil {
			return err
		}
	}

	timedOut := uint64(0)

	for i, d := range directions {
		car := engine.NewCar(prg, seed.Snapshot(), d)

		var continueCheck func() (engine.State, error)
		if opts.StepLimit > 0 {
			limit := opts.StepLimit
			continueCheck = func() (engine.State, error) {
				if car.Steps() >= limit {
					return engine.Ending, nil
				}
				return engine.Running, nil
			}
		}

		err = car.Run(continueCheck)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(output)
		}
		if len(directions) > 1 {
			fmt.Fprintf(output, "%s:\n", d)
		}

		if !car.Halted() {
			timedOut = opts.StepLimit
			fmt.Fprintf(output, "(did not halt within %d steps)\n", opts.StepLimit)
			continue
		}

		logger.Logf("runmode", "%s: halted after %d steps", d, car.Steps())

		if outText {
			s, err := convert.Text(car.Tape)
			if err != nil {
				return err
			}
			fmt.Fprintln(output, s)
		} else {
			writeNumbers(output, car.Tape)
		}
	}

	if timedOut > 0 {
		return curated.Errorf(Timeout, timedOut)
	}

	return nil
}

// writeNumbers writes one "index: value" line per reported tape cell, with
// the index column right-aligned.
func writeNumbers(output io.Writer, tape *memory.Tape) {
	values := convert.Numbers(tape)
	if len(values) == 0 {
		return
	}

	width := len(fmt.Sprintf("%d", len(values)-1))
	for i, v := range values {
		fmt.Fprintf(output, "%*d: %s\n", width, i, v.String())
	}
}
