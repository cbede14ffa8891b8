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

package debugger

import (
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"

	"github.com/nqpz/hbcht/convert"
	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/debugger/terminal"
	"github.com/nqpz/hbcht/engine"
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/engine/memory"
	"github.com/nqpz/hbcht/program"
	"github.com/nqpz/hbcht/programloader"
	"github.com/nqpz/hbcht/random"
	"github.com/nqpz/hbcht/version"
)

// Debugger is the command line debugger for hbcht programs.
type Debugger struct {
	term   terminal.Terminal
	events *terminal.ReadEvents

	loader programloader.Loader
	prg    *program.Program
	input  []string

	dir  direction.Direction
	tape *memory.Tape
	car  *engine.Car

	// command to run after every step. see cmdOnStep
	onStep string

	// the main input loop ends when this is false
	running bool
}

// New is the preferred method of initialisation for the Debugger type. The
// dirSpec argument is the name of the car's starting direction; an empty
// string means a random direction. The input values seed the car's memory on
// every reset.
func New(term terminal.Terminal, loader programloader.Loader, dirSpec string, input []string) (*Debugger, error) {
	err := loader.Load()
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	prg, err := program.Load(loader.Data)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg := &Debugger{
		term:   term,
		loader: loader,
		prg:    prg,
		input:  input,
	}

	if dirSpec == "" {
		dbg.dir = direction.List[random.NewRandom().Intn(direction.NumDirections)]
	} else {
		var ok bool
		dbg.dir, ok = direction.Parse(dirSpec)
		if !ok {
			return nil, curated.Errorf("debugger: unknown direction (%s)", dirSpec)
		}
	}

	err = dbg.reset()
	if err != nil {
		return nil, err
	}

	return dbg, nil
}

// reset puts the car back at the start cell with a freshly seeded memory
// tape. the direction is kept.
func (dbg *Debugger) reset() error {
	tape := memory.NewTape()

	if dbg.prg.InText {
		convert.SeedText(tape, strings.Join(dbg.input, ""))
	} else {
		values, err := convert.ParseNumbers(dbg.input)
		if err != nil {
			return err
		}
		err = convert.SeedNumbers(tape, values)
		if err != nil {
			return err
		}
	}

	dbg.tape = tape
	dbg.car = engine.NewCar(dbg.prg, tape, dbg.dir)

	return nil
}

// Start the debugger and the main input loop.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion())

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	dbg.events = &terminal.ReadEvents{
		Signal: intChan,
		SignalHandler: func(_ os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}

	dbg.printLine(terminal.StyleFeedback, "%s (v%s)", version.ApplicationName, version.Number)
	dbg.printLine(terminal.StyleFeedback, "program: %s", dbg.loader.ShortName())
	dbg.printLine(terminal.StyleFeedback, "direction: %s", dbg.dir)

	dbg.running = true
	for dbg.running {
		prompt := terminal.Prompt{
			Type:    terminal.PromptTypeCommand,
			Content: fmt.Sprintf("%s @ %s", dbg.loader.ShortName(), dbg.carSummary()),
		}

		cmd, err := dbg.term.TermRead(prompt, dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use %s to end the debugging session", cmdQuit)
				continue
			}
			if curated.Is(err, terminal.UserQuit) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.processCommand(cmd)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// printLine formats the string and passes it to the terminal.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// carSummary is the short description of the car used in the prompt.
func (dbg *Debugger) carSummary() string {
	if dbg.car.Halted() {
		return fmt.Sprintf("(%d,%d) halted", dbg.car.Pos.Row, dbg.car.Pos.Col)
	}
	return fmt.Sprintf("(%d,%d) %s", dbg.car.Pos.Row, dbg.car.Pos.Col, dbg.car.Dir)
}

// step the car once, reporting the new state.
func (dbg *Debugger) step() {
	if dbg.car.Halted() {
		dbg.printLine(terminal.StyleFeedback, "car has halted. use %s to go again", cmdReset)
		return
	}

	dbg.car.Step()

	cell := dbg.prg.Cell(dbg.car.Pos)
	if dbg.car.Halted() {
		dbg.printLine(terminal.StyleCarStep, "step %d: exit reached at (%d,%d)",
			dbg.car.Steps(), dbg.car.Pos.Row, dbg.car.Pos.Col)
	} else {
		dbg.printLine(terminal.StyleCarStep, "step %d: (%d,%d) '%s' heading %s ptr=%d",
			dbg.car.Steps(), dbg.car.Pos.Row, dbg.car.Pos.Col, cell, dbg.car.Dir, dbg.car.Ptr)
	}

	if dbg.onStep != "" {
		err := dbg.processCommand(dbg.onStep)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}
}

// run the car until it halts, the step budget is consumed or the user
// interrupts.
func (dbg *Debugger) run(stepLimit uint64) {
	if dbg.car.Halted() {
		dbg.printLine(terminal.StyleFeedback, "car has halted. use %s to go again", cmdReset)
		return
	}

	startSteps := dbg.car.Steps()

	performanceBrake := 0
	err := dbg.car.Run(func() (engine.State, error) {
		if stepLimit > 0 && dbg.car.Steps()-startSteps >= stepLimit {
			return engine.Ending, nil
		}

		// check for user interrupts now and again
		performanceBrake++
		if performanceBrake >= engine.PerformanceBrake {
			performanceBrake = 0
			select {
			case sig := <-dbg.events.Signal:
				return engine.Ending, dbg.events.SignalHandler(sig)
			default:
			}
		}

		return engine.Running, nil
	})

	taken := dbg.car.Steps() - startSteps

	if err != nil {
		if curated.Is(err, terminal.UserInterrupt) {
			dbg.printLine(terminal.StyleFeedback, "interrupted after %d steps", taken)
			return
		}
		dbg.printLine(terminal.StyleError, "%s", err)
		return
	}

	if dbg.car.Halted() {
		dbg.printLine(terminal.StyleCarStep, "exit reached at (%d,%d) after %d steps",
			dbg.car.Pos.Row, dbg.car.Pos.Col, dbg.car.Steps())
	} else {
		dbg.printLine(terminal.StyleFeedback, "car still going after %d steps", taken)
	}
}

// grid prints the program with the car's current position marked.
func (dbg *Debugger) grid() {
	for row := 0; row < dbg.prg.Rows(); row++ {
		s := strings.Builder{}
		for col := 0; col < dbg.prg.Cols(); col++ {
			coord := program.Coord{Row: row, Col: col}
			if coord == dbg.car.Pos {
				s.WriteString("[")
				s.WriteString(dbg.prg.Cell(coord).String())
				s.WriteString("]")
			} else {
				s.WriteString(" ")
				s.WriteString(dbg.prg.Cell(coord).String())
				s.WriteString(" ")
			}
		}
		dbg.printLine(terminal.StyleFeedback, "%s", s.String())
	}
	dbg.printLine(terminal.StyleFeedback, "car at (%d,%d) heading %s",
		dbg.car.Pos.Row, dbg.car.Pos.Col, dbg.car.Dir)
}

// memoryReport prints the written extent of the tape and the cell under the
// memory pointer.
func (dbg *Debugger) memoryReport() {
	values := convert.Numbers(dbg.tape)
	if len(values) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no memory cells written")
	} else {
		width := len(fmt.Sprintf("%d", len(values)-1))
		for i, v := range values {
			dbg.printLine(terminal.StyleFeedback, "%*d: %s", width, i, v.String())
		}
	}
	dbg.printLine(terminal.StyleFeedback, "ptr=%d tape[ptr]=%s", dbg.car.Ptr, dbg.peek(dbg.car.Ptr))
}

func (dbg *Debugger) peek(idx int) *big.Int {
	return dbg.tape.Peek(idx)
}
