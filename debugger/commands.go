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
	"sort"
	"strconv"
	"strings"

	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/debugger/terminal"
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/logger"
)

// debugger commands.
const (
	cmdCar       = "CAR"
	cmdDirection = "DIRECTION"
	cmdGrid      = "GRID"
	cmdHelp      = "HELP"
	cmdLog       = "LOG"
	cmdMemory    = "MEMORY"
	cmdOnStep    = "ONSTEP"
	cmdQuit      = "QUIT"
	cmdReset     = "RESET"
	cmdRun       = "RUN"
	cmdStep      = "STEP"
)

var helps = map[string]string{
	cmdCar:       "Report the position, direction and step count of the car",
	cmdDirection: "Change the direction the car is facing",
	cmdGrid:      "Print the program grid with the car's position marked",
	cmdHelp:      "Lists commands and provides help for individual commands",
	cmdLog:       "Display the log of recent activity",
	cmdMemory:    "Print the written extent of the memory tape",
	cmdOnStep:    "Run a command after every step of the car. OFF to disable",
	cmdQuit:      "End the debugging session",
	cmdReset:     "Put the car back at the start cell with a fresh memory tape",
	cmdRun:       "Drive the car until it reaches the exit or is interrupted",
	cmdStep:      "Move the car forward one step, or the number of steps given",
}

// commandList returns the command names in alphabetical order.
func commandList() []string {
	l := make([]string, 0, len(helps))
	for c := range helps {
		l = append(l, c)
	}
	sort.Strings(l)
	return l
}

// tabCompletion is a simple prefix completion over the command names.
type tabCompletion struct {
	options []string
}

func newTabCompletion() *tabCompletion {
	return &tabCompletion{options: commandList()}
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	// only the command word is completed
	if strings.ContainsAny(input, " ") {
		return input
	}

	for _, opt := range tc.options {
		if strings.HasPrefix(opt, strings.ToUpper(input)) {
			return opt + " "
		}
	}

	return input
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
}

// processCommand parses a single line of input and acts on it.
func (dbg *Debugger) processCommand(cmd string) error {
	toks := strings.Fields(cmd)
	if len(toks) == 0 {
		return nil
	}

	arg := ""
	if len(toks) > 1 {
		arg = toks[1]
	}

	switch strings.ToUpper(toks[0]) {
	case cmdHelp:
		if arg == "" {
			for _, c := range commandList() {
				dbg.printLine(terminal.StyleHelp, "%s", c)
			}
			return nil
		}
		h, ok := helps[strings.ToUpper(arg)]
		if !ok {
			return curated.Errorf("no help for %s", strings.ToUpper(arg))
		}
		dbg.printLine(terminal.StyleHelp, "%s", h)

	case cmdStep:
		n := 1
		if arg != "" {
			var err error
			n, err = strconv.Atoi(arg)
			if err != nil || n < 1 {
				return curated.Errorf("%s requires a positive number of steps", cmdStep)
			}
		}
		for i := 0; i < n && !dbg.car.Halted(); i++ {
			dbg.step()
		}
		if dbg.car.Halted() && n > 1 {
			dbg.printLine(terminal.StyleFeedback, "car has halted")
		}

	case cmdRun:
		var stepLimit uint64
		if arg != "" {
			var err error
			stepLimit, err = strconv.ParseUint(arg, 10, 64)
			if err != nil || stepLimit == 0 {
				return curated.Errorf("%s takes a positive step budget", cmdRun)
			}
		}
		dbg.run(stepLimit)

	case cmdGrid:
		dbg.grid()

	case cmdMemory:
		dbg.memoryReport()

	case cmdCar:
		dbg.printLine(terminal.StyleFeedback, "position: (%d,%d)", dbg.car.Pos.Row, dbg.car.Pos.Col)
		dbg.printLine(terminal.StyleFeedback, "direction: %s", dbg.car.Dir)
		dbg.printLine(terminal.StyleFeedback, "steps: %d", dbg.car.Steps())
		if dbg.car.Halted() {
			dbg.printLine(terminal.StyleFeedback, "the car has halted")
		}

	case cmdDirection:
		if arg == "" {
			dbg.printLine(terminal.StyleFeedback, "direction: %s", dbg.car.Dir)
			return nil
		}
		d, ok := direction.Parse(arg)
		if !ok {
			return curated.Errorf("unknown direction (%s)", arg)
		}
		dbg.dir = d
		dbg.car.Dir = d
		dbg.printLine(terminal.StyleFeedback, "car now heading %s", d)

	case cmdReset:
		err := dbg.reset()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "car back at (%d,%d) heading %s",
			dbg.car.Pos.Row, dbg.car.Pos.Col, dbg.car.Dir)

	case cmdOnStep:
		if arg == "" {
			if dbg.onStep == "" {
				dbg.printLine(terminal.StyleFeedback, "no onstep command")
			} else {
				dbg.printLine(terminal.StyleFeedback, "onstep: %s", dbg.onStep)
			}
			return nil
		}
		if strings.ToUpper(arg) == "OFF" {
			dbg.onStep = ""
			dbg.printLine(terminal.StyleFeedback, "onstep off")
			return nil
		}
		onStep := strings.Join(toks[1:], " ")
		switch strings.ToUpper(toks[1]) {
		case cmdOnStep, cmdStep, cmdRun, cmdQuit:
			return curated.Errorf("%s cannot run %s", cmdOnStep, strings.ToUpper(toks[1]))
		}
		dbg.onStep = onStep
		dbg.printLine(terminal.StyleFeedback, "onstep: %s", dbg.onStep)

	case cmdLog:
		logger.Write(&styledWriter{dbg: dbg, style: terminal.StyleLog})

	case cmdQuit:
		dbg.running = false

	default:
		return curated.Errorf("unknown command (%s)", toks[0])
	}

	return nil
}

// styledWriter presents an io.Writer interface to a styled terminal.
type styledWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (w *styledWriter) Write(p []byte) (int, error) {
	w.dbg.term.TermPrintLine(w.style, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
