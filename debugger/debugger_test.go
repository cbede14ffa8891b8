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

package debugger_test

import (
	"testing"
	"time"

	"github.com/nqpz/hbcht/debugger"
	"github.com/nqpz/hbcht/debugger/terminal"
	"github.com/nqpz/hbcht/programloader"
)

type mockTerm struct {
	t      *testing.T
	inp    chan string
	out    chan string
	output []string
}

func newMockTerm(t *testing.T) *mockTerm {
	return &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
	}
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	return <-trm.inp, nil
}

func (trm *mockTerm) TermReadCheck() bool {
	return false
}

func (trm *mockTerm) IsRealTerminal() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	trm.out <- s
}

func (trm *mockTerm) sndInput(s string) {
	trm.output = make([]string, 0, 10)
	trm.inp <- s
}

// rcvOutput drains the output channel. the amount of output sent by the
// debugger is unpredictable so a timeout is necessary. a matter of
// milliseconds should be sufficient.
func (trm *mockTerm) rcvOutput() {
	for {
		select {
		case s := <-trm.out:
			trm.output = append(trm.output, s)
		case <-time.After(10 * time.Millisecond):
			return
		}
	}
}

// cmpOutput compares the string argument with the last line of the most
// recent output.
func (trm *mockTerm) cmpOutput(s string) {
	trm.t.Helper()
	trm.rcvOutput()

	if len(trm.output) == 0 {
		if s != "" {
			trm.t.Errorf("unexpected debugger output (nothing) should be (%s)", s)
		}
		return
	}

	last := trm.output[len(trm.output)-1]
	if last != s {
		trm.t.Errorf("unexpected debugger output (%s) should be (%s)", last, s)
	}
}

func startDebugger(t *testing.T, src string, dirSpec string, input []string) (*mockTerm, chan error) {
	t.Helper()

	trm := newMockTerm(t)

	loader := programloader.NewLoader("test.hb")
	loader.Data = []byte(src)

	dbg, err := debugger.New(trm, loader, dirSpec, input)
	if err != nil {
		t.Fatalf("new debugger: %v", err)
	}

	done := make(chan error)
	go func() {
		done <- dbg.Start()
	}()

	return trm, done
}

func TestSteppingAndRunning(t *testing.T) {
	trm, done := startDebugger(t, "o>v\n..#", "right", nil)

	trm.output = make([]string, 0, 10)
	trm.cmpOutput("direction: right")

	trm.sndInput("CAR")
	trm.cmpOutput("steps: 0")

	trm.sndInput("STEP")
	trm.cmpOutput("step 1: (0,1) '>' heading right ptr=0")

	trm.sndInput("STEP")
	trm.cmpOutput("step 2: (0,2) 'v' heading right ptr=1")

	trm.sndInput("RUN")
	trm.cmpOutput("exit reached at (1,2) after 3 steps")

	trm.sndInput("MEMORY")
	trm.cmpOutput("ptr=1 tape[ptr]=-1")

	trm.sndInput("QUIT")
	if err := <-done; err != nil {
		t.Errorf("debugger ended with error: %v", err)
	}
}

func TestOnStep(t *testing.T) {
	trm, done := startDebugger(t, "o>v\n..#", "right", nil)

	trm.output = make([]string, 0, 10)
	trm.rcvOutput()

	trm.sndInput("ONSTEP")
	trm.cmpOutput("no onstep command")

	trm.sndInput("ONSTEP MEMORY")
	trm.cmpOutput("onstep: MEMORY")

	// the memory report follows every step report
	trm.sndInput("STEP")
	trm.cmpOutput("ptr=0 tape[ptr]=0")

	trm.sndInput("STEP")
	trm.cmpOutput("ptr=1 tape[ptr]=0")

	trm.sndInput("ONSTEP CAR")
	trm.cmpOutput("onstep: CAR")

	// the onstep command also runs after the halting step
	trm.sndInput("STEP")
	trm.cmpOutput("the car has halted")

	// commands that would recurse or end the session are rejected
	trm.sndInput("ONSTEP STEP")
	trm.cmpOutput("ONSTEP cannot run STEP")

	trm.sndInput("ONSTEP OFF")
	trm.cmpOutput("onstep off")

	trm.sndInput("QUIT")
	if err := <-done; err != nil {
		t.Errorf("debugger ended with error: %v", err)
	}
}

func TestResetAndDirection(t *testing.T) {
	trm, done := startDebugger(t, "o#", "right", []string{"5"})

	trm.output = make([]string, 0, 10)
	trm.rcvOutput()

	trm.sndInput("RUN")
	trm.cmpOutput("exit reached at (0,1) after 1 steps")

	trm.sndInput("DIRECTION left")
	trm.cmpOutput("car now heading left")

	trm.sndInput("RESET")
	trm.cmpOutput("car back at (0,0) heading left")

	trm.sndInput("MEMORY")
	trm.cmpOutput("ptr=0 tape[ptr]=5")

	trm.sndInput("NONSENSE")
	trm.cmpOutput("unknown command (NONSENSE)")

	trm.sndInput("QUIT")
	if err := <-done; err != nil {
		t.Errorf("debugger ended with error: %v", err)
	}
}
