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

package translate_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/nqpz/hbcht/engine"
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/engine/memory"
	"github.com/nqpz/hbcht/program"
	"github.com/nqpz/hbcht/test"
	"github.com/nqpz/hbcht/translate"
)

const testStepLimit = 100000

// runEngine interprets the program directly and returns the final tape, or
// nil if the car did not halt within the step limit.
func runEngine(t *testing.T, prg *program.Program, d direction.Direction, seed []int) *memory.Tape {
	t.Helper()

	tape := memory.NewTape()
	for i, v := range seed {
		tape.Poke(i, big.NewInt(int64(v)))
	}

	car := engine.NewCar(prg, tape, d)
	err := car.Run(func() (engine.State, error) {
		if car.Steps() >= testStepLimit {
			return engine.Ending, nil
		}
		return engine.Running, nil
	})
	if err != nil {
		t.Fatalf("engine run: %v", err)
	}
	if !car.Halted() {
		return nil
	}
	return tape
}

// runCompiled evaluates the compiled command list and returns the final
// tape, or nil if the program did not exit within the step limit.
func runCompiled(t *testing.T, cc *translate.Compilation, d direction.Direction, seed []int) *memory.Tape {
	t.Helper()

	tape := memory.NewTape()
	for i, v := range seed {
		tape.Poke(i, big.NewInt(int64(v)))
	}

	if !cc.Run(tape, d, testStepLimit) {
		return nil
	}
	return tape
}

// agreement between the engine and the compiled form of the same program is
// the property every other test in this package leans on.
func testAgreement(t *testing.T, src string, seed []int) {
	t.Helper()

	prg, err := program.Load([]byte(src))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cc := translate.Compile(prg)

	for _, d := range direction.List {
		want := runEngine(t, prg, d, seed)
		got := runCompiled(t, cc, d, seed)

		if (want == nil) != (got == nil) {
			t.Errorf("%s: engine halted=%v, compiled halted=%v", d, want != nil, got != nil)
			continue
		}
		if want == nil {
			continue
		}

		if want.Highest() != got.Highest() {
			t.Errorf("%s: engine highest=%d, compiled highest=%d", d, want.Highest(), got.Highest())
			continue
		}
		for i := 0; i <= want.Highest(); i++ {
			if want.Peek(i).Cmp(got.Peek(i)) != 0 {
				t.Errorf("%s: cell %d: engine=%s, compiled=%s", d, i, want.Peek(i), got.Peek(i))
			}
		}
	}
}

func TestAgreementTwoCell(t *testing.T) {
	testAgreement(t, "o#", nil)
	testAgreement(t, "o#", []int{3, 11})
}

func TestAgreementOperators(t *testing.T) {
	testAgreement(t, "o>v\n..#", nil)
	testAgreement(t, "o>v\n..#", []int{5})
}

func TestAgreementCompare(t *testing.T) {
	// equal cells turn the car right, unequal cells let it pass
	testAgreement(t, "o>/.\n..#.", nil)
	testAgreement(t, "o>/.\n..#.", []int{3})
	testAgreement(t, "o>/.\n..#.", []int{3, 3})
}

func TestAgreementLeftTurnSuppression(t *testing.T) {
	testAgreement(t, "o^#", nil)
}

func TestCompileEntries(t *testing.T) {
	prg, err := program.Load([]byte("o#"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cc := translate.Compile(prg)

	// each direction gets a valid entry point
	for _, d := range direction.List {
		e := cc.Entry[int(d)]
		if e < 0 || e >= len(cc.Commands) {
			t.Errorf("%s: entry %d out of range", d, e)
		}
	}

	// heading right the car exits immediately
	entry := cc.Entry[int(direction.Right)]
	test.Equate(t, cc.Commands[entry].Op == translate.Exit, true)
}

func TestNonHaltingCompilation(t *testing.T) {
	// a car travelling vertically in a one row program never reaches the
	// exit. the compiled form detects the blank cycle rather than spinning
	prg, err := program.Load([]byte("o.#"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cc := translate.Compile(prg)

	tape := memory.NewTape()
	test.ExpectedFailure(t, cc.Run(tape, direction.Up, testStepLimit))
	test.ExpectedFailure(t, cc.Run(tape, direction.Down, testStepLimit))
	test.ExpectedSuccess(t, cc.Run(tape, direction.Right, testStepLimit))
}

func TestCSource(t *testing.T) {
	prg, err := program.Load([]byte("o>v\n..#"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cc := translate.Compile(prg)

	b := &strings.Builder{}
	err = translate.CWriter{}.Write(b, "sample", prg, cc)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	src := b.String()

	for _, want := range []string{
		"long long *hbcht_run(int dir",
		"int main(int argc, char **argv)",
		"switch (dir) {",
		"case 3: goto c",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated C missing %q", want)
		}
	}
}

func TestCSourceFunctionOnly(t *testing.T) {
	prg, err := program.Load([]byte("o#"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cc := translate.Compile(prg)

	b := &strings.Builder{}
	err = translate.CWriter{FunctionOnly: true}.Write(b, "sample", prg, cc)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Contains(b.String(), "int main") {
		t.Errorf("function only output contains main()")
	}
}
