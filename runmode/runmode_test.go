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

package runmode_test

import (
	"testing"

	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/programloader"
	"github.com/nqpz/hbcht/random"
	"github.com/nqpz/hbcht/runmode"
	"github.com/nqpz/hbcht/test"
)

func loader(src string) programloader.Loader {
	return programloader.Loader{Filename: "test.hb", Data: []byte(src)}
}

func TestIdentityRun(t *testing.T) {
	tw := &test.CompareWriter{}

	err := runmode.Run(tw, loader("o#"), []string{"3", "11"}, runmode.Options{
		Directions: []direction.Direction{direction.Right},
	})
	test.ExpectedSuccess(t, err)

	if !tw.Compare("0: 3\n1: 11\n") {
		t.Errorf("unexpected output: %q", tw.String())
	}
}

func TestEmptyOutput(t *testing.T) {
	tw := &test.CompareWriter{}

	err := runmode.Run(tw, loader("o#"), []string{}, runmode.Options{
		Directions: []direction.Direction{direction.Left},
	})
	test.ExpectedSuccess(t, err)

	if !tw.Compare("") {
		t.Errorf("unexpected output: %q", tw.String())
	}
}

func TestTextRoundTrip(t *testing.T) {
	tw := &test.CompareWriter{}

	err := runmode.Run(tw, loader("@intext\n@outtext\no#"), []string{"hello"}, runmode.Options{
		Directions: []direction.Direction{direction.Right},
	})
	test.ExpectedSuccess(t, err)

	if !tw.Compare("hello\n") {
		t.Errorf("unexpected output: %q", tw.String())
	}
}

func TestOverrides(t *testing.T) {
	tw := &test.CompareWriter{}

	// force text output on a program without the @outtext directive
	err := runmode.Run(tw, loader("o#"), []string{"72", "105"}, runmode.Options{
		Directions: []direction.Direction{direction.Right},
		OutText:    runmode.ForceOn,
	})
	test.ExpectedSuccess(t, err)

	if !tw.Compare("Hi\n") {
		t.Errorf("unexpected output: %q", tw.String())
	}

	// force the directive off again
	tw.Clear()
	err = runmode.Run(tw, loader("@outtext\no#"), []string{"72", "105"}, runmode.Options{
		Directions: []direction.Direction{direction.Right},
		OutText:    runmode.ForceOff,
	})
	test.ExpectedSuccess(t, err)

	if !tw.Compare("0: 72\n1: 105\n") {
		t.Errorf("unexpected output: %q", tw.String())
	}
}

func TestNegativeInput(t *testing.T) {
	tw := &test.CompareWriter{}

	err := runmode.Run(tw, loader("o#"), []string{"-1"}, runmode.Options{
		Directions: []direction.Direction{direction.Right},
	})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, "negative value (%s)"), true)
}

func TestAllDirections(t *testing.T) {
	tw := &test.CompareWriter{}

	// on a single row grid the up and down paths never leave the start cell.
	// the step budget reports them as not halting while the right and left
	// paths still produce their output
	err := runmode.Run(tw, loader("o#"), []string{"5"}, runmode.Options{
		AllDirections: true,
		StepLimit:     100,
	})

	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, runmode.Timeout), true)

	expected := "up:\n(did not halt within 100 steps)\n" +
		"\nright:\n0: 5\n" +
		"\ndown:\n(did not halt within 100 steps)\n" +
		"\nleft:\n0: 5\n"
	if !tw.Compare(expected) {
		t.Errorf("unexpected output: %q", tw.String())
	}
}

func TestDirectionIsolation(t *testing.T) {
	tw := &test.CompareWriter{}

	// the same mutating run twice. the second run must start from the
	// seeded tape, not from the first run's result
	err := runmode.Run(tw, loader("o>v\n..#"), []string{"7", "7"}, runmode.Options{
		Directions: []direction.Direction{direction.Right, direction.Right},
	})
	test.ExpectedSuccess(t, err)

	expected := "right:\n0: 7\n1: 6\n" +
		"\nright:\n0: 7\n1: 6\n"
	if !tw.Compare(expected) {
		t.Errorf("unexpected output: %q", tw.String())
	}
}

func TestInjectedRandomness(t *testing.T) {
	// two zero-seeded runs choose the same random direction
	run := func() string {
		tw := &test.CompareWriter{}
		rnd := random.NewRandom()
		rnd.ZeroSeed = true

		err := runmode.Run(tw, loader("o#"), []string{"1"}, runmode.Options{
			StepLimit: 100,
			Rand:      rnd,
		})
		if err != nil && !curated.Is(err, runmode.Timeout) {
			t.Fatalf("unexpected error: %v", err)
		}
		return tw.String()
	}

	test.Equate(t, run(), run())
}
