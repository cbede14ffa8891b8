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

package performance

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync/atomic"
	"time"

	"github.com/nqpz/hbcht/convert"
	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/engine"
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/engine/memory"
	"github.com/nqpz/hbcht/program"
	"github.com/nqpz/hbcht/programloader"
	"github.com/nqpz/hbcht/random"
)

// Check the stepping speed of the interpreter using the supplied program.
//
// The car is driven for the specified duration and the number of steps per
// second is reported. A CPU or memory profile is created as specified by the
// profile argument.
func Check(output io.Writer, profile Profile, loader programloader.Loader, dirSpec string, input []string, duration string) error {
	err := loader.Load()
	if err != nil {
		return err
	}

	prg, err := program.Load(loader.Data)
	if err != nil {
		return err
	}

	var d direction.Direction
	if dirSpec == "" {
		d = direction.List[random.NewRandom().Intn(direction.NumDirections)]
	} else {
		var ok bool
		d, ok = direction.Parse(dirSpec)
		if !ok {
			return curated.Errorf("performance: unknown direction (%s)", dirSpec)
		}
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	tape := memory.NewTape()
	if prg.InText {
		convert.SeedText(tape, strings.Join(input, ""))
	} else {
		var parsed []*big.Int
		parsed, err = convert.ParseNumbers(input)
		if err != nil {
			return err
		}
		err = convert.SeedNumbers(tape, parsed)
		if err != nil {
			return err
		}
	}

	car := engine.NewCar(prg, tape, d)

	// expired is set when the measurement duration has elapsed. checking a
	// timer channel on every step is too expensive
	var expired atomic.Bool

	var start time.Time
	var elapsed time.Duration

	runner := func() error {
		timer := time.AfterFunc(dur, func() {
			expired.Store(true)
		})
		defer timer.Stop()

		start = time.Now()

		performanceBrake := 0
		err := car.Run(func() (engine.State, error) {
			performanceBrake++
			if performanceBrake >= engine.PerformanceBrake {
				performanceBrake = 0
				if expired.Load() {
					return engine.Ending, nil
				}
			}
			return engine.Running, nil
		})

		elapsed = time.Since(start)
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	secs := elapsed.Seconds()
	steps := car.Steps()
	fmt.Fprintf(output, "%s: %d steps in %.2f seconds (%.0f steps/sec)\n", d, steps, secs, float64(steps)/secs)
	if car.Halted() {
		fmt.Fprintf(output, "car reached the exit before the measurement period elapsed\n")
	}

	return nil
}
