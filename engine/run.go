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

package engine

// State is returned from a continueCheck function to control the Run()
// function.
type State int

// A list of valid State values.
const (
	// continue running
	Running State = iota

	// stop running even though the car has not reached the exit
	Ending
)

// PerformanceBrake is a sensible value for how many steps to take between
// expensive checks in a continueCheck function.
const PerformanceBrake = 100

// Run the car until it reaches the exit cell, or until continueCheck returns
// Ending or an error.
//
// continueCheck is called after every step. nil is an allowed value and
// means the run is unbounded. Note that a program that never reaches the
// exit is a valid program: an unbounded run of it will never return.
func (car *Car) Run(continueCheck func() (State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (State, error) { return Running, nil }
	}

	for !car.halted {
		car.Step()

		state, err := continueCheck()
		if err != nil {
			return err
		}
		if state == Ending {
			break
		}
	}

	return nil
}
