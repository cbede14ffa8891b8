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

// Package engine executes a loaded hbcht program. The Car type is the whole
// of the machine state: grid position, direction and memory pointer, with
// the memory tape attached to it.
//
// The engine is single threaded and fully synchronous. It halts exactly when
// the car reaches the exit cell; it imposes no step bound of its own. A
// driver wishing to bound a run supplies a continueCheck function to Run()
// and counts steps itself.
package engine

import (
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/engine/memory"
	"github.com/nqpz/hbcht/program"
)

// Car is the single mobile agent executing the program.
type Car struct {
	prg *program.Program

	// the memory tape attached to the car for the duration of the run
	Tape *memory.Tape

	// grid position
	Pos program.Coord

	// the direction the car is facing
	Dir direction.Direction

	// the memory pointer. the tape index the car currently stands on
	Ptr int

	halted bool
	steps  uint64
}

// NewCar is the preferred method of initialisation for the Car type. The
// initial direction is chosen by the caller; correctness of an hbcht program
// must not depend on it.
func NewCar(prg *program.Program, tape *memory.Tape, dir direction.Direction) *Car {
	return &Car{
		prg:  prg,
		Tape: tape,
		Pos:  prg.Start,
		Dir:  dir,
	}
}

// Halted returns true once the car has reached the exit cell.
func (car *Car) Halted() bool {
	return car.halted
}

// Steps returns the number of steps the car has taken.
func (car *Car) Steps() uint64 {
	return car.steps
}

// Program returns the program the car is executing.
func (car *Car) Program() *program.Program {
	return car.prg
}
