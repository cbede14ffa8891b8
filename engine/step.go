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

import (
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/program"
)

// Step executes the cell at the car's current position and advances the car
// one cell. A step on the exit cell halts the car without advancing it.
// Stepping a halted car does nothing.
func (car *Car) Step() {
	if car.halted {
		return
	}

	switch cell := car.prg.Cell(car.Pos); cell {
	case program.CellExit:
		car.halted = true
		return

	case program.CellBlank:
		// no state change

	case program.CellCompare:
		// compare the cell the car stands on with the cell to its left. equal
		// values turn the car right; unequal values leave it going straight.
		// the turn is defined directly as a right turn so it is never
		// suppressed. no memory mutation in either branch
		if car.Tape.Cmp(car.Ptr, car.Ptr-1) == 0 {
			car.Dir = car.Dir.TurnedRight()
		}

	default:
		// an operator symbol. a sign that would turn the car left is ignored
		// entirely: no direction change and no memory effect
		to, _ := cell.Direction()
		if direction.Relative(car.Dir, to) != direction.TurnLeft {
			switch cell {
			case program.CellRight:
				car.Ptr++
			case program.CellLeft:
				car.Ptr--
			case program.CellUp:
				car.Tape.Inc(car.Ptr)
			case program.CellDown:
				car.Tape.Dec(car.Ptr)
			}
			car.Dir = to
		}
	}

	car.advance()
	car.steps++
}

// advance the car one cell in its current direction. each axis wraps
// independently
func (car *Car) advance() {
	switch car.Dir {
	case direction.Up:
		car.Pos.Row = (car.Pos.Row - 1 + car.prg.Rows()) % car.prg.Rows()
	case direction.Down:
		car.Pos.Row = (car.Pos.Row + 1) % car.prg.Rows()
	case direction.Left:
		car.Pos.Col = (car.Pos.Col - 1 + car.prg.Cols()) % car.prg.Cols()
	case direction.Right:
		car.Pos.Col = (car.Pos.Col + 1) % car.prg.Cols()
	}
}
