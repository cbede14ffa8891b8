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

// Package direction implements the direction and turn algebra of the car.
// The four absolute directions form a clockwise cycle, Up to Right to Down
// to Left and back to Up. A turn is the cyclic distance between two absolute
// directions.
//
// The half-broken car cannot turn left. The Relative() function is the single
// place where a prospective turn is classified; callers test the result
// against Left to decide whether a road sign must be ignored.
package direction

import (
	"strings"
)

// Direction is one of the four absolute directions the car can face.
type Direction int

// The four absolute directions, in clockwise order. The order is significant:
// turn arithmetic is modulo arithmetic on these values.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections is the number of absolute directions.
const NumDirections = 4

// List of all absolute directions, in clockwise order.
var List = [NumDirections]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// TurnedRight returns the direction one clockwise step from d.
func (d Direction) TurnedRight() Direction {
	return Direction((int(d) + 1) % NumDirections)
}

// Turn classifies a change of direction relative to the car's current
// heading.
type Turn int

// The four relative turns. The numeric value of a Turn is the number of
// clockwise steps between the two directions.
const (
	Straight Turn = iota
	TurnRight
	Reverse
	TurnLeft
)

func (t Turn) String() string {
	switch t {
	case Straight:
		return "straight"
	case TurnRight:
		return "right"
	case Reverse:
		return "reverse"
	case TurnLeft:
		return "left"
	}
	return "unknown"
}

// Relative returns the turn the car would make changing from one direction
// to another.
func Relative(from, to Direction) Turn {
	return Turn((int(to) - int(from) + NumDirections) % NumDirections)
}

// Parse converts a direction name to a Direction. Single letter
// abbreviations are accepted.
func Parse(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "u", "up":
		return Up, true
	case "r", "right":
		return Right, true
	case "d", "down":
		return Down, true
	case "l", "left":
		return Left, true
	}
	return Up, false
}
