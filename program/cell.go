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

package program

import (
	"github.com/nqpz/hbcht/engine/direction"
)

// Cell is the symbol in a single grid cell.
type Cell byte

// The valid cell symbols. The car start marker is not among them: it marks
// the start coordinate during loading and is stored as CellBlank in the
// grid.
const (
	CellBlank Cell = iota
	CellUp
	CellRight
	CellDown
	CellLeft
	CellCompare
	CellExit
)

func (c Cell) String() string {
	switch c {
	case CellUp:
		return "^"
	case CellRight:
		return ">"
	case CellDown:
		return "v"
	case CellLeft:
		return "<"
	case CellCompare:
		return "/"
	case CellExit:
		return "#"
	}
	return " "
}

// Direction returns the absolute direction associated with an operator
// symbol. The second return value is false for symbols that have no
// associated direction.
func (c Cell) Direction() (direction.Direction, bool) {
	switch c {
	case CellUp:
		return direction.Up, true
	case CellRight:
		return direction.Right, true
	case CellDown:
		return direction.Down, true
	case CellLeft:
		return direction.Left, true
	}
	return direction.Up, false
}
