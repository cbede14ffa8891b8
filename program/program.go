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

// Package program defines the representation of a loaded hbcht program: the
// rectangular grid of cell symbols, the car's start coordinate and the I/O
// directives. The representation is immutable once loaded and can be shared
// freely between concurrent runs.
package program

import (
	"strings"
)

// Coord addresses a cell in the grid. Rows and columns are 0-indexed from
// the top-left corner.
type Coord struct {
	Row int
	Col int
}

// Program is the loaded representation of an hbcht source file. It is
// read-only: nothing mutates a Program after Load() has returned it.
type Program struct {
	grid [][]Cell

	// the coordinate of the car start marker
	Start Coord

	// directive flags. true if the corresponding @intext/@outtext directive
	// appears in the source
	InText  bool
	OutText bool
}

// Rows returns the number of rows in the grid.
func (prg *Program) Rows() int {
	return len(prg.grid)
}

// Cols returns the number of columns in the grid.
func (prg *Program) Cols() int {
	return len(prg.grid[0])
}

// Cell returns the symbol at the specified coordinate.
func (prg *Program) Cell(c Coord) Cell {
	return prg.grid[c.Row][c.Col]
}

// String returns the grid as source text. The car start marker is restored
// to its coordinate.
func (prg *Program) String() string {
	s := strings.Builder{}
	for r := range prg.grid {
		for c := range prg.grid[r] {
			if r == prg.Start.Row && c == prg.Start.Col {
				s.WriteString("o")
			} else {
				s.WriteString(prg.grid[r][c].String())
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}
