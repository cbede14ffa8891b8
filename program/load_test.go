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

package program_test

import (
	"testing"

	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/program"
	"github.com/nqpz/hbcht/test"
)

func TestMinimalProgram(t *testing.T) {
	prg, err := program.Load([]byte("o#"))
	test.ExpectedSuccess(t, err)

	test.Equate(t, prg.Rows(), 1)
	test.Equate(t, prg.Cols(), 2)
	test.Equate(t, prg.Start.Row, 0)
	test.Equate(t, prg.Start.Col, 0)

	// the car start marker reads as a blank cell
	test.Equate(t, prg.Cell(program.Coord{Row: 0, Col: 0}) == program.CellBlank, true)
	test.Equate(t, prg.Cell(program.Coord{Row: 0, Col: 1}) == program.CellExit, true)
}

func TestSymbols(t *testing.T) {
	prg, err := program.Load([]byte("^>v<\n/o.#"))
	test.ExpectedSuccess(t, err)

	test.Equate(t, prg.Cell(program.Coord{Row: 0, Col: 0}) == program.CellUp, true)
	test.Equate(t, prg.Cell(program.Coord{Row: 0, Col: 1}) == program.CellRight, true)
	test.Equate(t, prg.Cell(program.Coord{Row: 0, Col: 2}) == program.CellDown, true)
	test.Equate(t, prg.Cell(program.Coord{Row: 0, Col: 3}) == program.CellLeft, true)
	test.Equate(t, prg.Cell(program.Coord{Row: 1, Col: 0}) == program.CellCompare, true)

	// inert decoration is blank
	test.Equate(t, prg.Cell(program.Coord{Row: 1, Col: 2}) == program.CellBlank, true)
}

func TestComments(t *testing.T) {
	prg, err := program.Load([]byte("o# ; the whole program\n; a full line comment\n"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, prg.Rows(), 1)
	test.Equate(t, prg.Cols(), 2)
}

func TestDirectives(t *testing.T) {
	prg, err := program.Load([]byte("@intext\no#\n@outtext\n"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, prg.InText, true)
	test.Equate(t, prg.OutText, true)

	// directive lines do not contribute grid rows
	test.Equate(t, prg.Rows(), 1)

	_, err = program.Load([]byte("@indent\no#\n"))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, program.UnknownDirective), true)
}

func TestRaggedRowsArePadded(t *testing.T) {
	prg, err := program.Load([]byte("o\n  #\n"))
	test.ExpectedSuccess(t, err)

	test.Equate(t, prg.Rows(), 2)
	test.Equate(t, prg.Cols(), 3)
	test.Equate(t, prg.Cell(program.Coord{Row: 0, Col: 2}) == program.CellBlank, true)
	test.Equate(t, prg.Cell(program.Coord{Row: 1, Col: 2}) == program.CellExit, true)
}

func TestIndentation(t *testing.T) {
	prg, err := program.Load([]byte("  o#\n  ^v\n"))
	test.ExpectedSuccess(t, err)

	// common indentation is removed
	test.Equate(t, prg.Cols(), 2)
	test.Equate(t, prg.Start.Col, 0)
}

func TestValidation(t *testing.T) {
	_, err := program.Load([]byte(""))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, program.NoSource), true)

	_, err = program.Load([]byte("; nothing but a comment"))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, program.NoSource), true)

	_, err = program.Load([]byte("#"))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, program.MissingCar), true)

	_, err = program.Load([]byte("o"))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, program.MissingExit), true)

	_, err = program.Load([]byte("oo#"))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, program.DuplicateCar), true)

	_, err = program.Load([]byte("o##"))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, program.DuplicateExit), true)

	// all parse errors carry the umbrella pattern
	test.Equate(t, curated.Is(err, program.ParseError), true)
}

func TestStringRoundTrip(t *testing.T) {
	prg, err := program.Load([]byte("o>#\n^v<\n"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, prg.String(), "o>#\n^v<\n")
}
