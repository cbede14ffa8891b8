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
	"strings"

	"github.com/nqpz/hbcht/curated"
)

// ParseError is the umbrella pattern for all errors returned by the Load()
// function. The wrapped patterns below identify the specific failure.
const ParseError = "parser: %v"

// The specific failure patterns wrapped inside ParseError.
const (
	NoSource         = "no source code"
	MissingCar       = "program must have one car"
	DuplicateCar     = "program can only have one car"
	MissingExit      = "program must have one exit"
	DuplicateExit    = "program can only have one exit"
	UnknownDirective = "unrecognised directive (%s)"
)

// comment marker. everything from the marker to the end of the line is
// discarded
const commentMarker = ";"

// directive lines configure I/O and do not contribute grid rows
const (
	directiveMarker  = "@"
	directiveInText  = "@intext"
	directiveOutText = "@outtext"
)

// Load parses hbcht source text into a Program.
func Load(data []byte) (*Program, error) {
	prg := &Program{}

	lines := make([]string, 0)

	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, directiveMarker) {
			token := strings.Fields(line)[0]
			switch token {
			case directiveInText:
				prg.InText = true
			case directiveOutText:
				prg.OutText = true
			default:
				return nil, curated.Errorf(ParseError, curated.Errorf(UnknownDirective, token))
			}
			continue
		}

		// remove eventual comment
		if idx := strings.Index(line, commentMarker); idx >= 0 {
			line = line[:idx]
		}

		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil, curated.Errorf(ParseError, curated.Errorf(NoSource))
	}

	// remove common indentation
	minIndent := len(lines[0])
	for _, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < minIndent {
			minIndent = indent
		}
		if minIndent == 0 {
			break
		}
	}
	if minIndent > 0 {
		for i := range lines {
			lines[i] = lines[i][minIndent:]
		}
	}

	// the grid is padded to the width of the widest row. out-of-range cells
	// in the source are blank
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	hasCar := false
	hasExit := false

	prg.grid = make([][]Cell, len(lines))
	for r, line := range lines {
		row := make([]Cell, width)
		for c, ch := range []byte(line) {
			switch ch {
			case '^':
				row[c] = CellUp
			case '>':
				row[c] = CellRight
			case 'v':
				row[c] = CellDown
			case '<':
				row[c] = CellLeft
			case '/':
				row[c] = CellCompare
			case '#':
				if hasExit {
					return nil, curated.Errorf(ParseError, curated.Errorf(DuplicateExit))
				}
				hasExit = true
				row[c] = CellExit
			case 'o':
				if hasCar {
					return nil, curated.Errorf(ParseError, curated.Errorf(DuplicateCar))
				}
				hasCar = true
				prg.Start = Coord{Row: r, Col: c}
				row[c] = CellBlank
			default:
				row[c] = CellBlank
			}
		}
		prg.grid[r] = row
	}

	if !hasCar {
		return nil, curated.Errorf(ParseError, curated.Errorf(MissingCar))
	}
	if !hasExit {
		return nil, curated.Errorf(ParseError, curated.Errorf(MissingExit))
	}

	return prg, nil
}
