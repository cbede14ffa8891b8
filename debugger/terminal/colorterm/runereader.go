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

package colorterm

import (
	"bufio"
	"io"
)

type readRune struct {
	r   rune
	err error
}

// runeReader decouples reading from the input file from the TermRead()
// loop. Runes arrive on a channel so that TermRead() can service other
// channels while waiting for input.
type runeReader struct {
	runes chan readRune
}

func initRuneReader(input io.Reader) runeReader {
	rr := runeReader{runes: make(chan readRune)}

	br := bufio.NewReader(input)
	go func() {
		for {
			r, _, err := br.ReadRune()
			rr.runes <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return rr
}
