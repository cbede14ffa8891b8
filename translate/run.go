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

package translate

import (
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/engine/memory"
)

// Run the compiled command list against a memory tape. The compiled form
// must agree with the engine on every program; the engine remains the
// reference.
//
// Returns true if the exit command was reached within the step limit. A
// step limit of zero means no limit.
func (cc *Compilation) Run(tape *memory.Tape, d direction.Direction, stepLimit uint64) bool {
	pc := cc.Entry[int(d)]
	ptr := 0

	var steps uint64

	for {
		if stepLimit > 0 {
			steps++
			if steps > stepLimit {
				return false
			}
		}

		switch cmd := cc.Commands[pc]; cmd.Op {
		case Goto:
			if cmd.Arg == pc {
				// a self referencing goto never terminates
				return false
			}
			pc = cmd.Arg

		case Compare:
			if tape.Cmp(ptr, ptr-1) != 0 {
				pc = cmd.Arg
			} else {
				pc++
			}

		case Increment:
			tape.Inc(ptr)
			pc++

		case Decrement:
			tape.Dec(ptr)
			pc++

		case Next:
			ptr++
			pc++

		case Prev:
			ptr--
			pc++

		case Exit:
			return true
		}
	}
}
