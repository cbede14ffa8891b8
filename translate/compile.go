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

// Package translate flattens a program into a linear command list and emits
// equivalent source code in a target language. It is a pure consumer of the
// loaded program representation: it reproduces the semantics of the engine
// without using it.
//
// Because the car cannot turn left, the path taken from any cell depends
// only on that cell and the direction of arrival. The compiler walks the
// grid from the car's start in each of the four initial directions,
// memoising on (coordinate, direction) pairs, and so terminates even for
// programs that loop forever.
package translate

import (
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/program"
)

// Opcode of a single flattened command.
type Opcode int

// The valid opcodes. Compare falls through to the next command when the
// compared cells are equal and jumps to its argument when they are not,
// mirroring the fact that an unequal comparison leaves the car going
// straight.
const (
	Goto Opcode = iota
	Compare
	Increment
	Decrement
	Next
	Prev
	Exit
)

func (op Opcode) String() string {
	switch op {
	case Goto:
		return "goto"
	case Compare:
		return "cmp"
	case Increment:
		return "inc"
	case Decrement:
		return "dec"
	case Next:
		return "next"
	case Prev:
		return "prev"
	case Exit:
		return "exit"
	}
	return "unknown"
}

// Command is a single flattened command. Arg is meaningful for the Goto and
// Compare opcodes only.
type Command struct {
	Op  Opcode
	Arg int
}

// Compilation is the flattened form of a program: one command list with an
// entry point per initial direction.
type Compilation struct {
	Commands []Command
	Entry    [direction.NumDirections]int
}

// graph node kinds are opcodes. a node with the Goto opcode marks a path
// that cycles through blank cells forever
type node struct {
	op Opcode

	// the node that follows. for Compare this is the not-equal (straight)
	// path
	next int

	// for Compare: the equal (right turn) path
	alt int
}

type state struct {
	pos program.Coord
	dir direction.Direction
}

type compiler struct {
	prg   *program.Program
	nodes []node
	memo  map[state]int
}

// Compile flattens the program.
func Compile(prg *program.Program) *Compilation {
	cmp := &compiler{
		prg:  prg,
		memo: make(map[state]int),
	}

	var entries [direction.NumDirections]int
	for i, d := range direction.List {
		entries[i] = cmp.node(prg.Start, d)
	}

	return cmp.linearise(entries)
}

func advance(prg *program.Program, pos program.Coord, dir direction.Direction) program.Coord {
	switch dir {
	case direction.Up:
		pos.Row = (pos.Row - 1 + prg.Rows()) % prg.Rows()
	case direction.Down:
		pos.Row = (pos.Row + 1) % prg.Rows()
	case direction.Left:
		pos.Col = (pos.Col - 1 + prg.Cols()) % prg.Cols()
	case direction.Right:
		pos.Col = (pos.Col + 1) % prg.Cols()
	}
	return pos
}

// node returns the id of the node reached from the given coordinate and
// direction, creating it if necessary.
func (cmp *compiler) node(pos program.Coord, dir direction.Direction) int {
	// walk through cells that have no effect: blanks and signs that would
	// turn the car left. a revisited state means the path cycles forever
	seen := make(map[state]bool)
	for {
		cell := cmp.prg.Cell(pos)
		if cell == program.CellExit || cell == program.CellCompare {
			break
		}
		if to, ok := cell.Direction(); ok {
			if direction.Relative(dir, to) != direction.TurnLeft {
				break
			}
		}

		s := state{pos: pos, dir: dir}
		if seen[s] {
			// an endless drive through heavy traffic
			id := len(cmp.nodes)
			cmp.nodes = append(cmp.nodes, node{op: Goto})
			cmp.nodes[id].next = id
			return id
		}
		seen[s] = true
		pos = advance(cmp.prg, pos, dir)
	}

	s := state{pos: pos, dir: dir}
	if id, ok := cmp.memo[s]; ok {
		return id
	}

	id := len(cmp.nodes)
	cmp.nodes = append(cmp.nodes, node{})
	cmp.memo[s] = id

	switch cell := cmp.prg.Cell(pos); cell {
	case program.CellExit:
		cmp.nodes[id].op = Exit

	case program.CellCompare:
		cmp.nodes[id].op = Compare
		right := dir.TurnedRight()
		cmp.nodes[id].next = cmp.node(advance(cmp.prg, pos, dir), dir)
		cmp.nodes[id].alt = cmp.node(advance(cmp.prg, pos, right), right)

	default:
		switch cell {
		case program.CellUp:
			cmp.nodes[id].op = Increment
		case program.CellDown:
			cmp.nodes[id].op = Decrement
		case program.CellRight:
			cmp.nodes[id].op = Next
		case program.CellLeft:
			cmp.nodes[id].op = Prev
		}
		to, _ := cell.Direction()
		cmp.nodes[id].next = cmp.node(advance(cmp.prg, pos, to), to)
	}

	return id
}

// linearise the node graph into a command list. nodes are emitted in chains,
// with explicit Goto commands where a chain meets an already emitted node.
func (cmp *compiler) linearise(entries [direction.NumDirections]int) *Compilation {
	cc := &Compilation{}

	// command index of each emitted node
	placed := make(map[int]int)

	// Compare commands whose not-equal target was not yet placed, keyed by
	// command index against node id
	fixups := make(map[int]int)

	var emitChain func(id int)
	emitChain = func(id int) {
		for {
			if at, ok := placed[id]; ok {
				cc.Commands = append(cc.Commands, Command{Op: Goto, Arg: at})
				return
			}

			placed[id] = len(cc.Commands)
			n := cmp.nodes[id]

			switch n.op {
			case Exit:
				cc.Commands = append(cc.Commands, Command{Op: Exit})
				return

			case Goto:
				// a cycle of blank cells. jump to self
				cc.Commands = append(cc.Commands, Command{Op: Goto, Arg: placed[id]})
				return

			case Compare:
				at := len(cc.Commands)
				cc.Commands = append(cc.Commands, Command{Op: Compare})
				if target, ok := placed[n.next]; ok {
					cc.Commands[at].Arg = target
				} else {
					fixups[at] = n.next
				}
				// fall through into the equal (right turn) path
				id = n.alt

			default:
				cc.Commands = append(cc.Commands, Command{Op: n.op})
				id = n.next
			}
		}
	}

	for i, id := range entries {
		if at, ok := placed[id]; ok {
			cc.Entry[i] = at
		} else {
			cc.Entry[i] = len(cc.Commands)
			emitChain(id)
		}
	}

	// emit any not-equal paths that were never reached by a chain and patch
	// the Compare commands that point to them
	for len(fixups) > 0 {
		for at, id := range fixups {
			if target, ok := placed[id]; ok {
				cc.Commands[at].Arg = target
				delete(fixups, at)
			} else {
				emitChain(id)
			}
		}
	}

	return cc
}
