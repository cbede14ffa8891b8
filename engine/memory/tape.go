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

// Package memory implements the memory tape of the car. The tape is indexed
// by signed integers, unbounded in both directions. Cells hold
// arbitrary-precision integers and unwritten cells read as zero.
//
// The tape records the highest non-negative index that has ever been
// written. Output formatting uses this to decide how many cells to report.
// Negative indices are never reported; they can only be reached by the
// program itself, never by input seeding.
package memory

import (
	"math/big"
)

// Tape is the memory of the car. Create with NewTape().
type Tape struct {
	cells map[int]*big.Int

	// highest non-negative index ever written. -1 if no such index has been
	// written
	highest int
}

// NewTape is the preferred method of initialisation for the Tape type. A new
// tape reads zero at every index.
func NewTape() *Tape {
	return &Tape{
		cells:   make(map[int]*big.Int),
		highest: -1,
	}
}

// mark a written index. only non-negative indices take part in output
func (tp *Tape) written(idx int) {
	if idx >= 0 && idx > tp.highest {
		tp.highest = idx
	}
}

// Peek the value at the specified index. The returned value is a copy and
// can be freely modified by the caller.
func (tp *Tape) Peek(idx int) *big.Int {
	if v, ok := tp.cells[idx]; ok {
		return new(big.Int).Set(v)
	}
	return new(big.Int)
}

// Poke a value into the specified index. The value is copied into the tape.
func (tp *Tape) Poke(idx int, v *big.Int) {
	tp.cells[idx] = new(big.Int).Set(v)
	tp.written(idx)
}

// Inc increments the value at the specified index.
func (tp *Tape) Inc(idx int) {
	tp.add(idx, 1)
}

// Dec decrements the value at the specified index.
func (tp *Tape) Dec(idx int) {
	tp.add(idx, -1)
}

func (tp *Tape) add(idx int, delta int64) {
	v, ok := tp.cells[idx]
	if !ok {
		v = new(big.Int)
		tp.cells[idx] = v
	}
	v.Add(v, big.NewInt(delta))
	tp.written(idx)
}

// Highest returns the highest non-negative index that has ever been written,
// or -1 if no non-negative index has been written.
func (tp *Tape) Highest() int {
	return tp.highest
}

// Cmp compares the values at two indices, returning -1, 0 or +1 in the
// manner of big.Int.Cmp().
func (tp *Tape) Cmp(idxA, idxB int) int {
	a, okA := tp.cells[idxA]
	b, okB := tp.cells[idxB]
	if !okA {
		a = new(big.Int)
	}
	if !okB {
		b = new(big.Int)
	}
	return a.Cmp(b)
}

// Snapshot returns a deep copy of the tape. The copy is independent of the
// original.
func (tp *Tape) Snapshot() *Tape {
	n := NewTape()
	for idx, v := range tp.cells {
		n.cells[idx] = new(big.Int).Set(v)
	}
	n.highest = tp.highest
	return n
}
