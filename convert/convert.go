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

// Package convert maps between the memory tape and the outside world.
//
// On the input side, a sequence of non-negative integers (or, in text mode,
// the ordinal values of a string's characters) is written to tape indices 0
// upwards before a run starts.
//
// On the output side, the values at indices 0 up to the highest index ever
// written are reported in order. Cells that were never touched but lie below
// a touched cell are reported as 0. Negative indices are never reported: the
// program can use them as private state.
package convert

import (
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/engine/memory"
)

// InputError is the umbrella pattern for errors on the input side.
const InputError = "input: %v"

// OutputEncodingError is the umbrella pattern for errors when formatting
// tape values as text.
const OutputEncodingError = "output: %v"

// The specific failure patterns wrapped inside the umbrella patterns.
const (
	NegativeInput = "negative value (%s)"
	NotANumber    = "not a number (%s)"
	NotACharacter = "value outside character range (%s)"
)

// ParseNumbers converts command line arguments to input values. Values are
// arbitrary-precision and must be non-negative.
func ParseNumbers(args []string) ([]*big.Int, error) {
	values := make([]*big.Int, 0, len(args))
	for _, arg := range args {
		v, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			return nil, curated.Errorf(InputError, curated.Errorf(NotANumber, arg))
		}
		values = append(values, v)
	}
	return values, nil
}

// SeedNumbers writes the input values to tape indices 0 upwards. A negative
// input value is an error: only the program itself can put negative-indexed
// or externally invisible state on the tape.
func SeedNumbers(tape *memory.Tape, values []*big.Int) error {
	for i, v := range values {
		if v.Sign() < 0 {
			return curated.Errorf(InputError, curated.Errorf(NegativeInput, v.String()))
		}
		tape.Poke(i, v)
	}
	return nil
}

// SeedText writes the ordinal value of every character of the string to tape
// indices 0 upwards. Ordinals are never negative so SeedText cannot fail.
func SeedText(tape *memory.Tape, s string) {
	for i, r := range []rune(s) {
		tape.Poke(i, big.NewInt(int64(r)))
	}
}

// Numbers reports the tape as an ordered sequence of values at indices 0 up
// to the highest written index. The sequence is empty if no non-negative
// index was written.
func Numbers(tape *memory.Tape) []*big.Int {
	values := make([]*big.Int, 0, tape.Highest()+1)
	for i := 0; i <= tape.Highest(); i++ {
		values = append(values, tape.Peek(i))
	}
	return values
}

// Text reports the tape as a string, each value converted to its
// corresponding character. A value with no corresponding character is an
// error.
func Text(tape *memory.Tape) (string, error) {
	s := strings.Builder{}
	for _, v := range Numbers(tape) {
		if v.Sign() < 0 || !v.IsInt64() || v.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(v.Int64())) {
			return "", curated.Errorf(OutputEncodingError, curated.Errorf(NotACharacter, v.String()))
		}
		s.WriteRune(rune(v.Int64()))
	}
	return s.String(), nil
}
