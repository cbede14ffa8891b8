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

package convert_test

import (
	"math/big"
	"testing"

	"github.com/nqpz/hbcht/convert"
	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/engine/memory"
	"github.com/nqpz/hbcht/test"
)

func TestParseNumbers(t *testing.T) {
	values, err := convert.ParseNumbers([]string{"3", "11", "13402"})
	test.ExpectedSuccess(t, err)
	test.Equate(t, values, []int{3, 11, 13402})

	// arbitrary precision
	values, err = convert.ParseNumbers([]string{"11934119203312221000000000000"})
	test.ExpectedSuccess(t, err)
	expected, _ := new(big.Int).SetString("11934119203312221000000000000", 10)
	test.Equate(t, values[0], expected)

	_, err = convert.ParseNumbers([]string{"twelve"})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, convert.NotANumber), true)
}

func TestSeedNumbers(t *testing.T) {
	tape := memory.NewTape()

	values, _ := convert.ParseNumbers([]string{"5", "0", "7"})
	err := convert.SeedNumbers(tape, values)
	test.ExpectedSuccess(t, err)

	test.Equate(t, tape.Peek(0), 5)
	test.Equate(t, tape.Peek(1), 0)
	test.Equate(t, tape.Peek(2), 7)

	// seeding writes exactly indices 0..len-1 and never below 0
	test.Equate(t, tape.Highest(), 2)
	test.Equate(t, tape.Peek(-1), 0)
}

func TestNegativeInput(t *testing.T) {
	tape := memory.NewTape()

	err := convert.SeedNumbers(tape, []*big.Int{big.NewInt(-1)})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, convert.InputError), true)
	test.Equate(t, curated.Has(err, convert.NegativeInput), true)
}

func TestNumbersGaps(t *testing.T) {
	tape := memory.NewTape()

	// index 0 untouched, index 2 written: the gap is reported as 0
	tape.Inc(2)
	test.Equate(t, convert.Numbers(tape), []int{0, 0, 1})

	// an untouched tape reports the empty sequence
	test.Equate(t, convert.Numbers(memory.NewTape()), []int{})
}

func TestTextRoundTrip(t *testing.T) {
	tape := memory.NewTape()

	convert.SeedText(tape, "Héllo, wörld")
	s, err := convert.Text(tape)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "Héllo, wörld")
}

func TestTextOrdinals(t *testing.T) {
	tape := memory.NewTape()

	// in ASCII and UTF-8: A, B, C = 65, 66, 67
	convert.SeedText(tape, "ABC")
	test.Equate(t, tape.Peek(0), 65)
	test.Equate(t, tape.Peek(1), 66)
	test.Equate(t, tape.Peek(2), 67)
}

func TestTextEncodingError(t *testing.T) {
	tape := memory.NewTape()
	tape.Dec(0)

	_, err := convert.Text(tape)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, convert.OutputEncodingError), true)
	test.Equate(t, curated.Has(err, convert.NotACharacter), true)

	// a value beyond the highest character ordinal
	tape = memory.NewTape()
	tape.Poke(0, big.NewInt(0x110000))
	_, err = convert.Text(tape)
	test.ExpectedFailure(t, err)

	// a negative value whose magnitude exceeds 32 bits must not slip
	// through by truncating to a valid character ordinal
	tape = memory.NewTape()
	tape.Poke(0, big.NewInt(-(1<<32)+65))
	_, err = convert.Text(tape)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, convert.NotACharacter), true)
}
