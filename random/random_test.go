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

package random_test

import (
	"testing"

	"github.com/nqpz/hbcht/random"
	"github.com/nqpz/hbcht/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true

	b := random.NewRandom()
	b.ZeroSeed = true

	// two zero-seeded generators produce the same stream
	for i := 0; i < 100; i++ {
		test.Equate(t, a.Intn(4), b.Intn(4))
	}
}

func TestRange(t *testing.T) {
	rnd := random.NewRandom()

	for i := 0; i < 100; i++ {
		v := rnd.Intn(4)
		if v < 0 || v > 3 {
			t.Fatalf("Intn(4) returned %d", v)
		}
	}
}
