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

// Package random generates the random numbers used by the application, most
// notably the random initial direction of the car. Random is not a source of
// cryptographic randomness.
//
// The ZeroSeed field produces a predictable stream of numbers. Useful for
// tests which must assert behaviour per direction.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator. The zero value is ready to use.
type Random struct {
	// use a zero base seed rather than the random base seed. this makes the
	// stream of numbers predictable
	ZeroSeed bool

	// incremented on every call to rand(). two Random instances with the same
	// ZeroSeed field produce the same stream of numbers
	count int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	rnd.count++
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(rnd.count))
	}
	return rand.New(rand.NewSource(baseSeed + rnd.count))
}

// Intn returns a random number between 0 and n-1 inclusive.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
