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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created from a
// specific pattern. For example:
//
//	e := curated.Errorf("parser: %v", "unexpected symbol")
//
//	if curated.Is(e, "parser: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain rather than only at the outermost level.
//
// The IsAny() function answers whether the error is a curated error at all.
// We can think of the difference between curated and uncurated errors as
// being 'expected' and 'unexpected' errors, depending on how we choose to
// handle the result of a function call.
//
// The Error() function implementation for curated errors normalises the
// message chain such that it does not contain duplicate adjacent parts. The
// practical advantage of this is that it alleviates the problem of when and
// how to wrap errors: wrapping with the same prefix at every level of the
// call stack does not produce a stuttering message.
package curated
