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

package logger

import (
	"strings"
	"testing"

	"github.com/nqpz/hbcht/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(10)

	b := &strings.Builder{}
	test.ExpectedFailure(t, l.write(b))
	test.Equate(t, b.String(), "")

	l.log("test", "this is a test")
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "test: this is a test\n")

	// a repeated entry is collapsed
	b.Reset()
	l.log("test", "this is a test")
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\n")

	b.Reset()
	l.log("test2", "this is another test")
	test.ExpectedSuccess(t, l.write(b))
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\ntest2: this is another test\n")
}

func TestTail(t *testing.T) {
	l := newLogger(10)

	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	b := &strings.Builder{}
	l.tail(b, 2)
	test.Equate(t, b.String(), "test: b\ntest: c\n")

	// asking for more entries than exist is okay
	b.Reset()
	l.tail(b, 100)
	test.Equate(t, b.String(), "test: a\ntest: b\ntest: c\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "test: b\ntest: c\n")
}
