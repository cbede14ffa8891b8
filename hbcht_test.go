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

package main

import (
	"strings"
	"testing"

	"github.com/nqpz/hbcht/modalflag"
	"github.com/nqpz/hbcht/test"
)

func TestNegativeStepBudget(t *testing.T) {
	// a negative budget must be rejected, not converted to a huge one
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-steps", "-1", "test.hb"})
	err := run(md)
	test.ExpectedFailure(t, err)
	if err != nil && !strings.Contains(err.Error(), "negative step budget") {
		t.Errorf("unexpected error: %v", err)
	}

	md = &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"ADD", "-steps", "-1", "test.hb"})
	err = regress(md)
	test.ExpectedFailure(t, err)
	if err != nil && !strings.Contains(err.Error(), "negative step budget") {
		t.Errorf("unexpected error: %v", err)
	}
}
