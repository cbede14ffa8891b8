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

package programloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nqpz/hbcht/programloader"
	"github.com/nqpz/hbcht/test"
)

func TestShortName(t *testing.T) {
	// only the conventional extensions are trimmed
	test.Equate(t, programloader.NewLoader("dir/prog.hb").ShortName(), "prog")
	test.Equate(t, programloader.NewLoader("prog.hbcht").ShortName(), "prog")
	test.Equate(t, programloader.NewLoader("prog.txt").ShortName(), "prog.txt")
	test.Equate(t, programloader.NewLoader("prog").ShortName(), "prog")
	test.Equate(t, programloader.NewLoader(programloader.Stdin).ShortName(), "stdin")
}

func TestPresetData(t *testing.T) {
	ld := programloader.NewLoader("test.hb")
	test.Equate(t, ld.HasLoaded(), false)

	// a loader with pre-set data does not touch the filesystem
	ld.Data = []byte("o#")
	test.Equate(t, ld.HasLoaded(), true)
	test.ExpectedSuccess(t, ld.Load())
}

func TestHashConsistency(t *testing.T) {
	f := writeProgram(t, "o#")

	ld := programloader.NewLoader(f)
	test.ExpectedSuccess(t, ld.Load())
	test.Equate(t, ld.HasLoaded(), true)

	// a second loader with the hash of the first must load successfully
	verify := programloader.NewLoader(f)
	verify.Hash = ld.Hash
	test.ExpectedSuccess(t, verify.Load())

	// and a wrong hash must not
	verify = programloader.NewLoader(f)
	verify.Hash = "0000000000000000000000000000000000000000"
	test.ExpectedFailure(t, verify.Load())
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "test.hb")
	err := os.WriteFile(f, []byte(src), 0644)
	if err != nil {
		t.Fatalf("write program: %v", err)
	}
	return f
}
