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

package database_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nqpz/hbcht/database"
	"github.com/nqpz/hbcht/test"
)

type testEntry struct {
	name  string
	value string
}

func (ent *testEntry) EntryType() string {
	return "test"
}

func (ent *testEntry) String() string {
	return fmt.Sprintf("%s=%s", ent.name, ent.value)
}

func (ent *testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name, ent.value}, nil
}

func (ent *testEntry) CleanUp() error {
	return nil
}

func deserialiseTestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != 2 {
		return nil, fmt.Errorf("wrong number of fields for test entry")
	}
	return &testEntry{name: fields[0], value: fields[1]}, nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func TestRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb")

	db, err := database.StartSession(dbPath, database.ActivityCreating, initTestSession)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	test.ExpectedSuccess(t, db.Add(&testEntry{name: "first", value: "1"}))
	test.ExpectedSuccess(t, db.Add(&testEntry{name: "second", value: "2"}))
	test.Equate(t, db.NumEntries(), 2)
	test.ExpectedSuccess(t, db.EndSession(true))

	// reopen and check the entries survived
	db, err = database.StartSession(dbPath, database.ActivityReading, initTestSession)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	test.Equate(t, db.NumEntries(), 2)

	ent, err := db.Get(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "first=1")

	test.ExpectedSuccess(t, db.EndSession(false))
}

func TestDelete(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb")

	db, err := database.StartSession(dbPath, database.ActivityCreating, initTestSession)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	test.ExpectedSuccess(t, db.Add(&testEntry{name: "first", value: "1"}))
	test.ExpectedSuccess(t, db.Add(&testEntry{name: "second", value: "2"}))
	test.ExpectedSuccess(t, db.Delete(0))
	test.ExpectedFailure(t, db.Delete(0))
	test.Equate(t, db.NumEntries(), 1)

	// key zero is now free and is reused by the next Add()
	test.ExpectedSuccess(t, db.Add(&testEntry{name: "third", value: "3"}))
	ent, err := db.Get(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "third=3")

	test.ExpectedSuccess(t, db.EndSession(false))
}

func TestList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb")

	db, err := database.StartSession(dbPath, database.ActivityCreating, initTestSession)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	defer func() {
		test.ExpectedSuccess(t, db.EndSession(false))
	}()

	b := &strings.Builder{}
	test.ExpectedSuccess(t, db.List(b))
	test.Equate(t, b.String(), "database is empty\n")

	test.ExpectedSuccess(t, db.Add(&testEntry{name: "first", value: "1"}))

	b.Reset()
	test.ExpectedSuccess(t, db.List(b))
	test.Equate(t, b.String(), "000 first=1\nTotal: 1\n")
}

func TestSelectKeys(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb")

	db, err := database.StartSession(dbPath, database.ActivityCreating, initTestSession)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	defer func() {
		test.ExpectedSuccess(t, db.EndSession(false))
	}()

	test.ExpectedSuccess(t, db.Add(&testEntry{name: "first", value: "1"}))
	test.ExpectedSuccess(t, db.Add(&testEntry{name: "second", value: "2"}))

	var seen []string
	_, err = db.SelectAll(func(ent database.Entry) error {
		seen = append(seen, ent.String())
		return nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(seen), 2)
	test.Equate(t, seen[0], "first=1")
	test.Equate(t, seen[1], "second=2")

	ent, err := db.SelectKeys(nil, 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "second=2")

	_, err = db.SelectKeys(nil, 99)
	test.ExpectedFailure(t, err)
}
