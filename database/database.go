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

package database

import (
	"fmt"
	"io"

	"github.com/nqpz/hbcht/curated"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

func recordHeader(key int, id string) string {
	return fmt.Sprintf("%03d%s%s", key, fieldSep, id)
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]
		_, err := fmt.Fprintf(output, "%03d %s\n", key, ent.String())
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the database. The new entry is assigned the lowest unused
// key.
func (db *Session) Add(ent Entry) error {
	var key int

	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return curated.Errorf("database: maximum entries exceeded (max %d)", maxEntries)
	}

	db.entries[key] = ent

	return nil
}

// Get returns the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf("database: key not available (%03d)", key)
	}
	return ent, nil
}

// Delete the entry with the specified key.
func (db *Session) Delete(key int) error {
	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf("database: key not available (%03d)", key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	delete(db.entries, key)

	return nil
}

// SelectAll calls onSelect for every entry in the database, in key order.
// onSelect can be nil.
//
// Returns the last entry matched, or an error with the last entry matched
// before the error occurred.
func (db *Session) SelectAll(onSelect func(Entry) error) (Entry, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys calls onSelect for the entries with the specified keys, in the
// order given. An empty list of keys matches every entry in key order.
// onSelect can be nil.
//
// Returns the last entry matched, or an error with the last entry matched
// before the error occurred.
func (db *Session) SelectKeys(onSelect func(Entry) error, keys ...int) (Entry, error) {
	if onSelect == nil {
		onSelect = func(_ Entry) error { return nil }
	}

	keyList := keys
	if len(keyList) == 0 {
		keyList = db.SortedKeyList()
	}

	var entry Entry

	for _, key := range keyList {
		ent, ok := db.entries[key]
		if !ok {
			return entry, curated.Errorf("database: key not available (%03d)", key)
		}
		entry = ent
		if err := onSelect(entry); err != nil {
			return entry, err
		}
	}

	return entry, nil
}
