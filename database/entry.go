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
	"github.com/nqpz/hbcht/curated"
)

// SerialisedEntry is the Entry data represented as a list of strings.
type SerialisedEntry []string

// deserialiser turns a SerialisedEntry back into an Entry of a registered
// type.
type deserialiser func(fields SerialisedEntry) (Entry, error)

// Entry represents a generic entry in the database.
type Entry interface {
	// EntryType returns the string used to identify the entry type in the
	// database file.
	EntryType() string

	// String returns information about the entry in a human readable
	// format. The machine readable representation is returned by the
	// Serialise function.
	String() string

	// Serialise returns the Entry as an instance of SerialisedEntry. The
	// fields must not contain the field separator.
	Serialise() (SerialisedEntry, error)

	// CleanUp is called when the entry is deleted from the database.
	CleanUp() error
}

// RegisterEntryType tells the database what entries it may expect and how to
// deserialise them.
func (db *Session) RegisterEntryType(id string, des deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf("database: entry type already registered (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}
