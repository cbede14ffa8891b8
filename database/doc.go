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

// Package database is a simple plain text database. Entries are stored one
// per line, fields separated by commas. The first two fields of every line
// are the entry key and the entry type. The remaining fields belong to the
// entry itself.
//
// Client packages register the entry types they expect with
// RegisterEntryType() during the init function passed to StartSession().
// Unrecognised entry types cause the session to fail, so different clients
// should use different database files.
//
// A session is opened for a stated activity. Sessions opened for
// ActivityReading never write the database file back, even when EndSession()
// is asked to commit.
package database
