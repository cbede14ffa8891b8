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

// Package version records the version number of the application and the
// source revision it was built from, when that information is available from
// the Go build system.
package version

import (
	"runtime/debug"
)

// ApplicationName is the name of the application.
const ApplicationName = "hbcht"

// Number is the version number of the application.
const Number = "0.2.0"

// Revision of the source the application was built from. The empty string if
// the build system did not record one.
var Revision string

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			Revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified && Revision != "" {
		Revision += " (modified)"
	}
}
