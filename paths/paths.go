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

// Package paths resolves locations for hbcht resource files, such as the
// regression database. Resources live in a .hbcht directory: the one in the
// current working directory if it exists, or the one in the user's config
// directory otherwise.
package paths

import (
	"os"
	"path"
)

const baseResourcePath = ".hbcht"

// ResourcePath returns the path to a resource file or directory, creating
// intermediate directories as required.
func ResourcePath(subPath string, file string) (string, error) {
	pth := path.Join(getBasePath(), subPath)

	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0700); err != nil {
			return "", err
		}
	}

	return path.Join(pth, file), nil
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return path.Join(home, baseResourcePath[1:])
}
