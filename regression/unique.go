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

package regression

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/nqpz/hbcht/paths"
)

func shortName(script string) string {
	base := path.Base(script)
	return strings.TrimSuffix(base, path.Ext(base))
}

// uniqueFilename creates a filename in the script directory that will not
// collide with an existing archived script.
func uniqueFilename(script string) (string, error) {
	scriptPath, err := paths.ResourcePath(regressionPath, regressionScripts)
	if err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	f := fmt.Sprintf("%s_%s", shortName(script), timestamp)

	return filepath.Join(scriptPath, f), nil
}
