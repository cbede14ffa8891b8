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

// Package programloader is used to specify the hbcht program to load. The
// Loader type records the filename, the source data once loaded and the
// SHA1 hash of that data. The hash is used by the regression database to
// fingerprint programs.
//
// The filename "-" means standard input.
package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/nqpz/hbcht/curated"
)

// Stdin is the filename that means standard input.
const Stdin = "-"

// FileExtensions that are conventionally used for hbcht source files. The
// extension carries no meaning beyond convention: the loader accepts any
// filename.
var FileExtensions = [...]string{".hb", ".hbc", ".hbcht"}

// Loader is used to specify a program file.
type Loader struct {
	// filename of program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the program filename, suitable
// for display. Only the conventional file extensions are trimmed.
func (ld Loader) ShortName() string {
	if ld.Filename == Stdin {
		return "stdin"
	}
	shortName := path.Base(ld.Filename)
	ext := path.Ext(shortName)
	for _, e := range FileExtensions {
		if ext == e {
			return strings.TrimSuffix(shortName, ext)
		}
	}
	return shortName
}

// HasLoaded returns true if program data has been loaded.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data and generate the hash. Load does nothing if data
// has already been loaded.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	var err error

	if ld.Filename == Stdin {
		ld.Data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}
	} else {
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}
	}

	// generate hash and check consistency with any expected value
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("programloader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}
