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
	"io"
	"os"
	"strconv"

	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/database"
	"github.com/nqpz/hbcht/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/nqpz/hbcht/paths"
)

// the location of the regressionDB file and the scripts directory, relative
// to the hbcht resource path.
const regressionPath = "regression"
const regressionDBFile = "db"
const regressionScripts = "scripts"

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test. the newRegression flag means the test is
	// being added, not checked, and the expected result should be recorded.
	//
	// message is the string to display during the regression.
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(runEntryType, deserialiseRunEntry); err != nil {
		return err
	}

	// make sure the script directory exists
	scriptPath, err := paths.ResourcePath(regressionPath, regressionScripts)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	if err := os.MkdirAll(scriptPath, 0755); err != nil {
		return curated.Errorf("regression: script directory: %v", err)
	}

	return nil
}

func dbPath() (string, error) {
	return paths.ResourcePath(regressionPath, regressionDBFile)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	p, err := dbPath()
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression test to the database. The test is run
// once to record the expected result.
func RegressAdd(output io.Writer, reg Regressor) error {
	p, err := dbPath()
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, err := reg.regress(true, output, msg)
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf("regression: add failed")
	}

	io.WriteString(output, ansi.ClearLine)
	fmt.Fprintf(output, "\radded: %s\n", reg)

	return db.Add(reg)
}

// RegressDelete removes a test from the regression database. The deletion
// must be confirmed through the confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	p, err := dbPath()
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(p, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "deleted test #%s from regression database\n", key)
	}

	return nil
}

// RegressRunTests runs the tests in the regression database. An empty
// filterKeys list means every entry should be tested.
func RegressRunTests(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	p, err := dbPath()
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	// validate any supplied keys before running anything
	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", k)
		}
		keys = append(keys, v)
	}

	numSucceed := 0
	numFail := 0
	numError := 0

	defer func() {
		fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
		if numError > 0 {
			fmt.Fprintf(output, " [with %d errors]", numError)
		}
		io.WriteString(output, "\n")
	}()

	onSelect := func(ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy Regressor interface")
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err := reg.regress(false, output, msg)

		io.WriteString(output, ansi.ClearLine)

		if err != nil {
			numError++
			fmt.Fprintf(output, "\r  error: %s\n", reg)
			if verbose {
				fmt.Fprintf(output, "%s\n", err)
			}
			if failOnError {
				return curated.Errorf("regression: stopping because of error")
			}
		} else if !ok {
			numFail++
			fmt.Fprintf(output, "\rfailure: %s\n", reg)
		} else {
			numSucceed++
			fmt.Fprintf(output, "\rsucceed: %s\n", reg)
		}

		return nil
	}

	_, err = db.SelectKeys(onSelect, keys...)
	if err != nil {
		return err
	}

	return nil
}
