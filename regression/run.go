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
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/database"
	"github.com/nqpz/hbcht/engine/direction"
	"github.com/nqpz/hbcht/programloader"
	"github.com/nqpz/hbcht/runmode"
)

const runEntryType = "run"

const (
	runFieldScript int = iota
	runFieldHash
	runFieldDirection
	runFieldInput
	runFieldStepLimit
	runFieldDigest
	numRunFields
)

// input values are stored in a single database field
const inputSep = ";"

// AllDirections is the direction specification that runs a test in all four
// directions.
const AllDirections = "all"

// RunRecord is the regression entry for a complete run of a program. The
// direction is always stated, never random, so the result of the run is
// reproducible.
type RunRecord struct {
	// the archived copy of the program in the scripts directory. before the
	// record has been added this is the original program file
	Script string

	// hash of the program data
	Hash string

	// a direction name or AllDirections
	Direction string

	// input values for the car's memory
	Input []string

	// maximum number of steps per direction. directions that do not halt
	// within the budget contribute their timeout notice to the output
	StepLimit uint64

	digest string
}

// NewRunRecord is the preferred method of initialisation for the RunRecord
// type.
func NewRunRecord(loader programloader.Loader, dirSpec string, input []string, stepLimit uint64) (*RunRecord, error) {
	if dirSpec != AllDirections {
		if _, ok := direction.Parse(dirSpec); !ok {
			return nil, curated.Errorf("regression: unknown direction (%s)", dirSpec)
		}
	}

	if stepLimit == 0 {
		return nil, curated.Errorf("regression: a step limit is required")
	}

	for _, v := range input {
		if strings.Contains(v, inputSep) || strings.Contains(v, ",") {
			return nil, curated.Errorf("regression: input value cannot contain a separator (%s)", v)
		}
	}

	if err := loader.Load(); err != nil {
		return nil, err
	}

	rec := &RunRecord{
		Script:    loader.Filename,
		Hash:      loader.Hash,
		Direction: dirSpec,
		Input:     input,
		StepLimit: stepLimit,
	}

	return rec, nil
}

func deserialiseRunEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numRunFields {
		return nil, curated.Errorf("regression: wrong number of fields in run entry")
	}

	rec := &RunRecord{
		Script:    fields[runFieldScript],
		Hash:      fields[runFieldHash],
		Direction: fields[runFieldDirection],
		digest:    fields[runFieldDigest],
	}

	if fields[runFieldInput] != "" {
		rec.Input = strings.Split(fields[runFieldInput], inputSep)
	}

	var err error
	rec.StepLimit, err = strconv.ParseUint(fields[runFieldStepLimit], 10, 64)
	if err != nil {
		return nil, curated.Errorf("regression: invalid step limit field (%s)", fields[runFieldStepLimit])
	}

	return rec, nil
}

// EntryType implements the database.Entry interface.
func (rec *RunRecord) EntryType() string {
	return runEntryType
}

// Serialise implements the database.Entry interface.
func (rec *RunRecord) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		rec.Script,
		rec.Hash,
		rec.Direction,
		strings.Join(rec.Input, inputSep),
		strconv.FormatUint(rec.StepLimit, 10),
		rec.digest,
	}, nil
}

// CleanUp implements the database.Entry interface. The archived script is
// removed.
func (rec *RunRecord) CleanUp() error {
	return os.Remove(rec.Script)
}

func (rec *RunRecord) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s %s", runEntryType, shortName(rec.Script), rec.Direction))
	if len(rec.Input) > 0 {
		s.WriteString(fmt.Sprintf(" input=%s", strings.Join(rec.Input, inputSep)))
	}
	return s.String()
}

// run the program and return the digest of the output.
func (rec *RunRecord) runDigest() (string, error) {
	loader := programloader.NewLoader(rec.Script)
	loader.Hash = rec.Hash

	opts := runmode.Options{
		StepLimit: rec.StepLimit,
	}
	if rec.Direction == AllDirections {
		opts.AllDirections = true
	} else {
		d, _ := direction.Parse(rec.Direction)
		opts.Directions = []direction.Direction{d}
	}

	output := &bytes.Buffer{}
	err := runmode.Run(output, loader, rec.Input, opts)

	// a direction that does not halt is a valid test. the timeout notice is
	// part of the recorded output
	if err != nil && !curated.Is(err, runmode.Timeout) {
		return "", err
	}

	return fmt.Sprintf("%x", sha1.Sum(output.Bytes())), nil
}

func (rec *RunRecord) regress(newRegression bool, output io.Writer, message string) (bool, error) {
	io.WriteString(output, message)

	digest, err := rec.runDigest()
	if err != nil {
		return false, err
	}

	if newRegression {
		rec.digest = digest

		// archive the script file
		archive, err := uniqueFilename(rec.Script)
		if err != nil {
			return false, err
		}

		data, err := os.ReadFile(rec.Script)
		if err != nil {
			return false, curated.Errorf("regression: %v", err)
		}
		if err := os.WriteFile(archive, data, 0644); err != nil {
			return false, curated.Errorf("regression: %v", err)
		}
		rec.Script = archive

		return true, nil
	}

	return digest == rec.digest, nil
}
