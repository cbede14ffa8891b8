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

// Package regression records the output of known working programs so that
// changes to the interpreter can be checked against them. When a test is
// added the program file is archived and the digest of the run output is
// recorded in the regression database. Running the tests repeats the run and
// compares digests.
//
// Tests are added, listed, deleted and run with the RegressAdd(),
// RegressList(), RegressDelete() and RegressRunTests() functions. The
// database lives in the hbcht resource directory.
package regression
