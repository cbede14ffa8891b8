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

package terminal

// Style identifies the category of text being printed through
// TermPrintLine(). Terminal implementations are free to interpret the style
// however is appropriate, including ignoring it.
type Style int

// List of terminal styles.
const (
	// input that has been echoed back to the user. terminals that display
	// input as it is typed will want to ignore this style
	StyleEcho Style = iota

	// help text
	StyleHelp

	// information from the debugger about the state of the car and its
	// memory
	StyleFeedback

	// the result of a car step
	StyleCarStep

	// the prompt. no newline should be added after printing
	StylePrompt

	// log entries
	StyleLog

	// error messages. displayed even when the terminal is silenced
	StyleError
)

// IsPrompt returns true if the style means a prompt and the cursor should
// stay on the line.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}
