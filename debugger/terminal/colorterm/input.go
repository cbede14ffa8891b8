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

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/nqpz/hbcht/curated"
	"github.com/nqpz/hbcht/debugger/terminal"
	"github.com/nqpz/hbcht/debugger/terminal/colorterm/easyterm"
	"github.com/nqpz/hbcht/debugger/terminal/colorterm/easyterm/ansi"
)

// nextRune returns the next rune from the reader, watching the event
// channels while waiting.
func (ct *ColorTerminal) nextRune(events *terminal.ReadEvents) (rune, error) {
	if events == nil {
		rr := <-ct.reader.runes
		return rr.r, rr.err
	}

	select {
	case rr := <-ct.reader.runes:
		return rr.r, rr.err
	case sig := <-events.Signal:
		return 0, events.SignalHandler(sig)
	}
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	input := make([]byte, 255)
	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user
	// wants to resume where we left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	for {
		// the method for cursor placement is as follows:
		// 	1. clear the current line
		//	2. output the prompt
		//	3. output the input buffer
		//	4. move the cursor back into position
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.TermPrintLine(terminal.StylePrompt, prompt.String())
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - n))

		r, err := ct.nextRune(events)
		if err != nil {
			ct.EasyTerm.TermPrint("\n")
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor

				// append everything after the cursor to the new string and
				// copy into the input buffer
				s += string(input[cursor:n])
				if len(s) <= len(input) {
					copy(input, []byte(s))
					cursor += d
					n += d
				}
			}

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := n > 0
			if newEntry && len(ct.commandHistory) > 0 {
				lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
				if len(lastHistoryEntry) == n {
					newEntry = false
					for i := 0; i < n; i++ {
						if input[i] != lastHistoryEntry[i] {
							newEntry = true
							break
						}
					}
				}
			}

			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			if ct.tabCompletion != nil {
				ct.tabCompletion.Reset()
			}

			ct.EasyTerm.TermPrint("\n")
			return string(input[:n]), nil

		case easyterm.KeyEsc:
			r, err := ct.nextRune(events)
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, err = ct.nextRune(events)
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				// move up through command history
				if len(ct.commandHistory) > 0 {
					// if we're at the end of the command history then store
					// the current input for possible later editing
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}

					if history > 0 {
						history--
						copy(input, ct.commandHistory[history].input)
						n = len(ct.commandHistory[history].input)
						cursor = n
					}
				}
			case easyterm.CursorDown:
				// move down through command history
				if len(ct.commandHistory) > 0 {
					if history < len(ct.commandHistory)-1 {
						history++
						copy(input, ct.commandHistory[history].input)
						n = len(ct.commandHistory[history].input)
						cursor = n
					} else if history == len(ct.commandHistory)-1 {
						history++
						copy(input, buffInput[:buffN])
						n = buffN
						cursor = n
					}
				}
			case easyterm.CursorForward:
				// move forward through current command input
				if cursor < n {
					cursor++
				}
			case easyterm.CursorBackward:
				// move backward through current command input
				if cursor > 0 {
					cursor--
				}
			case easyterm.EscDelete:
				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				if n+m <= len(input) {
					copy(input[cursor+m:], input[cursor:n])
					copy(input[cursor:], er[:m])
					cursor += m
					n += m
					history = len(ct.commandHistory)
				}
			}
		}
	}
}
