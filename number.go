// Copyright 2025 easymvp
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jx

import "strconv"

// numState is a bitmask tracking the JSON number grammar as a single
// accumulator, matching jx_parse_number's approach of folding "what's
// legal next" and "have we seen a digit/decimal point/exponent yet" into
// one word instead of a traditional enumerated state list.
type numState uint16

const (
	numIsValid numState = 1 << iota
	numAcceptSign
	numAcceptDigits
	numAcceptDecPt
	numAcceptExp
	numHasDigits
	numHasDecPt
	numHasExp
)

const numDefault = numAcceptSign | numAcceptDigits

// maxNumberLen bounds the accumulated number text; a number's own frame
// state (not Context.tokBuf) never outlives one token, so this is simply a
// guard against pathological input.
const maxNumberLen = 25

// parseNumber resumes the number grammar at *pos, consuming valid digits,
// sign and exponent characters into the shared token buffer, and returns
// once a terminating byte (anything not part of a number) is found or the
// chunk is exhausted.
func (c *Context) parseNumber(data []byte, pos *int, end int, f *frame) (bool, error) {
	state := numState(f.state)
	terminated := false

loop:
	for *pos <= end {
		ch := data[*pos]

		switch {
		case ch == '+' || ch == '-':
			if state&numAcceptSign == 0 {
				return false, c.setError(ErrorIllegalToken, c.line, c.col,
					"illegal position for sign character in number")
			}
			state &^= numAcceptSign | numIsValid

		case ch >= '0' && ch <= '9':
			if state&numAcceptDigits == 0 {
				return false, c.setError(ErrorIllegalToken, c.line, c.col, "invalid number")
			}
			if ch == '0' && state&numHasDigits == 0 {
				state &^= numAcceptDigits
			}
			if state&(numHasDecPt|numHasExp) == 0 {
				state |= numAcceptDecPt
			}
			if state&numHasExp == 0 {
				state |= numAcceptExp
			}
			state &^= numAcceptSign
			state |= numHasDigits | numIsValid

		case ch == '.':
			if state&numAcceptDecPt == 0 {
				return false, c.setError(ErrorIllegalToken, c.line, c.col,
					"illegal position for decimal point in number")
			}
			state |= numHasDecPt | numAcceptDigits
			state &^= numAcceptDecPt | numAcceptExp | numIsValid

		case ch == 'e' || ch == 'E':
			if state&numAcceptExp == 0 {
				return false, c.setError(ErrorIllegalToken, c.line, c.col,
					"illegal position for exponent in number")
			}
			state |= numHasExp | numAcceptSign | numAcceptDigits
			state &^= numIsValid | numAcceptExp | numAcceptDecPt

		default:
			terminated = true
			break loop
		}

		if c.tokBufPos >= maxNumberLen {
			return false, c.setError(ErrorIllegalToken, c.line, c.col, "number too large")
		}
		c.tokBuf[c.tokBufPos] = ch
		c.tokBufPos++
		*pos++
		c.col++
	}

	f.state = int(state)

	if !terminated {
		return false, nil
	}

	if state&numIsValid == 0 {
		return false, c.setError(ErrorIllegalToken, c.line, c.col, "invalid number")
	}

	text := string(c.tokBuf[:c.tokBufPos])
	c.tokBufPos = 0

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return false, c.setError(ErrorIllegalToken, c.line, c.col, "invalid number")
	}

	f.value = NewNumber(n)
	return true, nil
}
