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

// Array frame sub-states, named exactly as jx_parse_array's
// JX_ARRAY_STATE_* constants: DEFAULT accepts either a member or the
// closing bracket (the empty-array case), NEW_MEMBER requires a comma or
// the closing bracket, SEPARATOR requires a member (a trailing comma is an
// error).
const (
	arrayDefault = iota
	arrayNewMember
	arraySeparator
)

// parseArray advances an array frame by exactly one token. It first
// consumes any pending returnValue left by a just-completed child element,
// then classifies the current byte to either transition state (reporting
// nextToken=true so the dispatcher loops back for another byte) or signal
// that a new nested value is about to start (nextToken=false, leaving pos
// untouched for the dispatcher's generic token-start logic).
func (c *Context) parseArray(data []byte, pos *int, end int, f *frame) (nextToken bool, err error) {
	if f.returnValue != nil {
		f.value.arr.Push(f.returnValue)
		f.returnValue = nil
		f.state = arrayNewMember
	}

	tt := tokenType(data[*pos])

	switch tt {
	case TokenComma:
		if f.state != arrayNewMember {
			return false, c.setError(ErrorUnexpectedToken, c.line, c.col, ",")
		}
		*pos++
		c.col++
		f.state = arraySeparator
		return true, nil

	case TokenArrayEnd:
		if f.state == arraySeparator {
			return false, c.setError(ErrorUnexpectedToken, c.line, c.col, ",")
		}
		arr := f.value
		c.popFrame()
		parent := c.top()
		parent.returnValue = arr
		*pos++
		c.col++
		c.depth--
		if parent.mode == modeStart {
			parent.mode = modeDone
		}
		return true, nil

	default:
		if tt == TokenNone {
			return false, c.illegalToken(data, *pos)
		}
		if f.state == arrayNewMember {
			return false, c.setError(ErrorExpectedToken, c.line, c.col, ",")
		}
		return false, nil
	}
}
