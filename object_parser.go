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

// Object frame sub-states: after the opening brace or a comma, a key (or,
// only right after the brace, the closing brace) is expected; after a key,
// a colon; after a colon, a value; after a value, a comma or the closing
// brace.
const (
	objAfterOpen = iota
	objAfterKey
	objAfterColon
	objAfterValue
	objAfterComma
)

// parseObject advances an object frame by exactly one token, following the
// same pending-returnValue-first protocol as parseArray. Whether a pending
// returnValue is the just-parsed key or the just-parsed value is
// determined entirely by f.state — both are plain JSON strings/values and
// the frame has no other way to tell them apart.
func (c *Context) parseObject(data []byte, pos *int, end int, f *frame) (nextToken bool, err error) {
	if f.returnValue != nil {
		switch f.state {
		case objAfterOpen, objAfterComma:
			if f.returnValue.Type() != TypeString {
				return false, c.setError(ErrorIllegalToken, c.line, c.col, "object key must be a string")
			}
			f.pendingKey = f.returnValue.Str()
			f.returnValue = nil
			f.state = objAfterKey

		case objAfterColon:
			obj := f.value.obj
			if err := obj.Set(f.pendingKey, f.returnValue); err != nil {
				return false, c.setError(ErrorIllegalToken, c.line, c.col, "invalid object key")
			}
			f.pendingKey = ""
			f.returnValue = nil
			f.state = objAfterValue
		}
	}

	tt := tokenType(data[*pos])

	switch tt {
	case TokenObjectEnd:
		if f.state == objAfterKey || f.state == objAfterColon || f.state == objAfterComma {
			return false, c.setError(ErrorUnexpectedToken, c.line, c.col, "}")
		}
		obj := f.value
		c.popFrame()
		parent := c.top()
		parent.returnValue = obj
		*pos++
		c.col++
		c.depth--
		if parent.mode == modeStart {
			parent.mode = modeDone
		}
		return true, nil

	case TokenColon:
		if f.state != objAfterKey {
			return false, c.setError(ErrorUnexpectedToken, c.line, c.col, ":")
		}
		*pos++
		c.col++
		f.state = objAfterColon
		return true, nil

	case TokenComma:
		if f.state != objAfterValue {
			return false, c.setError(ErrorUnexpectedToken, c.line, c.col, ",")
		}
		*pos++
		c.col++
		f.state = objAfterComma
		return true, nil

	default:
		if tt == TokenNone {
			return false, c.illegalToken(data, *pos)
		}

		switch f.state {
		case objAfterOpen, objAfterComma:
			if tt != TokenString {
				return false, c.setError(ErrorExpectedToken, c.line, c.col, "\"")
			}
			return false, nil
		case objAfterColon:
			return false, nil
		case objAfterKey:
			return false, c.setError(ErrorExpectedToken, c.line, c.col, ":")
		default:
			return false, c.setError(ErrorExpectedToken, c.line, c.col, ", or }")
		}
	}
}
