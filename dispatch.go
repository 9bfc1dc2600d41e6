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

// ParseStatus is the outcome of one ParseChunk call.
type ParseStatus int

const (
	StatusError      ParseStatus = -1
	StatusIncomplete ParseStatus = 0
	StatusComplete   ParseStatus = 1
)

// ParseChunk feeds one buffer of input into the context, advancing the
// frame stack as far as this chunk allows. It returns StatusComplete once
// a full root value has been consumed, StatusIncomplete if the chunk ended
// mid-structure (more input is expected), and StatusError if a syntax or
// allocation error occurred — retrievable via GetError/GetErrorMessage.
// A context is non-reentrant: ParseChunk must not be called again while a
// previous call on the same context is still executing, and chunks must
// be fed in order.
func (c *Context) ParseChunk(data []byte) ParseStatus {
	if c.err != nil {
		return StatusError
	}

	if len(c.frames) == 0 {
		c.pushFrame(modeStart)
	}

	pos := 0
	end := len(data) - 1

	for pos <= end {
		next := c.findToken(data, pos, end)
		if next == -1 {
			break
		}
		pos = next

		f := c.top()

		switch f.mode {
		case modeNumber:
			done, err := c.parseNumber(data, &pos, end, f)
			if err != nil {
				return StatusError
			}
			if done {
				c.popFrame()
				c.top().returnValue = f.value
				c.insideToken = false
			}
			continue

		case modeString:
			done, err := c.parseString(data, &pos, end, f)
			if err != nil {
				return StatusError
			}
			if done {
				c.popFrame()
				c.top().returnValue = f.value
				c.insideToken = false
			}
			continue

		case modeKeyword:
			done, err := c.parseKeyword(data, &pos, end, f)
			if err != nil {
				return StatusError
			}
			if done {
				c.popFrame()
				c.top().returnValue = f.value
				c.insideToken = false
			}
			continue

		case modeUTF8:
			done, err := c.parseUTF8Literal(data, &pos, end, f)
			if err != nil {
				return StatusError
			}
			if done {
				c.popFrame()
				c.top().returnValue = f.value
				c.insideToken = false
			}
			continue

		case modeArray:
			nextToken, err := c.parseArray(data, &pos, end, f)
			if err != nil {
				return StatusError
			}
			if nextToken {
				continue
			}

		case modeObject:
			nextToken, err := c.parseObject(data, &pos, end, f)
			if err != nil {
				return StatusError
			}
			if nextToken {
				continue
			}

		case modeDone:
			c.setError(ErrorTrailingChars, c.line, c.col, string(rune(data[pos])))
			return StatusError
		}

		// Either we just fell through from an array/object frame that
		// signaled "start a new nested value", or the top frame is the
		// root START frame seeing its very first byte.
		tt := tokenType(data[pos])

		if !startToken(tt) {
			c.illegalToken(data, pos)
			return StatusError
		}

		if c.depth == 0 && tt != TokenArrayBegin && tt != TokenObjectBegin {
			c.setError(ErrorInvalidRoot, c.line, c.col)
			return StatusError
		}

		switch tt {
		case TokenArrayBegin:
			nf := c.pushFrame(modeArray)
			nf.value = NewArrayVal(NewArray(minArrayCapacity))
			pos++
			c.col++
			c.depth++

		case TokenObjectBegin:
			nf := c.pushFrame(modeObject)
			nf.value = NewObjectVal(NewObject())
			nf.state = objAfterOpen
			pos++
			c.col++
			c.depth++

		case TokenNumber:
			nf := c.pushFrame(modeNumber)
			nf.state = int(numDefault)
			c.tokBufPos = 0
			c.insideToken = true

		case TokenString:
			c.pushFrame(modeString).value = NewStringVal(NewStringValue(""))
			pos++
			c.col++
			c.insideToken = true

		case TokenKeyword:
			c.pushFrame(modeKeyword)
			c.tokBufPos = 0
			c.insideToken = true

		case TokenUnicode:
			need, lerr := utf8LeadLen(data[pos])
			if lerr != nil {
				c.setError(ErrorIllegalToken, c.line, c.col, "illegal character")
				return StatusError
			}
			c.pushFrame(modeUTF8)
			c.utf8Buf[0] = data[pos]
			c.utf8Pos = 1
			c.utf8Need = need
			pos++
			c.insideToken = true
		}
	}

	if len(c.frames) > 0 && c.frames[0].mode == modeDone {
		return StatusComplete
	}
	return StatusIncomplete
}

// illegalToken renders an ILLEGAL_TOKEN error for the byte at pos,
// distinguishing control characters from printable ones the way
// jx_illegal_token does.
func (c *Context) illegalToken(data []byte, pos int) error {
	b := data[pos]
	if b < 0x20 {
		return c.setError(ErrorIllegalToken, c.line, c.col, "control character")
	}
	return c.setError(ErrorIllegalToken, c.line, c.col, string(rune(b)))
}
