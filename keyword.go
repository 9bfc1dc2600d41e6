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

// maxKeywordLen is the length of the longest keyword, "false".
const maxKeywordLen = 5

// parseKeyword resumes accumulating lowercase letters into the shared
// token buffer. It stops (without consuming) at the first byte outside
// [a-z], leaving that byte for the dispatcher to classify as the next
// token.
func (c *Context) parseKeyword(data []byte, pos *int, end int, f *frame) (bool, error) {
	for *pos <= end {
		b := data[*pos]

		if b < 'a' || b > 'z' {
			return c.finishKeyword(f)
		}

		if c.tokBufPos >= maxKeywordLen {
			return false, c.setError(ErrorIllegalToken, c.line, c.col, string(c.tokBuf[:c.tokBufPos]))
		}

		c.tokBuf[c.tokBufPos] = b
		c.tokBufPos++
		*pos++
		c.col++
	}

	return false, nil
}

func (c *Context) finishKeyword(f *frame) (bool, error) {
	text := string(c.tokBuf[:c.tokBufPos])
	c.tokBufPos = 0

	switch text {
	case "null":
		f.value = ValueNull
	case "true":
		f.value = ValueTrue
	case "false":
		f.value = ValueFalse
	default:
		return false, c.setError(ErrorIllegalToken, c.line, c.col, text)
	}

	return true, nil
}
