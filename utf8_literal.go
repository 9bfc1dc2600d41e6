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

// utf8LeadLen returns the number of continuation bytes expected after a
// UTF-8 lead byte, or an error if b is not a valid two/three/four-byte
// lead (a stray continuation byte, or a byte using the obsolete 5/6-byte
// lead encoding, is never legal here).
func utf8LeadLen(b byte) (int, error) {
	switch {
	case b&0xE0 == 0xC0:
		return 1, nil
	case b&0xF0 == 0xE0:
		return 2, nil
	case b&0xF8 == 0xF0:
		return 3, nil
	default:
		return 0, errInvalidUTF8Lead
	}
}

// parseUTF8Literal resumes a literal multi-byte UTF-8 sequence appearing
// as a bare token outside of any string. The dispatcher enters this mode
// for any such lead byte; finishUTF8Literal accepts the completed sequence
// only when ExtUTF8PI is enabled and the sequence is 0xCF 0x80, and reports
// an illegal token otherwise.
func (c *Context) parseUTF8Literal(data []byte, pos *int, end int, f *frame) (bool, error) {
	for *pos <= end {
		b := data[*pos]
		if b&0xC0 != 0x80 {
			return false, c.setError(ErrorIllegalToken, c.line, c.col, "illegal character")
		}
		c.utf8Buf[c.utf8Pos] = b
		c.utf8Pos++
		c.utf8Need--
		*pos++
		if c.utf8Need == 0 {
			c.col++
			return c.finishUTF8Literal(f)
		}
	}
	return false, nil
}

func (c *Context) finishUTF8Literal(f *frame) (bool, error) {
	seq := c.utf8Buf[:c.utf8Pos]
	c.utf8Pos = 0

	if c.extensions&ExtUTF8PI != 0 && len(seq) == 2 && seq[0] == 0xCF && seq[1] == 0x80 {
		f.value = NewNumber(3.14159)
		return true, nil
	}

	return false, c.setError(ErrorIllegalToken, c.line, c.col, "illegal character")
}
