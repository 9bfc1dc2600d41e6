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

import "unicode/utf8"

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseUnicodeEscape consumes one hex digit of a \uXXXX escape. Once the
// fourth digit of either a standalone escape or the low half of a
// surrogate pair has been read, it decodes and appends the resulting code
// point to sv. done reports whether the 4-digit group is complete — false
// simply means "need more digits", not failure. After a high surrogate done
// is true while the pairing is still pending: strSurrogate is set and the
// next escape supplies the low half.
func (c *Context) parseUnicodeEscape(b byte, sv *StringValue, state *strState) (done bool, err error) {
	v, ok := hexVal(b)
	if !ok {
		return false, c.setError(ErrorIllegalToken, c.line, c.col, "illegal unicode escape sequence")
	}

	c.uniAccum[c.uniSlot] = c.uniAccum[c.uniSlot]<<4 | uint16(v)
	c.uniDigits++
	c.col++

	if c.uniDigits < 4 {
		return false, nil
	}
	c.uniDigits = 0
	val := c.uniAccum[c.uniSlot]

	if *state&strSurrogate != 0 {
		if val < 0xDC00 || val > 0xDFFF {
			return false, c.setError(ErrorIllegalToken, c.line, c.col, "invalid unicode character in string")
		}
		hi := int32(c.uniAccum[0])
		lo := int32(val)
		cp := ((hi-0xD800)<<10 | (lo - 0xDC00)) + 0x10000

		*state &^= strSurrogate
		c.uniSlot = 0

		if err := c.emitCodepoint(sv, cp); err != nil {
			return false, err
		}
		return true, nil
	}

	if val >= 0xD800 && val <= 0xDBFF {
		*state |= strSurrogate
		c.uniSlot = 1
		return true, nil
	}

	if val >= 0xDC00 && val <= 0xDFFF {
		return false, c.setError(ErrorIllegalToken, c.line, c.col, "invalid unicode character in string")
	}

	if err := c.emitCodepoint(sv, int32(val)); err != nil {
		return false, err
	}
	return true, nil
}

// emitCodepoint validates and UTF-8 encodes a decoded code point into sv.
func (c *Context) emitCodepoint(sv *StringValue, cp int32) error {
	if cp < 0 || cp > 0x10FFFF {
		return c.setError(ErrorIllegalToken, c.line, c.col, "illegal character")
	}
	if cp < 0x20 || cp == 0x7F {
		return c.setError(ErrorIllegalToken, c.line, c.col, "control character in string")
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(cp))
	sv.AppendBytes(buf[:n])
	return nil
}
