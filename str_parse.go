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

// strState is the bitmask of sub-states a string body can be suspended in.
// Only one of strEscape/strUTF8/strUnicode is ever set at a time (they
// gate mutually exclusive byte interpretations); strSurrogate and strEnd
// are independent flags layered on top.
type strState uint8

const (
	strEscape strState = 1 << iota
	strUTF8
	strUnicode
	strSurrogate
	strEnd
)

// parseString resumes a string body at *pos, appending decoded bytes to
// f.value's StringValue, and returns once the closing quote is consumed or
// the chunk runs out.
func (c *Context) parseString(data []byte, pos *int, end int, f *frame) (bool, error) {
	state := strState(f.state)
	sb := f.value.s

	for *pos <= end {
		b := data[*pos]

		switch {
		case state&strEscape != 0:
			if state&strSurrogate != 0 && b != 'u' {
				return false, c.setError(ErrorIllegalToken, c.line, c.col, "invalid unicode character in string")
			}
			switch b {
			case '"', '\\', '/':
				sb.AppendByte(b)
			case 'b':
				sb.AppendByte('\b')
			case 'f':
				sb.AppendByte('\f')
			case 'n':
				sb.AppendByte('\n')
			case 'r':
				sb.AppendByte('\r')
			case 't':
				sb.AppendByte('\t')
			case 'u':
				state |= strUnicode
			default:
				return false, c.setError(ErrorIllegalToken, c.line, c.col, "unrecognized escape sequence")
			}
			state &^= strEscape
			c.col++
			*pos++

		case state&strUTF8 != 0:
			if b&0xC0 != 0x80 {
				return false, c.setError(ErrorIllegalToken, c.line, c.col, "illegal character in string")
			}
			sb.AppendByte(b)
			c.utf8Need--
			if c.utf8Need == 0 {
				state &^= strUTF8
				c.col++
			}
			*pos++

		case state&strUnicode != 0:
			done, err := c.parseUnicodeEscape(b, sb, &state)
			if err != nil {
				return false, err
			}
			*pos++
			if done {
				state &^= strUnicode
			}

		default:
			if state&strSurrogate != 0 && b != '\\' {
				return false, c.setError(ErrorIllegalToken, c.line, c.col, "invalid unicode character in string")
			}

			switch {
			case b == '\\':
				state |= strEscape
				c.col++
				*pos++
			case b == '"':
				state |= strEnd
				c.col++
				*pos++
			case b >= 0xC0:
				need, lerr := utf8LeadLen(b)
				if lerr != nil {
					return false, c.setError(ErrorIllegalToken, c.line, c.col, "illegal character in string")
				}
				sb.AppendByte(b)
				c.utf8Need = need
				state |= strUTF8
				*pos++
			case b >= 0x20 && b <= 0x7E:
				sb.AppendByte(b)
				c.col++
				*pos++
			default:
				return false, c.setError(ErrorIllegalToken, c.line, c.col, "control character in string")
			}
		}

		if state&strEnd != 0 {
			f.state = int(state)
			return true, nil
		}
	}

	f.state = int(state)
	return false, nil
}
