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

import "errors"

// ExtUTF8PI enables the literal-UTF-8 extension described in spec.md
// §4.4.7: the two-byte sequence 0xCF 0x80 (U+03C0, GREEK SMALL LETTER PI),
// appearing as a bare token outside of any string, is accepted and parses
// to the number 3.14159.
const ExtUTF8PI uint32 = 1 << 0

// Context holds all state for one resumable parse: the frame stack, the
// scanner's line/column/depth counters, and the scratch buffers the
// per-mode parsers share because only the top-of-stack frame is ever
// actively consuming bytes at a time.
type Context struct {
	frames []*frame

	line, col, depth int

	// tokBuf accumulates a number's or keyword's text across chunks.
	tokBuf    [32]byte
	tokBufPos int

	// utf8Buf accumulates a standalone literal UTF-8 token across chunks.
	// utf8Need counts the continuation bytes still expected, both for that
	// token and for a literal sequence inside a string (whose bytes go
	// straight into the string's buffer).
	utf8Buf  [5]byte
	utf8Pos  int
	utf8Need int

	// uniAccum holds up to two pending \uXXXX escapes: slot 0 for a lone
	// or high surrogate, slot 1 for the low half of a surrogate pair.
	uniAccum  [2]uint16
	uniSlot   int
	uniDigits int

	insideToken bool
	extensions  uint32

	err error
}

// NewContext returns a fresh, ready-to-use parser context.
func NewContext() *Context {
	return &Context{line: 1, col: 1}
}

// SetExtensions enables the given bitmask of optional grammar extensions.
// It has no effect once parsing has begun producing output influenced by
// it, but may be called at any time before the relevant bytes are seen.
func (c *Context) SetExtensions(mask uint32) {
	c.extensions = mask
}

// Close releases everything retained by the context: any values still
// owned by in-flight frames. A Context is not reusable after Close.
func (c *Context) Close() {
	for len(c.frames) > 0 {
		f := c.popFrame()
		f.value.Free()
		f.returnValue.Free()
	}
}

func (c *Context) top() *frame {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[len(c.frames)-1]
}

func (c *Context) pushFrame(m mode) *frame {
	f := &frame{mode: m}
	c.frames = append(c.frames, f)
	return f
}

func (c *Context) popFrame() *frame {
	n := len(c.frames) - 1
	f := c.frames[n]
	c.frames = c.frames[:n]
	return f
}

// GetResult returns the completed root value exactly once. It returns nil
// if parsing has not yet completed (setting ErrorIncompleteObject, unless a
// sticky error is already set) or if an error already occurred.
func (c *Context) GetResult() *Value {
	if c.err != nil {
		return nil
	}
	if len(c.frames) == 0 || c.frames[0].mode != modeDone {
		c.setError(ErrorIncompleteObject, c.line, c.col)
		return nil
	}
	root := c.frames[0]
	v := root.returnValue
	root.returnValue = nil
	return v
}

// GetError reports the kind of the sticky error, or ErrorNone if none has
// occurred.
func (c *Context) GetError() ErrorKind {
	if c.err == nil {
		return ErrorNone
	}
	var pe *ParseError
	if errors.As(c.err, &pe) {
		return pe.Kind
	}
	return ErrorLIBC
}

// GetErrorMessage returns the rendered message for the sticky error, or ""
// if none has occurred.
func (c *Context) GetErrorMessage() string {
	if c.err == nil {
		return ""
	}
	return c.err.Error()
}

// Error returns the sticky error value itself (useful with errors.Is and
// errors.As), or nil if none has occurred.
func (c *Context) Error() error {
	return c.err
}
