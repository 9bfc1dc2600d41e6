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

import (
	"strings"
	"testing"
)

func parseAll(t *testing.T, chunks ...string) (*Value, *Context) {
	t.Helper()
	c := NewContext()
	var status ParseStatus
	for _, chunk := range chunks {
		status = c.ParseChunk([]byte(chunk))
		if status == StatusError {
			return nil, c
		}
	}
	if status != StatusComplete {
		return nil, c
	}
	return c.GetResult(), c
}

func TestParseEmptyArrayAndObject(t *testing.T) {
	v, c := parseAll(t, "[]")
	if v == nil || v.Type() != TypeArray || v.Array().Len() != 0 {
		t.Fatalf("parse [] failed: %v err=%s", v, c.GetErrorMessage())
	}

	v, c = parseAll(t, "{}")
	if v == nil || v.Type() != TypeObject || v.Object().Len() != 0 {
		t.Fatalf("parse {} failed: %v err=%s", v, c.GetErrorMessage())
	}
}

func TestParseNestedArray(t *testing.T) {
	v, c := parseAll(t, "[[], [1, 2], [[3]]]")
	if v == nil {
		t.Fatalf("parse failed: %s", c.GetErrorMessage())
	}
	arr := v.Array()
	if arr.Len() != 3 {
		t.Fatalf("outer length = %d, want 3", arr.Len())
	}
	if arr.Get(1).Array().Len() != 2 {
		t.Fatalf("arr[1] length = %d, want 2", arr.Get(1).Array().Len())
	}
	if arr.Get(2).Array().Get(0).Array().Get(0).Number() != 3 {
		t.Fatal("arr[2][0][0] != 3")
	}
}

// TestChunkInvarianceNumberArray feeds the canonical seven-number array
// across three chunk boundaries, splitting mid-number each time, and
// checks that the parse result is identical to a single-chunk parse.
func TestChunkInvarianceNumberArray(t *testing.T) {
	full := "[1024,99,24,-35,-788.0,2048,-322]"

	oneShot, _ := parseAll(t, full)
	if oneShot == nil {
		t.Fatal("single-chunk parse failed")
	}

	chunked, c := parseAll(t, "[1024,99,24,-3", "5,-788.0,20", "48,-322]")
	if chunked == nil {
		t.Fatalf("chunked parse failed: %s", c.GetErrorMessage())
	}

	sum := 0.0
	for i := 0; i < chunked.Array().Len(); i++ {
		sum += chunked.Array().Get(i).Number()
	}
	if sum != 2050 {
		t.Fatalf("sum = %v, want 2050", sum)
	}

	for i := 0; i < oneShot.Array().Len(); i++ {
		if oneShot.Array().Get(i).Number() != chunked.Array().Get(i).Number() {
			t.Fatalf("element %d differs between one-shot and chunked parse", i)
		}
	}
}

func TestChunkInvarianceByteAtATime(t *testing.T) {
	full := `{"a":[1,2,"xé"],"b":true}`
	c := NewContext()
	var status ParseStatus
	for i := 0; i < len(full); i++ {
		status = c.ParseChunk([]byte{full[i]})
		if status == StatusError {
			t.Fatalf("byte-at-a-time parse failed at byte %d: %s", i, c.GetErrorMessage())
		}
	}
	if status != StatusComplete {
		t.Fatalf("parse did not complete, status=%v", status)
	}
	v := c.GetResult()
	if v == nil || v.Type() != TypeObject {
		t.Fatal("result is not an object")
	}
}

func TestParseObjectWithUnicodeKey(t *testing.T) {
	v, c := parseAll(t, `{"π":3.14159,"name":"Euler"}`)
	if v == nil {
		t.Fatalf("parse failed: %s", c.GetErrorMessage())
	}
	obj := v.Object()
	pi, ok := obj.Get("π")
	if !ok || pi.Number() != 3.14159 {
		t.Fatalf("Get(pi) = %v, %v", pi, ok)
	}
	name, ok := obj.Get("name")
	if !ok || name.Str() != "Euler" {
		t.Fatalf("Get(name) = %v, %v", name, ok)
	}
}

func TestParseFourByteUTF8String(t *testing.T) {
	v, c := parseAll(t, `"😀"`)
	if v != nil {
		t.Fatal("bare string at root should be rejected (invalid root)")
	}
	if c.GetError() != ErrorInvalidRoot {
		t.Fatalf("GetError() = %v, want ErrorInvalidRoot", c.GetError())
	}

	v, c = parseAll(t, `["😀"]`)
	if v == nil {
		t.Fatalf("parse failed: %s", c.GetErrorMessage())
	}
	want := string(rune(0x1F600))
	if got := v.Array().Get(0).Str(); got != want {
		t.Fatalf("four-byte literal = %q, want %q", got, want)
	}
}

// TestParseUnicodeEscapedSurrogatePair exercises the \uXXXX\uXXXX decode
// path directly (as opposed to a literal multi-byte UTF-8 passthrough).
func TestParseUnicodeEscapedSurrogatePair(t *testing.T) {
	v, c := parseAll(t, `["`+`\u`+`D83D`+`\u`+`DE00"]`)
	if v == nil {
		t.Fatalf("parse failed: %s", c.GetErrorMessage())
	}
	want := string(rune(0x1F600))
	if got := v.Array().Get(0).Str(); got != want {
		t.Fatalf("decoded \\u-escaped surrogate pair = %q, want %q", got, want)
	}
}

// TestParseUnicodeEscapedBMPCharacter exercises a standalone (non-surrogate)
// \uXXXX escape.
func TestParseUnicodeEscapedBMPCharacter(t *testing.T) {
	v, c := parseAll(t, `["`+`\u`+`03C0"]`)
	if v == nil {
		t.Fatalf("parse failed: %s", c.GetErrorMessage())
	}
	if got := v.Array().Get(0).Str(); got != "π" {
		t.Fatalf("decoded \\u escape = %q, want %q", got, "π")
	}
}

func TestParseLiteralUTF8Passthrough(t *testing.T) {
	v, c := parseAll(t, `["café", "日本語"]`)
	if v == nil {
		t.Fatalf("parse failed: %s", c.GetErrorMessage())
	}
	if got := v.Array().Get(0).Str(); got != "café" {
		t.Fatalf("arr[0] = %q, want %q", got, "café")
	}
	if got := v.Array().Get(1).Str(); got != "日本語" {
		t.Fatalf("arr[1] = %q, want %q", got, "日本語")
	}
}

func TestExtUTF8PIDisabledByDefault(t *testing.T) {
	c := NewContext()
	data := []byte{'[', 0xCF, 0x80, ']'}
	status := c.ParseChunk(data)
	if status != StatusError {
		t.Fatalf("status = %v, want StatusError", status)
	}
	if c.GetError() != ErrorIllegalToken {
		t.Fatalf("GetError() = %v, want ErrorIllegalToken", c.GetError())
	}
}

func TestExtUTF8PIEnabledAcrossChunks(t *testing.T) {
	c := NewContext()
	c.SetExtensions(ExtUTF8PI)

	if status := c.ParseChunk([]byte{'[', 0xCF}); status != StatusIncomplete {
		t.Fatalf("first chunk status = %v, want StatusIncomplete", status)
	}
	if status := c.ParseChunk([]byte{0x80, ']'}); status != StatusComplete {
		t.Fatalf("second chunk status = %v, want StatusComplete: %s", status, c.GetErrorMessage())
	}

	v := c.GetResult()
	if v == nil || v.Array().Get(0).Number() != 3.14159 {
		t.Fatalf("result = %v, want [3.14159]", v)
	}
}

func TestInvalidRootScalar(t *testing.T) {
	for _, in := range []string{"42", `"hello"`, "true", "null"} {
		c := NewContext()
		status := c.ParseChunk([]byte(in))
		if status != StatusError || c.GetError() != ErrorInvalidRoot {
			t.Fatalf("input %q: status=%v kind=%v, want StatusError/ErrorInvalidRoot", in, status, c.GetError())
		}
	}
}

func TestTrailingCharsAfterRoot(t *testing.T) {
	c := NewContext()
	status := c.ParseChunk([]byte("[1] x"))
	if status != StatusError || c.GetError() != ErrorTrailingChars {
		t.Fatalf("status=%v kind=%v, want StatusError/ErrorTrailingChars", status, c.GetError())
	}
}

func TestTrailingCommaErrors(t *testing.T) {
	cases := []string{"[1,]", `{"a":1,}`}
	for _, in := range cases {
		c := NewContext()
		status := c.ParseChunk([]byte(in))
		if status != StatusError || c.GetError() != ErrorUnexpectedToken {
			t.Fatalf("input %q: status=%v kind=%v, want StatusError/ErrorUnexpectedToken", in, status, c.GetError())
		}
	}
}

func TestIncompleteObjectError(t *testing.T) {
	c := NewContext()
	status := c.ParseChunk([]byte("[1,2"))
	if status != StatusIncomplete {
		t.Fatalf("status = %v, want StatusIncomplete", status)
	}
	if v := c.GetResult(); v != nil {
		t.Fatal("GetResult() on incomplete parse should be nil")
	}
	if c.GetError() != ErrorIncompleteObject {
		t.Fatalf("GetError() = %v, want ErrorIncompleteObject", c.GetError())
	}
}

func TestSurrogateErrors(t *testing.T) {
	mismatched := "[\"\\uD800\\u0041\"]" // high surrogate followed by a non-low-surrogate escape
	cases := []string{
		`["\uD800"]`, // lone high surrogate, string ends
		mismatched,
		`["\uD800x"]`, // high surrogate followed by a literal byte
		`["\uDC00"]`,  // lone low surrogate
	}
	for _, in := range cases {
		c := NewContext()
		status := c.ParseChunk([]byte(in))
		if status != StatusError || c.GetError() != ErrorIllegalToken {
			t.Fatalf("input %q: status=%v kind=%v, want StatusError/ErrorIllegalToken", in, status, c.GetError())
		}
	}
}

func TestControlCharacterInStringIsIllegal(t *testing.T) {
	c := NewContext()
	status := c.ParseChunk([]byte("[\"a\x01b\"]"))
	if status != StatusError || c.GetError() != ErrorIllegalToken {
		t.Fatalf("status=%v kind=%v, want StatusError/ErrorIllegalToken", status, c.GetError())
	}
}

func TestKeywordParsing(t *testing.T) {
	v, c := parseAll(t, "[true,false,null]")
	if v == nil {
		t.Fatalf("parse failed: %s", c.GetErrorMessage())
	}
	arr := v.Array()
	if !arr.Get(0).Bool() {
		t.Fatal("arr[0] != true")
	}
	if arr.Get(1).Bool() {
		t.Fatal("arr[1] != false")
	}
	if !arr.Get(2).IsNull() {
		t.Fatal("arr[2] != null")
	}
}

func TestInvalidKeyword(t *testing.T) {
	c := NewContext()
	status := c.ParseChunk([]byte("[nul]"))
	if status != StatusError || c.GetError() != ErrorIllegalToken {
		t.Fatalf("status=%v kind=%v, want StatusError/ErrorIllegalToken", status, c.GetError())
	}
}

func TestNumberGrammar(t *testing.T) {
	valid := map[string]float64{
		"[0]":      0,
		"[-0.5]":   -0.5,
		"[1e10]":   1e10,
		"[1.5e-3]": 1.5e-3,
	}
	for in, want := range valid {
		v, c := parseAll(t, in)
		if v == nil {
			t.Fatalf("input %q: parse failed: %s", in, c.GetErrorMessage())
		}
		if got := v.Array().Get(0).Number(); got != want {
			t.Fatalf("input %q: got %v, want %v", in, got, want)
		}
	}

	invalid := []string{"[01]", "[-]", "[1e]", "[1.]", "[.5]"}
	for _, in := range invalid {
		c := NewContext()
		status := c.ParseChunk([]byte(in))
		if status != StatusError {
			t.Fatalf("input %q: status = %v, want StatusError", in, status)
		}
	}
}

func TestLineAndColumnInErrorMessage(t *testing.T) {
	c := NewContext()
	status := c.ParseChunk([]byte("[\n\t@]"))
	if status != StatusError {
		t.Fatalf("status = %v, want StatusError", status)
	}
	msg := c.GetErrorMessage()
	if !strings.Contains(msg, "[2:4]") {
		t.Fatalf("message %q does not contain position [2:4]", msg)
	}
	if !strings.Contains(msg, "@") {
		t.Fatalf("message %q does not mention the offending byte", msg)
	}
}

func TestErrorIsSticky(t *testing.T) {
	c := NewContext()
	c.ParseChunk([]byte("[1,]"))
	first := c.GetErrorMessage()
	status := c.ParseChunk([]byte("more data"))
	if status != StatusError {
		t.Fatalf("status after sticky error = %v, want StatusError", status)
	}
	if c.GetErrorMessage() != first {
		t.Fatal("error message changed after the first error")
	}
}

func TestGetResultExactlyOnce(t *testing.T) {
	v, c := parseAll(t, "[1]")
	if v == nil {
		t.Fatalf("parse failed: %s", c.GetErrorMessage())
	}
	if second := c.GetResult(); second != nil {
		t.Fatal("second GetResult() call should return nil")
	}
}

// acceptance is a small table-driven corpus in the spirit of jx_tests.c's
// simple_tests table: pass/fail JSON fixtures exercised end to end.
var acceptance = []struct {
	name       string
	json       string
	shouldPass bool
}{
	{"empty array", "[]", true},
	{"empty object", "{}", true},
	{"nested arrays", "[[1,2],[3,4]]", true},
	{"object of arrays", `{"a":[1,2],"b":[3,4]}`, true},
	{"mixed types", `[1,"two",3.0,true,false,null,{"k":"v"}]`, true},
	{"whitespace heavy", "[ 1 ,\n\t2 ,\n\t3 ]", true},
	{"unterminated array", "[1,2", false},
	{"unterminated string", `["abc`, false},
	{"bad escape", `["\q"]`, false},
	{"missing colon", `{"a" 1}`, false},
	{"missing comma", `[1 2]`, false},
	{"object key not string", `{1:2}`, false},
	{"scalar root", "3.14", false},
}

func TestAcceptanceCorpus(t *testing.T) {
	for _, tc := range acceptance {
		t.Run(tc.name, func(t *testing.T) {
			c := NewContext()
			status := c.ParseChunk([]byte(tc.json))
			ok := status == StatusComplete
			if ok && c.GetResult() == nil {
				ok = false
			}
			if ok != tc.shouldPass {
				t.Fatalf("json %q: pass=%v, want %v (message=%q)", tc.json, ok, tc.shouldPass, c.GetErrorMessage())
			}
		})
	}
}
