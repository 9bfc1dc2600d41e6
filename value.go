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

// Type identifies the concrete kind held by a Value. The zero Type is
// TypeNull, so a zero Value behaves as null.
type Type int

const (
	TypeNull Type = iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "undefined"
	}
}

// Value is the tagged union produced by a parse: exactly one of the type
// cases is meaningful, selected by Type(). Null, true and false never
// allocate — they are the three package-level singletons below.
type Value struct {
	typ Type
	b   bool
	n   float64
	s   *StringValue
	arr *Array
	obj *Object
}

var (
	// ValueNull is the single shared null value. Never mutate or free it.
	ValueNull = &Value{typ: TypeNull}
	// ValueTrue is the single shared boolean-true value.
	ValueTrue = &Value{typ: TypeBool, b: true}
	// ValueFalse is the single shared boolean-false value.
	ValueFalse = &Value{typ: TypeBool, b: false}
)

// BoolValue returns one of the shared boolean singletons.
func BoolValue(b bool) *Value {
	if b {
		return ValueTrue
	}
	return ValueFalse
}

// NewNumber wraps a float64 in a Value.
func NewNumber(n float64) *Value {
	return &Value{typ: TypeNumber, n: n}
}

// NewStringVal wraps an owned StringValue buffer in a Value.
func NewStringVal(s *StringValue) *Value {
	return &Value{typ: TypeString, s: s}
}

// NewArrayVal wraps an owned Array in a Value.
func NewArrayVal(a *Array) *Value {
	return &Value{typ: TypeArray, arr: a}
}

// NewObjectVal wraps an owned Object in a Value.
func NewObjectVal(o *Object) *Value {
	return &Value{typ: TypeObject, obj: o}
}

// Type reports the value's kind. A nil receiver reports TypeNull.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.typ
}

// IsNull reports whether v is nil or the null singleton.
func (v *Value) IsNull() bool {
	return v == nil || v.typ == TypeNull
}

// Bool returns the boolean payload, or false for any other type.
func (v *Value) Bool() bool {
	if v == nil {
		return false
	}
	return v.b
}

// Number returns the numeric payload, or 0 for any other type.
func (v *Value) Number() float64 {
	if v == nil {
		return 0
	}
	return v.n
}

// Str returns the decoded string content, or "" for any other type.
func (v *Value) Str() string {
	if v == nil || v.s == nil {
		return ""
	}
	return v.s.String()
}

// Array returns the underlying array, or nil for any other type.
func (v *Value) Array() *Array {
	if v == nil {
		return nil
	}
	return v.arr
}

// Object returns the underlying object, or nil for any other type.
func (v *Value) Object() *Object {
	if v == nil {
		return nil
	}
	return v.obj
}

// Free releases everything owned transitively by v: array elements and
// object members are freed recursively. The three singletons and strings
// (backed by plain Go byte slices, reclaimed by the garbage collector) are
// no-ops, matching jxv_free's treatment of scalars in the original C
// implementation.
func (v *Value) Free() {
	if v == nil || v == ValueNull || v == ValueTrue || v == ValueFalse {
		return
	}
	switch v.typ {
	case TypeArray:
		v.arr.Free()
	case TypeObject:
		v.obj.Free()
	}
}
