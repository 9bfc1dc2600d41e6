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

import "testing"

func TestObjectSetGetHasDelete(t *testing.T) {
	o := NewObject()

	if err := o.Set("name", NewStringVal(NewStringValue("ada"))); err != nil {
		t.Fatalf("Set(name) error: %v", err)
	}
	if err := o.Set("age", NewNumber(36)); err != nil {
		t.Fatalf("Set(age) error: %v", err)
	}

	if o.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", o.Len())
	}
	if !o.Has("name") {
		t.Fatal("Has(name) = false")
	}

	v, ok := o.Get("age")
	if !ok || v.Number() != 36 {
		t.Fatalf("Get(age) = %v, %v", v, ok)
	}

	if !o.Delete("age") {
		t.Fatal("Delete(age) = false")
	}
	if o.Has("age") {
		t.Fatal("Has(age) = true after delete")
	}
	if o.Len() != 1 {
		t.Fatalf("Len() after delete = %d, want 1", o.Len())
	}
}

func TestObjectGetMissing(t *testing.T) {
	o := NewObject()
	if _, ok := o.Get("missing"); ok {
		t.Fatal("Get(missing) = true")
	}
	if o.Delete("missing") {
		t.Fatal("Delete(missing) = true")
	}
}

func TestObjectOverwriteFreesOldValue(t *testing.T) {
	o := NewObject()
	inner := NewArray(8)
	inner.Push(NewNumber(1))
	_ = o.Set("k", NewArrayVal(inner))

	// Overwriting should free the old array value rather than leak it.
	_ = o.Set("k", NewNumber(2))

	v, _ := o.Get("k")
	if v.Number() != 2 {
		t.Fatalf("Get(k) = %v, want 2", v.Number())
	}
	if inner.Len() != 0 {
		t.Fatalf("replaced array still has %d elements, want 0", inner.Len())
	}
}

func TestObjectIterateOrderIsDeterministic(t *testing.T) {
	o := NewObject()
	keys := []string{"zeta", "alpha", "mid", "a", "ab"}
	for _, k := range keys {
		_ = o.Set(k, ValueNull)
	}

	var first, second []string
	o.Iterate(func(k string, v *Value) bool {
		first = append(first, k)
		return true
	})
	o.Iterate(func(k string, v *Value) bool {
		second = append(second, k)
		return true
	})

	if len(first) != len(keys) {
		t.Fatalf("iterated %d keys, want %d", len(first), len(keys))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("iteration order not deterministic: %v vs %v", first, second)
		}
	}
}

func TestObjectIterateStopsEarly(t *testing.T) {
	o := NewObject()
	_ = o.Set("a", ValueNull)
	_ = o.Set("b", ValueNull)
	_ = o.Set("c", ValueNull)

	count := 0
	o.Iterate(func(k string, v *Value) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Iterate visited %d members after stop signal, want 1", count)
	}
}

func TestObjectUnicodeKey(t *testing.T) {
	o := NewObject()
	if err := o.Set("π", NewNumber(3.14159)); err != nil {
		t.Fatalf("Set(pi) error: %v", err)
	}
	v, ok := o.Get("π")
	if !ok || v.Number() != 3.14159 {
		t.Fatalf("Get(pi) = %v, %v", v, ok)
	}
}

func TestObjectControlEscapeKey(t *testing.T) {
	o := NewObject()
	if err := o.Set("a\tb", NewNumber(1)); err != nil {
		t.Fatalf("Set with tab key error: %v", err)
	}
	if !o.Has("a\tb") {
		t.Fatal("Has(a\\tb) = false")
	}
}
