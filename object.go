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

import "fmt"

// Object is an ordered string-keyed map backed by a byte trie (see trie.go)
// rather than Go's built-in map, so that Iterate visits members in a
// deterministic order instead of Go's intentionally randomized map order.
type Object struct {
	root *trieNode
	len  int
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{root: &trieNode{}}
}

// Len reports the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return o.len
}

// Set assigns key to v, freeing any value it replaces. It returns an error
// if key contains a byte outside the permitted key alphabet; a key that
// came from a successfully parsed JSON string never triggers this, since
// the string parser already excludes every such byte.
func (o *Object) Set(key string, v *Value) error {
	node := o.root
	for i := 0; i < len(key); i++ {
		child, ok := node.child(key[i], true)
		if !ok {
			return fmt.Errorf("jx: invalid object key byte 0x%02x at index %d", key[i], i)
		}
		node = child
	}
	if node.hasValue {
		node.value.Free()
	} else {
		o.len++
	}
	node.value = v
	node.hasValue = true
	return nil
}

// Get looks up key, reporting false if absent.
func (o *Object) Get(key string) (*Value, bool) {
	node := o.root
	for i := 0; i < len(key); i++ {
		child, ok := node.child(key[i], false)
		if !ok || child == nil {
			return nil, false
		}
		node = child
	}
	if !node.hasValue {
		return nil, false
	}
	return node.value, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key, freeing its value and pruning now-empty trie
// branches back up toward the root. It reports whether key was present.
func (o *Object) Delete(key string) bool {
	deleted := deleteKey(o.root, key, 0)
	if deleted {
		o.len--
	}
	return deleted
}

func deleteKey(node *trieNode, key string, i int) bool {
	if i == len(key) {
		if !node.hasValue {
			return false
		}
		node.value.Free()
		node.value = nil
		node.hasValue = false
		return true
	}
	slot, ok := trieSlot(key[i])
	if !ok {
		return false
	}
	child := node.children[slot]
	if child == nil {
		return false
	}
	deleted := deleteKey(child, key, i+1)
	if deleted && child.empty() {
		node.children[slot] = nil
		node.numChildren--
	}
	return deleted
}

// Iterate walks members in trie pre-order: at every node, its own member
// (if any) is visited before its children, and children are visited in
// ascending slot order. fn may return false to stop early.
func (o *Object) Iterate(fn func(key string, v *Value) bool) {
	if o == nil {
		return
	}
	var buf []byte
	iterateNode(o.root, &buf, fn)
}

func iterateNode(node *trieNode, buf *[]byte, fn func(string, *Value) bool) bool {
	if node.hasValue {
		if !fn(string(*buf), node.value) {
			return false
		}
	}
	for slot := 0; slot < trieSlots; slot++ {
		child := node.children[slot]
		if child == nil {
			continue
		}
		*buf = append(*buf, slotByte(slot))
		cont := iterateNode(child, buf, fn)
		*buf = (*buf)[:len(*buf)-1]
		if !cont {
			return false
		}
	}
	return true
}

// Free releases every member value transitively and empties the object.
func (o *Object) Free() {
	if o == nil {
		return
	}
	freeNode(o.root)
	o.root = &trieNode{}
	o.len = 0
}

func freeNode(node *trieNode) {
	if node == nil {
		return
	}
	if node.hasValue {
		node.value.Free()
	}
	for _, c := range node.children {
		freeNode(c)
	}
}
