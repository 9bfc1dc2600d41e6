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

// mode identifies which parser a frame is currently suspended in.
type mode int

const (
	modeUndefined mode = iota
	modeStart
	modeArray
	modeObject
	modeNumber
	modeString
	modeKeyword
	modeUTF8
	modeDone
)

// frame is one entry of the parser's mode stack. value is the (possibly
// partially built) value this frame owns; returnValue is set by the
// dispatcher immediately after a child frame completes, and is consumed by
// the parent's own per-mode parser on its very next invocation — the
// hand-off protocol that lets a completed child value move up to its
// parent without the parent reaching into the child's frame directly.
type frame struct {
	mode        mode
	state       int
	value       *Value
	returnValue *Value
	pendingKey  string
}
