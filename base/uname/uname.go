// Copyright 2025 Google LLC
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

// Package uname provides unique names.
package uname

import "fmt"

// Unique generates unique names.
type Unique struct {
	taken map[string]bool
}

// New returns a name generator with the given names already reserved.
func New(reserved ...string) *Unique {
	u := &Unique{taken: make(map[string]bool, len(reserved))}
	for _, name := range reserved {
		u.taken[name] = true
	}
	return u
}

// Reserve marks a name as taken without generating it.
// It reports whether the name was still available.
func (u *Unique) Reserve(name string) bool {
	if u.taken[name] {
		return false
	}
	u.taken[name] = true
	return true
}

// Name returns a unique name given a desired base name.
// If the base name is available it is returned directly; otherwise the
// smallest numeric suffix that frees it is appended.
func (u *Unique) Name(root string) string {
	if u.Reserve(root) {
		return root
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", root, i)
		if u.Reserve(name) {
			return name
		}
	}
}
