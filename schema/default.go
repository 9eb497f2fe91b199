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

package schema

import "fmt"

// Default is the default value of a parameter. The zero value is the
// explicit absence of a default, distinct from a default whose value
// is nil: a parameter defaulting to nil still has a default.
type Default struct {
	value any
	ok    bool
}

// NoDefault is the absence of a default value.
var NoDefault = Default{}

// DefaultOf returns the default for a given value.
func DefaultOf(value any) Default {
	return Default{value: value, ok: true}
}

// Get returns the default value and if a default has been set.
func (d Default) Get() (any, bool) {
	return d.value, d.ok
}

// IsSet reports if a default value has been set, whatever the value.
func (d Default) IsSet() bool {
	return d.ok
}

// String representation of the default.
func (d Default) String() string {
	if !d.ok {
		return "<no default>"
	}
	return fmt.Sprint(d.value)
}
