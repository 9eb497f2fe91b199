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

package ir

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
	"github.com/gx-org/opschema/base/stringseq"
)

// TypeSet is a set of formal types.
//
// Iteration and rendering order is deterministic: types are ordered by
// kind, then by their element data type, never by insertion order, so
// that repeated builds of the same set always render identically.
type TypeSet struct {
	set map[Type]struct{}
}

// NewTypeSet returns a set containing the given types.
func NewTypeSet(types ...Type) *TypeSet {
	s := &TypeSet{set: make(map[Type]struct{}, len(types))}
	s.Insert(types...)
	return s
}

// Insert adds types to the set.
func (s *TypeSet) Insert(types ...Type) {
	if s.set == nil {
		s.set = make(map[Type]struct{}, len(types))
	}
	for _, typ := range types {
		s.set[typ] = struct{}{}
	}
}

// Has reports if a type belongs to the set.
func (s *TypeSet) Has(typ Type) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[typ]
	return ok
}

// Len returns the number of types in the set.
func (s *TypeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

// Union returns a new set with the types of both sets.
func (s *TypeSet) Union(other *TypeSet) *TypeSet {
	u := NewTypeSet(maps.Keys(s.set)...)
	u.Insert(maps.Keys(other.set)...)
	return u
}

// Equal reports if both sets contain the same types.
func (s *TypeSet) Equal(other *TypeSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	for typ := range s.set {
		if !other.Has(typ) {
			return false
		}
	}
	return true
}

// Types returns the types of the set in deterministic order.
func (s *TypeSet) Types() []Type {
	if s == nil {
		return nil
	}
	types := maps.Keys(s.set)
	slices.SortFunc(types, compareTypes)
	return types
}

// String returns the comma-joined names of the types in the set.
func (s *TypeSet) String() string {
	return stringseq.JoinStringer(slices.Values(s.Types()), ",")
}

func compareTypes(a, b Type) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	switch aT := a.(type) {
	case TensorType:
		return cmp.Compare(aT.DType, b.(TensorType).DType)
	case SequenceType:
		return compareTypes(aT.Elem, b.(SequenceType).Elem)
	case OptionalType:
		return compareTypes(aT.Elem, b.(OptionalType).Elem)
	}
	return 0
}
