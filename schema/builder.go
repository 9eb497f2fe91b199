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

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/gx-org/opschema/ann"
	"github.com/gx-org/opschema/base/ordered"
	"github.com/gx-org/opschema/base/uname"
	"github.com/gx-org/opschema/ir"
)

// builder holds the type constraint table of one signature under
// construction. Each constraint name maps to one shared instance. A
// mutex serializes table writes: one writer at a time per signature.
type builder struct {
	mu    sync.Mutex
	table *ordered.Map[string, *TypeConstraintParam]
	names *uname.Unique
}

func newBuilder() *builder {
	return &builder{
		table: ordered.NewMap[string, *TypeConstraintParam](),
		names: uname.New(),
	}
}

// declare registers a constraint under its declared name. A second
// declaration with the same name replaces the first.
func (b *builder) declare(constraint *TypeConstraintParam) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.names.Reserve(constraint.Name)
	b.table.Store(constraint.Name, constraint)
}

// lookup returns the constraint registered under a name.
func (b *builder) lookup(name string) (*TypeConstraintParam, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.table.Load(name)
}

// shared returns the constraint registered under name, registering it
// with the given types on first use. Parameters sharing a constraint
// name reference one identical instance; the types registered first
// win.
func (b *builder) shared(name string, set *ir.TypeSet) *TypeConstraintParam {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.table.GetOrStore(name, func() *TypeConstraintParam {
		b.names.Reserve(name)
		return &TypeConstraintParam{Name: name, AllowedTypes: set}
	})
}

// auto returns a constraint for a parameter whose type carries no
// constraint name. The constraint is named root; if root is taken by a
// constraint with different allowed types, the name is numbered so
// that constraint names stay unique within the signature.
func (b *builder) auto(root string, set *ir.TypeSet) *TypeConstraintParam {
	b.mu.Lock()
	defer b.mu.Unlock()
	if existing, ok := b.table.Load(root); ok && existing.AllowedTypes.Equal(set) {
		return existing
	}
	constraint := &TypeConstraintParam{Name: b.names.Name(root), AllowedTypes: set}
	b.table.Store(constraint.Name, constraint)
	return constraint
}

// annotationConstraint resolves the constraint of an annotated
// parameter or result: annotations carrying a constraint name share
// one instance per name, anonymous annotations get a constraint named
// after the parameter, and a missing annotation allows any value type.
func (b *builder) annotationConstraint(paramName string, annotation ann.Annotation) (*TypeConstraintParam, error) {
	if annotation == nil {
		return b.auto("T_"+paramName, anyValueSet()), nil
	}
	set, err := ann.AllowedTypes(annotation)
	if err != nil {
		return nil, errors.Wrapf(err, "parameter %q", paramName)
	}
	if name, ok := ann.ConstraintName(annotation); ok {
		return b.shared(name, set), nil
	}
	return b.auto("T_"+paramName, set), nil
}
