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

package ann

import (
	"fmt"

	"github.com/gx-org/opschema/ir"
)

// ResolveError reports a type annotation outside the supported grammar.
// Resolution is all or nothing: an unsupported annotation is never
// partially resolved or treated as any-type.
type ResolveError struct {
	// Annotation that could not be resolved.
	Annotation Annotation
}

// Error returns the error message.
func (e *ResolveError) Error() string {
	if e.Annotation == nil {
		return "unsupported type annotation: <nil>"
	}
	return fmt.Sprintf("unsupported type annotation: %s", e.Annotation)
}

// AllowedTypes resolves an annotation into the set of formal types it
// denotes. Shape parametrizations are ignored and an optional wrapper
// resolves to the types of the annotation it wraps.
func AllowedTypes(a Annotation) (*ir.TypeSet, error) {
	switch annT := a.(type) {
	case Tensor:
		return ir.NewTypeSet(ir.TensorType{DType: annT.DType}), nil
	case AnyTensor:
		set := ir.NewTypeSet()
		for dtype := range ir.DataTypes() {
			set.Insert(ir.TensorType{DType: dtype})
		}
		return set, nil
	case Union:
		return allowedTypesUnion(a, annT.Members)
	case TypeVarConstrained:
		return allowedTypesUnion(a, annT.Constraints)
	case TypeVarBound:
		if annT.Bound == nil {
			return nil, &ResolveError{Annotation: a}
		}
		return AllowedTypes(annT.Bound)
	case Optional:
		if annT.Elem == nil {
			return nil, &ResolveError{Annotation: a}
		}
		return AllowedTypes(annT.Elem)
	case Sequence:
		return allowedTypesSequence(annT)
	}
	return nil, &ResolveError{Annotation: a}
}

// allowedTypesUnion resolves members into one set. An empty member list
// denotes no type at all and is an error on the enclosing annotation.
func allowedTypesUnion(a Annotation, members []Annotation) (*ir.TypeSet, error) {
	if len(members) == 0 {
		return nil, &ResolveError{Annotation: a}
	}
	set := ir.NewTypeSet()
	for _, member := range members {
		memberSet, err := AllowedTypes(member)
		if err != nil {
			return nil, err
		}
		set = set.Union(memberSet)
	}
	return set, nil
}

// allowedTypesSequence wraps every type of the element resolution in a
// sequence. Only tensors can be sequenced: nested sequences are out of
// the grammar and fail rather than flatten.
func allowedTypesSequence(a Sequence) (*ir.TypeSet, error) {
	if a.Elem == nil {
		return nil, &ResolveError{Annotation: a}
	}
	elemSet, err := AllowedTypes(a.Elem)
	if err != nil {
		return nil, err
	}
	set := ir.NewTypeSet()
	for _, typ := range elemSet.Types() {
		tensor, ok := typ.(ir.TensorType)
		if !ok {
			return nil, &ResolveError{Annotation: a}
		}
		set.Insert(ir.SequenceType{Elem: tensor})
	}
	return set, nil
}

// ConstraintName derives the type constraint name carried by an
// annotation:
//
//   - a type variable names its own constraint;
//   - an optional wrapper is transparent;
//   - a sequence over a type variable names a "Sequence_" composite
//     constraint, so sequence-of-T and T never collide within one
//     signature.
//
// Concrete, union, and other non-generic annotations carry no name and
// return false.
func ConstraintName(a Annotation) (string, bool) {
	switch annT := a.(type) {
	case TypeVarConstrained:
		return annT.Name, true
	case TypeVarBound:
		return annT.Name, true
	case Optional:
		return ConstraintName(annT.Elem)
	case Sequence:
		switch elem := annT.Elem.(type) {
		case TypeVarConstrained:
			return "Sequence_" + elem.Name, true
		case TypeVarBound:
			return "Sequence_" + elem.Name, true
		}
	}
	return "", false
}
