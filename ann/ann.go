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

// Package ann declares source-level type annotations and resolves them
// into sets of formal types.
//
// An annotation describes the type of one formal parameter as written
// in an operator declaration: a concrete tensor, the any-tensor marker,
// a union, a type variable (constrained or bound), or an optional or
// sequence wrapper around another annotation. The resolver expands an
// annotation into the finite ir.TypeSet it denotes and derives the
// constraint name carried by type-variable annotations.
package ann

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gx-org/opschema/base/stringseq"
	"github.com/gx-org/opschema/ir"
)

// Annotation is a source-level type annotation.
//
// The set of implementations is closed: Tensor, AnyTensor, Union,
// TypeVarConstrained, TypeVarBound, Optional, and Sequence.
type Annotation interface {
	annotation()

	// String representation of the annotation.
	String() string
}

type (
	// Tensor is a tensor annotation with a fixed element data type and
	// an optional source-level shape parametrization.
	Tensor struct {
		DType ir.DataType
		Shape *Shape
	}

	// AnyTensor is the tensor base annotation with no element type fixed.
	AnyTensor struct{}

	// Union is a choice between two or more annotations.
	Union struct {
		Members []Annotation
	}

	// TypeVarConstrained is a type variable constrained to an explicit
	// tuple of annotations.
	TypeVarConstrained struct {
		Name        string
		Constraints []Annotation
	}

	// TypeVarBound is a type variable bound to a single annotation.
	// The bound may itself be a union.
	TypeVarBound struct {
		Name  string
		Bound Annotation
	}

	// Optional wraps an annotation whose value may be omitted.
	Optional struct {
		Elem Annotation
	}

	// Sequence wraps an annotation into a homogeneous sequence.
	Sequence struct {
		Elem Annotation
	}
)

var (
	_ Annotation = Tensor{}
	_ Annotation = AnyTensor{}
	_ Annotation = Union{}
	_ Annotation = TypeVarConstrained{}
	_ Annotation = TypeVarBound{}
	_ Annotation = Optional{}
	_ Annotation = Sequence{}
)

// Shape is the source-level shape parametrization of a tensor
// annotation. Shapes are carried for display only and never affect
// type resolution.
type Shape struct {
	Dims     []int64
	Ellipsis bool
}

// String representation of the shape.
func (s *Shape) String() string {
	if s.Ellipsis {
		return "[...]"
	}
	dims := make([]string, len(s.Dims))
	for i, dim := range s.Dims {
		dims[i] = fmt.Sprint(dim)
	}
	return "[" + strings.Join(dims, ",") + "]"
}

func (Tensor) annotation() {}

// String representation of the annotation.
func (a Tensor) String() string {
	if a.Shape == nil {
		return a.DType.String()
	}
	return a.DType.String() + a.Shape.String()
}

func (AnyTensor) annotation() {}

// String representation of the annotation.
func (a AnyTensor) String() string { return "TENSOR" }

func (Union) annotation() {}

// String representation of the annotation.
func (a Union) String() string {
	return "Union[" + stringseq.JoinStringer(slices.Values(a.Members), ",") + "]"
}

func (TypeVarConstrained) annotation() {}

// String returns the name of the type variable.
func (a TypeVarConstrained) String() string { return a.Name }

func (TypeVarBound) annotation() {}

// String returns the name of the type variable.
func (a TypeVarBound) String() string { return a.Name }

func (Optional) annotation() {}

// String representation of the annotation.
func (a Optional) String() string { return "Optional[" + a.Elem.String() + "]" }

func (Sequence) annotation() {}

// String representation of the annotation.
func (a Sequence) String() string { return "Sequence[" + a.Elem.String() + "]" }
