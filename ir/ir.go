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

// Package ir defines the formal types appearing in operator signatures:
// tensors over an element data type, sequences of tensors, and optional
// values. Formal types are small comparable values shared by the
// annotation resolver and the textual descriptor parser so that both
// produce interchangeable results.
package ir

// TypeKind discriminates the closed set of formal types.
type TypeKind uint8

// All kinds of formal types.
const (
	TensorKind TypeKind = iota
	SequenceKind
	OptionalKind
)

// String returns a string representation of a kind.
func (k TypeKind) String() string {
	switch k {
	case TensorKind:
		return "tensor"
	case SequenceKind:
		return "seq"
	case OptionalKind:
		return "optional"
	}
	return "invalid"
}

// Type is a formal type in an operator signature.
//
// The set of implementations is closed: TensorType, SequenceType, and
// OptionalType. All are comparable values and can be used as map keys.
type Type interface {
	formalType()

	// Kind of the type.
	Kind() TypeKind

	// String representation of the type.
	String() string
}

type (
	// TensorType is a tensor with a fixed element data type.
	TensorType struct {
		DType DataType
	}

	// SequenceType is a homogeneous sequence of another formal type.
	SequenceType struct {
		Elem Type
	}

	// OptionalType wraps a formal type whose value may be absent.
	OptionalType struct {
		Elem Type
	}
)

var (
	_ Type = TensorType{}
	_ Type = SequenceType{}
	_ Type = OptionalType{}
)

func (TensorType) formalType() {}

// Kind returns the tensor kind.
func (t TensorType) Kind() TypeKind { return TensorKind }

// String representation of the type.
func (t TensorType) String() string { return t.DType.String() }

func (SequenceType) formalType() {}

// Kind returns the sequence kind.
func (t SequenceType) Kind() TypeKind { return SequenceKind }

// String representation of the type.
func (t SequenceType) String() string { return "Sequence(" + t.Elem.String() + ")" }

func (OptionalType) formalType() {}

// Kind returns the optional kind.
func (t OptionalType) Kind() TypeKind { return OptionalKind }

// String representation of the type.
func (t OptionalType) String() string { return "Optional(" + t.Elem.String() + ")" }
