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

// Package schema describes operator signatures.
//
// A signature is built either from a raw operator definition whose
// types are textual descriptors (FromOpDef) or from a declarative
// description whose types are annotations (FromDecl). Both resolve
// formal parameters against a per-signature table of named type
// constraints, so that parameters declared under one constraint name
// share a single TypeConstraintParam instance. The resolved signature
// derives the flat ParamSchema records consumed by the argument binder.
package schema

import (
	"fmt"

	"github.com/gx-org/opschema/ann"
)

// Role tells apart the two kinds of formal parameters: inputs carry
// operand values, attributes carry static configuration.
type Role uint8

// All parameter roles.
const (
	Input Role = iota
	Attribute
)

// String returns a string representation of the role.
func (r Role) String() string {
	if r == Attribute {
		return "ATTRIBUTE"
	}
	return "INPUT"
}

// ParamSchema is the flat description of one formal parameter
// consumed by the argument binder. The order of a schema sequence is
// the positional binding order.
//
// A ParamSchema is constructed once when a signature is declared and
// never mutated.
type ParamSchema struct {
	// Name of the parameter, unique within a schema sequence.
	Name string
	// Type annotation of the parameter. Opaque to the binder and may
	// be nil.
	Type ann.Annotation
	// Default value bound when a call provides none.
	Default Default
	// Required rejects calls that provide no value when the parameter
	// has no default.
	Required bool
	// Role of the parameter.
	Role Role
	// Variadic makes the parameter absorb all remaining positional
	// arguments. Only input parameters can be variadic.
	Variadic bool
}

// IsInput reports if the parameter is an input.
func (p *ParamSchema) IsInput() bool { return p.Role == Input }

// IsAttribute reports if the parameter is an attribute.
func (p *ParamSchema) IsAttribute() bool { return p.Role == Attribute }

// String representation of the parameter schema.
func (p *ParamSchema) String() string {
	text := fmt.Sprintf("%s<%s>", p.Name, p.Role)
	if p.Type != nil {
		text += ": " + p.Type.String()
	}
	if value, ok := p.Default.Get(); ok {
		text += fmt.Sprintf(" = %v", value)
	}
	return text
}
