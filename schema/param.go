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
	"fmt"

	"github.com/gx-org/opschema/ir"
)

// Param is a resolved formal parameter of an operator signature.
//
// The set of implementations is closed: Parameter for values and
// AttributeParameter for attributes.
type Param interface {
	param()

	// ParamName returns the name of the parameter.
	ParamName() string

	// HasDefault reports if the parameter carries a default value.
	HasDefault() bool

	// IsRequired reports if a call must provide a value.
	IsRequired() bool

	// String representation of the parameter.
	String() string
}

type (
	// Parameter is a resolved input or output parameter.
	Parameter struct {
		// Name of the parameter.
		Name string
		// TypeConstraint of the parameter, shared with every other
		// parameter declared under the same constraint name.
		TypeConstraint *TypeConstraintParam
		// Required rejects calls that provide no value.
		Required bool
		// Variadic absorbs all remaining positional arguments.
		Variadic bool
		// Default value of the parameter.
		Default Default
	}

	// AttributeParameter is a resolved attribute parameter.
	AttributeParameter struct {
		// Name of the attribute.
		Name string
		// Type of value the attribute carries.
		Type ir.AttributeType
		// Required rejects calls that provide no value.
		Required bool
		// Default value of the attribute.
		Default Default
	}
)

var (
	_ Param = (*Parameter)(nil)
	_ Param = (*AttributeParameter)(nil)
)

func (*Parameter) param() {}

// ParamName returns the name of the parameter.
func (p *Parameter) ParamName() string { return p.Name }

// HasDefault reports if the parameter carries a default value,
// whatever that value is.
func (p *Parameter) HasDefault() bool { return p.Default.IsSet() }

// IsRequired reports if a call must provide a value.
func (p *Parameter) IsRequired() bool { return p.Required }

// String representation of the parameter.
func (p *Parameter) String() string {
	text := p.Name + ": " + p.TypeConstraint.Name
	if value, ok := p.Default.Get(); ok {
		text += fmt.Sprintf(" = %v", value)
	}
	return text
}

func (*AttributeParameter) param() {}

// ParamName returns the name of the attribute.
func (p *AttributeParameter) ParamName() string { return p.Name }

// HasDefault reports if the attribute carries a default value,
// whatever that value is.
func (p *AttributeParameter) HasDefault() bool { return p.Default.IsSet() }

// IsRequired reports if a call must provide a value.
func (p *AttributeParameter) IsRequired() bool { return p.Required }

// String representation of the attribute.
func (p *AttributeParameter) String() string {
	text := p.Name + ": " + p.Type.String()
	if value, ok := p.Default.Get(); ok {
		text += fmt.Sprintf(" = %v", value)
	}
	return text
}
