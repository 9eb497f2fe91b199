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
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"github.com/gx-org/opschema/ir"
)

// FormalParamOption tells how a formal parameter binds call values.
type FormalParamOption uint8

// All formal parameter options.
const (
	// Single parameters are required.
	Single FormalParamOption = iota
	// Optional parameters may be left unbound.
	Optional
	// Variadic parameters absorb all remaining positional arguments.
	Variadic
)

// String returns a string representation of the option.
func (o FormalParamOption) String() string {
	switch o {
	case Single:
		return "single"
	case Optional:
		return "optional"
	case Variadic:
		return "variadic"
	}
	return "invalid"
}

// OpDef is a raw operator definition as produced by an external
// operator registry. Formal parameter types are textual descriptors or
// names of the declared type constraints.
type OpDef struct {
	// Domain of the operator. May be empty.
	Domain string
	// Name of the operator.
	Name string
	// Overload distinguishes operators sharing a name. May be empty.
	Overload string
	// TypeConstraints declared by the operator.
	TypeConstraints []TypeConstraintDef
	// Inputs of the operator.
	Inputs []FormalParamDef
	// Outputs of the operator.
	Outputs []FormalParamDef
	// Attributes of the operator.
	Attributes []AttrDef
}

// TypeConstraintDef declares a named type constraint.
type TypeConstraintDef struct {
	// Name of the constraint, e.g. "T".
	Name string
	// AllowedTypes are textual type descriptors, e.g. "tensor(float)".
	AllowedTypes []string
	// Description of the constraint. May be empty.
	Description string
}

// FormalParamDef is the raw description of one input or output.
type FormalParamDef struct {
	// Name of the parameter.
	Name string
	// TypeStr is the name of a declared type constraint or a textual
	// type descriptor such as "tensor(float)".
	TypeStr string
	// Option of the parameter.
	Option FormalParamOption
}

// AttrDef is the raw description of one attribute.
type AttrDef struct {
	// Name of the attribute.
	Name string
	// Type of value the attribute carries.
	Type ir.AttributeType
	// Required rejects calls that provide no value.
	Required bool
	// Default value of the attribute.
	Default Default
}

// FromOpDef resolves a raw operator definition into a signature.
//
// Formal parameters whose TypeStr names a declared constraint share
// that constraint instance; any other TypeStr must be a type
// descriptor and yields a single-type constraint named after the
// parameter. Failures are accumulated so that one pass reports every
// invalid constraint and parameter.
func FromOpDef(def OpDef) (*OpSignature, error) {
	bld := newBuilder()
	var errs error
	for _, constraint := range def.TypeConstraints {
		if err := bld.declareConstraintDef(constraint); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	params := make([]Param, 0, len(def.Inputs)+len(def.Attributes))
	for _, input := range def.Inputs {
		param, err := bld.convertFormalParam(input)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		params = append(params, param)
	}
	for _, attr := range def.Attributes {
		params = append(params, &AttributeParameter{
			Name:     attr.Name,
			Type:     attr.Type,
			Required: attr.Required,
			Default:  attr.Default,
		})
	}
	outputs := make([]*Parameter, 0, len(def.Outputs))
	for _, output := range def.Outputs {
		param, err := bld.convertFormalParam(output)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		outputs = append(outputs, param)
	}
	if errs != nil {
		return nil, errs
	}
	return &OpSignature{
		Domain:   def.Domain,
		Name:     def.Name,
		Overload: def.Overload,
		Params:   params,
		Outputs:  outputs,
	}, nil
}

// declareConstraintDef parses the descriptors of a constraint
// definition and registers the constraint.
func (b *builder) declareConstraintDef(def TypeConstraintDef) error {
	set := ir.NewTypeSet()
	for _, descriptor := range def.AllowedTypes {
		typ, err := ir.ParseType(descriptor)
		if err != nil {
			return errors.Wrapf(err, "type constraint %q", def.Name)
		}
		set.Insert(typ)
	}
	b.declare(&TypeConstraintParam{
		Name:         def.Name,
		AllowedTypes: set,
		Description:  def.Description,
	})
	return nil
}

// convertFormalParam resolves one raw formal parameter against the
// constraint table.
func (b *builder) convertFormalParam(def FormalParamDef) (*Parameter, error) {
	constraint, ok := b.lookup(def.TypeStr)
	if !ok {
		typ, err := ir.ParseType(def.TypeStr)
		if err != nil {
			return nil, errors.Wrapf(err, "formal parameter %q", def.Name)
		}
		constraint = b.auto(def.Name, ir.NewTypeSet(typ))
	}
	return &Parameter{
		Name:           def.Name,
		TypeConstraint: constraint,
		Required:       def.Option != Optional,
		Variadic:       def.Option == Variadic,
	}, nil
}
