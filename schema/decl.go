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
	"github.com/gx-org/opschema/ann"
	"github.com/gx-org/opschema/ir"
)

// Decl is a declarative operator description whose parameter types are
// annotations. It is the source-level counterpart of OpDef.
type Decl struct {
	// Domain of the operator. May be empty.
	Domain string
	// Name of the operator.
	Name string
	// Overload distinguishes operators sharing a name. May be empty.
	Overload string
	// Params of the operator, inputs and attributes interleaved in
	// declaration order.
	Params []ParamDecl
	// Results of the operator.
	Results []ResultDecl
}

// ParamDecl declares one formal parameter.
//
// The set of implementations is closed: InputDecl and AttrDecl.
type ParamDecl interface {
	paramDecl()

	// DeclName returns the declared name of the parameter.
	DeclName() string
}

type (
	// InputDecl declares an input parameter.
	InputDecl struct {
		// Name of the parameter.
		Name string
		// Type annotation. A nil annotation allows any value type.
		Type ann.Annotation
		// Default value of the parameter. A parameter with a default
		// is not required.
		Default Default
		// Variadic makes the input absorb all remaining positional
		// arguments.
		Variadic bool
	}

	// AttrDecl declares an attribute parameter.
	AttrDecl struct {
		// Name of the attribute.
		Name string
		// Type of value the attribute carries.
		Type ir.AttributeType
		// Default value of the attribute. An attribute with a default
		// is not required.
		Default Default
	}
)

var (
	_ ParamDecl = InputDecl{}
	_ ParamDecl = AttrDecl{}
)

func (InputDecl) paramDecl() {}

// DeclName returns the declared name of the parameter.
func (d InputDecl) DeclName() string { return d.Name }

func (AttrDecl) paramDecl() {}

// DeclName returns the declared name of the attribute.
func (d AttrDecl) DeclName() string { return d.Name }

// ResultDecl declares one operator output.
type ResultDecl struct {
	// Name of the output.
	Name string
	// Type annotation. A nil annotation allows any value type.
	Type ann.Annotation
}

// FromDecl resolves a declarative operator description into a
// signature.
//
// Input parameters annotated with the same type variable share one
// type constraint. Anonymous annotations get a constraint named after
// their parameter ("T_x" for a parameter x), numbered on a name
// collision. An unannotated parameter allows any value type. Failures
// are accumulated so that one pass reports every invalid parameter.
func FromDecl(decl Decl) (*OpSignature, error) {
	bld := newBuilder()
	var errs error
	params := make([]Param, 0, len(decl.Params))
	for _, param := range decl.Params {
		switch declT := param.(type) {
		case InputDecl:
			converted, err := bld.convertInputDecl(declT)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			params = append(params, converted)
		case AttrDecl:
			params = append(params, &AttributeParameter{
				Name:     declT.Name,
				Type:     declT.Type,
				Required: !declT.Default.IsSet(),
				Default:  declT.Default,
			})
		default:
			errs = multierr.Append(errs, errors.Errorf("parameter declaration %T not supported", param))
		}
	}
	outputs := make([]*Parameter, 0, len(decl.Results))
	for _, result := range decl.Results {
		constraint, err := bld.annotationConstraint(result.Name, result.Type)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		outputs = append(outputs, &Parameter{
			Name:           result.Name,
			TypeConstraint: constraint,
			Required:       true,
		})
	}
	if errs != nil {
		return nil, errs
	}
	return &OpSignature{
		Domain:   decl.Domain,
		Name:     decl.Name,
		Overload: decl.Overload,
		Params:   params,
		Outputs:  outputs,
	}, nil
}

func (b *builder) convertInputDecl(decl InputDecl) (*Parameter, error) {
	constraint, err := b.annotationConstraint(decl.Name, decl.Type)
	if err != nil {
		return nil, err
	}
	return &Parameter{
		Name:           decl.Name,
		TypeConstraint: constraint,
		Required:       !decl.Default.IsSet(),
		Variadic:       decl.Variadic,
		Default:        decl.Default,
	}, nil
}
