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
	"slices"

	"github.com/gx-org/opschema/base/iter"
	"github.com/gx-org/opschema/base/ordered"
	"github.com/gx-org/opschema/base/stringseq"
)

// OpSignature is the resolved signature of an operator: its formal
// parameters in declaration order and its outputs.
type OpSignature struct {
	// Domain of the operator. May be empty.
	Domain string
	// Name of the operator.
	Name string
	// Overload distinguishes operators sharing a name. May be empty.
	Overload string
	// Params are the input and attribute parameters, in declaration
	// order.
	Params []Param
	// Outputs of the operator.
	Outputs []*Parameter
}

// String renders the signature as
//
//	domain::name(params) -> (outputs) where constraints
//
// listing each type constraint once, in first-appearance order.
func (sig *OpSignature) String() string {
	outputs := make([]string, len(sig.Outputs))
	for i, output := range sig.Outputs {
		outputs[i] = output.Name
	}
	constraints := ordered.NewMap[string, *TypeConstraintParam]()
	for input := range iter.OfType[*Parameter](sig.Params) {
		constraints.Store(input.TypeConstraint.Name, input.TypeConstraint)
	}
	for _, output := range sig.Outputs {
		constraints.Store(output.TypeConstraint.Name, output.TypeConstraint)
	}
	domain := sig.Domain
	if domain == "" {
		domain = "''"
	}
	overload := ""
	if sig.Overload != "" {
		overload = "::" + sig.Overload
	}
	return fmt.Sprintf("%s::%s%s(%s) -> (%s) where %s",
		domain, sig.Name, overload,
		stringseq.JoinStringer(slices.Values(sig.Params), ", "),
		stringseq.Join(slices.Values(outputs), ", "),
		stringseq.JoinStringer(constraints.Values(), ", "),
	)
}

// ParamSchemas derives the flat parameter records consumed by the
// argument binder: input parameters first, in declaration order, then
// attributes. Defaults, requiredness, and variadicity carry over. The
// schema Type annotation is left nil: binding never consults it.
func (sig *OpSignature) ParamSchemas() []*ParamSchema {
	schemas := make([]*ParamSchema, 0, len(sig.Params))
	for input := range iter.OfType[*Parameter](sig.Params) {
		schemas = append(schemas, &ParamSchema{
			Name:     input.Name,
			Default:  input.Default,
			Required: input.Required,
			Role:     Input,
			Variadic: input.Variadic,
		})
	}
	for attr := range iter.OfType[*AttributeParameter](sig.Params) {
		schemas = append(schemas, &ParamSchema{
			Name:     attr.Name,
			Default:  attr.Default,
			Required: attr.Required,
			Role:     Attribute,
		})
	}
	return schemas
}
