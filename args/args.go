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

// Package args binds call arguments to parameter schemas.
//
// A call provides positional and keyword arguments; the parameter
// schemas of an operator fix the order and role of its parameters.
// Binding matches one to the other: positional arguments are claimed
// by schemas in declaration order, inputs and attributes alike, while
// keyword arguments are claimed by name. A parameter left with no
// value falls back to its default. A bound call comes in two shapes:
// Separate splits the values into an input list and an attribute map,
// Tag pairs every value with the schema that claimed it.
//
// Binding is a pure function of its arguments: schemas and argument
// containers are never mutated.
package args

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"github.com/gx-org/opschema/base/iter"
	"github.com/gx-org/opschema/base/ordered"
	"github.com/gx-org/opschema/schema"
)

// BindError reports a call that cannot be bound to its parameter
// schemas: a required parameter received no value, or the call
// carries arguments no schema claims.
type BindError struct {
	// Schema of a required parameter that received no value.
	Schema *schema.ParamSchema
	// ExtraArgs counts the positional arguments left over after every
	// schema claimed its value.
	ExtraArgs int
	// ExtraKwargs lists the keyword argument names no schema
	// consumed, in sorted order.
	ExtraKwargs []string
}

var _ error = (*BindError)(nil)

// Error returns the binding failure message.
func (e *BindError) Error() string {
	switch {
	case e.Schema != nil:
		return fmt.Sprintf("required parameter %s was not provided", e.Schema)
	case e.ExtraArgs > 0:
		return fmt.Sprintf("%d positional arguments beyond the declared parameters", e.ExtraArgs)
	default:
		return fmt.Sprintf("unexpected keyword arguments: %s", strings.Join(e.ExtraKwargs, ", "))
	}
}

// Separate binds a call to its parameter schemas and splits the bound
// values by role: input values in declaration order on one side,
// an ordered name to value mapping of the attributes on the other.
//
// Each schema claims the positional argument at its own index while
// any remain; a positional value binds an attribute schema just as it
// binds an input schema. A variadic input claims every remaining
// positional argument, so schemas declared after it bind by keyword
// only. A schema with no positional claim binds the keyword argument
// of its name. A schema left with no value binds its default when
// fillDefaults is set and is omitted from the result when not; a
// parameter with a default is never required, whatever its required
// flag says.
//
// Positional arguments beyond what the schemas claim are an error,
// and so are keyword arguments no schema consumed, unless
// allowExtraKwargs is set. A keyword argument whose parameter is
// variadic or was bound positionally stays unconsumed.
func Separate(schemas []*schema.ParamSchema, args []any, kwargs map[string]any, fillDefaults, allowExtraKwargs bool) ([]any, *ordered.Map[string, any], error) {
	var inputs []any
	attributes := ordered.NewMap[string, any]()
	bind := func(param *schema.ParamSchema, value any) {
		if param.IsInput() {
			inputs = append(inputs, value)
		} else {
			attributes.Store(param.Name, value)
		}
	}
	consumed := make(map[string]bool, len(kwargs))
	for i, param := range schemas {
		if param.Variadic {
			if !param.IsInput() {
				return nil, nil, errors.Errorf("variadic parameter %s is not an input", param)
			}
			if i < len(args) {
				inputs = append(inputs, args[i:]...)
				args = args[:i]
			}
			continue
		}
		switch value, ok := kwargs[param.Name]; {
		case i < len(args):
			// A keyword argument shadowed by a positional value stays
			// unconsumed and is reported as extra below.
			bind(param, args[i])
		case ok:
			consumed[param.Name] = true
			bind(param, value)
		case param.Default.IsSet():
			if fillDefaults {
				fallback, _ := param.Default.Get()
				bind(param, fallback)
			}
		case param.Required:
			return nil, nil, &BindError{Schema: param}
		}
	}
	if extra := len(args) - len(schemas); extra > 0 {
		return nil, nil, &BindError{ExtraArgs: extra}
	}
	if extras := unconsumed(kwargs, consumed); len(extras) > 0 && !allowExtraKwargs {
		return nil, nil, &BindError{ExtraKwargs: extras}
	}
	return inputs, attributes, nil
}

// TaggedArg is a bound value paired with the schema that claimed it.
type TaggedArg struct {
	Value  any
	Schema *schema.ParamSchema
}

// Tag binds a call to its parameter schemas and pairs every bound
// value with its schema: positionally claimed values in call order on
// one side, an ordered name to tagged value mapping of the keyword
// and defaulted values on the other. The values bound to a variadic
// input appear as individual tagged arguments sharing one schema.
//
// Positional and keyword arguments are claimed exactly as in
// Separate. Defaults are always filled: tagged calls feed consumers
// that must see a value for every parameter that has one.
func Tag(schemas []*schema.ParamSchema, args []any, kwargs map[string]any, allowExtraKwargs bool) ([]TaggedArg, *ordered.Map[string, TaggedArg], error) {
	var positional []TaggedArg
	keyword := ordered.NewMap[string, TaggedArg]()
	consumed := make(map[string]bool, len(kwargs))
	for i, param := range schemas {
		if param.Variadic {
			if !param.IsInput() {
				return nil, nil, errors.Errorf("variadic parameter %s is not an input", param)
			}
			if i < len(args) {
				for _, value := range args[i:] {
					positional = append(positional, TaggedArg{Value: value, Schema: param})
				}
				args = args[:i]
			}
			continue
		}
		switch value, ok := kwargs[param.Name]; {
		case i < len(args):
			positional = append(positional, TaggedArg{Value: args[i], Schema: param})
		case ok:
			consumed[param.Name] = true
			keyword.Store(param.Name, TaggedArg{Value: value, Schema: param})
		case param.Default.IsSet():
			fallback, _ := param.Default.Get()
			keyword.Store(param.Name, TaggedArg{Value: fallback, Schema: param})
		case param.Required:
			return nil, nil, &BindError{Schema: param}
		}
	}
	if extra := len(args) - len(schemas); extra > 0 {
		return nil, nil, &BindError{ExtraArgs: extra}
	}
	if extras := unconsumed(kwargs, consumed); len(extras) > 0 && !allowExtraKwargs {
		return nil, nil, &BindError{ExtraKwargs: extras}
	}
	return positional, keyword, nil
}

// ToKwargs folds bound inputs into the attribute mapping, keyed by
// the name of the schema claiming each input. A variadic parameter
// receives the whole remaining input sequence as one value. The
// result addresses every argument by name, which positional order
// cannot once a variadic input absorbs an argument run of unknown
// length.
//
// The inputs must come from an earlier successful binding against the
// same schemas: inputs left over after every schema claimed its value
// are an error. The attribute mapping is not mutated.
func ToKwargs(schemas []*schema.ParamSchema, inputs []any, attributes *ordered.Map[string, any]) (*ordered.Map[string, any], error) {
	kwargs := ordered.NewMap[string, any]()
	if attributes != nil {
		kwargs = attributes.Clone()
	}
	for _, param := range schemas {
		if kwargs.Has(param.Name) {
			continue
		}
		if param.Variadic {
			kwargs.Store(param.Name, inputs)
			inputs = nil
			continue
		}
		if len(inputs) == 0 {
			break
		}
		kwargs.Store(param.Name, inputs[0])
		inputs = inputs[1:]
	}
	if len(inputs) > 0 {
		return nil, errors.Errorf("%d inputs left after binding every parameter", len(inputs))
	}
	return kwargs, nil
}

// unconsumed returns the keyword argument names that no schema
// consumed, sorted so that error messages are deterministic.
func unconsumed(kwargs map[string]any, consumed map[string]bool) []string {
	extras := slices.Collect(iter.Filter(func(name string) bool {
		return !consumed[name]
	}, maps.Keys(kwargs)))
	slices.Sort(extras)
	return extras
}
