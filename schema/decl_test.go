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

package schema_test

import (
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"github.com/gx-org/opschema/ann"
	"github.com/gx-org/opschema/ir"
	"github.com/gx-org/opschema/schema"
)

var tFloatOrInt = ann.TypeVarConstrained{
	Name: "T",
	Constraints: []ann.Annotation{
		ann.Tensor{DType: ir.Float},
		ann.Tensor{DType: ir.Int64},
	},
}

func TestFromDecl(t *testing.T) {
	sig, err := schema.FromDecl(schema.Decl{
		Domain: "my.domain",
		Name:   "Clamp",
		Params: []schema.ParamDecl{
			schema.InputDecl{Name: "x", Type: tFloatOrInt},
			schema.InputDecl{Name: "bound", Type: tFloatOrInt},
			schema.AttrDecl{Name: "exclusive", Type: ir.AttrInt, Default: schema.DefaultOf(0)},
		},
		Results: []schema.ResultDecl{
			{Name: "y", Type: tFloatOrInt},
		},
	})
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	x := sig.Params[0].(*schema.Parameter)
	bound := sig.Params[1].(*schema.Parameter)
	if x.TypeConstraint != bound.TypeConstraint {
		t.Errorf("parameters %s and %s do not share their type constraint", x, bound)
	}
	if x.TypeConstraint != sig.Outputs[0].TypeConstraint {
		t.Errorf("parameter %s and result %s do not share their type constraint", x, sig.Outputs[0])
	}
	if x.TypeConstraint.Name != "T" {
		t.Errorf("got constraint name %q but want %q", x.TypeConstraint.Name, "T")
	}
	wantTypes := ir.NewTypeSet(
		ir.TensorType{DType: ir.Float},
		ir.TensorType{DType: ir.Int64},
	)
	if !x.TypeConstraint.AllowedTypes.Equal(wantTypes) {
		t.Errorf("got allowed types %s but want %s", x.TypeConstraint.AllowedTypes, wantTypes)
	}
	attr := sig.Params[2].(*schema.AttributeParameter)
	if attr.IsRequired() {
		t.Errorf("attribute %s with a default is required", attr)
	}
	if !sig.Outputs[0].IsRequired() {
		t.Errorf("result %s is not required", sig.Outputs[0])
	}
}

func TestFromDeclAnonymousAnnotation(t *testing.T) {
	sig, err := schema.FromDecl(schema.Decl{
		Name: "Describe",
		Params: []schema.ParamDecl{
			schema.InputDecl{Name: "x", Type: ann.Tensor{DType: ir.Float}},
			schema.InputDecl{Name: "y"},
		},
	})
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	x := sig.Params[0].(*schema.Parameter)
	if x.TypeConstraint.Name != "T_x" {
		t.Errorf("got constraint name %q but want %q", x.TypeConstraint.Name, "T_x")
	}
	want := ir.NewTypeSet(ir.TensorType{DType: ir.Float})
	if !x.TypeConstraint.AllowedTypes.Equal(want) {
		t.Errorf("got allowed types %s but want %s", x.TypeConstraint.AllowedTypes, want)
	}
	y := sig.Params[1].(*schema.Parameter)
	if y.TypeConstraint.Name != "T_y" {
		t.Errorf("got constraint name %q but want %q", y.TypeConstraint.Name, "T_y")
	}
	if !y.TypeConstraint.AllowedTypes.Equal(schema.AnyValue("T_y").AllowedTypes) {
		t.Errorf("unannotated parameter %s does not allow any value type", y)
	}
}

func TestFromDeclNameCollision(t *testing.T) {
	sig, err := schema.FromDecl(schema.Decl{
		Name: "Fancy",
		Params: []schema.ParamDecl{
			schema.InputDecl{Name: "x", Type: ann.TypeVarBound{
				Name:  "T_y",
				Bound: ann.Tensor{DType: ir.Float},
			}},
			schema.InputDecl{Name: "y", Type: ann.Tensor{DType: ir.Int64}},
		},
	})
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	x := sig.Params[0].(*schema.Parameter)
	y := sig.Params[1].(*schema.Parameter)
	if x.TypeConstraint.Name != "T_y" {
		t.Errorf("got constraint name %q but want %q", x.TypeConstraint.Name, "T_y")
	}
	if y.TypeConstraint.Name != "T_y1" {
		t.Errorf("got constraint name %q but want %q", y.TypeConstraint.Name, "T_y1")
	}
	if x.TypeConstraint == y.TypeConstraint {
		t.Errorf("parameters %s and %s share a type constraint", x, y)
	}
}

func TestFromDeclSameContentShares(t *testing.T) {
	sig, err := schema.FromDecl(schema.Decl{
		Name: "Identity",
		Params: []schema.ParamDecl{
			schema.InputDecl{Name: "x", Type: ann.Tensor{DType: ir.Int64}},
		},
		Results: []schema.ResultDecl{
			{Name: "x", Type: ann.Tensor{DType: ir.Int64}},
		},
	})
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	input := sig.Params[0].(*schema.Parameter)
	if input.TypeConstraint != sig.Outputs[0].TypeConstraint {
		t.Errorf("input %s and result %s with the same name and types do not share their constraint", input, sig.Outputs[0])
	}
}

func TestFromDeclDefaults(t *testing.T) {
	sig, err := schema.FromDecl(schema.Decl{
		Name: "Pad",
		Params: []schema.ParamDecl{
			schema.InputDecl{Name: "x", Type: ann.Tensor{DType: ir.Float}},
			schema.InputDecl{Name: "value", Type: ann.Tensor{DType: ir.Float}, Default: schema.DefaultOf(nil)},
			schema.AttrDecl{Name: "mode", Type: ir.AttrString, Default: schema.DefaultOf("constant")},
			schema.AttrDecl{Name: "axis", Type: ir.AttrInt},
		},
	})
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	wantRequired := []bool{true, false, false, true}
	for i, want := range wantRequired {
		if got := sig.Params[i].IsRequired(); got != want {
			t.Errorf("parameter %s: got required=%v but want %v", sig.Params[i], got, want)
		}
	}
	if !sig.Params[1].HasDefault() {
		t.Errorf("parameter %s has no default: a nil default is still a default", sig.Params[1])
	}
}

func TestFromDeclVariadic(t *testing.T) {
	sig, err := schema.FromDecl(schema.Decl{
		Name: "Concat",
		Params: []schema.ParamDecl{
			schema.InputDecl{Name: "inputs", Type: tFloatOrInt, Variadic: true},
			schema.AttrDecl{Name: "axis", Type: ir.AttrInt},
		},
	})
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	param := sig.Params[0].(*schema.Parameter)
	if !param.Variadic {
		t.Errorf("parameter %s is not variadic", param)
	}
	schemas := sig.ParamSchemas()
	if !schemas[0].Variadic {
		t.Errorf("schema %s is not variadic", schemas[0])
	}
}

func TestFromDeclErrors(t *testing.T) {
	_, err := schema.FromDecl(schema.Decl{
		Name: "Broken",
		Params: []schema.ParamDecl{
			schema.InputDecl{Name: "x", Type: ann.Sequence{
				Elem: ann.Sequence{Elem: ann.Tensor{DType: ir.Float}},
			}},
			schema.InputDecl{Name: "y", Type: ann.Union{}},
		},
	})
	if err == nil {
		t.Fatalf("got no error but want one error per invalid parameter")
	}
	errs := multierr.Errors(err)
	if got, want := len(errs), 2; got != want {
		t.Fatalf("got %d errors but want %d:\n%v", got, want, err)
	}
	for _, e := range errs {
		var resolveErr *ann.ResolveError
		if !errors.As(e, &resolveErr) {
			t.Errorf("error %v does not wrap a resolve error", e)
		}
	}
}

func TestFromDeclParamOrder(t *testing.T) {
	sig, err := schema.FromDecl(schema.Decl{
		Name: "Mixed",
		Params: []schema.ParamDecl{
			schema.InputDecl{Name: "a", Type: ann.Tensor{DType: ir.Float}},
			schema.AttrDecl{Name: "k", Type: ir.AttrInt},
			schema.InputDecl{Name: "b", Type: ann.Tensor{DType: ir.Float}},
		},
	})
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	wantParams := []string{"a", "k", "b"}
	for i, want := range wantParams {
		if got := sig.Params[i].ParamName(); got != want {
			t.Errorf("parameter %d: got name %q but want %q", i, got, want)
		}
	}
	schemas := sig.ParamSchemas()
	wantSchemas := []string{"a", "b", "k"}
	for i, want := range wantSchemas {
		if got := schemas[i].Name; got != want {
			t.Errorf("schema %d: got name %q but want %q", i, got, want)
		}
	}
}
