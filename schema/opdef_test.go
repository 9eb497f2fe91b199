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
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"github.com/gx-org/opschema/ir"
	"github.com/gx-org/opschema/schema"
)

func gemmDef() schema.OpDef {
	return schema.OpDef{
		Domain: "ai.onnx",
		Name:   "Gemm",
		TypeConstraints: []schema.TypeConstraintDef{
			{Name: "T", AllowedTypes: []string{"tensor(float)", "tensor(int64)"}},
		},
		Inputs: []schema.FormalParamDef{
			{Name: "A", TypeStr: "T"},
			{Name: "B", TypeStr: "T"},
			{Name: "C", TypeStr: "T", Option: schema.Optional},
		},
		Outputs: []schema.FormalParamDef{
			{Name: "Y", TypeStr: "T"},
		},
		Attributes: []schema.AttrDef{
			{Name: "transA", Type: ir.AttrInt, Default: schema.DefaultOf(0)},
		},
	}
}

func TestFromOpDef(t *testing.T) {
	sig, err := schema.FromOpDef(gemmDef())
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	if got, want := len(sig.Params), 4; got != want {
		t.Fatalf("got %d parameters but want %d", got, want)
	}
	a := sig.Params[0].(*schema.Parameter)
	b := sig.Params[1].(*schema.Parameter)
	c := sig.Params[2].(*schema.Parameter)
	if a.TypeConstraint != b.TypeConstraint {
		t.Errorf("parameters %s and %s do not share their type constraint", a, b)
	}
	if a.TypeConstraint != sig.Outputs[0].TypeConstraint {
		t.Errorf("parameter %s and output %s do not share their type constraint", a, sig.Outputs[0])
	}
	if a.TypeConstraint.Name != "T" {
		t.Errorf("got constraint name %q but want %q", a.TypeConstraint.Name, "T")
	}
	wantTypes := ir.NewTypeSet(
		ir.TensorType{DType: ir.Float},
		ir.TensorType{DType: ir.Int64},
	)
	if !a.TypeConstraint.AllowedTypes.Equal(wantTypes) {
		t.Errorf("got allowed types %s but want %s", a.TypeConstraint.AllowedTypes, wantTypes)
	}
	if !a.IsRequired() || c.IsRequired() {
		t.Errorf("parameters %s and %s have incorrect requiredness", a, c)
	}
	attr, ok := sig.Params[3].(*schema.AttributeParameter)
	if !ok {
		t.Fatalf("got parameter %T but want an attribute", sig.Params[3])
	}
	if attr.Type != ir.AttrInt {
		t.Errorf("got attribute type %s but want %s", attr.Type, ir.AttrInt)
	}
	if !attr.HasDefault() {
		t.Errorf("attribute %s has no default", attr)
	}
}

func TestFromOpDefPlainType(t *testing.T) {
	sig, err := schema.FromOpDef(schema.OpDef{
		Name: "Cast",
		Inputs: []schema.FormalParamDef{
			{Name: "input", TypeStr: "tensor(float)"},
		},
		Outputs: []schema.FormalParamDef{
			{Name: "output", TypeStr: "tensor(int64)"},
		},
	})
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	input := sig.Params[0].(*schema.Parameter)
	if input.TypeConstraint.Name != "input" {
		t.Errorf("got constraint name %q but want %q", input.TypeConstraint.Name, "input")
	}
	want := ir.NewTypeSet(ir.TensorType{DType: ir.Float})
	if !input.TypeConstraint.AllowedTypes.Equal(want) {
		t.Errorf("got allowed types %s but want %s", input.TypeConstraint.AllowedTypes, want)
	}
	output := sig.Outputs[0]
	if output.TypeConstraint.Name != "output" {
		t.Errorf("got constraint name %q but want %q", output.TypeConstraint.Name, "output")
	}
}

func TestFromOpDefOptions(t *testing.T) {
	tests := []struct {
		option       schema.FormalParamOption
		wantRequired bool
		wantVariadic bool
	}{
		{option: schema.Single, wantRequired: true},
		{option: schema.Optional},
		{option: schema.Variadic, wantRequired: true, wantVariadic: true},
	}
	for _, test := range tests {
		sig, err := schema.FromOpDef(schema.OpDef{
			Name: "Op",
			Inputs: []schema.FormalParamDef{
				{Name: "x", TypeStr: "tensor(float)", Option: test.option},
			},
		})
		if err != nil {
			t.Fatalf("option %s: cannot build the signature: %v", test.option, err)
		}
		param := sig.Params[0].(*schema.Parameter)
		if param.Required != test.wantRequired {
			t.Errorf("option %s: got required=%v but want %v", test.option, param.Required, test.wantRequired)
		}
		if param.Variadic != test.wantVariadic {
			t.Errorf("option %s: got variadic=%v but want %v", test.option, param.Variadic, test.wantVariadic)
		}
	}
}

func TestFromOpDefErrors(t *testing.T) {
	_, err := schema.FromOpDef(schema.OpDef{
		Name: "Broken",
		TypeConstraints: []schema.TypeConstraintDef{
			{Name: "T", AllowedTypes: []string{"tensor(nosuch)"}},
		},
		Inputs: []schema.FormalParamDef{
			{Name: "x", TypeStr: "unknown(float)"},
			{Name: "y", TypeStr: "seq(float)"},
		},
	})
	if err == nil {
		t.Fatalf("got no error but want one error per invalid definition")
	}
	errs := multierr.Errors(err)
	if got, want := len(errs), 3; got != want {
		t.Fatalf("got %d errors but want %d:\n%v", got, want, err)
	}
	var parseErr *ir.ParseError
	if !errors.As(errs[0], &parseErr) {
		t.Fatalf("error %v does not wrap a parse error", errs[0])
	}
	if parseErr.Token != "nosuch" {
		t.Errorf("got token %q but want %q", parseErr.Token, "nosuch")
	}
	if !strings.Contains(errs[1].Error(), `formal parameter "x"`) {
		t.Errorf("error %v does not name the parameter", errs[1])
	}
}

func TestOpSignatureString(t *testing.T) {
	sig, err := schema.FromOpDef(gemmDef())
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	want := "ai.onnx::Gemm(A: T, B: T, C: T, transA: INT = 0) -> (Y) where T=FLOAT,INT64"
	if got := sig.String(); got != want {
		t.Errorf("got signature\n%s\nbut want\n%s", got, want)
	}
}

func TestOpSignatureStringEmptyDomain(t *testing.T) {
	sig, err := schema.FromOpDef(schema.OpDef{
		Name:     "Select",
		Overload: "v2",
		Inputs: []schema.FormalParamDef{
			{Name: "x", TypeStr: "tensor(bool)"},
		},
		Outputs: []schema.FormalParamDef{
			{Name: "y", TypeStr: "tensor(bool)"},
		},
	})
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	want := "''::Select::v2(x: x) -> (y) where x=BOOL, y=BOOL"
	if got := sig.String(); got != want {
		t.Errorf("got signature\n%s\nbut want\n%s", got, want)
	}
}

func TestParamSchemas(t *testing.T) {
	def := gemmDef()
	def.Inputs[2].Option = schema.Variadic
	sig, err := schema.FromOpDef(def)
	if err != nil {
		t.Fatalf("cannot build the signature: %v", err)
	}
	schemas := sig.ParamSchemas()
	wantNames := []string{"A", "B", "C", "transA"}
	if got, want := len(schemas), len(wantNames); got != want {
		t.Fatalf("got %d schemas but want %d", got, want)
	}
	for i, want := range wantNames {
		if schemas[i].Name != want {
			t.Errorf("schema %d: got name %q but want %q", i, schemas[i].Name, want)
		}
	}
	for _, s := range schemas[:3] {
		if !s.IsInput() {
			t.Errorf("schema %s is not an input", s)
		}
	}
	if !schemas[3].IsAttribute() {
		t.Errorf("schema %s is not an attribute", schemas[3])
	}
	if !schemas[2].Variadic {
		t.Errorf("schema %s is not variadic", schemas[2])
	}
	if value, ok := schemas[3].Default.Get(); !ok || value != 0 {
		t.Errorf("schema %s lost its default", schemas[3])
	}
}
