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

import "github.com/gx-org/opschema/ir"

// TypeConstraintParam is a named set of formal types allowed for the
// parameters declared under that constraint.
//
// Constraint names are unique within one signature and all parameters
// declared under one name share a single instance.
type TypeConstraintParam struct {
	// Name of the constraint.
	Name string
	// AllowedTypes of the constraint.
	AllowedTypes *ir.TypeSet
	// Description of the constraint. May be empty.
	Description string
}

// String renders the constraint as "T=FLOAT,INT64", with the allowed
// types in their deterministic set order.
func (c *TypeConstraintParam) String() string {
	return c.Name + "=" + c.AllowedTypes.String()
}

// AnyTensor returns a constraint allowing every tensor type.
func AnyTensor(name string) *TypeConstraintParam {
	return &TypeConstraintParam{Name: name, AllowedTypes: anyTensorSet()}
}

// AnyValue returns a constraint allowing every tensor type along with
// sequences and optionals of every tensor type.
func AnyValue(name string) *TypeConstraintParam {
	return &TypeConstraintParam{Name: name, AllowedTypes: anyValueSet()}
}

func anyTensorSet() *ir.TypeSet {
	set := ir.NewTypeSet()
	for dtype := range ir.DataTypes() {
		set.Insert(ir.TensorType{DType: dtype})
	}
	return set
}

func anyValueSet() *ir.TypeSet {
	set := ir.NewTypeSet()
	for dtype := range ir.DataTypes() {
		tensor := ir.TensorType{DType: dtype}
		set.Insert(tensor, ir.SequenceType{Elem: tensor}, ir.OptionalType{Elem: tensor})
	}
	return set
}
