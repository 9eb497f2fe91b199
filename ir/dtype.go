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

package ir

import (
	"iter"
	"strings"
)

// DataType identifies the element type of a tensor.
//
// Values follow the ONNX TensorProto numbering so that operator
// definitions produced by external tooling can be consumed directly.
type DataType uint8

// All element data types.
const (
	Undefined DataType = iota
	Float
	Uint8
	Int8
	Uint16
	Int16
	Int32
	Int64
	String
	Bool
	Float16
	Double
	Uint32
	Uint64
	Complex64
	Complex128
	Bfloat16
	Float8E4M3FN
	Float8E4M3FNUZ
	Float8E5M2
	Float8E5M2FNUZ
	Uint4
	Int4
	Float4E2M1
)

var dataTypeNames = [...]string{
	Undefined:      "UNDEFINED",
	Float:          "FLOAT",
	Uint8:          "UINT8",
	Int8:           "INT8",
	Uint16:         "UINT16",
	Int16:          "INT16",
	Int32:          "INT32",
	Int64:          "INT64",
	String:         "STRING",
	Bool:           "BOOL",
	Float16:        "FLOAT16",
	Double:         "DOUBLE",
	Uint32:         "UINT32",
	Uint64:         "UINT64",
	Complex64:      "COMPLEX64",
	Complex128:     "COMPLEX128",
	Bfloat16:       "BFLOAT16",
	Float8E4M3FN:   "FLOAT8E4M3FN",
	Float8E4M3FNUZ: "FLOAT8E4M3FNUZ",
	Float8E5M2:     "FLOAT8E5M2",
	Float8E5M2FNUZ: "FLOAT8E5M2FNUZ",
	Uint4:          "UINT4",
	Int4:           "INT4",
	Float4E2M1:     "FLOAT4E2M1",
}

// String returns the canonical uppercase name of the data type.
func (dt DataType) String() string {
	if int(dt) >= len(dataTypeNames) {
		return dataTypeNames[Undefined]
	}
	return dataTypeNames[dt]
}

func dataTypeFromString(name string) (DataType, bool) {
	for dt, dtName := range dataTypeNames {
		if strings.EqualFold(name, dtName) {
			return DataType(dt), true
		}
	}
	return Undefined, false
}

// DataTypeFromString returns the data type with the given name.
// The lookup is case-insensitive, so "float" and "FLOAT" both name
// Float. An unknown name returns a *ParseError.
func DataTypeFromString(name string) (DataType, error) {
	dt, ok := dataTypeFromString(name)
	if !ok {
		return Undefined, &ParseError{Token: name, Descriptor: name}
	}
	return dt, nil
}

// DataTypes iterates over all the data types a tensor can carry,
// in numbering order. Undefined is excluded.
func DataTypes() iter.Seq[DataType] {
	return func(yield func(DataType) bool) {
		for dt := int(Undefined) + 1; dt < len(dataTypeNames); dt++ {
			if !yield(DataType(dt)) {
				return
			}
		}
	}
}
