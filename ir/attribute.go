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

// AttributeType identifies the kind of value an operator attribute
// carries. Values follow the ONNX AttributeProto numbering.
type AttributeType uint8

// All attribute types.
const (
	AttrUndefined AttributeType = iota
	AttrFloat
	AttrInt
	AttrString
	AttrTensor
	AttrGraph
	AttrFloats
	AttrInts
	AttrStrings
	AttrTensors
	AttrGraphs
	AttrSparseTensor
	AttrSparseTensors
	AttrTypeProto
	AttrTypeProtos
)

var attributeTypeNames = [...]string{
	AttrUndefined:     "UNDEFINED",
	AttrFloat:         "FLOAT",
	AttrInt:           "INT",
	AttrString:        "STRING",
	AttrTensor:        "TENSOR",
	AttrGraph:         "GRAPH",
	AttrFloats:        "FLOATS",
	AttrInts:          "INTS",
	AttrStrings:       "STRINGS",
	AttrTensors:       "TENSORS",
	AttrGraphs:        "GRAPHS",
	AttrSparseTensor:  "SPARSE_TENSOR",
	AttrSparseTensors: "SPARSE_TENSORS",
	AttrTypeProto:     "TYPE_PROTO",
	AttrTypeProtos:    "TYPE_PROTOS",
}

// String returns the canonical uppercase name of the attribute type.
func (at AttributeType) String() string {
	if int(at) >= len(attributeTypeNames) {
		return attributeTypeNames[AttrUndefined]
	}
	return attributeTypeNames[at]
}
