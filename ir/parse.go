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
	"fmt"
	"strings"
)

// ParseError reports a textual type descriptor that does not follow
// the tensor/seq/optional grammar.
type ParseError struct {
	// Token is the part of the descriptor that was not recognized.
	Token string
	// Descriptor is the full descriptor being parsed.
	Descriptor string
}

// Error returns the error message, naming the unrecognized token.
func (e *ParseError) Error() string {
	if e.Token == e.Descriptor {
		return fmt.Sprintf("unknown type part %q", e.Token)
	}
	return fmt.Sprintf("unknown type part %q in %q", e.Token, e.Descriptor)
}

// ParseType parses a textual type descriptor into a formal type.
//
// The grammar is:
//
//	type := "tensor(" elem ")" | "seq(" type ")" | "optional(" type ")"
//	elem := a data type name, e.g. "float" or "int64"
//
// Any token outside the grammar returns a *ParseError naming the token.
func ParseType(descriptor string) (Type, error) {
	return parseType(descriptor, descriptor)
}

func parseType(s, descriptor string) (Type, error) {
	head, inner, ok := splitDescriptor(s)
	if !ok {
		return nil, &ParseError{Token: s, Descriptor: descriptor}
	}
	switch head {
	case "tensor":
		dt, ok := dataTypeFromString(inner)
		if !ok {
			return nil, &ParseError{Token: inner, Descriptor: descriptor}
		}
		return TensorType{DType: dt}, nil
	case "seq":
		elem, err := parseType(inner, descriptor)
		if err != nil {
			return nil, err
		}
		return SequenceType{Elem: elem}, nil
	case "optional":
		elem, err := parseType(inner, descriptor)
		if err != nil {
			return nil, err
		}
		return OptionalType{Elem: elem}, nil
	}
	return nil, &ParseError{Token: head, Descriptor: descriptor}
}

// splitDescriptor splits a descriptor "head(inner)" into its parts.
func splitDescriptor(s string) (head, inner string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	return s[:open], s[open+1 : len(s)-1], true
}
