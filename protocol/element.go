// Copyright (c) 2021 The Plume Authors. All rights reserved.
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

package protocol

import "strconv"

// ElementKind discriminates the value held by an Element.
type ElementKind uint8

const (
	// KindString marks an element holding a string value.
	KindString ElementKind = iota
	// KindRespCode marks an element holding a response code.
	KindRespCode
	// KindUint64 marks an element holding an unsigned 64-bit integer.
	KindUint64
)

// Element is a single typed value inside a datagroup. Exactly one of Str,
// Code and Uint is meaningful, selected by Kind. Elements are immutable once
// decoded and owned by the datagroup that contains them.
type Element struct {
	Kind ElementKind
	Str  string
	Code RespCode
	Uint uint64
}

// NewString builds a string element.
func NewString(s string) Element {
	return Element{Kind: KindString, Str: s}
}

// NewRespCode builds a response-code element.
func NewRespCode(rc RespCode) Element {
	return Element{Kind: KindRespCode, Code: rc}
}

// NewUint64 builds an unsigned-integer element.
func NewUint64(u uint64) Element {
	return Element{Kind: KindUint64, Uint: u}
}

func (e Element) String() string {
	switch e.Kind {
	case KindRespCode:
		return e.Code.String()
	case KindUint64:
		return strconv.FormatUint(e.Uint, 10)
	default:
		return e.Str
	}
}

// Datagroup is the ordered collection of elements returned for a single
// logical query. The wire order is preserved: element positions correspond to
// the positions of the query arguments that produced them.
type Datagroup []Element
