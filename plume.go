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

package plume

import "github.com/plumedb/plume-go/protocol"

// Response is the alias of protocol.Response.
type Response = protocol.Response

// Element is the alias of protocol.Element.
type Element = protocol.Element

// Datagroup is the alias of protocol.Datagroup.
type Datagroup = protocol.Datagroup

// RespCode is the alias of protocol.RespCode.
type RespCode = protocol.RespCode

// Response shapes, re-exported from the protocol package.
const (
	// Item is a response carrying exactly one element.
	Item = protocol.Item
	// Group is a response carrying one datagroup of several elements.
	Group = protocol.Group
	// Batch is a response carrying one datagroup per pipelined query.
	Batch = protocol.Batch
)
