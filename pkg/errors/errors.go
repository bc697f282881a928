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

// Package errors defines common errors for the plume client.
package errors

import "errors"

var (
	// ErrIncomplete occurs when a response buffer ends before a complete response
	// could be decoded. The caller should read more bytes from the transport and
	// decode the whole buffer again.
	ErrIncomplete = errors.New("plume: incomplete response, more data required")
	// ErrMalformedResponse occurs when the response framing violates the wire
	// grammar: a bad tag byte, a non-digit in a length or count field, or trailing
	// bytes after a logically complete response. Byte alignment on the connection
	// can no longer be trusted, so the connection should be discarded.
	ErrMalformedResponse = errors.New("plume: malformed response")
	// ErrInvalidPayload occurs when the framing was well-formed but a typed
	// element payload could not be converted, e.g. a non-numeric unsigned integer.
	// Unlike ErrMalformedResponse, the connection remains usable.
	ErrInvalidPayload = errors.New("plume: invalid element payload")
	// ErrConnectionClosed occurs when the server closes the connection, observed
	// as a zero-byte read on the transport.
	ErrConnectionClosed = errors.New("plume: connection closed by server")
	// ErrEmptyPipeline occurs when running a pipeline that holds no queries.
	ErrEmptyPipeline = errors.New("plume: pipeline holds no queries")
	// ErrInvalidConfig occurs when a connection configuration fails validation.
	ErrInvalidConfig = errors.New("plume: invalid configuration")
	// ErrConnInShutdown occurs when running a query on a closed connection.
	ErrConnInShutdown = errors.New("plume: connection is already closed")
)
