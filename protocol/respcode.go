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

// RespCode is a response code returned by the server to report the outcome of
// an action, distinct from application data. The wire only ever carries the
// integer value, never any human-readable text.
//
// The codes below are the ones defined by the server today. Codes outside this
// set are preserved as-is rather than rejected, so a client built against an
// older code set keeps working when the server grows new codes; Known reports
// whether a code belongs to the defined set.
type RespCode uint64

const (
	// Okay indicates the action succeeded.
	Okay RespCode = iota
	// NotFound indicates the requested key does not exist.
	NotFound
	// OverwriteError indicates an existing key would have been overwritten.
	OverwriteError
	// ActionError indicates the action was malformed, e.g. wrong argument count.
	ActionError
	// PacketError indicates the server could not parse the query packet.
	PacketError
	// ServerError indicates an internal server error.
	ServerError
)

// Known reports whether rc belongs to the set of codes defined by the server
// as of this client version.
func (rc RespCode) Known() bool {
	return rc <= ServerError
}

func (rc RespCode) String() string {
	switch rc {
	case Okay:
		return "Okay"
	case NotFound:
		return "Not Found"
	case OverwriteError:
		return "Overwrite Error"
	case ActionError:
		return "Action Error"
	case PacketError:
		return "Packet Error"
	case ServerError:
		return "Server Error"
	default:
		return "Unknown Error: " + strconv.FormatUint(uint64(rc), 10)
	}
}
