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

// Package protocol decodes plumewire response packets.
//
// A response packet is line-oriented and length-prefixed:
//
//	response := "#" <length> LF "*" <group-count> LF group...
//	group    := "#" <length> LF "&" <element-count> LF element...
//	element  := tag <length> LF <payload> LF
//
// where every <length> is the ASCII-decimal byte count of the line or payload
// that follows it, and tag is one of '+' (string), '!' (response code) and ':'
// (unsigned 64-bit integer).
//
// Decode is a pure function over a byte buffer: it holds no state between
// calls and performs no I/O, so concurrent calls on independent buffers need
// no synchronization. When it reports errors.ErrIncomplete the caller reads
// more bytes off the transport and decodes the whole, larger buffer again
// from the start.
package protocol

import (
	"strconv"
	"strings"
	"unicode/utf8"

	errorx "github.com/plumedb/plume-go/pkg/errors"
)

// Element tags defined by the wire protocol.
const (
	tagString   = '+'
	tagRespCode = '!'
	tagUint64   = ':'
)

const (
	lf        = '\n'
	metaframe = '#'
	metaline  = '*'
	arrayline = '&'
)

// minResponseSize is the byte count below which no buffer can frame even the
// empty response, so nothing needs inspecting.
const minResponseSize = 6

// maxSizeDigit caps the accumulation of a decimal length or count field so it
// cannot overflow int. A field this large can never be satisfied by a real
// packet, so it is treated as a framing violation rather than as missing data.
const maxSizeDigit = (int(^uint(0)>>1) - 9) / 10

// ResponseKind discriminates the shape of a decoded response.
type ResponseKind uint8

const (
	// Item is a response carrying exactly one element in exactly one
	// datagroup. This is a client-side convenience: the wire itself always
	// transmits uniform groups of elements.
	Item ResponseKind = iota
	// Group is a response carrying one datagroup of two or more elements.
	Group
	// Batch is a response carrying the datagroups of multiple pipelined
	// queries, or no datagroups at all.
	Batch
)

// Response is a successfully decoded response packet.
type Response struct {
	Kind  ResponseKind
	Item  Element     // set when Kind == Item
	Group Datagroup   // set when Kind == Group
	Batch []Datagroup // set when Kind == Batch
}

// Decode parses one response packet out of buf, which must hold the packet
// from its very first byte. It returns the decoded response and the number of
// bytes consumed, which on success is always exactly len(buf): a well-formed
// packet followed by trailing bytes means the stream is desynchronized and is
// reported as errors.ErrMalformedResponse.
//
// On failure the response is nil, consumed is 0 and the error is one of
// errors.ErrIncomplete, errors.ErrMalformedResponse and
// errors.ErrInvalidPayload.
func Decode(buf []byte) (*Response, int, error) {
	if len(buf) < minResponseSize {
		return nil, 0, errorx.ErrIncomplete
	}
	d := decoder{buf: buf}
	count, err := d.readMetaframe()
	if err != nil {
		return nil, 0, err
	}
	groups := make([]Datagroup, 0, capHint(count, len(buf)-d.pos))
	for len(groups) < count {
		if d.pos >= len(buf) {
			// The peer may still be sending the remaining datagroups.
			return nil, 0, errorx.ErrIncomplete
		}
		g, err := d.readGroup()
		if err != nil {
			return nil, 0, err
		}
		groups = append(groups, g)
	}
	if d.pos != len(buf) {
		return nil, 0, errorx.ErrMalformedResponse
	}
	return classify(groups), d.pos, nil
}

// classify decides the outward-facing shape of a fully decoded packet. The
// single-item and single-group shapes are client ergonomics layered over the
// uniform wire format, applied only after every declared datagroup has been
// consumed.
func classify(groups []Datagroup) *Response {
	if len(groups) == 1 {
		if len(groups[0]) == 1 {
			return &Response{Kind: Item, Item: groups[0][0]}
		}
		return &Response{Kind: Group, Group: groups[0]}
	}
	return &Response{Kind: Batch, Batch: groups}
}

// decoder tracks the scan position over one response buffer. It lives for a
// single Decode call.
type decoder struct {
	buf []byte
	pos int
}

// readMetaframe consumes the outer "#<length>\n*<count>\n" envelope and
// returns the declared number of datagroups, which may be zero.
func (d *decoder) readMetaframe() (int, error) {
	if d.buf[d.pos] != metaframe {
		return 0, errorx.ErrMalformedResponse
	}
	d.pos++
	line, err := d.readLine()
	if err != nil {
		return 0, err
	}
	if len(line) == 0 || line[0] != metaline {
		return 0, errorx.ErrMalformedResponse
	}
	return parseCount(line[1:])
}

// readGroup consumes one "#<length>\n&<count>\n" group envelope followed by
// exactly <count> elements.
func (d *decoder) readGroup() (Datagroup, error) {
	if d.buf[d.pos] != metaframe {
		return nil, errorx.ErrMalformedResponse
	}
	d.pos++
	line, err := d.readLine()
	if err != nil {
		return nil, err
	}
	if len(line) == 0 || line[0] != arrayline {
		return nil, errorx.ErrMalformedResponse
	}
	count, err := parseCount(line[1:])
	if err != nil {
		return nil, err
	}
	group := make(Datagroup, 0, capHint(count, len(d.buf)-d.pos))
	for len(group) < count {
		if d.pos >= len(d.buf) {
			return nil, errorx.ErrIncomplete
		}
		e, err := d.readElement()
		if err != nil {
			return nil, err
		}
		group = append(group, e)
	}
	return group, nil
}

// readElement consumes one tag byte, an inline length prefix and the raw
// payload it announces, and converts the payload per the tag.
func (d *decoder) readElement() (Element, error) {
	tag := d.buf[d.pos]
	switch tag {
	case tagString, tagRespCode, tagUint64:
	default:
		// Unknown tags come off the network, so they must stay recoverable.
		return Element{}, errorx.ErrMalformedResponse
	}
	d.pos++
	size, err := d.readSize()
	if err != nil {
		return Element{}, err
	}
	payload, err := d.take(size)
	if err != nil {
		return Element{}, err
	}
	switch tag {
	case tagRespCode:
		code, err := strconv.ParseUint(string(payload), 10, 64)
		if err != nil {
			return Element{}, errorx.ErrInvalidPayload
		}
		return NewRespCode(RespCode(code)), nil
	case tagUint64:
		u, err := strconv.ParseUint(string(payload), 10, 64)
		if err != nil {
			return Element{}, errorx.ErrInvalidPayload
		}
		return NewUint64(u), nil
	default:
		// Invalid UTF-8 is substituted rather than rejected so that partial
		// data stays visible.
		return NewString(strings.ToValidUTF8(string(payload), string(utf8.RuneError))), nil
	}
}

// readSize scans the decimal length prefix at the cursor up to its
// terminating line feed.
func (d *decoder) readSize() (int, error) {
	size := 0
	for {
		if d.pos >= len(d.buf) {
			return 0, errorx.ErrIncomplete
		}
		b := d.buf[d.pos]
		if b == lf {
			d.pos++
			return size, nil
		}
		if b < '0' || b > '9' {
			return 0, errorx.ErrMalformedResponse
		}
		if size > maxSizeDigit {
			return 0, errorx.ErrMalformedResponse
		}
		size = size*10 + int(b-'0')
		d.pos++
	}
}

// take consumes exactly n payload bytes plus the line feed that closes them.
func (d *decoder) take(n int) ([]byte, error) {
	if len(d.buf)-d.pos < n {
		return nil, errorx.ErrIncomplete
	}
	payload := d.buf[d.pos : d.pos+n]
	d.pos += n
	if d.pos >= len(d.buf) {
		return nil, errorx.ErrIncomplete
	}
	if d.buf[d.pos] != lf {
		return nil, errorx.ErrMalformedResponse
	}
	d.pos++
	return payload, nil
}

// readLine consumes a length-prefixed line, i.e. "<length>\n<content>\n" with
// the leading envelope byte already skipped by the caller, and returns the
// content.
func (d *decoder) readLine() ([]byte, error) {
	size, err := d.readSize()
	if err != nil {
		return nil, err
	}
	return d.take(size)
}

// parseCount interprets a full field of ASCII digits, rejecting empty fields
// and any non-digit byte.
func parseCount(field []byte) (int, error) {
	if len(field) == 0 {
		return 0, errorx.ErrMalformedResponse
	}
	count := 0
	for _, b := range field {
		if b < '0' || b > '9' {
			return 0, errorx.ErrMalformedResponse
		}
		if count > maxSizeDigit {
			return 0, errorx.ErrMalformedResponse
		}
		count = count*10 + int(b-'0')
	}
	return count, nil
}

// capHint bounds a declared count by what the remaining buffer could possibly
// hold, so a hostile count cannot force an oversized allocation.
func capHint(count, remaining int) int {
	if count > remaining {
		return remaining
	}
	return count
}
