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

import (
	"io"
	"strconv"

	bbPool "github.com/plumedb/plume-go/pkg/pool/bytebuffer"
)

// Query is one simple query: an ordered sequence of string arguments. The
// arguments are serialized into a pooled holding buffer as they are added, so
// writing a query to the wire is a single copy:
//
//	*1 LF _<argc> LF ( "+"<len> LF <arg> LF )...
//
// A Query is not safe for concurrent use.
type Query struct {
	argc int
	buf  *bbPool.ByteBuffer
}

// NewQuery creates a query holding the given arguments. Further arguments may
// be added with Arg.
func NewQuery(args ...string) *Query {
	q := new(Query)
	for _, arg := range args {
		q.Arg(arg)
	}
	return q
}

// Arg appends one argument to the query and returns the query for chaining.
//
// It panics if arg is empty: the wire format has no representation for an
// empty argument.
func (q *Query) Arg(arg string) *Query {
	if len(arg) == 0 {
		panic("plume: query argument cannot be empty")
	}
	if q.buf == nil {
		q.buf = bbPool.Get()
	}
	q.argc++
	_ = q.buf.WriteByte('+')
	q.buf.B = strconv.AppendInt(q.buf.B, int64(len(arg)), 10)
	_ = q.buf.WriteByte('\n')
	_, _ = q.buf.WriteString(arg)
	_ = q.buf.WriteByte('\n')
	return q
}

// Len returns the number of arguments added so far.
func (q *Query) Len() int {
	return q.argc
}

// WriteTo serializes the query to w as a single write and resets the query so
// it can be reused for further arguments. It implements io.WriterTo.
func (q *Query) WriteTo(w io.Writer) (int64, error) {
	out := bbPool.Get()
	defer bbPool.Put(out)
	_, _ = out.WriteString("*1\n")
	writeDatagroup(out, q)
	n, err := w.Write(out.B)
	return int64(n), err
}

// writeDatagroup appends the datagroup header and the serialized arguments of
// q to out, then resets q, releasing its holding buffer back to the pool.
func writeDatagroup(out *bbPool.ByteBuffer, q *Query) {
	_ = out.WriteByte('_')
	out.B = strconv.AppendInt(out.B, int64(q.argc), 10)
	_ = out.WriteByte('\n')
	if q.buf != nil {
		_, _ = out.Write(q.buf.B)
		bbPool.Put(q.buf)
	}
	q.buf = nil
	q.argc = 0
}

// Pipeline batches several queries into one request, saving round trips. The
// server decodes them in order and answers with a single response carrying
// one datagroup per query.
type Pipeline struct {
	queries []*Query
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return new(Pipeline)
}

// Add appends a query to the pipeline and returns the pipeline for chaining.
func (p *Pipeline) Add(q *Query) *Pipeline {
	p.queries = append(p.queries, q)
	return p
}

// Len returns the number of queries added so far.
func (p *Pipeline) Len() int {
	return len(p.queries)
}

// WriteTo serializes every batched query to w as a single write, resetting
// the queries and emptying the pipeline. It implements io.WriterTo.
func (p *Pipeline) WriteTo(w io.Writer) (int64, error) {
	out := bbPool.Get()
	defer bbPool.Put(out)
	_ = out.WriteByte('*')
	out.B = strconv.AppendInt(out.B, int64(len(p.queries)), 10)
	_ = out.WriteByte('\n')
	for _, q := range p.queries {
		writeDatagroup(out, q)
	}
	p.queries = p.queries[:0]
	n, err := w.Write(out.B)
	return int64(n), err
}
