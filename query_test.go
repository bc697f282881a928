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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryEncoding(t *testing.T) {
	var buf bytes.Buffer
	q := NewQuery("heya")
	require.Equal(t, 1, q.Len())
	n, err := q.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), n)
	assert.Equal(t, "*1\n_1\n+4\nheya\n", buf.String())

	buf.Reset()
	q = NewQuery().Arg("set").Arg("x").Arg("100")
	require.Equal(t, 3, q.Len())
	_, err = q.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "*1\n_3\n+3\nset\n+1\nx\n+3\n100\n", buf.String())
}

func TestQueryReuseAfterWrite(t *testing.T) {
	var buf bytes.Buffer
	q := NewQuery("get", "x")
	_, err := q.WriteTo(&buf)
	require.NoError(t, err)
	require.Zero(t, q.Len(), "holding buffer should be cleared after a write")

	buf.Reset()
	q.Arg("get").Arg("y")
	_, err = q.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "*1\n_2\n+3\nget\n+1\ny\n", buf.String())
}

func TestQueryEmptyArgPanics(t *testing.T) {
	assert.Panics(t, func() { NewQuery("") })
	assert.Panics(t, func() { NewQuery("get").Arg("") })
}

func TestPipelineEncoding(t *testing.T) {
	var buf bytes.Buffer
	p := NewPipeline().
		Add(NewQuery("heya")).
		Add(NewQuery("get", "x"))
	require.Equal(t, 2, p.Len())
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), n)
	assert.Equal(t, "*2\n_1\n+4\nheya\n_2\n+3\nget\n+1\nx\n", buf.String())
	assert.Zero(t, p.Len(), "pipeline should be emptied after a write")
}
