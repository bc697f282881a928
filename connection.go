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
	"net"
	"sync"

	errorx "github.com/plumedb/plume-go/pkg/errors"
	"github.com/plumedb/plume-go/pkg/logging"
	"github.com/plumedb/plume-go/pkg/pool/goroutine"
	"github.com/plumedb/plume-go/protocol"
)

const defaultReadBufferCap = 4096

// Conn is a single TCP connection to a database node. Queries run on it are
// serialized: a second Run blocks until the response of the first has been
// read off the wire.
type Conn struct {
	mu         sync.Mutex
	sock       net.Conn
	logger     logging.Logger
	logFlush   logging.Flusher
	workerPool *goroutine.Pool
	rdbuf      []byte
	closed     bool
}

// Dial establishes a connection to the node cfg points at.
func Dial(cfg *Config, opts ...Option) (*Conn, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	options := loadOptions(opts...)

	var (
		logger logging.Logger
		flush  logging.Flusher
		err    error
	)
	if options.LogPath != "" {
		if logger, flush, err = logging.CreateLoggerAsLocalFile(options.LogPath, options.LogLevel); err != nil {
			return nil, err
		}
	} else {
		logger = logging.GetDefaultLogger()
	}
	if options.Logger != nil {
		logger = options.Logger
	}

	rbc := options.ReadBufferCap
	if rbc <= 0 {
		rbc = defaultReadBufferCap
	}

	var sock net.Conn
	if options.DialTimeout > 0 {
		sock, err = net.DialTimeout("tcp", cfg.Addr(), options.DialTimeout)
	} else {
		sock, err = net.Dial("tcp", cfg.Addr())
	}
	if err != nil {
		logger.Errorf("failed to dial %s: %v", cfg.Addr(), err)
		return nil, err
	}
	logger.Debugf("connected to %s", cfg.Addr())

	return &Conn{
		sock:       sock,
		logger:     logger,
		logFlush:   flush,
		workerPool: goroutine.Default(),
		rdbuf:      make([]byte, rbc),
	}, nil
}

// Run sends one query and blocks until its response has been decoded.
func (c *Conn) Run(q *Query) (*Response, error) {
	return c.run(q)
}

// RunPipeline sends every query batched in p in one request and blocks until
// the combined response has been decoded. The response always has Kind Batch,
// holding the datagroups in query order.
func (c *Conn) RunPipeline(p *Pipeline) (*Response, error) {
	if p.Len() == 0 {
		return nil, errorx.ErrEmptyPipeline
	}
	return c.run(p)
}

// RunAsync runs a query on the shared worker pool and hands the outcome to
// callback once the response has been read. It returns an error only when the
// task could not be submitted.
func (c *Conn) RunAsync(q *Query, callback func(*Response, error)) error {
	return c.workerPool.Submit(func() {
		callback(c.Run(q))
	})
}

func (c *Conn) run(req io.WriterTo) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errorx.ErrConnInShutdown
	}
	if _, err := req.WriteTo(c.sock); err != nil {
		return nil, err
	}

	// Responses are decoded from byte 0 on every pass, so the packet is
	// accumulated into one contiguous buffer until the decoder stops asking
	// for more data.
	var packet []byte
	for {
		n, err := c.sock.Read(c.rdbuf)
		if n > 0 {
			packet = append(packet, c.rdbuf[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				c.logger.Debugf("connection to %s closed by server", c.sock.RemoteAddr())
				return nil, errorx.ErrConnectionClosed
			}
			return nil, err
		}
		if n == 0 {
			return nil, errorx.ErrConnectionClosed
		}

		res, _, err := protocol.Decode(packet)
		switch err {
		case nil:
			return res, nil
		case errorx.ErrIncomplete:
			continue
		default:
			c.logger.Errorf("dropping response of %d bytes from %s: %v",
				len(packet), c.sock.RemoteAddr(), err)
			return nil, err
		}
	}
}

// Close shuts the connection down, releasing the worker pool. Closing an
// already closed connection is a no-op.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.workerPool.Release()
	err := c.sock.Close()
	if c.logFlush != nil {
		_ = c.logFlush()
	}
	return err
}
