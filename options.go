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
	"time"

	"github.com/plumedb/plume-go/pkg/logging"
)

// Option is a function that sets up an option of a connection.
type Option func(opts *Options)

func loadOptions(options ...Option) *Options {
	opts := new(Options)
	for _, option := range options {
		option(opts)
	}
	return opts
}

// Options are configured when dialing a connection.
type Options struct {
	// DialTimeout bounds the TCP connection establishment. Zero means no
	// timeout.
	DialTimeout time.Duration

	// ReadBufferCap is the size of the chunk buffer used when reading
	// responses off the socket, 4 KB when left zero.
	ReadBufferCap int

	// LogPath is the local path where logs are written to, with rotation.
	// When empty, logs go to the default logger destination.
	LogPath string

	// LogLevel indicates the logging level when LogPath is set.
	LogLevel logging.Level

	// Logger is a customized logger for connection events, overriding the
	// default one.
	Logger logging.Logger
}

// WithOptions sets up all options at once.
func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
	}
}

// WithDialTimeout sets up DialTimeout.
func WithDialTimeout(d time.Duration) Option {
	return func(opts *Options) {
		opts.DialTimeout = d
	}
}

// WithReadBufferCap sets up ReadBufferCap.
func WithReadBufferCap(readBufferCap int) Option {
	return func(opts *Options) {
		opts.ReadBufferCap = readBufferCap
	}
}

// WithLogPath sets up LogPath.
func WithLogPath(fileName string) Option {
	return func(opts *Options) {
		opts.LogPath = fileName
	}
}

// WithLogLevel sets up LogLevel.
func WithLogLevel(lvl logging.Level) Option {
	return func(opts *Options) {
		opts.LogLevel = lvl
	}
}

// WithLogger sets up Logger.
func WithLogger(logger logging.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
