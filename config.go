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
	"fmt"
	"net"
	"strconv"

	"github.com/BurntSushi/toml"

	errorx "github.com/plumedb/plume-go/pkg/errors"
)

const (
	// DefaultHost is the host a default configuration connects to. Don't rely
	// on it in a clustering setup.
	DefaultHost = "127.0.0.1"
	// DefaultPort is the TCP port a default configuration connects to.
	DefaultPort uint16 = 2003
)

// Config holds the endpoint and the credentials for a database connection.
type Config struct {
	Host     string `toml:"host"`
	Port     uint16 `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// NewConfig creates a Config from the given settings.
func NewConfig(host string, port uint16, username, password string) *Config {
	return &Config{Host: host, Port: port, Username: username, Password: password}
}

// DefaultConfig creates a Config pointing at the default endpoint with the
// provided credentials.
func DefaultConfig(username, password string) *Config {
	return NewConfig(DefaultHost, DefaultPort, username, password)
}

// LoadConfig reads a Config from a TOML file. Keys absent from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Host: DefaultHost, Port: DefaultPort}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("plume: load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports whether the configuration can be dialed.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", errorx.ErrInvalidConfig)
	}
	if len(c.Host) == 0 {
		return fmt.Errorf("%w: empty host", errorx.ErrInvalidConfig)
	}
	if c.Port == 0 {
		return fmt.Errorf("%w: port 0", errorx.ErrInvalidConfig)
	}
	return nil
}

// Addr returns the host:port address this configuration points at.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}
