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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorx "github.com/plumedb/plume-go/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("user", "pass")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "127.0.0.1:2003", cfg.Addr())
}

func TestConfigValidate(t *testing.T) {
	assert.ErrorIs(t, (*Config)(nil).Validate(), errorx.ErrInvalidConfig)
	assert.ErrorIs(t, NewConfig("", 2003, "u", "p").Validate(), errorx.ErrInvalidConfig)
	assert.ErrorIs(t, NewConfig("db1", 0, "u", "p").Validate(), errorx.ErrInvalidConfig)
	assert.NoError(t, NewConfig("db1", 2008, "u", "p").Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plume.toml")
	content := "host = \"subnetx2_db1\"\nport = 2008\nusername = \"user\"\npassword = \"pass\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "subnetx2_db1", cfg.Host)
	assert.EqualValues(t, 2008, cfg.Port)
	assert.Equal(t, "user", cfg.Username)
	assert.Equal(t, "pass", cfg.Password)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plume.toml")
	require.NoError(t, os.WriteFile(path, []byte("username = \"user\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "plume.toml")
	require.NoError(t, os.WriteFile(path, []byte("host = \"\"\n"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, errorx.ErrInvalidConfig)
}
