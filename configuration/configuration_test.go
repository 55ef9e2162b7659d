// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regledger/transferd/configuration"
)

const sampleConfiguration = `
local M = {}

M.application_name = "transfer"
M.data_directory = "/var/lib/transferd"
M.database = "state.leveldb"

M.logging = {
    file = "transferd.log",
    size = 1048576,
    count = 20,
    console = false,
    levels = {
        DEFAULT = "info",
        processor = "debug",
    },
}

return M
`

func writeConfiguration(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration-test")
	require.Nil(t, err, "temp dir failed")

	fileName := filepath.Join(dir, "transferd.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write failed")

	return fileName, func() { os.RemoveAll(dir) }
}

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, sampleConfiguration)
	defer cleanup()

	config, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "parse failed")

	assert.Equal(t, "transfer", config.ApplicationName, "wrong application name")
	assert.Equal(t, "/var/lib/transferd/state.leveldb", config.Database, "wrong database path")
	assert.Equal(t, "/var/lib/transferd/log", config.Logging.Directory, "wrong log directory")
	assert.Equal(t, 20, config.Logging.Count, "wrong log count")
	assert.Equal(t, "debug", config.Logging.Levels["processor"], "wrong log level")
}

// a minimal file gets working defaults
func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = "/tmp/x" }`)
	defer cleanup()

	config, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "parse failed")

	assert.Equal(t, "transfer", config.ApplicationName, "wrong application name")
	assert.Equal(t, "/tmp/x/transfer-state.leveldb", config.Database, "wrong database path")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration("/nonexistent/transferd.conf")
	assert.NotNil(t, err, "expected an error")
}
