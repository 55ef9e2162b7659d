// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/regledger/transferd/fault"
)

// default values for missing configuration items
const (
	defaultApplicationName = "transfer"
	defaultDatabase        = "transfer-state.leveldb"
	defaultLogDirectory    = "log"
	defaultLogFile         = "transferd.log"
	defaultLogCount        = 10
	defaultLogSize         = 1048576
)

// Configuration - the settings a host process needs
type Configuration struct {
	ApplicationName string               `gluamapper:"application_name"`
	DataDirectory   string               `gluamapper:"data_directory"`
	Database        string               `gluamapper:"database"`
	Logging         logger.Configuration `gluamapper:"logging"`
}

// GetConfiguration - read a configuration file and fill in defaults
//
// relative paths are resolved against the data directory so a whole
// deployment can be moved by moving one tree
func GetConfiguration(fileName string) (*Configuration, error) {

	config := &Configuration{
		ApplicationName: defaultApplicationName,
		DataDirectory:   ".",
		Database:        defaultDatabase,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if err := ParseConfigurationFile(fileName, config); nil != err {
		return nil, err
	}

	if "" == config.ApplicationName {
		return nil, fault.ErrMissingApplicationName
	}

	if !filepath.IsAbs(config.Database) {
		config.Database = filepath.Join(config.DataDirectory, config.Database)
	}
	if !filepath.IsAbs(config.Logging.Directory) {
		config.Logging.Directory = filepath.Join(config.DataDirectory, config.Logging.Directory)
	}

	return config, nil
}
