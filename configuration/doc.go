// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua driven configuration files
//
// The configuration file is a Lua program whose final expression is a
// table; running it lets operators compute paths and share fragments
// between deployments instead of duplicating static files
package configuration
