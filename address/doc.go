// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - derivation of ledger state addresses
//
// Every address is a fixed-length hex string laid out as:
//
//	6 hex chars   hash of the application namespace name
//	2 hex chars   entity kind code
//	62 hex chars  hash of the entity key, truncated
//
// The same (kind, key) pair always derives the same address on every
// node, which is what keeps independently replaying nodes writing to
// identical locations
package address
