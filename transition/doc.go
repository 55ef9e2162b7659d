// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transition - the deterministic state-transition engine
//
// One request is one call to Engine.Apply: the rule for the requested
// action reads the few addresses it needs through the state store
// port, validates its invariants and returns the complete write-set
// for the host to commit atomically.  The engine itself never touches
// state and never retries; a validation failure rejects the whole
// request with one of the fault package's rejection errors.
//
// Per-asset lifecycle:
//
//	absent -> created -> offered(buyer) -> pending approval -> approved
//
// with rejection returning a pending approval to the created state
package transition
