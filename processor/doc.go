// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - host-facing request handling
//
// The surrounding ledger runtime authenticates the signer, decodes
// nothing, and owns all threading and retry policy.  This package is
// the seam between that runtime and the transition engine: it decodes
// the raw request body, applies the transition, commits the write-set
// and reports one synchronous verdict.  Registration tells the runtime
// which address namespace to route here
package processor
