// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the state store port and its backends
//
// The transition rules read and write raw bytes keyed by derived
// addresses through the Store interface; the persistence engine
// behind it is the host's concern.  Two backends are provided: an
// in-process map for tests and ephemeral runs, and a LevelDB adapter
// for durable local state.
//
// A whole write-set commits as one atomic batch; a zero-length value
// clears its address.  Partial commits never happen - a backend either
// confirms every requested address or fails the whole set
package storage
