// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - ledger state records and their canonical byte encoding
//
// Records are packed as a sequence of key/value string pairs, sorted by
// key, each string preceded by its Varint64 length.  The sort makes the
// encoding independent of field ordering in source, so two nodes
// packing the same logical record always produce identical bytes.
//
// A zero-length buffer means the address is absent; Unpack refuses it
// rather than returning a zero record, so callers must check presence
// explicitly
package record
