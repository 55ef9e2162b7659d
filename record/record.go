// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

// field keys used by the canonical encoding - never reorder a packed
// record by changing these, the codec sorts them itself
const (
	identityKey = "identity"
	nameKey     = "name"
	ownerKey    = "owner"
)

// byte sizes for various fields
const (
	maxNameLength     = 128
	maxIdentityLength = 128
)

// Packed - packed records are just a byte slice
type Packed []byte

// Asset - current ownership of one named asset
//
// created once per unique name; the owner field is the only part that
// ever changes, and only a completed transfer changes it
type Asset struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// PendingTransfer - a transfer in flight for one asset
//
// the same shape serves both transfer slots: in the acknowledgment
// slot the owner field names the buyer who must acknowledge, in the
// approval slot it names the buyer awaiting the regulator's decision
type PendingTransfer struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// Presence - a role membership marker
//
// existence of the record at the derived address is the whole signal;
// the identity is stored so the record is self-describing when dumped
type Presence struct {
	Identity string `json:"identity"`
}
