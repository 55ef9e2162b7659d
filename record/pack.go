// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"sort"
	"unicode/utf8"

	"github.com/regledger/transferd/fault"
	"github.com/regledger/transferd/util"
)

// Pack - canonical encoding of an asset record
func (asset *Asset) Pack() (Packed, error) {
	if err := checkField(asset.Name, maxNameLength); nil != err {
		return nil, err
	}
	if err := checkField(asset.Owner, maxIdentityLength); nil != err {
		return nil, err
	}
	return packPairs(map[string]string{
		nameKey:  asset.Name,
		ownerKey: asset.Owner,
	}), nil
}

// Pack - canonical encoding of a pending transfer record
func (pending *PendingTransfer) Pack() (Packed, error) {
	if err := checkField(pending.Name, maxNameLength); nil != err {
		return nil, err
	}
	if err := checkField(pending.Owner, maxIdentityLength); nil != err {
		return nil, err
	}
	return packPairs(map[string]string{
		nameKey:  pending.Name,
		ownerKey: pending.Owner,
	}), nil
}

// Pack - canonical encoding of a role presence record
func (presence *Presence) Pack() (Packed, error) {
	if err := checkField(presence.Identity, maxIdentityLength); nil != err {
		return nil, err
	}
	return packPairs(map[string]string{
		identityKey: presence.Identity,
	}), nil
}

// a field must be present, valid UTF-8 and within its size limit
func checkField(s string, maximum int) error {
	if "" == s || !utf8.ValidString(s) {
		return fault.ErrWrongRecordContents
	}
	if utf8.RuneCountInString(s) > maximum {
		return fault.ErrWrongRecordContents
	}
	return nil
}

// concatenate key/value pairs in sorted key order
func packPairs(pairs map[string]string) Packed {
	keys := make([]string, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buffer := Packed{}
	for _, key := range keys {
		buffer = appendString(buffer, key)
		buffer = appendString(buffer, pairs[key])
	}
	return buffer
}

// append a Varint64 length prefixed string
func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}
