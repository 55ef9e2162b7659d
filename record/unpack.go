// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/regledger/transferd/fault"
	"github.com/regledger/transferd/util"
)

// an absurdly large string length still has to fit one packed record
const maxStringLength = 8192

// UnpackAsset - decode an asset record
func UnpackAsset(buffer Packed) (*Asset, error) {
	pairs, err := unpackPairs(buffer)
	if nil != err {
		return nil, err
	}
	name, owner := pairs[nameKey], pairs[ownerKey]
	if 2 != len(pairs) || "" == name || "" == owner {
		return nil, fault.ErrWrongRecordContents
	}
	return &Asset{
		Name:  name,
		Owner: owner,
	}, nil
}

// UnpackPendingTransfer - decode a transfer slot record
func UnpackPendingTransfer(buffer Packed) (*PendingTransfer, error) {
	pairs, err := unpackPairs(buffer)
	if nil != err {
		return nil, err
	}
	name, owner := pairs[nameKey], pairs[ownerKey]
	if 2 != len(pairs) || "" == name || "" == owner {
		return nil, fault.ErrWrongRecordContents
	}
	return &PendingTransfer{
		Name:  name,
		Owner: owner,
	}, nil
}

// UnpackPresence - decode a role presence record
func UnpackPresence(buffer Packed) (*Presence, error) {
	pairs, err := unpackPairs(buffer)
	if nil != err {
		return nil, err
	}
	identity := pairs[identityKey]
	if 1 != len(pairs) || "" == identity {
		return nil, fault.ErrWrongRecordContents
	}
	return &Presence{
		Identity: identity,
	}, nil
}

// split a packed buffer back into its key/value pairs
//
// an empty buffer signals an absent record and is refused outright so
// that no rule can mistake a cleared slot for real data
func unpackPairs(buffer Packed) (map[string]string, error) {
	if 0 == len(buffer) {
		return nil, fault.ErrRecordNotPresent
	}

	pairs := map[string]string{}
	n := 0
	for n < len(buffer) {
		key, keyLength := unpackString(buffer[n:])
		if 0 == keyLength {
			return nil, fault.ErrWrongRecordContents
		}
		n += keyLength

		value, valueLength := unpackString(buffer[n:])
		if 0 == valueLength {
			return nil, fault.ErrWrongRecordContents
		}
		n += valueLength

		if _, ok := pairs[key]; ok {
			return nil, fault.ErrWrongRecordContents
		}
		pairs[key] = value
	}
	return pairs, nil
}

// read one Varint64 length prefixed string, returning the bytes used
// a zero count signals a truncated or oversize buffer
func unpackString(buffer Packed) (string, int) {
	length, offset := util.ClippedVarint64(buffer, 1, maxStringLength)
	if 0 == offset {
		return "", 0
	}
	if offset+length > len(buffer) {
		return "", 0
	}
	return string(buffer[offset : offset+length]), offset + length
}
