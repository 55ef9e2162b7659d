// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Store - the state store port
//
// Get returns a mapping holding only the addresses that are present;
// an absent or cleared address simply has no entry.  Set commits the
// whole mapping as one atomic batch and returns the addresses it
// confirmed; a backend must return an error when it cannot confirm
// every requested address.
//
// All errors out of a Store are fatal processing errors
// (fault.IsErrProcess), never submitter rejections
type Store interface {
	Get(addresses []string) (map[string][]byte, error)
	Set(writes map[string][]byte) ([]string, error)
}

// GetOne - fetch a single address through the port
//
// returns nil bytes when the address is absent
func GetOne(store Store, address string) ([]byte, error) {
	values, err := store.Get([]string{address})
	if nil != err {
		return nil, err
	}
	return values[address], nil
}
