// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regledger/transferd/address"
	"github.com/regledger/transferd/record"
	"github.com/regledger/transferd/storage"
	"github.com/regledger/transferd/transition"
)

// common test setup routines

func newScheme(t *testing.T) *address.Scheme {
	scheme, err := address.NewScheme(address.Parameters{ApplicationName: "transfer-testing"})
	require.Nil(t, err, "scheme construction failed")
	return scheme
}

func newEngine(t *testing.T) (*transition.Engine, *address.Scheme, *storage.Memory) {
	scheme := newScheme(t)
	return transition.NewEngine(scheme), scheme, storage.NewMemory()
}

// apply one request and commit its write-set
func apply(t *testing.T, engine *transition.Engine, store *storage.Memory, signer string, payload *transition.Payload) error {
	writes, err := engine.Apply(store, signer, payload)
	if nil != err {
		return err
	}
	confirmed, err := store.Set(writes)
	require.Nil(t, err, "commit failed")
	require.Equal(t, len(writes), len(confirmed), "partial commit")
	return nil
}

// place a role presence record directly into state
func registerRole(t *testing.T, scheme *address.Scheme, store *storage.Memory, kind address.Kind, identity string) {
	presence := record.Presence{Identity: identity}
	packed, err := presence.Pack()
	require.Nil(t, err, "pack failed")

	_, err = store.Set(map[string][]byte{
		scheme.Address(kind, identity): packed,
	})
	require.Nil(t, err, "set failed")
}

// read and decode the asset record, failing the test when absent
func readAsset(t *testing.T, scheme *address.Scheme, store *storage.Memory, name string) *record.Asset {
	value, err := storage.GetOne(store, scheme.Address(address.Asset, name))
	require.Nil(t, err, "get failed")

	asset, err := record.UnpackAsset(value)
	require.Nil(t, err, "unpack failed")
	return asset
}

// raw bytes at a slot address, nil when absent
func readSlot(t *testing.T, scheme *address.Scheme, store *storage.Memory, kind address.Kind, name string) []byte {
	value, err := storage.GetOne(store, scheme.Address(kind, name))
	require.Nil(t, err, "get failed")
	return value
}
