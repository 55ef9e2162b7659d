// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regledger/transferd/address"
	"github.com/regledger/transferd/fault"
	"github.com/regledger/transferd/processor"
	"github.com/regledger/transferd/record"
	"github.com/regledger/transferd/storage"
)

const testingDirName = "testing"

// configure logging for testing
func setup(t *testing.T) {
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

func teardown(t *testing.T) {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func newProcessor(t *testing.T) (*processor.Processor, *storage.Memory) {
	store := storage.NewMemory()
	p, err := processor.New(address.Parameters{ApplicationName: "transfer-testing"}, store)
	require.Nil(t, err, "processor construction failed")
	return p, store
}

func TestRegistration(t *testing.T) {
	setup(t)
	defer teardown(t)

	p, _ := newProcessor(t)
	registration := p.Registration()

	assert.Equal(t, "transfer-testing", registration.Name, "wrong name")
	assert.Equal(t, processor.Version, registration.Version, "wrong version")
	assert.Equal(t, processor.ContentType, registration.ContentType, "wrong content type")
	require.Equal(t, 1, len(registration.Prefixes), "wrong prefix count")
	assert.Equal(t, p.Scheme().Prefix(), registration.Prefixes[0], "wrong prefix")
}

func TestHandleLifecycle(t *testing.T) {
	setup(t)
	defer teardown(t)

	p, store := newProcessor(t)

	// regulator registered by an out of scope process
	presence, err := (&record.Presence{Identity: "regulator1"}).Pack()
	require.Nil(t, err, "pack failed")
	_, err = store.Set(map[string][]byte{
		p.Scheme().Address(address.Regulator, "regulator1"): presence,
	})
	require.Nil(t, err, "set failed")

	steps := []struct {
		signer string
		body   string
	}{
		{"alice", `{"action":"create","asset":"widget"}`},
		{"alice", `{"action":"offer","asset":"widget","owner":"bob"}`},
		{"bob", `{"action":"acknowledge","asset":"widget"}`},
		{"regulator1", `{"action":"approve","asset":"widget"}`},
	}

	for i, step := range steps {
		require.Nil(t, p.Handle(step.signer, []byte(step.body)), "step %d failed", i)
	}

	value, err := storage.GetOne(store, p.Scheme().Address(address.Asset, "widget"))
	require.Nil(t, err, "get failed")
	asset, err := record.UnpackAsset(value)
	require.Nil(t, err, "unpack failed")
	assert.Equal(t, "bob", asset.Owner, "wrong final owner")
}

func TestHandleRejections(t *testing.T) {
	setup(t)
	defer teardown(t)

	p, _ := newProcessor(t)

	err := p.Handle("alice", []byte(`garbage`))
	assert.Equal(t, fault.ErrMalformedPayload, err, "wrong error")

	err = p.Handle("alice", []byte(`{"action":"destroy","asset":"widget"}`))
	assert.Equal(t, fault.ErrInvalidAction, err, "wrong error")

	err = p.Handle("alice", []byte(`{"action":"offer","asset":"widget","owner":"bob"}`))
	assert.Equal(t, fault.ErrAssetNotFound, err, "wrong error")
	assert.True(t, fault.IsErrRejection(err), "not a rejection")
}

// a short confirmation from the store surfaces as a write conflict
func TestHandleWriteConflict(t *testing.T) {
	setup(t)
	defer teardown(t)

	store := &shortConfirmStore{Memory: storage.NewMemory()}
	p, err := processor.New(address.Parameters{ApplicationName: "transfer-testing"}, store)
	require.Nil(t, err, "processor construction failed")

	err = p.Handle("alice", []byte(`{"action":"create","asset":"widget"}`))
	assert.Equal(t, fault.ErrWriteConflict, err, "wrong error")
	assert.True(t, fault.IsErrProcess(err), "not a process error")
}

// a store that confirms one address fewer than requested
type shortConfirmStore struct {
	*storage.Memory
}

func (s *shortConfirmStore) Set(writes map[string][]byte) ([]string, error) {
	confirmed, err := s.Memory.Set(writes)
	if nil != err || 0 == len(confirmed) {
		return confirmed, err
	}
	return confirmed[1:], nil
}
