// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regledger/transferd/fault"
	"github.com/regledger/transferd/transition"
)

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		body    string
		payload transition.Payload
	}{
		{
			`{"action":"create","asset":"widget"}`,
			transition.Payload{Action: transition.CreateAsset, Asset: "widget"},
		},
		{
			`{"action":"offer","asset":"widget","owner":"bob"}`,
			transition.Payload{Action: transition.OfferTransfer, Asset: "widget", NewOwner: "bob"},
		},
		{
			`{"action":"acknowledge","asset":"widget"}`,
			transition.Payload{Action: transition.AcknowledgeTransfer, Asset: "widget"},
		},
		{
			`{"action":"approve","asset":"widget"}`,
			transition.Payload{Action: transition.ApproveTransfer, Asset: "widget"},
		},
		{
			`{"action":"reject","asset":"widget"}`,
			transition.Payload{Action: transition.RejectTransfer, Asset: "widget"},
		},
	}

	for i, item := range tests {
		payload, err := transition.DecodePayload([]byte(item.body))
		require.Nil(t, err, "%d: decode failed", i)
		assert.Equal(t, &item.payload, payload, "%d: wrong payload", i)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	tests := []string{
		``,
		`not json`,
		`{"action":"create"}`,                                    // missing asset
		`{"action":"create","asset":""}`,                         // empty asset
		`{"action":"create","asset":"widget","owner":"bob"}`,     // owner on non-offer
		`{"action":"offer","asset":"widget"}`,                    // offer without owner
		`{"action":"reject","asset":"widget","owner":"bob"}`,     // owner on non-offer
		`{"action":"create","asset":"widget","extra":"x"}`,       // unknown field
		`{"action":"create","asset":"widget"}{"action":"offer"}`, // trailing data
	}

	for i, body := range tests {
		_, err := transition.DecodePayload([]byte(body))
		assert.Equal(t, fault.ErrMalformedPayload, err, "%d: wrong error for %s", i, body)
	}
}

func TestDecodePayloadUnknownAction(t *testing.T) {
	tests := []string{
		`{}`,
		`{"action":"destroy","asset":"widget"}`,
		`{"action":"","asset":"widget"}`,
	}

	for i, body := range tests {
		_, err := transition.DecodePayload([]byte(body))
		assert.Equal(t, fault.ErrInvalidAction, err, "%d: wrong error for %s", i, body)
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "create", transition.CreateAsset.String(), "wrong tag")
	assert.Equal(t, "offer", transition.OfferTransfer.String(), "wrong tag")
	assert.Equal(t, "invalid", transition.NullAction.String(), "wrong tag")
	assert.Equal(t, "invalid", transition.InvalidAction.String(), "wrong tag")
}
