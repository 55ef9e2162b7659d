// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transition

import (
	"bytes"
	"encoding/json"

	"github.com/regledger/transferd/fault"
)

// Action - type code for transition rules
type Action uint64

// enumerate the possible actions
//
// the dispatch switch in Apply must stay exhaustive over these
const (
	// null marks beginning of list - not usable as an action
	NullAction = Action(iota)

	// valid actions
	CreateAsset         = Action(iota)
	OfferTransfer       = Action(iota)
	AcknowledgeTransfer = Action(iota)
	ApproveTransfer     = Action(iota)
	RejectTransfer      = Action(iota)

	// this item must be last
	InvalidAction = Action(iota)
)

// wire tags accepted in a request body
var actionTags = map[string]Action{
	"create":      CreateAsset,
	"offer":       OfferTransfer,
	"acknowledge": AcknowledgeTransfer,
	"approve":     ApproveTransfer,
	"reject":      RejectTransfer,
}

// String - the wire tag for an action
func (action Action) String() string {
	for tag, a := range actionTags {
		if a == action {
			return tag
		}
	}
	return "invalid"
}

// Payload - one decoded action request
//
// a tagged variant: NewOwner is only meaningful for OfferTransfer and
// must be empty for every other action
type Payload struct {
	Action   Action
	Asset    string
	NewOwner string
}

// raw shape of a request body
type payloadMessage struct {
	Action string `json:"action"`
	Asset  string `json:"asset"`
	Owner  string `json:"owner,omitempty"`
}

// DecodePayload - decode and shape-check a raw request body
//
// anything outside the five recognised action shapes is refused:
// unknown fields, missing asset, an owner on a non-offer action or a
// missing owner on an offer are all ErrMalformedPayload; only an
// unrecognised action tag is ErrInvalidAction
func DecodePayload(data []byte) (*Payload, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var message payloadMessage
	if err := decoder.Decode(&message); nil != err {
		return nil, fault.ErrMalformedPayload
	}
	if decoder.More() {
		return nil, fault.ErrMalformedPayload
	}

	action, ok := actionTags[message.Action]
	if !ok {
		return nil, fault.ErrInvalidAction
	}

	if "" == message.Asset {
		return nil, fault.ErrMalformedPayload
	}

	if OfferTransfer == action {
		if "" == message.Owner {
			return nil, fault.ErrMalformedPayload
		}
	} else if "" != message.Owner {
		return nil, fault.ErrMalformedPayload
	}

	return &Payload{
		Action:   action,
		Asset:    message.Asset,
		NewOwner: message.Owner,
	}, nil
}
