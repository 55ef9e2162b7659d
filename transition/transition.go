// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transition

import (
	"github.com/regledger/transferd/address"
	"github.com/regledger/transferd/fault"
	"github.com/regledger/transferd/storage"
)

// WriteSet - the complete writes of one transition
//
// committed by the host as one atomic batch; a zero-length value
// clears its address
type WriteSet map[string][]byte

// cleared - the canonical cleared-slot value
var cleared = []byte{}

// Engine - dispatches requests to transition rules
type Engine struct {
	scheme *address.Scheme
}

// NewEngine - create an engine deriving into the given namespace
func NewEngine(scheme *address.Scheme) *Engine {
	return &Engine{
		scheme: scheme,
	}
}

// Apply - compute the write-set for one request
//
// pure apart from reads through the store view: the engine does no
// writes of its own and the same view and request always yield the
// same write-set
func (engine *Engine) Apply(view storage.Store, signer string, payload *Payload) (WriteSet, error) {
	if "" == signer || nil == payload {
		return nil, fault.ErrMalformedPayload
	}

	switch payload.Action {
	case CreateAsset:
		return engine.createAsset(view, signer, payload)
	case OfferTransfer:
		return engine.offerTransfer(view, signer, payload)
	case AcknowledgeTransfer:
		return engine.acknowledgeTransfer(view, signer, payload)
	case ApproveTransfer:
		return engine.approveTransfer(view, signer, payload)
	case RejectTransfer:
		return engine.rejectTransfer(view, signer, payload)
	case NullAction, InvalidAction:
		return nil, fault.ErrInvalidAction
	default:
		return nil, fault.ErrInvalidAction
	}
}
