// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transition

import (
	"github.com/regledger/transferd/address"
	"github.com/regledger/transferd/fault"
	"github.com/regledger/transferd/record"
	"github.com/regledger/transferd/storage"
)

// offer an asset to a new owner
//
// only the current owner can offer; the offer is recorded straight
// into the acknowledgment slot, so the buyer named here is the only
// identity that can move the transfer forward
func (engine *Engine) offerTransfer(view storage.Store, signer string, payload *Payload) (WriteSet, error) {
	assetAddress := engine.scheme.Address(address.Asset, payload.Asset)

	existing, err := storage.GetOne(view, assetAddress)
	if nil != err {
		return nil, err
	}
	if 0 == len(existing) {
		return nil, fault.ErrAssetNotFound
	}

	asset, err := record.UnpackAsset(existing)
	if nil != err {
		return nil, err
	}
	if asset.Owner != signer {
		return nil, fault.ErrNotOwner
	}

	pending := record.PendingTransfer{
		Name:  payload.Asset,
		Owner: payload.NewOwner,
	}
	packed, err := pending.Pack()
	if nil != err {
		return nil, err
	}

	return WriteSet{
		engine.scheme.Address(address.TransferAckn, payload.Asset): packed,
	}, nil
}
