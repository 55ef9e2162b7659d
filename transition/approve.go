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

// approve a pending transfer as a registered regulator
//
// ownership passes to the buyer recorded in the approval slot, never
// to the approving regulator; the regulator only decides, it never
// receives
func (engine *Engine) approveTransfer(view storage.Store, signer string, payload *Payload) (WriteSet, error) {
	approveAddress := engine.scheme.Address(address.TransferApprove, payload.Asset)
	regulatorAddress := engine.scheme.Address(address.Regulator, signer)

	values, err := view.Get([]string{approveAddress, regulatorAddress})
	if nil != err {
		return nil, err
	}

	existing := values[approveAddress]
	if 0 == len(existing) {
		return nil, fault.ErrNoPendingApproval
	}
	if 0 == len(values[regulatorAddress]) {
		return nil, fault.ErrNotRegulator
	}

	approval, err := record.UnpackPendingTransfer(existing)
	if nil != err {
		return nil, err
	}

	asset := record.Asset{
		Name:  payload.Asset,
		Owner: approval.Owner,
	}
	packed, err := asset.Pack()
	if nil != err {
		return nil, err
	}

	return WriteSet{
		engine.scheme.Address(address.Asset, payload.Asset): packed,
		approveAddress: cleared,
	}, nil
}
