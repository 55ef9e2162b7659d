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

// acknowledge a pending transfer as the designated buyer
//
// moves the transfer from the acknowledgment slot to the approval
// slot in one atomic step; the prospective owner recorded there is
// the acknowledging signer, pending the regulator's decision
func (engine *Engine) acknowledgeTransfer(view storage.Store, signer string, payload *Payload) (WriteSet, error) {
	acknAddress := engine.scheme.Address(address.TransferAckn, payload.Asset)

	existing, err := storage.GetOne(view, acknAddress)
	if nil != err {
		return nil, err
	}
	if 0 == len(existing) {
		return nil, fault.ErrNoPendingTransfer
	}

	pending, err := record.UnpackPendingTransfer(existing)
	if nil != err {
		return nil, err
	}
	if pending.Owner != signer {
		return nil, fault.ErrNotDesignatedBuyer
	}

	approval := record.PendingTransfer{
		Name:  payload.Asset,
		Owner: signer,
	}
	packed, err := approval.Pack()
	if nil != err {
		return nil, err
	}

	return WriteSet{
		acknAddress: cleared,
		engine.scheme.Address(address.TransferApprove, payload.Asset): packed,
	}, nil
}
