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

// reject a pending transfer as the prospective owner
//
// targets the approval slot: only a transfer the buyer has already
// acknowledged can still be backed out of, and only by that buyer;
// clearing the slot returns the asset to its plain created state
func (engine *Engine) rejectTransfer(view storage.Store, signer string, payload *Payload) (WriteSet, error) {
	approveAddress := engine.scheme.Address(address.TransferApprove, payload.Asset)

	existing, err := storage.GetOne(view, approveAddress)
	if nil != err {
		return nil, err
	}
	if 0 == len(existing) {
		return nil, fault.ErrNoPendingApproval
	}

	approval, err := record.UnpackPendingTransfer(existing)
	if nil != err {
		return nil, err
	}
	if approval.Owner != signer {
		return nil, fault.ErrNotDesignatedBuyer
	}

	return WriteSet{
		approveAddress: cleared,
	}, nil
}
