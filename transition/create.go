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

// create a new asset owned by the signer
//
// an asset name is claimed exactly once; a second creation under the
// same name is rejected no matter who signs it
func (engine *Engine) createAsset(view storage.Store, signer string, payload *Payload) (WriteSet, error) {
	assetAddress := engine.scheme.Address(address.Asset, payload.Asset)

	existing, err := storage.GetOne(view, assetAddress)
	if nil != err {
		return nil, err
	}
	if 0 != len(existing) {
		return nil, fault.ErrAssetAlreadyExists
	}

	asset := record.Asset{
		Name:  payload.Asset,
		Owner: signer,
	}
	packed, err := asset.Pack()
	if nil != err {
		return nil, err
	}

	return WriteSet{
		assetAddress: packed,
	}, nil
}
