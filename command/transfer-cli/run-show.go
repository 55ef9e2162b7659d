// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/regledger/transferd/address"
	"github.com/regledger/transferd/record"
)

// printable view of one asset and its transfer slots
type assetStatus struct {
	Asset           *record.Asset           `json:"asset"`
	Acknowledgment  *record.PendingTransfer `json:"acknowledgment,omitempty"`
	PendingApproval *record.PendingTransfer `json:"pendingApproval,omitempty"`
}

func runShow(c *cli.Context) error {

	asset, err := oneArgument(c, "asset name")
	if nil != err {
		return err
	}

	m, release, err := openHost(c)
	if nil != err {
		return err
	}
	defer release()

	scheme := m.handler.Scheme()
	values, err := m.store.Get([]string{
		scheme.Address(address.Asset, asset),
		scheme.Address(address.TransferAckn, asset),
		scheme.Address(address.TransferApprove, asset),
	})
	if nil != err {
		return err
	}

	assetValue := values[scheme.Address(address.Asset, asset)]
	if 0 == len(assetValue) {
		return cli.NewExitError("asset does not exist", 1)
	}

	status := assetStatus{}
	status.Asset, err = record.UnpackAsset(assetValue)
	if nil != err {
		return err
	}

	if slot := values[scheme.Address(address.TransferAckn, asset)]; 0 != len(slot) {
		status.Acknowledgment, err = record.UnpackPendingTransfer(slot)
		if nil != err {
			return err
		}
	}
	if slot := values[scheme.Address(address.TransferApprove, asset)]; 0 != len(slot) {
		status.PendingApproval, err = record.UnpackPendingTransfer(slot)
		if nil != err {
			return err
		}
	}

	return printJson(c.App.Writer, status)
}

// pretty print a result structure
func printJson(w io.Writer, value interface{}) error {
	b, err := json.MarshalIndent(value, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
