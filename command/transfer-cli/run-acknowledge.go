// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runAcknowledge(c *cli.Context) error {

	asset, err := oneArgument(c, "asset name")
	if nil != err {
		return err
	}

	return applyRequest(c, "acknowledge", asset, "")
}
