// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"
)

// request body shape accepted by the processor
type requestBody struct {
	Action string `json:"action"`
	Asset  string `json:"asset"`
	Owner  string `json:"owner,omitempty"`
}

// build one request and run it through the processor
func applyRequest(c *cli.Context, action string, asset string, owner string) error {
	signer, err := signerIdentity(c)
	if nil != err {
		return err
	}

	m, release, err := openHost(c)
	if nil != err {
		return err
	}
	defer release()

	body, err := json.Marshal(requestBody{
		Action: action,
		Asset:  asset,
		Owner:  owner,
	})
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(c.App.ErrWriter, "signer: %s\n", signer)
		fmt.Fprintf(c.App.ErrWriter, "request: %s\n", body)
	}

	if err := m.handler.Handle(signer, body); nil != err {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s: ok\n", action)
	return nil
}

// a single required positional argument
func oneArgument(c *cli.Context, name string) (string, error) {
	value := c.Args().Get(0)
	if "" == value {
		return "", cli.NewExitError(name+" is required", 1)
	}
	return value, nil
}
