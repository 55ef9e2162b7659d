// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/regledger/transferd/address"
	"github.com/regledger/transferd/record"
)

// role registration is host-side administration, outside the
// transition rules: the presence record is written directly

func runRegisterRegulator(c *cli.Context) error {
	return registerRole(c, address.Regulator, "regulator")
}

func runRegisterParticipant(c *cli.Context) error {
	return registerRole(c, address.Participant, "participant")
}

func registerRole(c *cli.Context, kind address.Kind, roleName string) error {

	identity, err := oneArgument(c, "identity")
	if nil != err {
		return err
	}

	m, release, err := openHost(c)
	if nil != err {
		return err
	}
	defer release()

	presence := record.Presence{Identity: identity}
	packed, err := presence.Pack()
	if nil != err {
		return err
	}

	_, err = m.store.Set(map[string][]byte{
		m.handler.Scheme().Address(kind, identity): packed,
	})
	if nil != err {
		return err
	}

	fmt.Fprintf(c.App.Writer, "registered %s: %s\n", roleName, identity)
	return nil
}
