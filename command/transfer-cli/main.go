// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/regledger/transferd/address"
	"github.com/regledger/transferd/configuration"
	"github.com/regledger/transferd/processor"
	"github.com/regledger/transferd/storage"
	"github.com/regledger/transferd/version"
)

// opened host resources shared by the run commands
type metadata struct {
	config  *configuration.Configuration
	store   *storage.LevelDB
	handler *processor.Processor
	verbose bool
}

func main() {

	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "transfer-cli"
	app.Usage = "apply asset transfer requests to a local ledger state"
	app.Version = version.Version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "transferd.conf",
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "signer, i",
			Value: "",
			Usage: " signer `IDENTITY` attached to the request",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "create a new asset owned by the signer",
			ArgsUsage: "ASSET",
			Action:    runCreate,
		},
		{
			Name:      "offer",
			Usage:     "offer an asset to a new owner",
			ArgsUsage: "ASSET NEW-OWNER",
			Action:    runOffer,
		},
		{
			Name:      "acknowledge",
			Usage:     "acknowledge a pending transfer as the designated buyer",
			ArgsUsage: "ASSET",
			Action:    runAcknowledge,
		},
		{
			Name:      "approve",
			Usage:     "approve an acknowledged transfer as a regulator",
			ArgsUsage: "ASSET",
			Action:    runApprove,
		},
		{
			Name:      "reject",
			Usage:     "reject an acknowledged transfer as the prospective owner",
			ArgsUsage: "ASSET",
			Action:    runReject,
		},
		{
			Name:      "show",
			Usage:     "show an asset and its transfer slots",
			ArgsUsage: "ASSET",
			Action:    runShow,
		},
		{
			Name:      "register-regulator",
			Usage:     "record a regulator role membership",
			ArgsUsage: "IDENTITY",
			Action:    runRegisterRegulator,
		},
		{
			Name:      "register-participant",
			Usage:     "record a participant role membership",
			ArgsUsage: "IDENTITY",
			Action:    runRegisterParticipant,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

// open configuration, logging, state database and processor
//
// the returned release function must be called before exit
func openHost(c *cli.Context) (*metadata, func(), error) {
	config, err := configuration.GetConfiguration(c.GlobalString("config"))
	if nil != err {
		return nil, nil, err
	}

	_ = os.MkdirAll(config.Logging.Directory, 0700)
	if err := logger.Initialise(config.Logging); nil != err {
		return nil, nil, err
	}

	store, err := storage.NewLevelDB(config.Database)
	if nil != err {
		logger.Finalise()
		return nil, nil, err
	}

	handler, err := processor.New(address.Parameters{ApplicationName: config.ApplicationName}, store)
	if nil != err {
		store.Close()
		logger.Finalise()
		return nil, nil, err
	}

	m := &metadata{
		config:  config,
		store:   store,
		handler: handler,
		verbose: c.GlobalBool("verbose"),
	}
	release := func() {
		store.Close()
		logger.Finalise()
	}
	return m, release, nil
}

// the signer flag is required for every state changing command
func signerIdentity(c *cli.Context) (string, error) {
	signer := c.GlobalString("signer")
	if "" == signer {
		return "", cli.NewExitError("signer identity is required", 1)
	}
	return signer, nil
}
