// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/regledger/transferd/address"
	"github.com/regledger/transferd/fault"
	"github.com/regledger/transferd/storage"
	"github.com/regledger/transferd/transition"
	"github.com/regledger/transferd/version"
)

// application registration values
const (
	Version     = version.Version
	ContentType = "application/json"
)

// Registration - metadata the host runtime needs for routing
type Registration struct {
	Name        string
	Version     string
	ContentType string
	Prefixes    []string
}

// Processor - applies authenticated requests to the state store
type Processor struct {
	engine       *transition.Engine
	scheme       *address.Scheme
	store        storage.Store
	log          *logger.L
	registration Registration
}

// New - create a processor for one application namespace
func New(parameters address.Parameters, store storage.Store) (*Processor, error) {
	scheme, err := address.NewScheme(parameters)
	if nil != err {
		return nil, err
	}

	return &Processor{
		engine: transition.NewEngine(scheme),
		scheme: scheme,
		store:  store,
		log:    logger.New("processor"),
		registration: Registration{
			Name:        parameters.ApplicationName,
			Version:     Version,
			ContentType: ContentType,
			Prefixes:    []string{scheme.Prefix()},
		},
	}, nil
}

// Registration - the routing metadata for this processor
func (p *Processor) Registration() Registration {
	return p.registration
}

// Scheme - the address derivation scheme in use
func (p *Processor) Scheme() *address.Scheme {
	return p.scheme
}

// Handle - process one authenticated request
//
// decode, apply, commit; exactly one verdict, no retries.  A returned
// rejection (fault.IsErrRejection) is the submitter's problem; a
// process error (fault.IsErrProcess) is the node's
func (p *Processor) Handle(signer string, body []byte) error {
	payload, err := transition.DecodePayload(body)
	if nil != err {
		p.log.Warnf("signer: %q  undecodable request: %s", signer, err)
		return err
	}

	writes, err := p.engine.Apply(p.store, signer, payload)
	if nil != err {
		if fault.IsErrProcess(err) {
			p.log.Errorf("action: %s  asset: %q  process error: %s", payload.Action, payload.Asset, err)
		} else {
			p.log.Warnf("action: %s  asset: %q  signer: %q  rejected: %s", payload.Action, payload.Asset, signer, err)
		}
		return err
	}

	confirmed, err := p.store.Set(writes)
	if nil != err {
		p.log.Errorf("action: %s  asset: %q  commit error: %s", payload.Action, payload.Asset, err)
		return err
	}
	if len(confirmed) != len(writes) {
		p.log.Errorf("action: %s  asset: %q  confirmed %d of %d writes", payload.Action, payload.Asset, len(confirmed), len(writes))
		return fault.ErrWriteConflict
	}

	p.log.Infof("action: %s  asset: %q  signer: %q  writes: %d", payload.Action, payload.Asset, signer, len(writes))
	return nil
}
