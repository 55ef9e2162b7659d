// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/regledger/transferd/fault"
)

// hex character counts for the address layout
const (
	PrefixLength = 6
	KindLength   = 2
	KeyLength    = 62
	Length       = PrefixLength + KindLength + KeyLength
)

// Kind - the entity kind code embedded in an address
type Kind string

// fixed kind codes
//
// all six are part of the address layout even though no transition
// rule currently reads or writes the TransferOffer code: offers are
// recorded straight into the acknowledgment slot
const (
	Asset           Kind = "00"
	TransferOffer   Kind = "01"
	TransferAckn    Kind = "02"
	TransferApprove Kind = "03"
	Regulator       Kind = "04"
	Participant     Kind = "05"
)

// Parameters - scheme construction values
//
// the application name is injected rather than fixed so tests can
// derive into a throwaway namespace
type Parameters struct {
	ApplicationName string
}

// Scheme - derives addresses inside one application namespace
type Scheme struct {
	prefix string
}

// NewScheme - create a derivation scheme for an application namespace
func NewScheme(parameters Parameters) (*Scheme, error) {
	if "" == parameters.ApplicationName {
		return nil, fault.ErrMissingApplicationName
	}
	return &Scheme{
		prefix: hexDigest(parameters.ApplicationName)[:PrefixLength],
	}, nil
}

// Prefix - the 6 hex char namespace this scheme reads and writes
//
// exposed so the host runtime can route requests to this application
func (scheme *Scheme) Prefix() string {
	return scheme.prefix
}

// Address - derive the state address for an entity
func (scheme *Scheme) Address(kind Kind, key string) string {
	return scheme.prefix + string(kind) + hexDigest(key)[:KeyLength]
}

// SHA3-512 digest as lowercase hex
func hexDigest(s string) string {
	digest := sha3.Sum512([]byte(s))
	return hex.EncodeToString(digest[:])
}
