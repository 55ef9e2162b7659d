// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
//
// Exists/Invalid/NotFound classes are request rejections attributable
// to the submitter; Process class is a fatal processing failure of the
// node itself and must never be reported as a rejection
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrAssetAlreadyExists     = ExistsError("asset already exists")
	ErrAssetNotFound          = NotFoundError("asset does not exist")
	ErrInvalidAction          = InvalidError("action is not recognised")
	ErrMalformedPayload       = InvalidError("payload is malformed")
	ErrMissingApplicationName = InvalidError("application name is required")
	ErrNoPendingApproval      = NotFoundError("no transfer awaiting approval")
	ErrNoPendingTransfer      = NotFoundError("no transfer awaiting acknowledgment")
	ErrNotDesignatedBuyer     = InvalidError("signer is not the designated buyer")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrNotOwner               = InvalidError("signer is not the asset owner")
	ErrNotRegulator           = InvalidError("signer is not a registered regulator")
	ErrRecordNotPresent       = NotFoundError("record is not present")
	ErrStoreReadFailed        = ProcessError("state store read failed")
	ErrWriteConflict          = ProcessError("state store write conflict")
	ErrWrongRecordContents    = InvalidError("record contents are invalid")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// IsErrRejection - true for any error that is a whole-request
// rejection attributable to the submitter
func IsErrRejection(e error) bool {
	return IsErrExists(e) || IsErrInvalid(e) || IsErrNotFound(e)
}
