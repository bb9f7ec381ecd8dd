// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type DecodeError GenericError
type FeeError GenericError
type GroupError GenericError
type InvalidError GenericError
type LengthError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyGrouped             = GroupError("transactions must not already be grouped")
	ErrAlreadyInitialised         = InvalidError("already initialised")
	ErrAmbiguousAuthorisation     = InvalidError("signed transaction has both a signature and a multisig")
	ErrBoxReferenceIndex          = DecodeError("box reference index not found in app references")
	ErrBoxReferenceNotFound       = InvalidError("box reference app id not found in app references")
	ErrChecksumMismatch           = DecodeError("address checksum does not match")
	ErrEmptyGroup                 = GroupError("transaction group size cannot be 0")
	ErrFeeExceedsMaximum          = FeeError("transaction fee is greater than max fee")
	ErrFeeOverflow                = FeeError("transaction fee overflows 64 bits")
	ErrGroupTooLarge              = GroupError("transaction group size exceeds the max limit")
	ErrInvalidAddress             = DecodeError("address is not valid base32")
	ErrInvalidAddressLength       = LengthError("address length is invalid")
	ErrInvalidBoolean             = DecodeError("field is not a boolean")
	ErrInvalidByteArray           = DecodeError("field is not a byte array")
	ErrInvalidConfigurationFormat = InvalidError("configuration file format is not supported")
	ErrInvalidDigest              = DecodeError("digest is not valid base32")
	ErrInvalidDigestLength        = LengthError("digest length is invalid")
	ErrInvalidFieldLength         = LengthError("field length is invalid")
	ErrInvalidInteger             = DecodeError("field is not an unsigned integer")
	ErrInvalidList                = DecodeError("field is not a list")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidMap                 = DecodeError("field is not a map")
	ErrInvalidMapKey              = DecodeError("map key is not a string")
	ErrInvalidMultisigParameters  = InvalidError("multisig version and threshold are not valid for the participants")
	ErrInvalidMultisigVersion     = InvalidError("multisig version is not supported")
	ErrInvalidOnComplete          = DecodeError("on complete action is not valid")
	ErrInvalidPublicKey           = LengthError("public key length is invalid")
	ErrInvalidSignature           = InvalidError("signature is not valid")
	ErrInvalidSignatureLength     = LengthError("signature length is invalid")
	ErrInvalidString              = DecodeError("field is not a string")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrInvalidWireValue           = InvalidError("value can not be encoded on the wire")
	ErrMalformedEncoding          = DecodeError("malformed msgpack encoding")
	ErrMissingAuthorisation       = InvalidError("signed transaction has neither a signature nor a multisig")
	ErrMissingTransactionType     = DecodeError("transaction type is missing")
	ErrMultisigMismatch           = InvalidError("multisig parameters or participants do not match")
	ErrNegativeInteger            = DecodeError("integer is negative")
	ErrNotInitialised             = InvalidError("not initialised")
	ErrNotMultisigParticipant     = InvalidError("address is not a multisig participant")
	ErrSignerNotConfigured        = InvalidError("signer is not configured")
	ErrTrailingData               = DecodeError("trailing data after encoded value")
	ErrUnknownTransactionType     = DecodeError("unknown transaction type")
	ErrZeroLengthDecode           = DecodeError("attempted to decode 0 bytes")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e DecodeError) Error() string  { return string(e) }
func (e FeeError) Error() string     { return string(e) }
func (e GroupError) Error() string   { return string(e) }
func (e InvalidError) Error() string { return string(e) }
func (e LengthError) Error() string  { return string(e) }

// determine the class of an error
//
// wrapped errors are unwrapped first so decoders can attach field context
func IsErrDecode(e error) bool {
	switch errors.Cause(e).(type) {
	case DecodeError, LengthError:
		return true
	}
	return false
}
func IsErrFee(e error) bool     { _, ok := errors.Cause(e).(FeeError); return ok }
func IsErrGroup(e error) bool   { _, ok := errors.Cause(e).(GroupError); return ok }
func IsErrInvalid(e error) bool { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrLength(e error) bool  { _, ok := errors.Cause(e).(LengthError); return ok }
