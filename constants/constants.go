// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

// sizes of the primitive byte fields
const (
	HashLength      = 32
	ChecksumLength  = 4
	AddressLength   = 58
	PublicKeyLength = 32
	SecretKeyLength = 32
	SignatureLength = 64
)

// bytes added to an unsigned transaction to estimate its signed size
const SignatureEncodingIncrement = 75

// domain separation prefixes for hashing
const (
	TransactionPrefix = "TX"
	GroupPrefix       = "TG"
	AppIDPrefix       = "appID"
	MultisigPrefix    = "MultisigAddr"
)

// application call limits
const (
	MaxExtraProgramPages = 3
	ProgramPageSize      = 2048
	MaxAppArgs           = 16
	MaxArgsSize          = 2048
	MaxOverallReferences = 8
	MaxAccountReferences = 4
	MaxAppReferences     = 8
	MaxAssetReferences   = 8
	MaxBoxReferences     = 8
	MaxGlobalStateKeys   = 64
	MaxLocalStateKeys    = 16
)

// asset parameter limits
const (
	MaxAssetDecimals    = 19
	MaxUnitNameLength   = 8
	MaxAssetNameLength  = 32
	MaxAssetURLLength   = 96
	MetadataHashLength  = 32
	StateProofKeyLength = 64
)

// default protocol parameters, overridable by configuration
const (
	DefaultMaxTxGroupSize = 16
	DefaultMaxNoteBytes   = 1024
	DefaultMinFee         = 1000
	DefaultFeePerByte     = 0
)

// EmptySignature - placeholder signature used when estimating sizes
var EmptySignature = [SignatureLength]byte{}
