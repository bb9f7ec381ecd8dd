// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// wire keys of the header
const (
	typeKey        = "type"
	senderKey      = "snd"
	feeKey         = "fee"
	firstValidKey  = "fv"
	lastValidKey   = "lv"
	genesisHashKey = "gh"
	genesisIDKey   = "gen"
	noteKey        = "note"
	leaseKey       = "lx"
	rekeyToKey     = "rekey"
	groupKey       = "grp"
)

// payment
const (
	receiverKey         = "rcv"
	amountKey           = "amt"
	closeRemainderToKey = "close"
)

// asset transfer
const (
	transferAssetIDKey       = "xaid"
	assetAmountKey           = "aamt"
	assetReceiverKey         = "arcv"
	assetCloseRemainderToKey = "aclose"
	assetSenderKey           = "asnd"
)

// asset config and its parameters
const (
	configAssetIDKey = "caid"
	assetParamsKey   = "apar"
	totalKey         = "t"
	decimalsKey      = "dc"
	defaultFrozenKey = "df"
	unitNameKey      = "un"
	assetNameKey     = "an"
	urlKey           = "au"
	metadataHashKey  = "am"
	managerKey       = "m"
	reserveKey       = "r"
	freezeKey        = "f"
	clawbackKey      = "c"
)

// asset freeze
const (
	freezeAssetIDKey = "faid"
	freezeTargetKey  = "fadd"
	frozenKey        = "afrz"
)

// application call
const (
	appIDKey             = "apid"
	onCompleteKey        = "apan"
	approvalProgramKey   = "apap"
	clearStateProgramKey = "apsu"
	globalStateSchemaKey = "apgs"
	localStateSchemaKey  = "apls"
	extraProgramPagesKey = "apep"
	argsKey              = "apaa"
	accountRefsKey       = "apat"
	appRefsKey           = "apfa"
	assetRefsKey         = "apas"
	boxRefsKey           = "apbx"
	numUintsKey          = "nui"
	numByteSlicesKey     = "nbs"
	boxIndexKey          = "i"
	boxNameKey           = "n"
)

// key registration
const (
	voteKeyKey          = "votekey"
	selectionKeyKey     = "selkey"
	stateProofKeyKey    = "sprfkey"
	voteFirstKey        = "votefst"
	voteLastKey         = "votelst"
	voteKeyDilutionKey  = "votekd"
	nonParticipationKey = "nonpart"
)

// keys written even when they hold the default value
var alwaysPresent = map[string]bool{
	firstValidKey: true,
	lastValidKey:  true,
	frozenKey:     true,
	boxNameKey:    true,
}

// header keys, everything else belongs to the payload
var headerKeys = map[string]bool{
	typeKey:        true,
	senderKey:      true,
	feeKey:         true,
	firstValidKey:  true,
	lastValidKey:   true,
	genesisHashKey: true,
	genesisIDKey:   true,
	noteKey:        true,
	leaseKey:       true,
	rekeyToKey:     true,
	groupKey:       true,
}
