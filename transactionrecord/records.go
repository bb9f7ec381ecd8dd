// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/algotransact/address"
	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/wire"
)

// Payment - move algos from sender to receiver
type Payment struct {
	Amount           uint64          `json:"amount"`
	Receiver         address.Address `json:"receiver"`
	CloseRemainderTo address.Address `json:"closeRemainderTo"`
}

// AssetTransfer - move, opt in to, close out or claw back an asset
//
// a non-zero AssetSender makes this a clawback by the asset's clawback account
type AssetTransfer struct {
	AssetID          uint64          `json:"assetId"`
	Amount           uint64          `json:"amount"`
	Receiver         address.Address `json:"receiver"`
	CloseRemainderTo address.Address `json:"closeRemainderTo"`
	AssetSender      address.Address `json:"assetSender"`
}

// AssetParams - the parameters of an asset
type AssetParams struct {
	Total         uint64          `json:"total"`
	Decimals      uint32          `json:"decimals"`
	DefaultFrozen bool            `json:"defaultFrozen"`
	UnitName      string          `json:"unitName"`
	AssetName     string          `json:"assetName"`
	URL           string          `json:"url"`
	MetadataHash  []byte          `json:"metadataHash"`
	Manager       address.Address `json:"manager"`
	Reserve       address.Address `json:"reserve"`
	Freeze        address.Address `json:"freeze"`
	Clawback      address.Address `json:"clawback"`
}

// AssetConfig - create (AssetID zero), reconfigure (Params set) or
// destroy (no Params) an asset
type AssetConfig struct {
	AssetID uint64       `json:"assetId"`
	Params  *AssetParams `json:"params"`
}

// AssetFreeze - change the frozen state of an account's holding
type AssetFreeze struct {
	AssetID      uint64          `json:"assetId"`
	FreezeTarget address.Address `json:"freezeTarget"`
	Frozen       bool            `json:"frozen"`
}

// OnComplete - the action taken after an application call
type OnComplete uint64

// enumerate the possible actions
const (
	NoOp = OnComplete(iota)
	OptIn
	CloseOut
	ClearState
	UpdateApplication
	DeleteApplication

	// this item must be last
	invalidOnComplete
)

// StateSchema - storage allocated to an application
type StateSchema struct {
	NumUints      uint64 `json:"numUints"`
	NumByteSlices uint64 `json:"numByteSlices"`
}

// BoxReference - a box the call may access
//
// AppID zero refers to the called application
type BoxReference struct {
	AppID uint64 `json:"appId"`
	Name  []byte `json:"name"`
}

// AppCall - create, call, update or delete an application
type AppCall struct {
	AppID             uint64            `json:"appId"`
	OnComplete        OnComplete        `json:"onComplete"`
	ApprovalProgram   []byte            `json:"approvalProgram"`
	ClearStateProgram []byte            `json:"clearStateProgram"`
	GlobalStateSchema *StateSchema      `json:"globalStateSchema"`
	LocalStateSchema  *StateSchema      `json:"localStateSchema"`
	ExtraProgramPages uint64            `json:"extraProgramPages"`
	Args              [][]byte          `json:"args"`
	AccountReferences []address.Address `json:"accountReferences"`
	AppReferences     []uint64          `json:"appReferences"`
	AssetReferences   []uint64          `json:"assetReferences"`
	BoxReferences     []BoxReference    `json:"boxReferences"`
}

// StateProofKey - the 64 byte state proof commitment
type StateProofKey [constants.StateProofKeyLength]byte

// KeyRegistration - bring an account online with participation keys,
// or take it offline when no keys are given
type KeyRegistration struct {
	VoteKey          [constants.PublicKeyLength]byte `json:"voteKey"`
	SelectionKey     [constants.PublicKeyLength]byte `json:"selectionKey"`
	StateProofKey    StateProofKey                   `json:"stateProofKey"`
	VoteFirst        uint64                          `json:"voteFirst"`
	VoteLast         uint64                          `json:"voteLast"`
	VoteKeyDilution  uint64                          `json:"voteKeyDilution"`
	NonParticipation bool                            `json:"nonParticipation"`
}

// StateProof - carried through as its raw wire fields
type StateProof struct {
	Fields wire.Map `json:"fields"`
}

// Heartbeat - carried through as its raw wire fields
type Heartbeat struct {
	Fields wire.Map `json:"fields"`
}

// Type - payload tags
func (Payment) Type() TransactionType         { return PaymentType }
func (AssetTransfer) Type() TransactionType   { return AssetTransferType }
func (AssetConfig) Type() TransactionType     { return AssetConfigType }
func (AssetFreeze) Type() TransactionType     { return AssetFreezeType }
func (AppCall) Type() TransactionType         { return AppCallType }
func (KeyRegistration) Type() TransactionType { return KeyRegistrationType }
func (StateProof) Type() TransactionType      { return StateProofType }
func (Heartbeat) Type() TransactionType       { return HeartbeatType }

// IsCreation - true when the call creates a new application
func (app AppCall) IsCreation() bool {
	return 0 == app.AppID
}

// IsCreation - true when the config creates a new asset
func (cfg AssetConfig) IsCreation() bool {
	return 0 == cfg.AssetID
}

// IsDestroy - true when the config destroys an existing asset
func (cfg AssetConfig) IsDestroy() bool {
	return 0 != cfg.AssetID && nil == cfg.Params
}

// true when no field would be written, so the params are omitted on the wire
func (params *AssetParams) isEmpty() bool {
	return 0 == params.Total &&
		0 == params.Decimals &&
		!params.DefaultFrozen &&
		"" == params.UnitName &&
		"" == params.AssetName &&
		"" == params.URL &&
		0 == len(params.MetadataHash) &&
		params.Manager.IsZero() &&
		params.Reserve.IsZero() &&
		params.Freeze.IsZero() &&
		params.Clawback.IsZero()
}

// HasParticipationKeys - true when any online participation field is set
func (kr KeyRegistration) HasParticipationKeys() bool {
	return kr.VoteKey != [constants.PublicKeyLength]byte{} ||
		kr.SelectionKey != [constants.PublicKeyLength]byte{} ||
		kr.StateProofKey != StateProofKey{} ||
		0 != kr.VoteFirst ||
		0 != kr.VoteLast ||
		0 != kr.VoteKeyDilution
}

func (c OnComplete) String() string {
	switch c {
	case NoOp:
		return "NoOp"
	case OptIn:
		return "OptIn"
	case CloseOut:
		return "CloseOut"
	case ClearState:
		return "ClearState"
	case UpdateApplication:
		return "UpdateApplication"
	case DeleteApplication:
		return "DeleteApplication"
	default:
		return "Invalid"
	}
}

// Valid - true for the enumerated actions
func (c OnComplete) Valid() bool {
	return c < invalidOnComplete
}
