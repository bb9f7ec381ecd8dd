// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/algotransact/address"
	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/digest"
	"github.com/bitmark-inc/algotransact/wire"
)

// TransactionType - the wire tag of a transaction
type TransactionType string

// enumerate the possible transaction types
const (
	PaymentType         = TransactionType("pay")
	AssetTransferType   = TransactionType("axfer")
	AssetConfigType     = TransactionType("acfg")
	AssetFreezeType     = TransactionType("afrz")
	AppCallType         = TransactionType("appl")
	KeyRegistrationType = TransactionType("keyreg")
	StateProofType      = TransactionType("stpf")
	HeartbeatType       = TransactionType("hb")
)

// Packed - an encoded transaction without its domain prefix
type Packed []byte

// Lease - exclusive claim on (sender, lease) until last valid
type Lease [constants.HashLength]byte

// Transaction - common header plus exactly one type specific payload
//
// the type tag is taken from the payload
type Transaction struct {
	Sender      address.Address `json:"sender"`
	Fee         uint64          `json:"fee"`
	FirstValid  uint64          `json:"firstValid"`
	LastValid   uint64          `json:"lastValid"`
	GenesisHash digest.Digest   `json:"genesisHash"`
	GenesisID   string          `json:"genesisId"`
	Note        []byte          `json:"note"`
	Lease       Lease           `json:"lease"`
	RekeyTo     address.Address `json:"rekeyTo"`
	Group       digest.Digest   `json:"group"`
	Payload     Payload         `json:"payload"`
}

// Payload - the type specific part of a transaction
//
// implemented only by the payload types of this package
type Payload interface {
	Type() TransactionType
	pack(e *wire.Encoder) error
	clone() Payload
}

// Type - the tag of the payload, empty when there is no payload
func (tx Transaction) Type() TransactionType {
	if nil == tx.Payload {
		return ""
	}
	return tx.Payload.Type()
}

// IsGrouped - true when a group id is already assigned
func (tx Transaction) IsGrouped() bool {
	return !tx.Group.IsZero()
}

// copy of the transaction that shares nothing mutable with tx
func (tx Transaction) clone() Transaction {
	result := tx
	result.Note = cloneBytes(tx.Note)
	if nil != tx.Payload {
		result.Payload = tx.Payload.clone()
	}
	return result
}

// KnownType - check that t is one of the enumerated tags
func KnownType(t TransactionType) bool {
	switch t {
	case PaymentType, AssetTransferType, AssetConfigType, AssetFreezeType,
		AppCallType, KeyRegistrationType, StateProofType, HeartbeatType:
		return true
	}
	return false
}
