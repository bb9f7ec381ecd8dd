// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/fault"
	"github.com/bitmark-inc/algotransact/wire"
)

// EncodeTransactionRaw - validate and encode without the domain prefix
func EncodeTransactionRaw(tx Transaction) (Packed, error) {
	if err := Validate(tx); nil != err {
		return nil, err
	}
	m, err := tx.pack()
	if nil != err {
		return nil, err
	}
	packed, err := wire.Marshal(m)
	if nil != err {
		fault.Criticalf("encode %s transaction: %s", tx.Type(), err)
		return nil, err
	}
	return packed, nil
}

// EncodeTransaction - encoding with the "TX" prefix, the bytes that are signed
func EncodeTransaction(tx Transaction) ([]byte, error) {
	packed, err := EncodeTransactionRaw(tx)
	if nil != err {
		return nil, err
	}
	return packed.Prefixed(), nil
}

// EncodeTransactions - encode each transaction, the first error aborts
func EncodeTransactions(txs []Transaction) ([][]byte, error) {
	result := make([][]byte, len(txs))
	for i, tx := range txs {
		b, err := EncodeTransaction(tx)
		if nil != err {
			return nil, errors.WithMessagef(err, "transaction[%d]", i)
		}
		result[i] = b
	}
	return result, nil
}

// Prefixed - the packed bytes behind the "TX" domain prefix
func (packed Packed) Prefixed() []byte {
	buffer := make([]byte, 0, len(constants.TransactionPrefix)+len(packed))
	buffer = append(buffer, constants.TransactionPrefix...)
	return append(buffer, packed...)
}

// map a transaction to its wire form
func (tx Transaction) pack() (wire.Map, error) {
	if nil == tx.Payload {
		return nil, fault.ErrMissingTransactionType
	}

	e := wire.NewEncoder(alwaysPresent)
	e.String(typeKey, string(tx.Type()))
	e.Address(senderKey, tx.Sender)
	e.Uint(feeKey, tx.Fee)
	e.Uint(firstValidKey, tx.FirstValid)
	e.Uint(lastValidKey, tx.LastValid)
	e.Fixed(genesisHashKey, tx.GenesisHash[:])
	e.String(genesisIDKey, tx.GenesisID)
	e.Bytes(noteKey, tx.Note)
	e.Fixed(leaseKey, tx.Lease[:])
	e.Address(rekeyToKey, tx.RekeyTo)
	e.Fixed(groupKey, tx.Group[:])

	if err := tx.Payload.pack(e); nil != err {
		return nil, err
	}
	return e.Result(), nil
}

func (p Payment) pack(e *wire.Encoder) error {
	e.Address(receiverKey, p.Receiver)
	e.Uint(amountKey, p.Amount)
	e.Address(closeRemainderToKey, p.CloseRemainderTo)
	return nil
}

func (p AssetTransfer) pack(e *wire.Encoder) error {
	e.Uint(transferAssetIDKey, p.AssetID)
	e.Uint(assetAmountKey, p.Amount)
	e.Address(assetReceiverKey, p.Receiver)
	e.Address(assetCloseRemainderToKey, p.CloseRemainderTo)
	e.Address(assetSenderKey, p.AssetSender)
	return nil
}

func (p AssetConfig) pack(e *wire.Encoder) error {
	e.Uint(configAssetIDKey, p.AssetID)
	if nil != p.Params {
		pe := wire.NewEncoder(alwaysPresent)
		pe.Uint(totalKey, p.Params.Total)
		pe.Uint(decimalsKey, uint64(p.Params.Decimals))
		pe.Bool(defaultFrozenKey, p.Params.DefaultFrozen)
		pe.String(unitNameKey, p.Params.UnitName)
		pe.String(assetNameKey, p.Params.AssetName)
		pe.String(urlKey, p.Params.URL)
		pe.Bytes(metadataHashKey, p.Params.MetadataHash)
		pe.Address(managerKey, p.Params.Manager)
		pe.Address(reserveKey, p.Params.Reserve)
		pe.Address(freezeKey, p.Params.Freeze)
		pe.Address(clawbackKey, p.Params.Clawback)
		e.Map(assetParamsKey, pe.Result())
	}
	return nil
}

func (p AssetFreeze) pack(e *wire.Encoder) error {
	e.Uint(freezeAssetIDKey, p.AssetID)
	e.Address(freezeTargetKey, p.FreezeTarget)
	e.Bool(frozenKey, p.Frozen)
	return nil
}

func (p AppCall) pack(e *wire.Encoder) error {
	e.Uint(appIDKey, p.AppID)
	e.Uint(onCompleteKey, uint64(p.OnComplete))
	e.Bytes(approvalProgramKey, p.ApprovalProgram)
	e.Bytes(clearStateProgramKey, p.ClearStateProgram)
	if nil != p.GlobalStateSchema {
		e.Map(globalStateSchemaKey, p.GlobalStateSchema.pack())
	}
	if nil != p.LocalStateSchema {
		e.Map(localStateSchemaKey, p.LocalStateSchema.pack())
	}
	e.Uint(extraProgramPagesKey, p.ExtraProgramPages)

	args := make([]interface{}, len(p.Args))
	for i, a := range p.Args {
		args[i] = a
	}
	e.List(argsKey, args)

	accounts := make([]interface{}, len(p.AccountReferences))
	for i, a := range p.AccountReferences {
		accounts[i] = a.Bytes()
	}
	e.List(accountRefsKey, accounts)

	e.List(appRefsKey, uintList(p.AppReferences))
	e.List(assetRefsKey, uintList(p.AssetReferences))

	boxes := make([]interface{}, len(p.BoxReferences))
	for i, box := range p.BoxReferences {
		index, err := p.boxIndex(box.AppID)
		if nil != err {
			return errors.Wrapf(err, "box reference[%d] app id: %d", i, box.AppID)
		}
		be := wire.NewEncoder(alwaysPresent)
		be.Uint(boxIndexKey, index)
		be.Bytes(boxNameKey, box.Name)
		boxes[i] = be.Result()
	}
	e.List(boxRefsKey, boxes)

	return nil
}

// the called application is 0, any other is its 1-based position in
// the app references
func (p AppCall) boxIndex(appID uint64) (uint64, error) {
	if 0 == appID || p.AppID == appID {
		return 0, nil
	}
	for i, id := range p.AppReferences {
		if id == appID {
			return uint64(i) + 1, nil
		}
	}
	return 0, fault.ErrBoxReferenceNotFound
}

func (s *StateSchema) pack() wire.Map {
	e := wire.NewEncoder(nil)
	e.Uint(numUintsKey, s.NumUints)
	e.Uint(numByteSlicesKey, s.NumByteSlices)
	return e.Result()
}

func (p KeyRegistration) pack(e *wire.Encoder) error {
	e.Fixed(voteKeyKey, p.VoteKey[:])
	e.Fixed(selectionKeyKey, p.SelectionKey[:])
	e.Fixed(stateProofKeyKey, p.StateProofKey[:])
	e.Uint(voteFirstKey, p.VoteFirst)
	e.Uint(voteLastKey, p.VoteLast)
	e.Uint(voteKeyDilutionKey, p.VoteKeyDilution)
	e.Bool(nonParticipationKey, p.NonParticipation)
	return nil
}

func (p StateProof) pack(e *wire.Encoder) error {
	return packOpaque(e, p.Fields)
}

func (p Heartbeat) pack(e *wire.Encoder) error {
	return packOpaque(e, p.Fields)
}

// opaque payloads are written back unchanged
func packOpaque(e *wire.Encoder, fields wire.Map) error {
	for key, value := range fields {
		if headerKeys[key] {
			return errors.Wrapf(fault.ErrInvalidWireValue, "payload key: %q clashes with header", key)
		}
		e.Raw(key, value)
	}
	return nil
}

func uintList(list []uint64) []interface{} {
	result := make([]interface{}, len(list))
	for i, n := range list {
		result[i] = n
	}
	return result
}
