// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"math"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/digest"
	"github.com/bitmark-inc/algotransact/fault"
	"github.com/bitmark-inc/algotransact/wire"
)

// DecodeTransaction - decode a transaction with or without its "TX" prefix
//
// decoding does not validate, anything the network produced can be read
func DecodeTransaction(buffer []byte) (*Transaction, error) {
	if 0 == len(buffer) {
		return nil, fault.ErrZeroLengthDecode
	}
	buffer = bytes.TrimPrefix(buffer, []byte(constants.TransactionPrefix))

	m, err := wire.Unmarshal(buffer)
	if nil != err {
		warnf("decode transaction: %s", err)
		return nil, err
	}

	tx, err := unpack(m)
	if nil != err {
		warnf("unpack transaction: %s", err)
		return nil, err
	}
	return tx, nil
}

// DecodeTransactions - decode each buffer, the first error aborts
func DecodeTransactions(buffers [][]byte) ([]Transaction, error) {
	result := make([]Transaction, len(buffers))
	for i, buffer := range buffers {
		tx, err := DecodeTransaction(buffer)
		if nil != err {
			return nil, errors.WithMessagef(err, "transaction[%d]", i)
		}
		result[i] = *tx
	}
	return result, nil
}

// GetEncodedTransactionType - the type tag of an encoded transaction
func GetEncodedTransactionType(buffer []byte) (TransactionType, error) {
	tx, err := DecodeTransaction(buffer)
	if nil != err {
		return "", err
	}
	return tx.Type(), nil
}

// Unpack - decode packed bytes
func (packed Packed) Unpack() (*Transaction, error) {
	return DecodeTransaction(packed)
}

// map the wire form back to a transaction
func unpack(m wire.Map) (*Transaction, error) {
	d := wire.NewDecoder(m)

	t := TransactionType(d.String(typeKey))
	tx := &Transaction{
		Sender:      d.Address(senderKey),
		Fee:         d.Uint(feeKey),
		FirstValid:  d.Uint(firstValidKey),
		LastValid:   d.Uint(lastValidKey),
		GenesisHash: digest.Digest(d.Fixed32(genesisHashKey)),
		GenesisID:   d.String(genesisIDKey),
		Note:        d.Bytes(noteKey),
		Lease:       Lease(d.Fixed32(leaseKey)),
		RekeyTo:     d.Address(rekeyToKey),
		Group:       digest.Digest(d.Fixed32(groupKey)),
	}
	if err := d.Err(); nil != err {
		return nil, err
	}

unpack_switch:
	switch t {

	case "":
		return nil, fault.ErrMissingTransactionType

	case PaymentType:
		tx.Payload = Payment{
			Receiver:         d.Address(receiverKey),
			Amount:           d.Uint(amountKey),
			CloseRemainderTo: d.Address(closeRemainderToKey),
		}

	case AssetTransferType:
		tx.Payload = AssetTransfer{
			AssetID:          d.Uint(transferAssetIDKey),
			Amount:           d.Uint(assetAmountKey),
			Receiver:         d.Address(assetReceiverKey),
			CloseRemainderTo: d.Address(assetCloseRemainderToKey),
			AssetSender:      d.Address(assetSenderKey),
		}

	case AssetConfigType:
		cfg := AssetConfig{
			AssetID: d.Uint(configAssetIDKey),
		}
		pm := d.Map(assetParamsKey)
		if nil == pm {
			tx.Payload = cfg
			break unpack_switch
		}
		params, err := unpackAssetParams(pm)
		if nil != err {
			d.Fail(assetParamsKey, err)
		}
		cfg.Params = params
		tx.Payload = cfg

	case AssetFreezeType:
		tx.Payload = AssetFreeze{
			AssetID:      d.Uint(freezeAssetIDKey),
			FreezeTarget: d.Address(freezeTargetKey),
			Frozen:       d.Bool(frozenKey),
		}

	case AppCallType:
		tx.Payload = unpackAppCall(d)

	case KeyRegistrationType:
		kr := KeyRegistration{
			VoteKey:          d.Fixed32(voteKeyKey),
			SelectionKey:     d.Fixed32(selectionKeyKey),
			VoteFirst:        d.Uint(voteFirstKey),
			VoteLast:         d.Uint(voteLastKey),
			VoteKeyDilution:  d.Uint(voteKeyDilutionKey),
			NonParticipation: d.Bool(nonParticipationKey),
		}
		copy(kr.StateProofKey[:], d.Fixed(stateProofKeyKey, constants.StateProofKeyLength))
		tx.Payload = kr

	case StateProofType:
		tx.Payload = StateProof{Fields: payloadFields(m)}

	case HeartbeatType:
		tx.Payload = Heartbeat{Fields: payloadFields(m)}

	default:
		return nil, errors.Wrapf(fault.ErrUnknownTransactionType, "type: %q", t)
	}

	if err := d.Err(); nil != err {
		return nil, err
	}
	return tx, nil
}

func unpackAssetParams(m wire.Map) (*AssetParams, error) {
	d := wire.NewDecoder(m)
	params := &AssetParams{
		Total:         d.Uint(totalKey),
		DefaultFrozen: d.Bool(defaultFrozenKey),
		UnitName:      d.String(unitNameKey),
		AssetName:     d.String(assetNameKey),
		URL:           d.String(urlKey),
		MetadataHash:  d.Bytes(metadataHashKey),
		Manager:       d.Address(managerKey),
		Reserve:       d.Address(reserveKey),
		Freeze:        d.Address(freezeKey),
		Clawback:      d.Address(clawbackKey),
	}
	decimals := d.Uint(decimalsKey)
	if decimals > math.MaxUint32 {
		d.Fail(decimalsKey, fault.ErrInvalidInteger)
	}
	params.Decimals = uint32(decimals)
	return params, d.Err()
}

// errors are left in d
func unpackAppCall(d *wire.Decoder) AppCall {
	app := AppCall{
		AppID:             d.Uint(appIDKey),
		OnComplete:        OnComplete(d.Uint(onCompleteKey)),
		ApprovalProgram:   d.Bytes(approvalProgramKey),
		ClearStateProgram: d.Bytes(clearStateProgramKey),
		ExtraProgramPages: d.Uint(extraProgramPagesKey),
	}
	if !app.OnComplete.Valid() {
		d.Fail(onCompleteKey, fault.ErrInvalidOnComplete)
	}

	if m := d.Map(globalStateSchemaKey); nil != m {
		app.GlobalStateSchema = unpackStateSchema(d, globalStateSchemaKey, m)
	}
	if m := d.Map(localStateSchemaKey); nil != m {
		app.LocalStateSchema = unpackStateSchema(d, localStateSchemaKey, m)
	}

	for _, item := range d.List(argsKey) {
		b, err := wire.DecodeBytes(item)
		if nil != err {
			d.Fail(argsKey, err)
			break
		}
		app.Args = append(app.Args, b)
	}

	for _, item := range d.List(accountRefsKey) {
		a, err := wire.DecodeAddress(item)
		if nil != err {
			d.Fail(accountRefsKey, err)
			break
		}
		app.AccountReferences = append(app.AccountReferences, a)
	}

	app.AppReferences = unpackUintList(d, appRefsKey)
	app.AssetReferences = unpackUintList(d, assetRefsKey)

	for _, item := range d.List(boxRefsKey) {
		bm, err := wire.DecodeMap(item)
		if nil != err {
			d.Fail(boxRefsKey, err)
			break
		}
		bd := wire.NewDecoder(bm)
		index := bd.Uint(boxIndexKey)
		name := bd.Bytes(boxNameKey)
		if err := bd.Err(); nil != err {
			d.Fail(boxRefsKey, err)
			break
		}

		box := BoxReference{Name: name}
		if 0 != index {
			if index > uint64(len(app.AppReferences)) {
				d.Fail(boxRefsKey, errors.Wrapf(fault.ErrBoxReferenceIndex, "index: %d", index))
				break
			}
			box.AppID = app.AppReferences[index-1]
		}
		app.BoxReferences = append(app.BoxReferences, box)
	}

	return app
}

func unpackStateSchema(d *wire.Decoder, key string, m wire.Map) *StateSchema {
	sd := wire.NewDecoder(m)
	schema := &StateSchema{
		NumUints:      sd.Uint(numUintsKey),
		NumByteSlices: sd.Uint(numByteSlicesKey),
	}
	if err := sd.Err(); nil != err {
		d.Fail(key, err)
	}
	return schema
}

func unpackUintList(d *wire.Decoder, key string) []uint64 {
	var result []uint64
	for _, item := range d.List(key) {
		n, err := wire.DecodeUint(item)
		if nil != err {
			d.Fail(key, err)
			return nil
		}
		result = append(result, n)
	}
	return result
}

// every non-header field of an opaque payload
func payloadFields(m wire.Map) wire.Map {
	fields := make(wire.Map, len(m))
	for key, value := range m {
		if !headerKeys[key] {
			fields[key] = value
		}
	}
	return fields
}
