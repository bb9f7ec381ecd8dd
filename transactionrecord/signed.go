// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/algotransact/address"
	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/fault"
	"github.com/bitmark-inc/algotransact/multisig"
	"github.com/bitmark-inc/algotransact/wire"
)

// wire keys of the envelope
const (
	transactionKey = "txn"
	signatureKey   = "sig"
	multisigKey    = "msig"
	authAddressKey = "sgnr"
)

// SignedTransaction - a transaction with its authorisation
//
// exactly one of Signature and Multisig is set for encoding; AuthAddress
// names the signing account of a rekeyed sender
type SignedTransaction struct {
	Transaction Transaction                 `json:"transaction"`
	Signature   *multisig.Signature         `json:"signature"`
	AuthAddress address.Address             `json:"authAddress"`
	Multisig    *multisig.MultisigSignature `json:"multisig"`
}

// EncodeSignedTransaction - the envelope submitted to the network, no prefix
func EncodeSignedTransaction(stx SignedTransaction) ([]byte, error) {
	if nil != stx.Signature && nil != stx.Multisig {
		return nil, fault.ErrAmbiguousAuthorisation
	}
	if nil == stx.Signature && nil == stx.Multisig {
		return nil, fault.ErrMissingAuthorisation
	}

	if err := Validate(stx.Transaction); nil != err {
		return nil, err
	}
	txm, err := stx.Transaction.pack()
	if nil != err {
		return nil, err
	}

	e := wire.NewEncoder(nil)
	e.Map(transactionKey, txm)
	if nil != stx.Signature {
		// a zero signature is still a signature
		e.Raw(signatureKey, append([]byte{}, stx.Signature[:]...))
	}
	if nil != stx.Multisig {
		e.Map(multisigKey, stx.Multisig.Pack())
	}
	e.Address(authAddressKey, stx.AuthAddress)

	buffer, err := wire.Marshal(e.Result())
	if nil != err {
		fault.Criticalf("encode signed %s transaction: %s", stx.Transaction.Type(), err)
		return nil, err
	}
	return buffer, nil
}

// EncodeSignedTransactions - encode each envelope, the first error aborts
func EncodeSignedTransactions(stxs []SignedTransaction) ([][]byte, error) {
	result := make([][]byte, len(stxs))
	for i, stx := range stxs {
		b, err := EncodeSignedTransaction(stx)
		if nil != err {
			return nil, errors.WithMessagef(err, "signed transaction[%d]", i)
		}
		result[i] = b
	}
	return result, nil
}

// DecodeSignedTransaction - read an envelope
//
// the authorisation is not checked so that any envelope can be inspected
func DecodeSignedTransaction(buffer []byte) (*SignedTransaction, error) {
	m, err := wire.Unmarshal(buffer)
	if nil != err {
		warnf("decode signed transaction: %s", err)
		return nil, err
	}

	d := wire.NewDecoder(m)
	txm := d.Map(transactionKey)
	stx := &SignedTransaction{
		AuthAddress: d.Address(authAddressKey),
	}
	if _, ok := m[signatureKey]; ok {
		s := multisig.Signature{}
		copy(s[:], d.Fixed(signatureKey, constants.SignatureLength))
		stx.Signature = &s
	}
	msigm := d.Map(multisigKey)
	if err := d.Err(); nil != err {
		return nil, err
	}

	if nil != msigm {
		msig, err := multisig.Unpack(msigm)
		if nil != err {
			return nil, errors.Wrapf(err, "key: %q", multisigKey)
		}
		stx.Multisig = msig
	}

	tx, err := unpack(txm)
	if nil != err {
		warnf("unpack signed transaction: %s", err)
		return nil, errors.Wrapf(err, "key: %q", transactionKey)
	}
	stx.Transaction = *tx

	return stx, nil
}

// DecodeSignedTransactions - decode each envelope, the first error aborts
func DecodeSignedTransactions(buffers [][]byte) ([]SignedTransaction, error) {
	result := make([]SignedTransaction, len(buffers))
	for i, buffer := range buffers {
		stx, err := DecodeSignedTransaction(buffer)
		if nil != err {
			return nil, errors.WithMessagef(err, "signed transaction[%d]", i)
		}
		result[i] = *stx
	}
	return result, nil
}

// ID - id of the wrapped transaction
func (stx SignedTransaction) ID() (string, error) {
	return TransactionID(stx.Transaction)
}

// EstimateSize - encoded size of the envelope
func (stx SignedTransaction) EstimateSize() (int, error) {
	buffer, err := EncodeSignedTransaction(stx)
	if nil != err {
		return 0, err
	}
	return len(buffer), nil
}
