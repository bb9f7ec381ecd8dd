// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/algotransact/fault"
	"github.com/bitmark-inc/algotransact/keypair"
	"github.com/bitmark-inc/algotransact/multisig"
)

// Sign - single signature envelope
//
// the auth address is set when the signer is not the sender
func Sign(tx Transaction, signer keypair.Signer) (*SignedTransaction, error) {
	signature, err := signWith(tx, signer)
	if nil != err {
		return nil, err
	}

	stx := &SignedTransaction{
		Transaction: tx.clone(),
		Signature:   &signature,
	}
	if signer.Address() != tx.Sender {
		stx.AuthAddress = signer.Address()
	}
	return stx, nil
}

// SignMultisig - add the signer's subsignature to msig
//
// msig itself is not modified
func SignMultisig(tx Transaction, msig *multisig.MultisigSignature, signer keypair.Signer) (*SignedTransaction, error) {
	if nil == msig {
		return nil, fault.ErrMissingAuthorisation
	}
	signature, err := signWith(tx, signer)
	if nil != err {
		return nil, err
	}

	signed, err := msig.ApplySubsignature(signer.Address(), signature)
	if nil != err {
		return nil, err
	}

	stx := &SignedTransaction{
		Transaction: tx.clone(),
		Multisig:    signed,
	}
	if a := msig.Address(); a != tx.Sender {
		stx.AuthAddress = a
	}
	return stx, nil
}

// sign the prefixed encoding and check the result before it is attached
func signWith(tx Transaction, signer keypair.Signer) (multisig.Signature, error) {
	if nil == signer {
		return multisig.Signature{}, fault.ErrSignerNotConfigured
	}

	message, err := EncodeTransaction(tx)
	if nil != err {
		return multisig.Signature{}, err
	}

	raw, err := signer.Sign(message)
	if nil != err {
		return multisig.Signature{}, err
	}
	signature, err := multisig.SignatureFromBytes(raw)
	if nil != err {
		return multisig.Signature{}, err
	}
	if err := signer.Address().CheckSignature(message, raw); nil != err {
		return multisig.Signature{}, err
	}
	return signature, nil
}
