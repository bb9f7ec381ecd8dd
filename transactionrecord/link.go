// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/digest"
)

// MakeLink - the transaction id of packed bytes
func (packed Packed) MakeLink() digest.Digest {
	return digest.NewDigest(constants.TransactionPrefix, packed)
}

// TransactionIDRaw - hash of the prefixed encoding
func TransactionIDRaw(tx Transaction) (digest.Digest, error) {
	packed, err := EncodeTransactionRaw(tx)
	if nil != err {
		return digest.Digest{}, err
	}
	return packed.MakeLink(), nil
}

// TransactionID - the 52 character base32 id
func TransactionID(tx Transaction) (string, error) {
	id, err := TransactionIDRaw(tx)
	if nil != err {
		return "", err
	}
	return id.String(), nil
}
