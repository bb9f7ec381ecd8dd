// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/digest"
	"github.com/bitmark-inc/algotransact/fault"
	"github.com/bitmark-inc/algotransact/wire"
)

// wire key of the id list hashed for a group
const transactionListKey = "txlist"

// ComputeGroupID - hash over the ordered ids of ungrouped transactions
func ComputeGroupID(txs []Transaction) (digest.Digest, error) {
	if 0 == len(txs) {
		return digest.Digest{}, fault.ErrEmptyGroup
	}
	maxGroupSize := Protocol().MaxTxGroupSize
	if len(txs) > maxGroupSize {
		return digest.Digest{}, errors.WithMessagef(fault.ErrGroupTooLarge, "%d > %d", len(txs), maxGroupSize)
	}

	ids := make([]interface{}, len(txs))
	for i, tx := range txs {
		if tx.IsGrouped() {
			return digest.Digest{}, errors.WithMessagef(fault.ErrAlreadyGrouped, "transaction[%d] group: %s", i, tx.Group)
		}
		id, err := TransactionIDRaw(tx)
		if nil != err {
			return digest.Digest{}, errors.WithMessagef(err, "transaction[%d]", i)
		}
		ids[i] = id[:]
	}

	packed, err := wire.Marshal(wire.Map{transactionListKey: ids})
	if nil != err {
		fault.Criticalf("encode group: %s", err)
		return digest.Digest{}, err
	}
	return digest.NewDigest(constants.GroupPrefix, packed), nil
}

// GroupTransactions - copies of txs sharing their computed group id
func GroupTransactions(txs []Transaction) ([]Transaction, error) {
	group, err := ComputeGroupID(txs)
	if nil != err {
		return nil, err
	}

	result := make([]Transaction, len(txs))
	for i, tx := range txs {
		result[i] = tx.clone()
		result[i].Group = group
	}
	debugf("group: %s  transactions: %d", group, len(txs))
	return result, nil
}
