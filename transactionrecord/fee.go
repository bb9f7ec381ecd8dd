// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/fault"
)

// FeeParams - inputs to the fee calculation, all in µALGO
type FeeParams struct {
	FeePerByte uint64
	MinFee     uint64
	ExtraFee   *uint64
	MaxFee     *uint64
}

// DefaultFeeParams - fee per byte and minimum fee from the protocol parameters
func DefaultFeeParams() FeeParams {
	protocol := Protocol()
	return FeeParams{
		FeePerByte: protocol.FeePerByte,
		MinFee:     protocol.MinFee,
	}
}

// EstimateTransactionSize - encoded size once a signature is attached
func EstimateTransactionSize(tx Transaction) (int, error) {
	packed, err := EncodeTransactionRaw(tx)
	if nil != err {
		return 0, err
	}
	return len(packed) + constants.SignatureEncodingIncrement, nil
}

// CalculateFee - size based fee raised to the minimum, plus any extra
func CalculateFee(tx Transaction, params FeeParams) (uint64, error) {
	fee := uint64(0)

	if params.FeePerByte > 0 {
		size, err := EstimateTransactionSize(tx)
		if nil != err {
			return 0, err
		}
		if params.FeePerByte > math.MaxUint64/uint64(size) {
			return 0, errors.WithMessagef(fault.ErrFeeOverflow, "%d µALGO per byte × %d bytes", params.FeePerByte, size)
		}
		fee = params.FeePerByte * uint64(size)
	}

	if fee < params.MinFee {
		fee = params.MinFee
	}

	if nil != params.ExtraFee {
		if *params.ExtraFee > math.MaxUint64-fee {
			return 0, errors.WithMessagef(fault.ErrFeeOverflow, "%d µALGO + extra fee %d µALGO", fee, *params.ExtraFee)
		}
		fee += *params.ExtraFee
	}

	if nil != params.MaxFee && fee > *params.MaxFee {
		return 0, errors.WithMessagef(fault.ErrFeeExceedsMaximum, "Transaction fee %d µALGO is greater than max fee %d µALGO", fee, *params.MaxFee)
	}

	return fee, nil
}

// AssignFee - copy of tx with the calculated fee
func AssignFee(tx Transaction, params FeeParams) (Transaction, error) {
	fee, err := CalculateFee(tx, params)
	if nil != err {
		return Transaction{}, err
	}
	result := tx.clone()
	result.Fee = fee
	debugf("assign fee: %d to %s transaction from: %s", fee, tx.Type(), tx.Sender)
	return result, nil
}
