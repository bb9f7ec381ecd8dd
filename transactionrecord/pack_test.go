// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/algotransact/fault"
	"github.com/bitmark-inc/algotransact/fixtures"
	"github.com/bitmark-inc/algotransact/transactionrecord"
	"github.com/bitmark-inc/algotransact/wire"
)

func TestEveryVectorHasATransaction(t *testing.T) {
	txs := recordedTransactions()
	assert.Equal(t, len(vectors), len(txs), "vector count")
	for name := range vectors {
		_, ok := txs[name]
		assert.True(t, ok, "no transaction for vector: %s", name)
	}
}

func TestEncodeRecordedTransactions(t *testing.T) {
	for name, tx := range recordedTransactions() {
		v := vectors[name]

		packed, err := transactionrecord.EncodeTransactionRaw(tx)
		if !assert.Nil(t, err, "%s: encode raw", name) {
			continue
		}
		assert.Equal(t, v.UnsignedBytes[2:], []byte(packed), "%s: raw bytes", name)

		prefixed, err := transactionrecord.EncodeTransaction(tx)
		assert.Nil(t, err, "%s: encode", name)
		assert.Equal(t, v.UnsignedBytes, prefixed, "%s: prefixed bytes\n%s", name, fixtures.FormatBytes("actual", prefixed))
		assert.Equal(t, prefixed, packed.Prefixed(), "%s: prefixed from packed", name)

		id, err := transactionrecord.TransactionID(tx)
		assert.Nil(t, err, "%s: id", name)
		assert.Equal(t, v.ID, id, "%s: id", name)
		assert.Equal(t, 52, len(id), "%s: id length", name)

		idRaw, err := transactionrecord.TransactionIDRaw(tx)
		assert.Nil(t, err, "%s: raw id", name)
		assert.Equal(t, v.IDRaw, idRaw[:], "%s: raw id", name)
		assert.Equal(t, idRaw, packed.MakeLink(), "%s: link", name)

		size, err := transactionrecord.EstimateTransactionSize(tx)
		assert.Nil(t, err, "%s: size", name)
		assert.Equal(t, v.EstimatedSize, size, "%s: size", name)
	}
}

func TestDecodeRecordedTransactions(t *testing.T) {
	for name, expected := range recordedTransactions() {
		v := vectors[name]

		for _, buffer := range [][]byte{v.UnsignedBytes, v.UnsignedBytes[2:]} {
			tx, err := transactionrecord.DecodeTransaction(buffer)
			if !assert.Nil(t, err, "%s: decode", name) {
				continue
			}
			assert.Equal(t, expected.Type(), tx.Type(), "%s: type", name)
			if "application_box_references" != name {
				assert.Equal(t, expected, *tx, "%s: decoded", name)
			}

			again, err := transactionrecord.EncodeTransaction(*tx)
			assert.Nil(t, err, "%s: re-encode", name)
			assert.Equal(t, v.UnsignedBytes, again, "%s: re-encode is identical", name)
		}

		transactionType, err := transactionrecord.GetEncodedTransactionType(v.UnsignedBytes)
		assert.Nil(t, err, "%s: get type", name)
		assert.Equal(t, expected.Type(), transactionType, "%s: get type", name)
	}
}

func TestDecodePackedUnpack(t *testing.T) {
	packed, err := transactionrecord.EncodeTransactionRaw(simplePayment())
	assert.Nil(t, err, "encode")

	tx, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, simplePayment(), *tx, "unpacked")
}

func TestEncodeDoesNotPrefixTwice(t *testing.T) {
	packed, err := transactionrecord.EncodeTransactionRaw(simplePayment())
	assert.Nil(t, err, "encode")
	assert.False(t, bytes.HasPrefix(packed, []byte("TX")), "raw has no prefix")
	assert.False(t, bytes.HasPrefix(packed.Prefixed(), []byte("TXTX")), "single prefix")

	tx, err := transactionrecord.DecodeTransaction(packed.Prefixed())
	assert.Nil(t, err, "decode")
	buffer, err := transactionrecord.EncodeTransaction(*tx)
	assert.Nil(t, err, "re-encode")
	assert.Equal(t, packed.Prefixed(), buffer, "prefix stripped once")
}

func TestEncodeOmitsDefaults(t *testing.T) {
	m, err := wire.Unmarshal(vectors["opt_in_asset_transfer"].UnsignedBytes[2:])
	assert.Nil(t, err, "unmarshal")

	_, ok := m["aamt"]
	assert.False(t, ok, "zero amount omitted")
	_, ok = m["note"]
	assert.False(t, ok, "empty note omitted")
	_, ok = m["grp"]
	assert.False(t, ok, "zero group omitted")
	assert.Equal(t, uint64(51183672), m["fv"], "first valid")

	m, err = wire.Unmarshal(vectors["asset_unfreeze"].UnsignedBytes[2:])
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, false, m["afrz"], "unfreeze flag is always written")
	_, ok = m["gen"]
	assert.False(t, ok, "empty genesis id omitted")
}

func TestEncodeAlwaysWritesValidityRounds(t *testing.T) {
	tx := simplePayment()
	tx.FirstValid = 0
	tx.LastValid = 0

	packed, err := transactionrecord.EncodeTransactionRaw(tx)
	assert.Nil(t, err, "encode")

	m, err := wire.Unmarshal(packed)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, uint64(0), m["fv"], "first valid")
	assert.Equal(t, uint64(0), m["lv"], "last valid")
}

func TestEncodeMissingPayload(t *testing.T) {
	tx := simplePayment()
	tx.Payload = nil

	_, err := transactionrecord.EncodeTransaction(tx)
	assert.True(t, fault.IsErrValidation(err), "validation error")
	assert.Equal(t, transactionrecord.TransactionType(""), tx.Type(), "no type")
}

func TestEncodeTransactionsReportsIndex(t *testing.T) {
	bad := simplePayment()
	bad.Sender = [32]byte{}

	buffers, err := transactionrecord.EncodeTransactions([]transactionrecord.Transaction{simplePayment(), simplePayment()})
	assert.Nil(t, err, "good batch")
	assert.Equal(t, 2, len(buffers), "count")
	assert.Equal(t, vectors["simple_payment"].UnsignedBytes, buffers[1], "second")

	_, err = transactionrecord.EncodeTransactions([]transactionrecord.Transaction{simplePayment(), bad})
	assert.True(t, fault.IsErrValidation(err), "bad batch")
	assert.Contains(t, err.Error(), "transaction[1]", "index")

	txs, err := transactionrecord.DecodeTransactions(buffers)
	assert.Nil(t, err, "decode batch")
	assert.Equal(t, []transactionrecord.Transaction{simplePayment(), simplePayment()}, txs, "decoded")

	_, err = transactionrecord.DecodeTransactions([][]byte{buffers[0], {}})
	assert.Equal(t, fault.ErrZeroLengthDecode, errors.Cause(err), "empty buffer")
	assert.Contains(t, err.Error(), "transaction[1]", "index")
}

func TestDecodeBoxReferences(t *testing.T) {
	tx, err := transactionrecord.DecodeTransaction(vectors["application_box_references"].UnsignedBytes)
	if !assert.Nil(t, err, "decode") {
		return
	}

	app, ok := tx.Payload.(transactionrecord.AppCall)
	if !assert.True(t, ok, "payload type") {
		return
	}
	assert.Equal(t, uint64(12345), app.AppID, "app id")
	assert.Equal(t, []uint64{111, 222}, app.AppReferences, "app references")
	if !assert.Equal(t, 3, len(app.BoxReferences), "box count") {
		return
	}
	assert.Equal(t, uint64(0), app.BoxReferences[0].AppID, "own app")
	assert.Equal(t, []byte("a"), app.BoxReferences[0].Name, "name")
	assert.Equal(t, uint64(222), app.BoxReferences[1].AppID, "second reference")
	assert.Equal(t, []byte("bx"), app.BoxReferences[1].Name, "name")
	assert.Equal(t, uint64(0), app.BoxReferences[2].AppID, "own app")
	assert.Equal(t, 0, len(app.BoxReferences[2].Name), "empty name")
}

func TestEncodeBoxReferenceToOwnApp(t *testing.T) {
	tx := recordedTransactions()["application_box_references"]
	app := tx.Payload.(transactionrecord.AppCall)
	app.BoxReferences = []transactionrecord.BoxReference{
		{AppID: 0, Name: []byte("a")},
		{AppID: 222, Name: []byte("bx")},
		{AppID: 12345, Name: nil},
	}
	tx.Payload = app

	buffer, err := transactionrecord.EncodeTransaction(tx)
	assert.Nil(t, err, "encode")
	assert.Equal(t, vectors["application_box_references"].UnsignedBytes, buffer, "own id is index zero")
}

func TestEncodeBoxReferenceNotReferenced(t *testing.T) {
	tx := recordedTransactions()["application_box_references"]
	app := tx.Payload.(transactionrecord.AppCall)
	app.BoxReferences = []transactionrecord.BoxReference{{AppID: 333, Name: []byte("x")}}
	tx.Payload = app

	_, err := transactionrecord.EncodeTransaction(tx)
	assert.True(t, fault.IsErrValidation(err), "validation error")
	assert.True(t, err.(*fault.ValidationError).Has(fault.Constraint, "boxReferences"), "box violation")
}

func TestDecodeBoxReferenceIndexOutOfRange(t *testing.T) {
	m, err := wire.Unmarshal(vectors["application_box_references"].UnsignedBytes[2:])
	if !assert.Nil(t, err, "unmarshal") {
		return
	}
	boxes := m["apbx"].([]interface{})
	boxes[1].(wire.Map)["i"] = uint64(3)

	buffer, err := wire.Marshal(m)
	assert.Nil(t, err, "marshal")

	_, err = transactionrecord.DecodeTransaction(buffer)
	assert.Equal(t, fault.ErrBoxReferenceIndex, errors.Cause(err), "index 3 of 2")
	assert.True(t, fault.IsErrDecode(err), "decode class")
}

func TestDecodeErrors(t *testing.T) {
	raw := vectors["simple_payment"].UnsignedBytes[2:]

	_, err := transactionrecord.DecodeTransaction(nil)
	assert.Equal(t, fault.ErrZeroLengthDecode, err, "nil")

	_, err = transactionrecord.DecodeTransaction([]byte("TX"))
	assert.Equal(t, fault.ErrZeroLengthDecode, errors.Cause(err), "prefix only")

	_, err = transactionrecord.DecodeTransaction(append(append([]byte{}, raw...), 0xc0))
	assert.Equal(t, fault.ErrTrailingData, errors.Cause(err), "trailing data")

	_, err = transactionrecord.DecodeTransaction(raw[:len(raw)-3])
	assert.Equal(t, fault.ErrMalformedEncoding, errors.Cause(err), "truncated")

	buffer, err := wire.Marshal(wire.Map{"fee": uint64(1000), "snd": fixtures.Sender[:]})
	assert.Nil(t, err, "marshal")
	_, err = transactionrecord.DecodeTransaction(buffer)
	assert.Equal(t, fault.ErrMissingTransactionType, errors.Cause(err), "no type")

	buffer, err = wire.Marshal(wire.Map{"type": "xyz", "snd": fixtures.Sender[:]})
	assert.Nil(t, err, "marshal")
	_, err = transactionrecord.DecodeTransaction(buffer)
	assert.Equal(t, fault.ErrUnknownTransactionType, errors.Cause(err), "unknown type")
	assert.Contains(t, err.Error(), "xyz", "names the type")

	buffer, err = wire.Marshal(wire.Map{"type": "pay", "fee": "1000"})
	assert.Nil(t, err, "marshal")
	_, err = transactionrecord.DecodeTransaction(buffer)
	assert.Equal(t, fault.ErrInvalidInteger, errors.Cause(err), "string fee")
	assert.Contains(t, err.Error(), `"fee"`, "names the key")

	buffer, err = wire.Marshal(wire.Map{"type": "pay", "snd": []byte{1, 2, 3}})
	assert.Nil(t, err, "marshal")
	_, err = transactionrecord.DecodeTransaction(buffer)
	assert.True(t, fault.IsErrDecode(err), "short sender")

	buffer, err = wire.Marshal(wire.Map{"type": "appl", "apan": uint64(6)})
	assert.Nil(t, err, "marshal")
	_, err = transactionrecord.DecodeTransaction(buffer)
	assert.Equal(t, fault.ErrInvalidOnComplete, errors.Cause(err), "on complete")
}

func TestDecodeDoesNotValidate(t *testing.T) {
	buffer, err := wire.Marshal(wire.Map{"type": "axfer", "fv": uint64(10), "lv": uint64(5)})
	assert.Nil(t, err, "marshal")

	tx, err := transactionrecord.DecodeTransaction(buffer)
	assert.Nil(t, err, "decode")
	assert.True(t, tx.Sender.IsZero(), "no sender")
	assert.Equal(t, transactionrecord.AssetTransferType, tx.Type(), "type")

	err = transactionrecord.Validate(*tx)
	assert.True(t, fault.IsErrValidation(err), "invalid")
}

func TestOpaquePayloads(t *testing.T) {
	tx := simplePayment()
	tx.Payload = transactionrecord.StateProof{
		Fields: wire.Map{
			"sp":     wire.Map{"c": []byte{1, 2, 3}, "r": uint64(7)},
			"spmsg":  wire.Map{"b": []byte("header")},
			"sptype": uint64(1),
		},
	}

	buffer, err := transactionrecord.EncodeTransaction(tx)
	assert.Nil(t, err, "encode state proof")

	decoded, err := transactionrecord.DecodeTransaction(buffer)
	assert.Nil(t, err, "decode state proof")
	assert.Equal(t, tx, *decoded, "state proof round trip")

	again, err := transactionrecord.EncodeTransaction(*decoded)
	assert.Nil(t, err, "re-encode")
	assert.Equal(t, buffer, again, "identical")

	tx.Payload = transactionrecord.Heartbeat{
		Fields: wire.Map{
			"hb": wire.Map{"a": fixtures.Receiver[:], "sd": []byte{9}},
		},
	}
	buffer, err = transactionrecord.EncodeTransaction(tx)
	assert.Nil(t, err, "encode heartbeat")

	transactionType, err := transactionrecord.GetEncodedTransactionType(buffer)
	assert.Nil(t, err, "type")
	assert.Equal(t, transactionrecord.HeartbeatType, transactionType, "heartbeat")

	decoded, err = transactionrecord.DecodeTransaction(buffer)
	assert.Nil(t, err, "decode heartbeat")
	assert.Equal(t, tx, *decoded, "heartbeat round trip")

	tx.Payload = transactionrecord.Heartbeat{Fields: wire.Map{"fee": uint64(1)}}
	_, err = transactionrecord.EncodeTransaction(tx)
	assert.Equal(t, fault.ErrInvalidWireValue, errors.Cause(err), "header key in payload")
}

func TestKnownType(t *testing.T) {
	for _, tt := range []transactionrecord.TransactionType{"pay", "axfer", "acfg", "afrz", "appl", "keyreg", "stpf", "hb"} {
		assert.True(t, transactionrecord.KnownType(tt), "type: %s", tt)
	}
	assert.False(t, transactionrecord.KnownType("xyz"), "unknown")
	assert.False(t, transactionrecord.KnownType(""), "empty")
}
