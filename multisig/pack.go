// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"math"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/fault"
	"github.com/bitmark-inc/algotransact/wire"
)

// wire keys
const (
	versionKey       = "v"
	thresholdKey     = "thr"
	subsignaturesKey = "subsig"
	publicKeyKey     = "pk"
	signatureKey     = "s"
)

// the structure is written in full, only an absent signature is omitted
var alwaysPresent = map[string]bool{
	versionKey:       true,
	thresholdKey:     true,
	subsignaturesKey: true,
	publicKeyKey:     true,
}

// Pack - the msig wire map
func (msig *MultisigSignature) Pack() wire.Map {
	list := make([]interface{}, len(msig.Subsignatures))
	for i, s := range msig.Subsignatures {
		e := wire.NewEncoder(alwaysPresent)
		e.Address(publicKeyKey, s.Address)
		if nil != s.Signature {
			// a zero signature is still a signature
			e.Raw(signatureKey, append([]byte{}, s.Signature[:]...))
		}
		list[i] = e.Result()
	}

	e := wire.NewEncoder(alwaysPresent)
	e.Uint(versionKey, uint64(msig.Version))
	e.Uint(thresholdKey, uint64(msig.Threshold))
	e.List(subsignaturesKey, list)
	return e.Result()
}

// Unpack - read an msig wire map
//
// parameters are not checked here so that any aggregate seen on the
// network can be decoded
func Unpack(m wire.Map) (*MultisigSignature, error) {
	d := wire.NewDecoder(m)
	version := d.Uint(versionKey)
	threshold := d.Uint(thresholdKey)
	list := d.List(subsignaturesKey)
	if math.MaxUint8 < version {
		d.Fail(versionKey, fault.ErrInvalidInteger)
	}
	if math.MaxUint8 < threshold {
		d.Fail(thresholdKey, fault.ErrInvalidInteger)
	}
	if err := d.Err(); nil != err {
		return nil, err
	}

	subsignatures := make([]Subsignature, len(list))
	for i, item := range list {
		sm, err := wire.DecodeMap(item)
		if nil != err {
			return nil, errors.Wrapf(err, "subsig[%d]", i)
		}
		sd := wire.NewDecoder(sm)
		subsignatures[i].Address = sd.Address(publicKeyKey)
		if _, ok := sm[signatureKey]; ok {
			s := Signature{}
			copy(s[:], sd.Fixed(signatureKey, constants.SignatureLength))
			subsignatures[i].Signature = &s
		}
		if err := sd.Err(); nil != err {
			return nil, errors.Wrapf(err, "subsig[%d]", i)
		}
	}

	return &MultisigSignature{
		Version:       uint8(version),
		Threshold:     uint8(threshold),
		Subsignatures: subsignatures,
	}, nil
}
