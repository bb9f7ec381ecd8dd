// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/algotransact/address"
)

// payload copies share no slices, maps or pointers with the original

func (p Payment) clone() Payload         { return p }
func (p AssetTransfer) clone() Payload   { return p }
func (p AssetFreeze) clone() Payload     { return p }
func (p KeyRegistration) clone() Payload { return p }

func (p AssetConfig) clone() Payload {
	if nil != p.Params {
		params := *p.Params
		params.MetadataHash = cloneBytes(p.Params.MetadataHash)
		p.Params = &params
	}
	return p
}

func (p AppCall) clone() Payload {
	p.ApprovalProgram = cloneBytes(p.ApprovalProgram)
	p.ClearStateProgram = cloneBytes(p.ClearStateProgram)
	p.GlobalStateSchema = p.GlobalStateSchema.clone()
	p.LocalStateSchema = p.LocalStateSchema.clone()

	if nil != p.Args {
		args := make([][]byte, len(p.Args))
		for i, arg := range p.Args {
			args[i] = cloneBytes(arg)
		}
		p.Args = args
	}
	if nil != p.AccountReferences {
		p.AccountReferences = append([]address.Address{}, p.AccountReferences...)
	}
	if nil != p.AppReferences {
		p.AppReferences = append([]uint64{}, p.AppReferences...)
	}
	if nil != p.AssetReferences {
		p.AssetReferences = append([]uint64{}, p.AssetReferences...)
	}
	if nil != p.BoxReferences {
		boxes := make([]BoxReference, len(p.BoxReferences))
		for i, box := range p.BoxReferences {
			boxes[i] = BoxReference{
				AppID: box.AppID,
				Name:  cloneBytes(box.Name),
			}
		}
		p.BoxReferences = boxes
	}
	return p
}

func (p StateProof) clone() Payload {
	p.Fields = p.Fields.Clone()
	return p
}

func (p Heartbeat) clone() Payload {
	p.Fields = p.Fields.Clone()
	return p
}

func (s *StateSchema) clone() *StateSchema {
	if nil == s {
		return nil
	}
	c := *s
	return &c
}

// nil stays nil so omitted fields are unchanged
func cloneBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	return append([]byte{}, b...)
}
