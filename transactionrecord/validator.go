// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/fault"
)

// Validate - check a transaction against the rules for its header and payload
//
// all violations are collected into a single *fault.ValidationError
func Validate(tx Transaction) error {
	v := &fault.ValidationError{}
	validate(v, tx, Protocol().MaxNoteBytes)
	return v.ErrorOrNil()
}

func validate(v *fault.ValidationError, tx Transaction, maxNoteBytes int) {
	if tx.Sender.IsZero() {
		v.Add(fault.MissingSender, "sender", "")
	}
	if nil == tx.Payload {
		v.Add(fault.MissingPayload, "payload", "")
	}

	if tx.FirstValid > tx.LastValid {
		v.Add(fault.Constraint, "lastValid", "first valid %d > last valid %d", tx.FirstValid, tx.LastValid)
	}
	if len(tx.Note) > maxNoteBytes {
		v.Add(fault.FieldTooLong, "note", "%d > %d", len(tx.Note), maxNoteBytes)
	}

	switch p := tx.Payload.(type) {
	case Payment, StateProof, Heartbeat:
		// no payload rules
	case AssetTransfer:
		if 0 == p.AssetID {
			v.Add(fault.ZeroValue, "assetId", "")
		}
	case AssetFreeze:
		if 0 == p.AssetID {
			v.Add(fault.ZeroValue, "assetId", "")
		}
	case AssetConfig:
		validateAssetConfig(v, p)
	case KeyRegistration:
		validateKeyRegistration(v, p)
	case AppCall:
		validateAppCall(v, p)
	}
}

func validateAssetConfig(v *fault.ValidationError, cfg AssetConfig) {
	if cfg.IsCreation() {
		params := cfg.Params
		if nil == params {
			params = &AssetParams{}
		}
		if 0 == params.Total {
			v.Add(fault.RequiredField, "params.total", "")
		}
		if params.Decimals > constants.MaxAssetDecimals {
			v.Add(fault.FieldTooLong, "params.decimals", "%d > %d", params.Decimals, constants.MaxAssetDecimals)
		}
		if len(params.UnitName) > constants.MaxUnitNameLength {
			v.Add(fault.FieldTooLong, "params.unitName", "%d > %d", len(params.UnitName), constants.MaxUnitNameLength)
		}
		if len(params.AssetName) > constants.MaxAssetNameLength {
			v.Add(fault.FieldTooLong, "params.assetName", "%d > %d", len(params.AssetName), constants.MaxAssetNameLength)
		}
		if len(params.URL) > constants.MaxAssetURLLength {
			v.Add(fault.FieldTooLong, "params.url", "%d > %d", len(params.URL), constants.MaxAssetURLLength)
		}
		if 0 != len(params.MetadataHash) && constants.MetadataHashLength != len(params.MetadataHash) {
			v.Add(fault.Constraint, "params.metadataHash", "length %d != %d", len(params.MetadataHash), constants.MetadataHashLength)
		}
		return
	}

	// destroy
	if nil == cfg.Params {
		return
	}

	// reconfigure: only the role addresses may change
	params := cfg.Params
	if params.isEmpty() {
		v.Add(fault.Constraint, "params", "empty params are encoded as a destroy")
		return
	}
	if 0 != params.Total {
		v.Add(fault.ImmutableField, "params.total", "")
	}
	if 0 != params.Decimals {
		v.Add(fault.ImmutableField, "params.decimals", "")
	}
	if params.DefaultFrozen {
		v.Add(fault.ImmutableField, "params.defaultFrozen", "")
	}
	if "" != params.UnitName {
		v.Add(fault.ImmutableField, "params.unitName", "")
	}
	if "" != params.AssetName {
		v.Add(fault.ImmutableField, "params.assetName", "")
	}
	if "" != params.URL {
		v.Add(fault.ImmutableField, "params.url", "")
	}
	if 0 != len(params.MetadataHash) {
		v.Add(fault.ImmutableField, "params.metadataHash", "")
	}
}

func validateKeyRegistration(v *fault.ValidationError, kr KeyRegistration) {
	if !kr.HasParticipationKeys() {
		// offline or non-participating
		return
	}

	if kr.VoteKey == [constants.PublicKeyLength]byte{} {
		v.Add(fault.RequiredField, "voteKey", "")
	}
	if kr.SelectionKey == [constants.PublicKeyLength]byte{} {
		v.Add(fault.RequiredField, "selectionKey", "")
	}
	if kr.StateProofKey == (StateProofKey{}) {
		v.Add(fault.RequiredField, "stateProofKey", "")
	}
	if 0 == kr.VoteFirst {
		v.Add(fault.RequiredField, "voteFirst", "")
	}
	if 0 == kr.VoteLast {
		v.Add(fault.RequiredField, "voteLast", "")
	}
	if 0 != kr.VoteFirst && 0 != kr.VoteLast && kr.VoteFirst >= kr.VoteLast {
		v.Add(fault.Constraint, "voteLast", "vote first %d >= vote last %d", kr.VoteFirst, kr.VoteLast)
	}
	if 0 == kr.VoteKeyDilution {
		v.Add(fault.RequiredField, "voteKeyDilution", "")
	}
	if kr.NonParticipation {
		v.Add(fault.Constraint, "nonParticipation", "online registration cannot be non participating")
	}
}

func validateAppCall(v *fault.ValidationError, app AppCall) {
	if !app.OnComplete.Valid() {
		v.Add(fault.Constraint, "onComplete", "value %d", uint64(app.OnComplete))
	}

	if len(app.Args) > constants.MaxAppArgs {
		v.Add(fault.TooManyItems, "args", "%d > %d", len(app.Args), constants.MaxAppArgs)
	}
	argsSize := 0
	for _, a := range app.Args {
		argsSize += len(a)
	}
	if argsSize > constants.MaxArgsSize {
		v.Add(fault.FieldTooLong, "args", "%d > %d", argsSize, constants.MaxArgsSize)
	}

	if len(app.AccountReferences) > constants.MaxAccountReferences {
		v.Add(fault.TooManyItems, "accountReferences", "%d > %d", len(app.AccountReferences), constants.MaxAccountReferences)
	}
	if len(app.AppReferences) > constants.MaxAppReferences {
		v.Add(fault.TooManyItems, "appReferences", "%d > %d", len(app.AppReferences), constants.MaxAppReferences)
	}
	if len(app.AssetReferences) > constants.MaxAssetReferences {
		v.Add(fault.TooManyItems, "assetReferences", "%d > %d", len(app.AssetReferences), constants.MaxAssetReferences)
	}
	if len(app.BoxReferences) > constants.MaxBoxReferences {
		v.Add(fault.TooManyItems, "boxReferences", "%d > %d", len(app.BoxReferences), constants.MaxBoxReferences)
	}
	references := len(app.AccountReferences) + len(app.AppReferences) + len(app.AssetReferences) + len(app.BoxReferences)
	if references > constants.MaxOverallReferences {
		v.Add(fault.TooManyItems, "references", "%d > %d", references, constants.MaxOverallReferences)
	}

	for i, box := range app.BoxReferences {
		if 0 == box.AppID || app.AppID == box.AppID {
			continue
		}
		if !containsUint64(app.AppReferences, box.AppID) {
			v.Add(fault.Constraint, "boxReferences", "[%d] app id %d is not referenced", i, box.AppID)
		}
	}

	programs := len(app.ApprovalProgram) + len(app.ClearStateProgram)

	if app.IsCreation() {
		if 0 == len(app.ApprovalProgram) {
			v.Add(fault.RequiredField, "approvalProgram", "")
		}
		if 0 == len(app.ClearStateProgram) {
			v.Add(fault.RequiredField, "clearStateProgram", "")
		}
		if app.ExtraProgramPages > constants.MaxExtraProgramPages {
			v.Add(fault.Constraint, "extraProgramPages", "%d > %d", app.ExtraProgramPages, constants.MaxExtraProgramPages)
		} else if limit := (1 + int(app.ExtraProgramPages)) * constants.ProgramPageSize; programs > limit {
			v.Add(fault.FieldTooLong, "programs", "%d > %d", programs, limit)
		}
		if nil != app.GlobalStateSchema {
			if keys := app.GlobalStateSchema.NumUints + app.GlobalStateSchema.NumByteSlices; keys > constants.MaxGlobalStateKeys {
				v.Add(fault.Constraint, "globalStateSchema", "%d keys > %d", keys, constants.MaxGlobalStateKeys)
			}
		}
		if nil != app.LocalStateSchema {
			if keys := app.LocalStateSchema.NumUints + app.LocalStateSchema.NumByteSlices; keys > constants.MaxLocalStateKeys {
				v.Add(fault.Constraint, "localStateSchema", "%d keys > %d", keys, constants.MaxLocalStateKeys)
			}
		}
		return
	}

	if nil != app.GlobalStateSchema {
		v.Add(fault.ImmutableField, "globalStateSchema", "")
	}
	if nil != app.LocalStateSchema {
		v.Add(fault.ImmutableField, "localStateSchema", "")
	}
	if 0 != app.ExtraProgramPages {
		v.Add(fault.ImmutableField, "extraProgramPages", "")
	}
	if UpdateApplication == app.OnComplete {
		if programs > (1+constants.MaxExtraProgramPages)*constants.ProgramPageSize {
			v.Add(fault.FieldTooLong, "programs", "%d > %d", programs, (1+constants.MaxExtraProgramPages)*constants.ProgramPageSize)
		}
	} else if 0 != programs {
		v.Add(fault.Constraint, "approvalProgram", "programs are only set on creation or update")
	}
}

func containsUint64(list []uint64, n uint64) bool {
	for _, item := range list {
		if item == n {
			return true
		}
	}
	return false
}
