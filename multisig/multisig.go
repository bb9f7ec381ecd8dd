// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"github.com/bitmark-inc/algotransact/address"
	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/digest"
	"github.com/bitmark-inc/algotransact/fault"
)

// the only multisig version the network accepts
const Version = 1

// Signature - a raw Ed25519 signature
type Signature [constants.SignatureLength]byte

// SignatureFromBytes - copy and length check
func SignatureFromBytes(buffer []byte) (Signature, error) {
	s := Signature{}
	if constants.SignatureLength != len(buffer) {
		return s, fault.ErrInvalidSignatureLength
	}
	copy(s[:], buffer)
	return s, nil
}

// Subsignature - one participant and its signature, nil until signed
type Subsignature struct {
	Address   address.Address
	Signature *Signature
}

// MultisigSignature - threshold aggregate over an ordered participant list
type MultisigSignature struct {
	Version       uint8
	Threshold     uint8
	Subsignatures []Subsignature
}

// New - unsigned aggregate for the participants in the given order
func New(version uint8, threshold uint8, participants []address.Address) (*MultisigSignature, error) {
	if Version != version {
		return nil, fault.ErrInvalidMultisigVersion
	}
	if 0 == threshold || int(threshold) > len(participants) {
		return nil, fault.ErrInvalidMultisigParameters
	}

	subsignatures := make([]Subsignature, len(participants))
	for i, a := range participants {
		subsignatures[i].Address = a
	}
	return &MultisigSignature{
		Version:       version,
		Threshold:     threshold,
		Subsignatures: subsignatures,
	}, nil
}

// Participants - the participant addresses in order
func (msig *MultisigSignature) Participants() []address.Address {
	participants := make([]address.Address, len(msig.Subsignatures))
	for i, s := range msig.Subsignatures {
		participants[i] = s.Address
	}
	return participants
}

// Address - the account controlled by this aggregate
//
// hash of prefix || version || threshold || participant keys
func (msig *MultisigSignature) Address() address.Address {
	buffer := make([]byte, 0, 2+len(msig.Subsignatures)*constants.PublicKeyLength)
	buffer = append(buffer, msig.Version, msig.Threshold)
	for _, s := range msig.Subsignatures {
		buffer = append(buffer, s.Address[:]...)
	}
	return address.Address(digest.NewDigest(constants.MultisigPrefix, buffer))
}

// String - address form
func (msig *MultisigSignature) String() string {
	return msig.Address().String()
}

// SignatureCount - number of participants that have signed
func (msig *MultisigSignature) SignatureCount() int {
	n := 0
	for _, s := range msig.Subsignatures {
		if nil != s.Signature {
			n += 1
		}
	}
	return n
}

// Complete - true once the threshold is reached
func (msig *MultisigSignature) Complete() bool {
	return msig.SignatureCount() >= int(msig.Threshold)
}

// ApplySubsignature - copy with the signature attached to every
// occurrence of participant
func (msig *MultisigSignature) ApplySubsignature(participant address.Address, signature Signature) (*MultisigSignature, error) {
	result := msig.clone()
	found := false
	for i := range result.Subsignatures {
		if participant == result.Subsignatures[i].Address {
			s := signature
			result.Subsignatures[i].Signature = &s
			found = true
		}
	}
	if !found {
		return nil, fault.ErrNotMultisigParticipant
	}
	return result, nil
}

// Merge - combine the signatures of two aggregates over the same
// participants, the receiver's signature wins where both have one
func (msig *MultisigSignature) Merge(other *MultisigSignature) (*MultisigSignature, error) {
	if msig.Version != other.Version ||
		msig.Threshold != other.Threshold ||
		len(msig.Subsignatures) != len(other.Subsignatures) {
		return nil, fault.ErrMultisigMismatch
	}
	for i, s := range msig.Subsignatures {
		if s.Address != other.Subsignatures[i].Address {
			return nil, fault.ErrMultisigMismatch
		}
	}

	result := msig.clone()
	for i := range result.Subsignatures {
		if nil == result.Subsignatures[i].Signature && nil != other.Subsignatures[i].Signature {
			s := *other.Subsignatures[i].Signature
			result.Subsignatures[i].Signature = &s
		}
	}
	return result, nil
}

func (msig *MultisigSignature) clone() *MultisigSignature {
	subsignatures := make([]Subsignature, len(msig.Subsignatures))
	for i, s := range msig.Subsignatures {
		subsignatures[i].Address = s.Address
		if nil != s.Signature {
			signature := *s.Signature
			subsignatures[i].Signature = &signature
		}
	}
	return &MultisigSignature{
		Version:       msig.Version,
		Threshold:     msig.Threshold,
		Subsignatures: subsignatures,
	}
}
