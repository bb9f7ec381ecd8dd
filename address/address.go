// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"encoding/binary"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/digest"
	"github.com/bitmark-inc/algotransact/fault"
)

// Address - an Ed25519 public key identifying an account
//
// the string form is base32(public key || last 4 bytes of its hash)
type Address [constants.PublicKeyLength]byte

// Zero - the default address, omitted from the wire
var Zero = Address{}

// FromPublicKey - convert and validate a public key byte slice
func FromPublicKey(publicKey []byte) (Address, error) {
	a := Address{}
	if constants.PublicKeyLength != len(publicKey) {
		return a, fault.ErrInvalidPublicKey
	}
	copy(a[:], publicKey)
	return a, nil
}

// FromString - decode the 58 character checksummed form
func FromString(s string) (Address, error) {
	a := Address{}
	if constants.AddressLength != len(s) {
		return a, fault.ErrInvalidAddressLength
	}
	buffer, err := digest.Encoding.DecodeString(s)
	if nil != err {
		return a, fault.ErrInvalidAddress
	}
	if constants.PublicKeyLength+constants.ChecksumLength != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer[:constants.PublicKeyLength])
	if !bytes.Equal(a.checksum(), buffer[constants.PublicKeyLength:]) {
		return Address{}, fault.ErrChecksumMismatch
	}
	return a, nil
}

// FromAppID - the escrow address controlled by an application
func FromAppID(appID uint64) Address {
	id := make([]byte, 8)
	binary.BigEndian.PutUint64(id, appID)
	return Address(digest.NewDigest(constants.AppIDPrefix, id))
}

// IsZero - true for the default address
func (a Address) IsZero() bool {
	return a == Zero
}

// Bytes - the raw public key
func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) checksum() []byte {
	h := digest.NewDigest("", a[:])
	return h[digest.DigestLength-constants.ChecksumLength:]
}

// String - checksummed base32 form
func (a Address) String() string {
	buffer := make([]byte, 0, constants.PublicKeyLength+constants.ChecksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, a.checksum()...)
	return digest.Encoding.EncodeToString(buffer)
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert an address to its string form for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert the string form into an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromString(strings.TrimSpace(string(s)))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// CheckSignature - verify an Ed25519 signature by this address over message
func (a Address) CheckSignature(message []byte, signature []byte) error {
	if constants.SignatureLength != len(signature) {
		return fault.ErrInvalidSignatureLength
	}
	if !ed25519.Verify(ed25519.PublicKey(a[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
