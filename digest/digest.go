// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"crypto/sha512"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/bitmark-inc/algotransact/constants"
	"github.com/bitmark-inc/algotransact/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = constants.HashLength

// Encoding - upper case RFC 4648 base32 without padding
var Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Digest - SHA-512/256 output
//
// represented as unpadded base32 for print and text encoding
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - hash prefix and data as a single buffer
func NewDigest(prefix string, data []byte) Digest {
	buffer := make([]byte, 0, len(prefix)+len(data))
	buffer = append(buffer, prefix...)
	buffer = append(buffer, data...)
	return sha512.Sum512_256(buffer)
}

// IsZero - true for the all-zero digest, used as "absent"
func (digest Digest) IsZero() bool {
	return digest == Digest{}
}

// String - base32 form for use by the fmt package (for %s)
func (digest Digest) String() string {
	return Encoding.EncodeToString(digest[:])
}

// GoString - for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA512/256:" + Encoding.EncodeToString(digest[:]) + ">"
}

// Scan - read a base32 digest for use by the fmt package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return (c >= 'A' && c <= 'Z') || (c >= '2' && c <= '7')
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to base32 text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert base32 text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	buffer, err := Encoding.DecodeString(strings.TrimSpace(string(s)))
	if nil != err {
		return fault.ErrInvalidDigest
	}
	return DigestFromBytes(digest, buffer)
}

// DigestFromBytes - convert and validate binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}
