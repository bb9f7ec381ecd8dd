// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/algotransact/address"
	"github.com/bitmark-inc/algotransact/fault"
)

var (
	ErrKeyLength = fault.InvalidError("key length is invalid")
)

//go:generate mockgen -destination=mocks/signer.go -package=mocks github.com/bitmark-inc/algotransact/keypair Signer

// Signer - the externally supplied signing function
//
// Sign receives the bytes to be signed, already carrying their domain
// prefix, and returns a 64 byte Ed25519 signature
type Signer interface {
	Address() address.Address
	Sign(message []byte) ([]byte, error)
}

// KeyPair - structure to hold public and private keys
type KeyPair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of keys
type RawKeyPair struct {
	Address    string `json:"address"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// NewKeyPair - create a key pair from secure random data
func NewKeyPair() (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// NewKeyPairFromSeed - deterministic key pair from a 32 byte seed
func NewKeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, ErrKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// Address - the account controlled by this key
func (keyPair *KeyPair) Address() address.Address {
	a, _ := address.FromPublicKey(keyPair.PublicKey)
	return a
}

// Sign - Ed25519 signature over message
func (keyPair *KeyPair) Sign(message []byte) ([]byte, error) {
	if ed25519.PrivateKeySize != len(keyPair.PrivateKey) {
		return nil, ErrKeyLength
	}
	return ed25519.Sign(keyPair.PrivateKey, message), nil
}

// Raw - text form of the keys
func (keyPair *KeyPair) Raw() RawKeyPair {
	return RawKeyPair{
		Address:    keyPair.Address().String(),
		PublicKey:  hex.EncodeToString(keyPair.PublicKey),
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey),
	}
}
