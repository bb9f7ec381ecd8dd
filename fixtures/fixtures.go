// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/algotransact/address"
	"github.com/bitmark-inc/algotransact/digest"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// network identities used by the recorded vectors
const (
	TestnetGenesisID = "testnet-v1.0"
	MainnetGenesisID = "mainnet-v1.0"
)

var (
	TestnetGenesisHash = MustDigest("SGO1GKSzyE7IEPItTxCByw9x8FmnrCDexi9/cOUJOiI=")
	MainnetGenesisHash = MustDigest("wGHE2Pwdvd7S12BL5FaOP20EGYesN73ktiC1qzkkit8=")

	// sender and receiver of the simple payment vector
	Sender   = MustAddress("RIMARGKZU46OZ77OLPDHHPUJ7YBSHRTCYMQUC64KZCCMESQAFQMYU6SL2Q")
	Receiver = MustAddress("VXH5UP6JLU2CGIYPUFZ4Z5OTLJCLMA5EXD3YHTMVNDE5P7ILZ324FSYSPQ")

	// self payments in the group vector
	Neil = MustAddress("JB3K6HTAXODO4THESLNYTSG6GQUFNEVIQG7A6ZYVDACR6WA3ZF52TKU5NA")
)

// MustAddress - decode a checksummed address or panic
func MustAddress(s string) address.Address {
	a, err := address.FromString(s)
	if nil != err {
		panic(fmt.Sprintf("address: %q  error: %s", s, err))
	}
	return a
}

// MustDigest - decode a base64 32 byte hash or panic
func MustDigest(s string) digest.Digest {
	var d digest.Digest
	b, err := base64.StdEncoding.DecodeString(s)
	if nil == err {
		err = digest.DigestFromBytes(&d, b)
	}
	if nil != err {
		panic(fmt.Sprintf("digest: %q  error: %s", s, err))
	}
	return d
}

// MustBase64 - decode standard base64 or panic
func MustBase64(s string) []byte {
	b, err := base64.StdEncoding.DecodeString(s)
	if nil != err {
		panic(fmt.Sprintf("base64: %q  error: %s", s, err))
	}
	return b
}

// SetupTestLogger - log to a temporary directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// FormatBytes - render data as a Go byte slice literal for pasting
// generated output into a test
func FormatBytes(name string, data []byte) string {
	a := strings.Split(fmt.Sprintf("% #x", data), " ")
	s := name + " := []byte{"
	n := 8
	for i := 0; i < len(a); i += 1 {
		n += 1
		if n >= 8 {
			s += "\n\t"
			n = 0
		}
		s += a[i] + ", "
	}
	return s + "\n}"
}
