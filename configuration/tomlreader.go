// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"

	"github.com/pelletier/go-toml"
)

// ParseTOMLFile - decode a TOML file into a configuration structure
func ParseTOMLFile(fileName string, config interface{}) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	return toml.NewDecoder(f).Decode(config)
}
