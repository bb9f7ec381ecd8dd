// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bitmark-inc/algotransact/fault"
)

// read a configuration file choosing the parser by extension
func readConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	s := rv.Elem()
	if s.Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".lua", ".conf":
		return ParseConfigurationFile(fileName, config)
	case ".toml":
		return ParseTOMLFile(fileName, config)
	default:
		return fault.ErrInvalidConfigurationFormat
	}
}
