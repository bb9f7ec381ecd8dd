// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - protocol parameters and logging setup
//
// A configuration file is either Lua, in which case most of base Lua
// is available (reading files, getenv), or TOML.  The file extension
// selects the reader.
package configuration
