// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances for the transaction codec
//
// Sentinel errors are grouped into classes (decode, fee, group,
// invalid, length) so callers can branch on the class even after
// context was attached with github.com/pkg/errors.  Validation
// failures are aggregated into a single *ValidationError.
package fault
