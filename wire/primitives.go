// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/algotransact/address"
	"github.com/bitmark-inc/algotransact/fault"
)

// each encoder returns the wire value and whether it differs from the
// default; each decoder accepts the value found under a key (nil when
// the key was absent) and returns the typed value

// EncodeUint - zero is the default
func EncodeUint(v uint64) (interface{}, bool) {
	return v, 0 != v
}

// DecodeUint - accept any non-negative integer width
func DecodeUint(value interface{}) (uint64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	case int64:
		return signed(v)
	case int32:
		return signed(int64(v))
	case int16:
		return signed(int64(v))
	case int8:
		return signed(int64(v))
	case int:
		return signed(int64(v))
	default:
		return 0, fault.ErrInvalidInteger
	}
}

func signed(v int64) (uint64, error) {
	if v < 0 {
		return 0, fault.ErrNegativeInteger
	}
	return uint64(v), nil
}

// EncodeBytes - empty is the default
func EncodeBytes(b []byte) (interface{}, bool) {
	return b, 0 != len(b)
}

// DecodeBytes - byte string of any length
func DecodeBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	default:
		return nil, fault.ErrInvalidByteArray
	}
}

// EncodeFixed - fixed length bytes, all zero is the default
func EncodeFixed(b []byte) (interface{}, bool) {
	for _, c := range b {
		if 0 != c {
			return b, true
		}
	}
	return b, false
}

// DecodeFixed - byte string of exactly size bytes, absent is all zero
func DecodeFixed(value interface{}, size int) ([]byte, error) {
	if nil == value {
		return make([]byte, size), nil
	}
	b, err := DecodeBytes(value)
	if nil != err {
		return nil, err
	}
	if size != len(b) {
		return nil, fault.ErrInvalidFieldLength
	}
	return b, nil
}

// EncodeString - empty is the default
func EncodeString(s string) (interface{}, bool) {
	return s, "" != s
}

// DecodeString - text string, bin is tolerated for non UTF-8 names
func DecodeString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fault.ErrInvalidString
	}
}

// EncodeBool - false is the default
func EncodeBool(b bool) (interface{}, bool) {
	return b, b
}

// DecodeBool - absent is false
func DecodeBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	default:
		return false, fault.ErrInvalidBoolean
	}
}

// EncodeAddress - the zero address is the default
func EncodeAddress(a address.Address) (interface{}, bool) {
	return a.Bytes(), !a.IsZero()
}

// DecodeAddress - exactly 32 raw bytes
func DecodeAddress(value interface{}) (address.Address, error) {
	b, err := DecodeFixed(value, len(address.Zero))
	if nil != err {
		return address.Zero, err
	}
	return address.FromPublicKey(b)
}

// EncodeMap - empty after mapping is the default
func EncodeMap(m Map) (interface{}, bool) {
	return m, 0 != len(m)
}

// DecodeMap - absent is nil
func DecodeMap(value interface{}) (Map, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Map:
		return v, nil
	case map[string]interface{}:
		return Map(v), nil
	default:
		return nil, fault.ErrInvalidMap
	}
}

// EncodeList - empty is the default
func EncodeList(l []interface{}) (interface{}, bool) {
	return l, 0 != len(l)
}

// DecodeList - absent is nil
func DecodeList(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		return v, nil
	default:
		return nil, fault.ErrInvalidList
	}
}
