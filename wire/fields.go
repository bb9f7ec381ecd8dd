// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/algotransact/address"
)

// Encoder - accumulate fields into a map
//
// a field equal to its default is omitted unless its key is in the
// always present table
type Encoder struct {
	always map[string]bool
	m      Map
}

// NewEncoder - start an empty map
func NewEncoder(always map[string]bool) *Encoder {
	return &Encoder{
		always: always,
		m:      make(Map),
	}
}

func (e *Encoder) put(key string, value interface{}, present bool) {
	if present || e.always[key] {
		e.m[key] = value
	}
}

// Uint - add an unsigned integer
func (e *Encoder) Uint(key string, v uint64) {
	value, present := EncodeUint(v)
	e.put(key, value, present)
}

// Bytes - add a byte string
func (e *Encoder) Bytes(key string, b []byte) {
	value, present := EncodeBytes(b)
	e.put(key, value, present)
}

// Fixed - add a fixed length byte string
func (e *Encoder) Fixed(key string, b []byte) {
	value, present := EncodeFixed(b)
	e.put(key, value, present)
}

// String - add a text string
func (e *Encoder) String(key string, s string) {
	value, present := EncodeString(s)
	e.put(key, value, present)
}

// Bool - add a flag
func (e *Encoder) Bool(key string, b bool) {
	value, present := EncodeBool(b)
	e.put(key, value, present)
}

// Address - add an address as its raw public key
func (e *Encoder) Address(key string, a address.Address) {
	value, present := EncodeAddress(a)
	e.put(key, value, present)
}

// Map - add a nested map
func (e *Encoder) Map(key string, m Map) {
	value, present := EncodeMap(m)
	e.put(key, value, present)
}

// List - add a list
func (e *Encoder) List(key string, l []interface{}) {
	value, present := EncodeList(l)
	e.put(key, value, present)
}

// Raw - copy a value through unchanged
func (e *Encoder) Raw(key string, value interface{}) {
	e.m[key] = value
}

// Result - the accumulated map
func (e *Encoder) Result() Map {
	return e.m
}

// Decoder - read typed fields from a map
//
// the first failure is kept, reported by Err, and all later reads
// return default values
type Decoder struct {
	m   Map
	err error
}

// NewDecoder - read from m
func NewDecoder(m Map) *Decoder {
	return &Decoder{m: m}
}

// Err - the first failure, wrapped with its key
func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) fail(key string, err error) bool {
	if nil == err {
		return false
	}
	if nil == d.err {
		d.err = errors.Wrapf(err, "key: %q", key)
	}
	return true
}

func (d *Decoder) get(key string) interface{} {
	if nil != d.err {
		return nil
	}
	return d.m[key]
}

// Uint - read an unsigned integer
func (d *Decoder) Uint(key string) uint64 {
	v, err := DecodeUint(d.get(key))
	if d.fail(key, err) {
		return 0
	}
	return v
}

// Bytes - read a byte string
func (d *Decoder) Bytes(key string) []byte {
	v, err := DecodeBytes(d.get(key))
	if d.fail(key, err) {
		return nil
	}
	return v
}

// Fixed - read a byte string of exactly size bytes
func (d *Decoder) Fixed(key string, size int) []byte {
	v, err := DecodeFixed(d.get(key), size)
	if d.fail(key, err) {
		return make([]byte, size)
	}
	return v
}

// Fixed32 - read a 32 byte hash or key
func (d *Decoder) Fixed32(key string) [32]byte {
	var result [32]byte
	copy(result[:], d.Fixed(key, len(result)))
	return result
}

// String - read a text string
func (d *Decoder) String(key string) string {
	v, err := DecodeString(d.get(key))
	if d.fail(key, err) {
		return ""
	}
	return v
}

// Bool - read a flag
func (d *Decoder) Bool(key string) bool {
	v, err := DecodeBool(d.get(key))
	if d.fail(key, err) {
		return false
	}
	return v
}

// Address - read a raw 32 byte address
func (d *Decoder) Address(key string) address.Address {
	v, err := DecodeAddress(d.get(key))
	if d.fail(key, err) {
		return address.Zero
	}
	return v
}

// Map - read a nested map, nil when absent
func (d *Decoder) Map(key string) Map {
	v, err := DecodeMap(d.get(key))
	if d.fail(key, err) {
		return nil
	}
	return v
}

// List - read a list, nil when absent
func (d *Decoder) List(key string) []interface{} {
	v, err := DecodeList(d.get(key))
	if d.fail(key, err) {
		return nil
	}
	return v
}

// Fail - record a failure found by the caller while interpreting key
func (d *Decoder) Fail(key string, err error) {
	d.fail(key, err)
}
