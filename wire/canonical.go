// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"

	"github.com/bitmark-inc/algotransact/fault"
)

// Map - a wire record, values restricted to uint64, []byte, string,
// bool, Map and []interface{}
type Map map[string]interface{}

// canonical msgpack: sorted keys, minimal integers, bin for bytes, str8 enabled
var handle = newHandle()

func newHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.Canonical = true
	h.WriteExt = true
	h.PositiveIntUnsigned = true
	h.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return h
}

// Marshal - canonical encoding of a wire map
func Marshal(m Map) (buffer []byte, err error) {
	defer func() {
		if r := recover(); nil != r {
			buffer = nil
			err = errors.Wrapf(fault.ErrInvalidWireValue, "encode panic: %v", r)
		}
	}()

	value, err := plain(m)
	if nil != err {
		return nil, err
	}

	buffer = make([]byte, 0, 256)
	err = codec.NewEncoderBytes(&buffer, handle).Encode(value)
	if nil != err {
		return nil, errors.Wrap(fault.ErrInvalidWireValue, err.Error())
	}
	return buffer, nil
}

// Unmarshal - decode a single msgpack map, the whole buffer must be consumed
func Unmarshal(buffer []byte) (m Map, err error) {
	defer func() {
		if r := recover(); nil != r {
			m = nil
			err = errors.Wrapf(fault.ErrMalformedEncoding, "decode panic: %v", r)
		}
	}()

	if 0 == len(buffer) {
		return nil, fault.ErrZeroLengthDecode
	}

	// capacity is capped so a truncated value cannot read into spare capacity
	var value interface{}
	decoder := codec.NewDecoderBytes(buffer[:len(buffer):len(buffer)], handle)
	err = decoder.Decode(&value)
	if nil != err {
		return nil, errors.Wrap(fault.ErrMalformedEncoding, err.Error())
	}
	read := decoder.NumBytesRead()
	if read > len(buffer) {
		return nil, errors.Wrapf(fault.ErrMalformedEncoding, "read %d of %d bytes", read, len(buffer))
	}
	if read != len(buffer) {
		return nil, errors.Wrapf(fault.ErrTrailingData, "%d of %d bytes", read, len(buffer))
	}

	normalised, err := native(value)
	if nil != err {
		return nil, err
	}
	m, ok := normalised.(Map)
	if !ok {
		return nil, fault.ErrInvalidMap
	}
	return m, nil
}

// convert a wire tree to the plain types the encoder sorts canonically,
// rejecting anything that is not a wire value
func plain(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case Map:
		return plainMap(v)
	case map[string]interface{}:
		return plainMap(v)
	case []interface{}:
		list := make([]interface{}, len(v))
		for i, item := range v {
			p, err := plain(item)
			if nil != err {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			list[i] = p
		}
		return list, nil
	case []byte:
		// a nil slice would be written as msgpack nil
		if nil == v {
			return []byte{}, nil
		}
		return v, nil
	case uint64, string, bool:
		return v, nil
	default:
		return nil, errors.Wrapf(fault.ErrInvalidWireValue, "type: %T", value)
	}
}

func plainMap(m map[string]interface{}) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(m))
	for key, item := range m {
		p, err := plain(item)
		if nil != err {
			return nil, errors.Wrapf(err, "key: %q", key)
		}
		result[key] = p
	}
	return result, nil
}

// convert a decoded tree to wire values
//
// integers of any width become uint64, nil values are dropped
func native(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		m := make(Map, len(v))
		for key, item := range v {
			if nil == item {
				continue
			}
			n, err := native(item)
			if nil != err {
				return nil, errors.Wrapf(err, "key: %q", key)
			}
			m[key] = n
		}
		return m, nil
	case map[interface{}]interface{}:
		m := make(Map, len(v))
		for key, item := range v {
			s, ok := key.(string)
			if !ok {
				return nil, errors.Wrapf(fault.ErrInvalidMapKey, "key type: %T", key)
			}
			if nil == item {
				continue
			}
			n, err := native(item)
			if nil != err {
				return nil, errors.Wrapf(err, "key: %q", s)
			}
			m[s] = n
		}
		return m, nil
	case []interface{}:
		list := make([]interface{}, len(v))
		for i, item := range v {
			n, err := native(item)
			if nil != err {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			list[i] = n
		}
		return list, nil
	case []byte, string, bool:
		return v, nil
	case nil:
		return nil, nil
	}
	u, err := DecodeUint(value)
	if nil != err {
		return nil, errors.Wrapf(err, "type: %T", value)
	}
	return u, nil
}

// Clone - deep copy of a wire map, byte strings included
func (m Map) Clone() Map {
	if nil == m {
		return nil
	}
	return cloneValue(m).(Map)
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case Map:
		c := make(Map, len(v))
		for key, item := range v {
			c[key] = cloneValue(item)
		}
		return c
	case map[string]interface{}:
		c := make(map[string]interface{}, len(v))
		for key, item := range v {
			c[key] = cloneValue(item)
		}
		return c
	case []interface{}:
		c := make([]interface{}, len(v))
		for i, item := range v {
			c[i] = cloneValue(item)
		}
		return c
	case []byte:
		if nil == v {
			return v
		}
		return append([]byte{}, v...)
	default:
		return v
	}
}
