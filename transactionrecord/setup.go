// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/algotransact/configuration"
	"github.com/bitmark-inc/algotransact/fault"
)

// globals for the codec
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	protocol    configuration.ProtocolType
	initialised bool
}

// global data
var globalData = globalDataType{
	protocol: configuration.DefaultProtocol(),
}

// Initialise - install protocol parameters and open the log channel
//
// before this is called the default parameters apply and nothing is logged
func Initialise(protocol configuration.ProtocolType) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if err := configuration.ValidateProtocol(&protocol); nil != err {
		return err
	}

	globalData.log = logger.New("transaction")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	globalData.protocol = protocol
	globalData.initialised = true

	globalData.log.Infof("max group size: %d  max note bytes: %d", protocol.MaxTxGroupSize, protocol.MaxNoteBytes)
	return nil
}

// Finalise - restore the defaults and flush the log
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.log = nil
	globalData.protocol = configuration.DefaultProtocol()
	globalData.initialised = false

	return nil
}

// Protocol - the parameters in force
func Protocol() configuration.ProtocolType {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.protocol
}

func debugf(format string, arguments ...interface{}) {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil != globalData.log {
		globalData.log.Debugf(format, arguments...)
	}
}

func warnf(format string, arguments ...interface{}) {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil != globalData.log {
		globalData.log.Warnf(format, arguments...)
	}
}
