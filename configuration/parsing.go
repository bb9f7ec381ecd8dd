// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	validator "gopkg.in/go-playground/validator.v8"

	"github.com/bitmark-inc/algotransact/constants"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "algotransact.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"transaction":     "info",
		logger.DefaultTag: "critical",
	}
)

// ProtocolType - network parameters the codec enforces
type ProtocolType struct {
	MaxTxGroupSize int    `gluamapper:"max_tx_group_size" toml:"max_tx_group_size" validate:"min=1"`
	MaxNoteBytes   int    `gluamapper:"max_note_bytes" toml:"max_note_bytes" validate:"min=0"`
	MinFee         uint64 `gluamapper:"min_fee" toml:"min_fee"`
	FeePerByte     uint64 `gluamapper:"fee_per_byte" toml:"fee_per_byte"`
}

// LoggerType - logging setup
type LoggerType struct {
	Directory string      `gluamapper:"directory" toml:"directory" validate:"required"`
	File      string      `gluamapper:"file" toml:"file" validate:"required"`
	Size      int         `gluamapper:"size" toml:"size" validate:"min=20000"`
	Count     int         `gluamapper:"count" toml:"count" validate:"min=1"`
	Console   bool        `gluamapper:"console" toml:"console"`
	Levels    LoglevelMap `gluamapper:"levels" toml:"levels"`
}

// Configuration - the whole file
type Configuration struct {
	Protocol ProtocolType `gluamapper:"protocol" toml:"protocol"`
	Logging  LoggerType   `gluamapper:"logging" toml:"logging"`
}

// DefaultProtocol - parameters of the current network
func DefaultProtocol() ProtocolType {
	return ProtocolType{
		MaxTxGroupSize: constants.DefaultMaxTxGroupSize,
		MaxNoteBytes:   constants.DefaultMaxNoteBytes,
		MinFee:         constants.DefaultMinFee,
		FeePerByte:     constants.DefaultFeePerByte,
	}
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		Protocol: DefaultProtocol(),
		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := readConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := Validate(options); nil != err {
		return nil, err
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// Validate - check the bounds declared on the configuration structure
func Validate(options *Configuration) error {
	if err := newValidator().Struct(options); nil != err {
		return errors.Wrap(err, "configuration")
	}
	return nil
}

// ValidateProtocol - check protocol parameters supplied without a file
func ValidateProtocol(protocol *ProtocolType) error {
	if err := newValidator().Struct(protocol); nil != err {
		return errors.Wrap(err, "protocol")
	}
	return nil
}

func newValidator() *validator.Validate {
	return validator.New(&validator.Config{TagName: "validate"})
}

// LoggerConfiguration - convert to the form expected by logger.Initialise
func (l LoggerType) LoggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: l.Directory,
		File:      l.File,
		Size:      l.Size,
		Count:     l.Count,
		Console:   l.Console,
		Levels:    l.Levels,
	}
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
