// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultStoreName = "avl"
	defaultPoolLimit = 1024

	defaultBenchCount      = 10000
	defaultBenchKeyRange   = 100000
	defaultBenchCheckEvery = 1000

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// StoreType - settings for the store the tools operate on
type StoreType struct {
	Name      string `gluamapper:"name" json:"name"`
	Numeric   bool   `gluamapper:"numeric" json:"numeric"`
	PoolLimit int    `gluamapper:"pool_limit" json:"pool_limit"`
}

// BenchType - settings for randomised churn runs
type BenchType struct {
	Count      int   `gluamapper:"count" json:"count"`
	Seed       int64 `gluamapper:"seed" json:"seed"`
	KeyRange   int   `gluamapper:"key_range" json:"key_range"`
	CheckEvery int   `gluamapper:"check_every" json:"check_every"`
	Rate       int   `gluamapper:"rate" json:"rate"`
}

// Configuration - everything a configuration file can set
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Store         StoreType            `gluamapper:"store" json:"store"`
	Bench         BenchType            `gluamapper:"bench" json:"bench"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// create a configuration with all defaults set
func newConfiguration(dataDirectory string) *Configuration {
	return &Configuration{
		DataDirectory: dataDirectory,

		Store: StoreType{
			Name:      defaultStoreName,
			Numeric:   false,
			PoolLimit: defaultPoolLimit,
		},

		Bench: BenchType{
			Count:      defaultBenchCount,
			Seed:       0, // zero selects a time based seed
			KeyRange:   defaultBenchKeyRange,
			CheckEvery: defaultBenchCheckEvery,
			Rate:       0, // unlimited
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// Default - configuration for running without a file, the log
// directory is created under dataDirectory
func Default(dataDirectory string) (*Configuration, error) {
	options := newConfiguration(dataDirectory)
	if err := options.validate(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// GetConfiguration - read, decode and verify a configuration file
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := newConfiguration(defaultDataDirectory)

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.validate(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// check values and expand paths, baseDirectory replaces a data
// directory of "."
func (options *Configuration) validate(baseDirectory string) error {

	if "" == options.Store.Name {
		options.Store.Name = defaultStoreName
	}
	if options.Store.PoolLimit < 0 {
		return fault.ErrInvalidPoolLimit
	}
	if options.Bench.Count <= 0 || options.Bench.KeyRange <= 0 {
		return fault.ErrInvalidCount
	}
	if options.Bench.CheckEvery < 0 {
		options.Bench.CheckEvery = 0
	}
	if options.Bench.Rate < 0 {
		options.Bench.Rate = 0
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return errors.New(fmt.Sprintf("Path: %q is not a valid directory", options.DataDirectory))
	} else if "." == options.DataDirectory {
		options.DataDirectory = baseDirectory
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return errors.New(fmt.Sprintf("Files: %q is not plain name", options.Logging.File))
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0o700); nil != err {
		return err
	}

	return nil
}
