// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

const fullConfiguration = `
local M = {}

M.data_directory = "."

M.store = {
    name = "words",
    numeric = true,
    pool_limit = 16,
}

M.bench = {
    count = 500,
    seed = 12345,
    key_range = 2000,
    check_every = 50,
    rate = 200,
}

M.logging = {
    directory = "logs",
    file = "words.log",
    size = 4096,
    count = 2,
    levels = {
        main = "debug",
    },
}

return M
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	fileName := filepath.Join(dir, name)
	if err := os.WriteFile(fileName, []byte(content), 0o600); nil != err {
		t.Fatalf("write %q error: %s", fileName, err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "avl.conf", fullConfiguration)

	options, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		t.FailNow()
	}

	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "data directory not resolved")
	assert.Equal(t, "words", options.Store.Name, "wrong store name")
	assert.True(t, options.Store.Numeric, "numeric not set")
	assert.Equal(t, 16, options.Store.PoolLimit, "wrong pool limit")

	assert.Equal(t, 500, options.Bench.Count, "wrong count")
	assert.Equal(t, int64(12345), options.Bench.Seed, "wrong seed")
	assert.Equal(t, 2000, options.Bench.KeyRange, "wrong key range")
	assert.Equal(t, 50, options.Bench.CheckEvery, "wrong check interval")
	assert.Equal(t, 200, options.Bench.Rate, "wrong rate")

	assert.Equal(t, filepath.Join(dir, "logs"), options.Logging.Directory, "log directory not absolute")
	assert.Equal(t, "words.log", options.Logging.File, "wrong log file")
	assert.EqualValues(t, 4096, options.Logging.Size, "wrong log size")
	assert.Equal(t, "debug", options.Logging.Levels["main"], "wrong log level")

	info, err := os.Stat(options.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestDefaultsKept(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "empty.conf", "return {}\n")

	options, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		t.FailNow()
	}

	assert.Equal(t, "avl", options.Store.Name, "default name lost")
	assert.False(t, options.Store.Numeric, "numeric default changed")
	assert.Equal(t, 1024, options.Store.PoolLimit, "default pool limit lost")
	assert.Equal(t, 10000, options.Bench.Count, "default count lost")
	assert.Equal(t, "avltree.log", options.Logging.File, "default log file lost")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "default log directory")
}

func TestArgGlobal(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "arg.conf", "return { store = { name = arg[0] } }\n")

	options, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		t.FailNow()
	}
	assert.Equal(t, fileName, options.Store.Name, "arg[0] is not the file name")
}

func TestInvalidConfigurations(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		title   string
		content string
		err     error
	}{
		{"negative pool", "return { store = { pool_limit = -1 } }\n", fault.ErrInvalidPoolLimit},
		{"zero count", "return { bench = { count = 0 } }\n", fault.ErrInvalidCount},
		{"not a table", "return 42\n", fault.ErrConfigurationNotTable},
	}

	for i, item := range tests {
		fileName := writeFile(t, dir, "bad.conf", item.content)
		_, err := configuration.GetConfiguration(fileName)
		assert.Equal(t, item.err, err, "%d: %s", i, item.title)
	}

	fileName := writeFile(t, dir, "path.conf", `return { logging = { file = "sub/x.log" } }`)
	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "log file with a path accepted")

	fileName = writeFile(t, dir, "syntax.conf", "return {\n")
	_, err = configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "syntax error accepted")

	_, err = configuration.GetConfiguration(filepath.Join(dir, "missing.conf"))
	assert.NotNil(t, err, "missing file accepted")
}

func TestParseRequiresStructPointer(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "x.conf", "return {}\n")

	var s struct{}
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, s), "non pointer accepted")

	var n int
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &n), "pointer to int accepted")
}

func TestDefault(t *testing.T) {
	dir := t.TempDir()

	options, err := configuration.Default(dir)
	if !assert.Nil(t, err, "default error") {
		t.FailNow()
	}
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "wrong log directory")

	_, err = configuration.Default(filepath.Join(dir, "does-not-exist"))
	assert.NotNil(t, err, "missing data directory accepted")
}
