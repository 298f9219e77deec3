// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/script"
)

const (
	testingDirName = "testing"
)

// Test main entrypoint
func TestMain(m *testing.M) {
	if err := setup(); nil != err {
		os.Exit(1)
	}
	result := m.Run()
	teardown()
	os.Exit(result)
}

func setup() error {
	removeTestFiles()
	if err := os.Mkdir(testingDirName, 0o700); nil != err {
		return err
	}

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}

	return logger.Initialise(logging)
}

func teardown() {
	logger.Finalise()
	removeTestFiles()
}

func removeTestFiles() {
	os.RemoveAll(testingDirName)
}

// output buffer shared with the watch goroutine
type syncBuffer struct {
	sync.Mutex
	b bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.Lock()
	defer s.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.Lock()
	defer s.Unlock()
	return s.b.String()
}

// poll until the output contains text
func waitFor(t *testing.T, w *syncBuffer, text string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(w.String(), text) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for: %q  output: %q", text, w.String())
}

func testMetadata(name string, numeric bool) (*metadata, *syncBuffer, *syncBuffer) {
	w := &syncBuffer{}
	e := &syncBuffer{}
	m := &metadata{
		config: &configuration.Configuration{
			Store: configuration.StoreType{
				Name:      name,
				PoolLimit: 8,
			},
		},
		numeric: numeric,
		verbose: false,
		scripts: script.NewCache(),
		e:       e,
		w:       w,
	}
	return m, w, e
}
