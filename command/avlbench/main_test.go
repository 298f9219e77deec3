// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"cmp"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/store"
)

const (
	testingDirName = "testing"
)

// Test main entrypoint
func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	if err := os.Mkdir(testingDirName, 0o700); nil != err {
		os.Exit(1)
	}

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		os.Exit(1)
	}

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

func testConfiguration(count int, seed int64, checkEvery int) *configuration.Configuration {
	return &configuration.Configuration{
		Store: configuration.StoreType{
			Name:      "bench",
			PoolLimit: 64,
		},
		Bench: configuration.BenchType{
			Count:      count,
			Seed:       seed,
			KeyRange:   500,
			CheckEvery: checkEvery,
		},
	}
}

func TestChurn(t *testing.T) {
	log := logger.New("test")

	result, err := churn(testConfiguration(5000, 99, 250), log)
	assert.Nil(t, err, "churn error")
	assert.Equal(t, int64(99), result.Seed, "wrong seed")
	assert.Equal(t, 5000, result.Operations, "wrong operation count")
	assert.Equal(t, 5000/250+1, result.Checks, "wrong check count")
	assert.Equal(t, "bench", result.Store.Name, "wrong store")
	assert.True(t, result.Store.Items > 0, "store is empty")
	assert.True(t, result.Store.Items <= 500, "more items than keys")
	assert.NotEqual(t, "", result.Elapsed, "no elapsed time")

	// same seed, same result
	again, err := churn(testConfiguration(5000, 99, 0), log)
	assert.Nil(t, err, "churn error")
	assert.Equal(t, result.Store.Items, again.Store.Items, "seed did not repeat the run")
	assert.Equal(t, 1, again.Checks, "only the final check expected")
}

func TestCompareContents(t *testing.T) {
	s := store.New[int, int]("compare", cmp.Compare[int])
	s.Put(1, 10)
	s.Put(2, 20)

	assert.Nil(t, compareContents(s, map[int]int{1: 10, 2: 20}), "equal contents")
	assert.Equal(t, fault.ErrNodeCount, compareContents(s, map[int]int{1: 10}), "length mismatch")
	assert.Equal(t, fault.ErrKeyOrder, compareContents(s, map[int]int{1: 10, 3: 30}), "key mismatch")
	assert.Equal(t, fault.ErrValueMismatch, compareContents(s, map[int]int{1: 10, 2: 21}), "value mismatch")
}

func TestApplyOptions(t *testing.T) {
	bench := configuration.BenchType{Count: 10, Seed: 5, KeyRange: 100, CheckEvery: 1}

	err := applyOptions(&bench, map[string][]string{
		"count":       {"20", "30"},
		"check-every": {"0"},
	})
	assert.Nil(t, err, "apply error")
	assert.Equal(t, 30, bench.Count, "last count should win")
	assert.Equal(t, int64(5), bench.Seed, "seed changed")
	assert.Equal(t, 0, bench.CheckEvery, "check interval not set")

	assert.Equal(t, fault.ErrInvalidCount, applyOptions(&bench, map[string][]string{"count": {"0"}}), "zero count accepted")
	assert.Equal(t, fault.ErrInvalidCount, applyOptions(&bench, map[string][]string{"check-every": {"-2"}}), "negative interval accepted")
	assert.NotNil(t, applyOptions(&bench, map[string][]string{"seed": {"x"}}), "bad seed accepted")

	bench.Seed = 0
	assert.Nil(t, applyOptions(&bench, map[string][]string{}), "apply error")
	assert.NotEqual(t, int64(0), bench.Seed, "time based seed not set")
}

func TestMemstats(t *testing.T) {
	stats := memstats(logger.New("test"))
	assert.True(t, stats.SystemMB >= stats.AllocatedMB, "system smaller than allocated")
}

func TestRateLimit(t *testing.T) {
	assert.Nil(t, newLimiter(0), "zero rate should be unlimited")
	assert.Nil(t, limit(nil), "unlimited returned error")

	options := testConfiguration(20, 7, 0)
	options.Bench.Rate = 200

	start := time.Now()
	result, err := churn(options, logger.New("test"))
	elapsed := time.Since(start)

	assert.Nil(t, err, "churn error")
	assert.Equal(t, 20, result.Operations, "wrong operation count")
	// the first operation is immediate, the other 19 are 5ms apart
	assert.True(t, elapsed >= 80*time.Millisecond, "not rate limited: %s", elapsed)
}

func TestWriteMetrics(t *testing.T) {
	result, err := churn(testConfiguration(300, 3, 100), logger.New("test"))
	assert.Nil(t, err, "churn error")

	buffer := &bytes.Buffer{}
	assert.Nil(t, writeMetrics(buffer, result), "metrics error")

	text := buffer.String()
	assert.Contains(t, text, "# TYPE avl_store_items gauge", "items type missing")
	assert.Contains(t, text, `avl_store_items{store="bench"}`, "items sample missing")
	assert.Contains(t, text, `avl_bench_operations_total{store="bench"} 300`, "operations sample missing")
	assert.Contains(t, text, `avl_bench_checks_total{store="bench"} 4`, "checks sample missing")
	assert.Contains(t, text, "# TYPE avl_store_events_total counter", "events type missing")
	assert.Contains(t, text, `avl_store_events_total{store="bench",event="insert"}`, "insert events missing")
}
