// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"math/rand"
	"slices"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/store"
)

// Result - output of a churn run
type Result struct {
	Seed       int64            `json:"seed"`
	Operations int              `json:"operations"`
	Checks     int              `json:"checks"`
	Elapsed    string           `json:"elapsed"`
	Store      store.Statistics `json:"store"`
	Memory     *MemoryStats     `json:"memory,omitempty"`
}

// churn - random puts and deletes mirrored in a map
//
// one operation in three is a delete; the store is checked every
// CheckEvery operations and once more at the end; a positive Rate
// bounds operations per second
func churn(options *configuration.Configuration, log *logger.L) (Result, error) {

	bench := options.Bench
	s := store.New[int, int](options.Store.Name, cmp.Compare[int])
	s.SetPoolLimit(options.Store.PoolLimit)

	r := rand.New(rand.NewSource(bench.Seed))
	shadow := make(map[int]int, bench.KeyRange)

	result := Result{
		Seed: bench.Seed,
	}

	limiter := newLimiter(bench.Rate)

	start := time.Now()
	for i := 0; i < bench.Count; i += 1 {
		if err := limit(limiter); nil != err {
			return finish(result, s, start), err
		}
		key := r.Intn(bench.KeyRange)

		if 0 == r.Intn(3) {
			_, ok := s.Delete(key)
			_, expected := shadow[key]
			if ok != expected {
				log.Errorf("delete: %d  result: %t  expected: %t", key, ok, expected)
				return finish(result, s, start), fault.ErrNodeCount
			}
			delete(shadow, key)
		} else {
			s.Put(key, i)
			shadow[key] = i
		}
		result.Operations += 1

		if bench.CheckEvery > 0 && 0 == (i+1)%bench.CheckEvery {
			result.Checks += 1
			if err := s.Check(); nil != err {
				log.Errorf("check after: %d operations  error: %s", i+1, err)
				return finish(result, s, start), err
			}
		}
	}

	result.Checks += 1
	if err := s.Check(); nil != err {
		return finish(result, s, start), err
	}
	if err := compareContents(s, shadow); nil != err {
		log.Errorf("contents differ: %s", err)
		return finish(result, s, start), err
	}

	log.Infof("churn: %d operations  %d items", result.Operations, s.Len())
	return finish(result, s, start), nil
}

func finish(result Result, s *store.Store[int, int], start time.Time) Result {
	result.Elapsed = time.Since(start).String()
	result.Store = s.Statistics()
	return result
}

// the store must hold exactly the map contents
func compareContents(s *store.Store[int, int], shadow map[int]int) error {
	if s.Len() != len(shadow) {
		return fault.ErrNodeCount
	}

	keys := make([]int, 0, len(shadow))
	for key := range shadow {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	if !slices.Equal(keys, s.Keys()) {
		return fault.ErrKeyOrder
	}

	for key, value := range shadow {
		v, err := s.Get(key)
		if nil != err {
			return err
		}
		if v != value {
			return fault.ErrValueMismatch
		}
	}
	return nil
}
