// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"io"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
)

// names of the operation counters
const (
	countInsert    = "insert"
	countOverwrite = "overwrite"
	countDelete    = "delete"
	countMiss      = "miss"
	countClear     = "clear"
)

// Store - a tree shared between goroutines
type Store[K, V any] struct {
	sync.RWMutex

	name  string
	log   *logger.L
	tree  *avl.Tree[K, V]
	stats *counter.Set
}

// New - create an empty store
func New[K, V any](name string, compare func(K, K) int) *Store[K, V] {
	names := []string{
		countInsert,
		countOverwrite,
		countDelete,
		countMiss,
		countClear,
		avl.RotateLeft.String(),
		avl.RotateRight.String(),
		avl.RotateLeftRight.String(),
		avl.RotateRightLeft.String(),
	}

	s := &Store[K, V]{
		name:  name,
		log:   logger.New(name),
		tree:  avl.NewFunc[K, V](compare),
		stats: counter.NewSet(names...),
	}
	s.tree.SetObserver(&rotations{log: s.log, stats: s.stats})

	s.log.Infof("created store: %q", name)
	return s
}

// Name - the name given to New
func (s *Store[K, V]) Name() string {
	return s.name
}

// SetPoolLimit - bound the number of released nodes kept for reuse
func (s *Store[K, V]) SetPoolLimit(limit int) {
	s.Lock()
	defer s.Unlock()

	s.tree.SetPoolLimit(limit)
	s.log.Debugf("pool limit: %d", limit)
}

// Put - add or overwrite an item, true if it was added
func (s *Store[K, V]) Put(key K, value V) bool {
	s.Lock()
	defer s.Unlock()

	added := s.tree.Insert(key, value)
	if added {
		s.stats.Get(countInsert).Increment()
		s.log.Debugf("insert: %v", key)
	} else {
		s.stats.Get(countOverwrite).Increment()
		s.log.Debugf("overwrite: %v", key)
	}
	return added
}

// Delete - remove an item, returning its value
func (s *Store[K, V]) Delete(key K) (V, bool) {
	s.Lock()
	defer s.Unlock()

	value, ok := s.tree.Delete(key)
	if ok {
		s.stats.Get(countDelete).Increment()
		s.log.Debugf("delete: %v", key)
	} else {
		s.stats.Get(countMiss).Increment()
		s.log.Debugf("delete: %v  not present", key)
	}
	return value, ok
}

// Get - value for a key or fault.ErrKeyNotFound
func (s *Store[K, V]) Get(key K) (V, error) {
	s.RLock()
	defer s.RUnlock()

	value, err := s.tree.Get(key)
	if nil != err {
		s.stats.Get(countMiss).Increment()
	}
	return value, err
}

// Has - true if the key is present
func (s *Store[K, V]) Has(key K) bool {
	s.RLock()
	defer s.RUnlock()

	return s.tree.Has(key)
}

// Len - number of items
func (s *Store[K, V]) Len() int {
	s.RLock()
	defer s.RUnlock()

	return s.tree.Count()
}

// Clear - remove all items
func (s *Store[K, V]) Clear() {
	s.Lock()
	defer s.Unlock()

	n := s.tree.Count()
	s.tree.Clear()
	s.stats.Get(countClear).Increment()
	s.log.Infof("cleared: %d items", n)
}

// Walk - call fn for each item in key order until it returns false
//
// the store is read locked for the whole walk so fn must not call
// back into the store
func (s *Store[K, V]) Walk(fn func(key K, value V) bool) {
	s.RLock()
	defer s.RUnlock()

	for key, value := range s.tree.All() {
		if !fn(key, value) {
			return
		}
	}
}

// Keys - all keys in order
func (s *Store[K, V]) Keys() []K {
	s.RLock()
	defer s.RUnlock()

	keys := make([]K, 0, s.tree.Count())
	for key := range s.tree.All() {
		keys = append(keys, key)
	}
	return keys
}

// Dump - draw the tree, returns its depth
func (s *Store[K, V]) Dump(w io.Writer) int {
	s.RLock()
	defer s.RUnlock()

	return s.tree.Print(w, true)
}
