// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
)

// Statistics - a snapshot of a store
type Statistics struct {
	Name     string            `json:"name"`
	Items    int               `json:"items"`
	Height   int               `json:"height"`
	PoolSize int               `json:"pool_size"`
	Counters map[string]uint64 `json:"counters"`
}

// Statistics - current size and operation counts
func (s *Store[K, V]) Statistics() Statistics {
	s.RLock()
	defer s.RUnlock()

	return Statistics{
		Name:     s.name,
		Items:    s.tree.Count(),
		Height:   s.tree.Height(),
		PoolSize: s.tree.PoolSize(),
		Counters: s.stats.Snapshot(),
	}
}

// ResetStatistics - zero the operation counts
func (s *Store[K, V]) ResetStatistics() {
	s.stats.Reset()
}

// rotations - tree observer counting rebalancing by kind
type rotations struct {
	log   *logger.L
	stats *counter.Set
}

func (r *rotations) Rotated(kind avl.Rotation, pivot interface{}) {
	if c := r.stats.Get(kind.String()); nil != c {
		c.Increment()
	}
	r.log.Tracef("rotate %s at: %v", kind, pivot)
}
