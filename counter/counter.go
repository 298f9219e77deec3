// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned event counter that is safe to update
// while readers take snapshots
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Reset - set the counter to zero, returns the value it held
func (ic *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(ic), 0)
}

// Set - a group of named counters
//
// names are fixed when the set is created so that reads and updates
// need no lock
type Set struct {
	names    []string
	counters []Counter
	index    map[string]int
}

// NewSet - create a set with one zero counter per name
func NewSet(names ...string) *Set {
	s := &Set{
		names:    make([]string, len(names)),
		counters: make([]Counter, len(names)),
		index:    make(map[string]int, len(names)),
	}
	copy(s.names, names)
	for i, name := range names {
		s.index[name] = i
	}
	return s
}

// Get - the counter for a name, nil if the name is not in the set
func (s *Set) Get(name string) *Counter {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return &s.counters[i]
}

// Snapshot - current value of every counter
func (s *Set) Snapshot() map[string]uint64 {
	m := make(map[string]uint64, len(s.names))
	for i, name := range s.names {
		m[name] = s.counters[i].Uint64()
	}
	return m
}

// Reset - zero every counter
func (s *Set) Reset() {
	for i := range s.counters {
		s.counters[i].Reset()
	}
}
