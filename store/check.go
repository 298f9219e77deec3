// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - run all tree diagnostics, returns the first failure
func (s *Store[K, V]) Check() error {
	s.RLock()
	defer s.RUnlock()

	checks := []struct {
		ok  func() bool
		err error
	}{
		{s.tree.CheckUp, fault.ErrParentLink},
		{s.tree.IsBalanced, fault.ErrTreeUnbalanced},
		{s.tree.CheckBalance, fault.ErrBalanceMismatch},
		{s.tree.CheckOrder, fault.ErrKeyOrder},
		{s.tree.CheckCount, fault.ErrNodeCount},
	}

	for _, c := range checks {
		if !c.ok() {
			s.log.Errorf("check failed: %s", c.err)
			return c.err
		}
	}
	s.log.Debugf("check passed: %d items", s.tree.Count())
	return nil
}
