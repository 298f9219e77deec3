// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// IsBalanced - true if the heights of the two sub-trees of every node
// differ by at most one
//
// only the shape is examined, the stored balance factors are ignored
func (tree *Tree[K, V]) IsBalanced() bool {
	return -1 != balancedHeight(tree.root)
}

// internal: post-order height, -1 as soon as any sub-tree is out of
// balance
func balancedHeight[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	l := balancedHeight(p.left)
	if -1 == l {
		return -1
	}
	r := balancedHeight(p.right)
	if -1 == r {
		return -1
	}
	if l-r > 1 || r-l > 1 {
		return -1
	}
	return 1 + max(l, r)
}

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckBalance - check that every stored balance factor is the
// actual height difference and within -1…+1
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns the height of the sub-tree
func checkBalance[K, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	l, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	r, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	if r-l != int(p.balance) || p.balance < -1 || p.balance > 1 {
		return 0, false
	}
	return 1 + max(l, r), true
}

// CheckOrder - check that an in-order walk gives strictly
// increasing keys
func (tree *Tree[K, V]) CheckOrder() bool {
	p := tree.First()
	if nil == p {
		return true
	}
	for q := p.Next(); nil != q; p, q = q, q.Next() {
		if tree.compare(p.key, q.key) >= 0 {
			return false
		}
	}
	return true
}

// CheckCount - check that the node count matches the number of nodes
func (tree *Tree[K, V]) CheckCount() bool {
	n := 0
	for p := tree.First(); nil != p; p = p.Next() {
		n += 1
	}
	return n == tree.count
}
