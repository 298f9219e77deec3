// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance int8        // -1, 0, +1 (±2 only while rebalancing)
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		return &Node[K, V]{
			key:     key,
			value:   value,
			balance: 0,
		}
	}
	p := tree.pool
	tree.pool = p.up
	p.key = key
	p.value = value
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
//
// every link is cleared first, so a stale *Node held by a caller can
// no longer reach into the tree
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.balance = 0

	if tree.freeNodes >= tree.poolLimit {
		node.up = nil
		return
	}

	node.up = tree.pool // use as free list pointer
	tree.pool = node
	tree.freeNodes += 1
}

// PoolSize - number of reclaimed nodes waiting for reuse
func (tree *Tree[K, V]) PoolSize() int {
	return tree.freeNodes
}
