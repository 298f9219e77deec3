// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// default number of released nodes kept for reuse
const defaultPoolLimit = 1024

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root      *Node[K, V]
	count     int
	compare   func(K, K) int
	observer  Observer
	pool      *Node[K, V] // linked list of reclaimed nodes
	freeNodes int         // number of nodes in the pool
	poolLimit int
}

// New - create an initially empty tree ordered by the natural
// ordering of the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare which
// must return a negative number, zero or a positive number when a is
// less than, equal to or greater than b
func NewFunc[K, V any](compare func(a K, b K) int) *Tree[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:      nil,
		count:     0,
		compare:   compare,
		poolLimit: defaultPoolLimit,
	}
}

// SetObserver - register a receiver for rotation events, nil to remove
func (tree *Tree[K, V]) SetObserver(observer Observer) {
	tree.observer = observer
}

// SetPoolLimit - maximum number of released nodes kept for reuse,
// zero disables reuse
func (tree *Tree[K, V]) SetPoolLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	tree.poolLimit = limit
	for tree.freeNodes > limit {
		p := tree.pool
		tree.pool = p.up
		p.up = nil
		tree.freeNodes -= 1
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[K, V]) Balance() int {
	return int(p.balance)
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
