// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
//
// only the links are followed, so no key comparisons are needed
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	up := p.up
	for up != nil && p == up.right {
		p = up
		up = up.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p.left != nil {
		return p.left.last()
	}
	up := p.up
	for up != nil && p == up.left {
		p = up
		up = up.up
	}
	return up
}

// Iterator - a position in the in-order sequence of a tree
//
// the zero Iterator is the end position
type Iterator[K, V any] struct {
	node *Node[K, V]
}

// Begin - iterator on the lowest key, End() for an empty tree
func (tree *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: tree.First()}
}

// End - the position after the highest key
func (tree *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// IsEnd - true if the iterator is not on any item
func (it Iterator[K, V]) IsEnd() bool {
	return nil == it.node
}

// Equal - true if both iterators are on the same node
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Key - key of the current item, panics at the end position
func (it Iterator[K, V]) Key() K {
	return it.node.key
}

// Value - value of the current item, panics at the end position
func (it Iterator[K, V]) Value() V {
	return it.node.value
}

// SetValue - overwrite the value of the current item
func (it Iterator[K, V]) SetValue(value V) {
	it.node.value = value
}

// Node - the node under the iterator, nil at the end position
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// Next - advance to the in-order successor, End() after the last item
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if nil == it.node {
		return it
	}
	return Iterator[K, V]{node: it.node.Next()}
}

// Prev - move to the in-order predecessor, End() before the first item
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if nil == it.node {
		return it
	}
	return Iterator[K, V]{node: it.node.Prev()}
}

// All - in-order sequence of key/value pairs
//
// the tree must not be modified during the loop
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.First(); nil != p; p = p.Next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward - reverse in-order sequence of key/value pairs
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.Last(); nil != p; p = p.Prev() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
