// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
func (tree *Tree[K, V]) Search(key K) (*Node[K, V], bool) {
	p := tree.find(key)
	return p, nil != p
}

// Find - iterator positioned on key, or End() if key is not present
func (tree *Tree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{node: tree.find(key)}
}

// internal: iterative descent from the root
func (tree *Tree[K, V]) find(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
