// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing node with the same key
//
// returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	if nil == tree.root {
		tree.root = tree.newNode(key, value)
		tree.count += 1
		return true
	}

	p := tree.root
	for {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			if nil != p.left {
				p = p.left
				continue
			}
			n := tree.newNode(key, value)
			n.up = p
			p.left = n
			tree.attached(p, n)
			return true

		case c > 0: // key > p.key
			if nil != p.right {
				p = p.right
				continue
			}
			n := tree.newNode(key, value)
			n.up = p
			p.right = n
			tree.attached(p, n)
			return true

		default:
			p.value = value
			return false
		}
	}
}

// account for a new leaf n just attached below parent
func (tree *Tree[K, V]) attached(parent *Node[K, V], n *Node[K, V]) {
	tree.count += 1

	// parent was leaning, the new leaf filled its short side
	if 0 != parent.balance {
		parent.balance = 0
		return
	}

	if n == parent.left {
		parent.balance = -1
	} else {
		parent.balance = +1
	}
	tree.insertionRebalance(parent, n)
}

// insertionRebalance - parent's sub-tree has grown by one level and
// n is the child of parent on the growing side
//
// walks up until the growth is absorbed or a single rotation (or
// double rotation) restores the height the sub-tree had before the
// insert, after which no ancestor can be affected
func (tree *Tree[K, V]) insertionRebalance(parent *Node[K, V], n *Node[K, V]) {
	for {
		grandparent := parent.up
		if nil == grandparent {
			return
		}

		if parent == grandparent.left {
			// left branch has grown
			grandparent.balance -= 1
			switch grandparent.balance {
			case 0:
				return
			case -1:
				n, parent = parent, grandparent
				continue
			}

			if n == parent.left {
				// single LL rotation
				tree.rotateRight(grandparent)
				parent.balance = 0
				grandparent.balance = 0
				tree.notify(RotateRight, grandparent)
			} else {
				// double LR rotation
				tree.rotateLeft(parent)
				tree.rotateRight(grandparent)
				switch n.balance {
				case -1:
					parent.balance = 0
					grandparent.balance = +1
				case 0:
					parent.balance = 0
					grandparent.balance = 0
				default:
					parent.balance = -1
					grandparent.balance = 0
				}
				n.balance = 0
				tree.notify(RotateLeftRight, grandparent)
			}
			return
		}

		// right branch has grown
		grandparent.balance += 1
		switch grandparent.balance {
		case 0:
			return
		case +1:
			n, parent = parent, grandparent
			continue
		}

		if n == parent.right {
			// single RR rotation
			tree.rotateLeft(grandparent)
			parent.balance = 0
			grandparent.balance = 0
			tree.notify(RotateLeft, grandparent)
		} else {
			// double RL rotation
			tree.rotateRight(parent)
			tree.rotateLeft(grandparent)
			switch n.balance {
			case +1:
				parent.balance = 0
				grandparent.balance = -1
			case 0:
				parent.balance = 0
				grandparent.balance = 0
			default:
				parent.balance = +1
				grandparent.balance = 0
			}
			n.balance = 0
			tree.notify(RotateRightLeft, grandparent)
		}
		return
	}
}
