// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or the zero value and
// false if the key was not in the tree (the tree is not changed)
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	q := tree.find(key)
	if nil == q { // key not in tree
		var zero V
		return zero, false
	}
	value := q.value // preserve the value part

	// two children: take over the position of the in-order
	// predecessor, which has no right child
	if nil != q.left && nil != q.right {
		tree.swap(q, q.left.last())
	}

	child := q.left
	if nil != q.right {
		child = q.right
	}

	parent := q.up
	delta := int8(0)
	if nil != parent {
		if q == parent.left {
			delta = +1 // left side shrank
		} else {
			delta = -1 // right side shrank
		}
	}
	tree.replaceChild(parent, q, child)

	tree.freeNode(q) // return deleted node to pool
	tree.count -= 1

	tree.removalRebalance(parent, delta)
	return value, true
}

// removalRebalance - one sub-tree of p has shrunk by one level,
// delta is +1 for the left sub-tree and -1 for the right
//
// unlike insertion a rotation does not necessarily end the walk: the
// rotated sub-tree can still be one level lower than before
func (tree *Tree[K, V]) removalRebalance(p *Node[K, V], delta int8) {
	for nil != p {
		parent := p.up
		next := int8(-1)
		if nil != parent && p == parent.left {
			next = +1
		}

		switch p.balance + delta {
		case -2: // left heavy, rebalance
			p1 := p.left
			if p1.balance <= 0 {
				// single LL rotation
				tree.rotateRight(p)
				tree.notify(RotateRight, p)
				if 0 == p1.balance {
					p.balance = -1
					p1.balance = +1
					return // height unchanged
				}
				p.balance = 0
				p1.balance = 0
			} else {
				// double LR rotation
				p2 := p1.right
				tree.rotateLeft(p1)
				tree.rotateRight(p)
				switch p2.balance {
				case -1:
					p.balance = +1
					p1.balance = 0
				case 0:
					p.balance = 0
					p1.balance = 0
				default:
					p.balance = 0
					p1.balance = -1
				}
				p2.balance = 0
				tree.notify(RotateLeftRight, p)
			}

		case +2: // right heavy, rebalance
			p1 := p.right
			if p1.balance >= 0 {
				// single RR rotation
				tree.rotateLeft(p)
				tree.notify(RotateLeft, p)
				if 0 == p1.balance {
					p.balance = +1
					p1.balance = -1
					return // height unchanged
				}
				p.balance = 0
				p1.balance = 0
			} else {
				// double RL rotation
				p2 := p1.left
				tree.rotateRight(p1)
				tree.rotateLeft(p)
				switch p2.balance {
				case +1:
					p.balance = -1
					p1.balance = 0
				case 0:
					p.balance = 0
					p1.balance = 0
				default:
					p.balance = 0
					p1.balance = +1
				}
				p2.balance = 0
				tree.notify(RotateRightLeft, p)
			}

		case -1, +1: // was balanced, now leans: height unchanged
			p.balance += delta
			return

		default: // was leaning to the other side: now balanced but lower
			p.balance = 0
		}

		p, delta = parent, next
	}
}

// Clear - remove every node from the tree
//
// nodes are released in post-order, children before their parent,
// without recursion
func (tree *Tree[K, V]) Clear() {
	p := tree.root
	for nil != p {
		switch {
		case nil != p.left:
			p = p.left
		case nil != p.right:
			p = p.right
		default:
			up := p.up
			if nil != up {
				if p == up.left {
					up.left = nil
				} else {
					up.right = nil
				}
			}
			tree.freeNode(p)
			p = up
		}
	}
	tree.root = nil
	tree.count = 0
}
