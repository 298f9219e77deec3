// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// swap - exchange the positions of two nodes in the tree
//
// the links and balance factors are exchanged, key and value stay
// with their node.  When one node is the direct child of the other
// the link between them must be turned around rather than exchanged,
// otherwise each would end up pointing at itself.
func (tree *Tree[K, V]) swap(n1 *Node[K, V], n2 *Node[K, V]) {
	if n1 == n2 || nil == n1 || nil == n2 {
		return
	}

	n1up, n1left, n1right := n1.up, n1.left, n1.right
	n2up, n2left, n2right := n2.up, n2.left, n2.right

	n1isLeft := nil != n1up && n1 == n1up.left
	n2isLeft := nil != n2up && n2 == n2up.left

	n1.up, n2.up = n2up, n1up
	n1.left, n2.left = n2left, n1left
	n1.right, n2.right = n2right, n1right
	n1.balance, n2.balance = n2.balance, n1.balance

	// adjacent nodes: the child now points at itself, turn it round
	switch {
	case n1right == n2:
		n2.right = n1
		n1.up = n2
	case n1left == n2:
		n2.left = n1
		n1.up = n2
	case n2right == n1:
		n1.right = n2
		n2.up = n1
	case n2left == n1:
		n1.left = n2
		n2.up = n1
	}

	// fix the links of the surrounding nodes
	if nil != n1up && n1up != n2 {
		if n1isLeft {
			n1up.left = n2
		} else {
			n1up.right = n2
		}
	}
	if nil != n1left && n1left != n2 {
		n1left.up = n2
	}
	if nil != n1right && n1right != n2 {
		n1right.up = n2
	}

	if nil != n2up && n2up != n1 {
		if n2isLeft {
			n2up.left = n1
		} else {
			n2up.right = n1
		}
	}
	if nil != n2left && n2left != n1 {
		n2left.up = n1
	}
	if nil != n2right && n2right != n1 {
		n2right.up = n1
	}

	if tree.root == n1 {
		tree.root = n2
	} else if tree.root == n2 {
		tree.root = n1
	}
}
