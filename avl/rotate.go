// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// replace child of parent (or the root if no parent) by replacement
func (tree *Tree[K, V]) replaceChild(parent *Node[K, V], child *Node[K, V], replacement *Node[K, V]) {
	if nil != replacement {
		replacement.up = parent
	}
	switch {
	case nil == parent:
		tree.root = replacement
	case child == parent.left:
		parent.left = replacement
	case child == parent.right:
		parent.right = replacement
	default:
		panic("avl: node is not a child of its parent")
	}
}

// rotateLeft - the right child of p takes the place of p and p
// becomes its left child
//
//	   p                r
//	  / \              / \
//	 a   r     →      p   c
//	    / \          / \
//	   b   c        a   b
//
// balance factors are not changed
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) {
	r := p.right
	if nil == r {
		panic("avl: left rotation without right child")
	}
	tree.replaceChild(p.up, p, r)

	b := r.left
	r.left = p
	p.up = r
	p.right = b
	if nil != b {
		b.up = p
	}
}

// rotateRight - mirror image of rotateLeft
//
//	     p            l
//	    / \          / \
//	   l   c   →    a   p
//	  / \              / \
//	 a   b            b   c
//
// balance factors are not changed
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) {
	l := p.left
	if nil == l {
		panic("avl: right rotation without left child")
	}
	tree.replaceChild(p.up, p, l)

	b := l.right
	l.right = p
	p.up = l
	p.left = b
	if nil != b {
		b.up = p
	}
}
