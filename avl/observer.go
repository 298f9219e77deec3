// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/avltree/avl Observer

// Rotation - the shape of a rebalancing step
type Rotation int

// the four rotation shapes, double rotations are reported once
const (
	RotateLeft      Rotation = iota // right-right (zig-zig)
	RotateRight     Rotation = iota // left-left (zig-zig)
	RotateLeftRight Rotation = iota // left-right (zig-zag)
	RotateRightLeft Rotation = iota // right-left (zig-zag)
)

// String - name of a rotation shape
func (r Rotation) String() string {
	switch r {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	case RotateLeftRight:
		return "left-right"
	case RotateRightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

// Observer - receives structural events from a tree
//
// pivot is the key of the node that was out of balance, it is passed
// as interface{} so that one observer can serve trees of any key type
type Observer interface {
	Rotated(kind Rotation, pivot interface{})
}

// report a completed rotation
func (tree *Tree[K, V]) notify(kind Rotation, pivot *Node[K, V]) {
	if nil != tree.observer {
		tree.observer.Rotated(kind, pivot.key)
	}
}
