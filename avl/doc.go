// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access (see the store package).
//
// Keys are ordered by a comparison function, either the natural
// ordering of a cmp.Ordered type (New) or a caller supplied function
// (NewFunc).  Inserting an existing key overwrites its value in place.
//
// Rebalancing walks up the parent chain from the edited node
// adjusting balance factors, so no recursion is involved in insert
// or delete.  A node with two children is deleted by first swapping
// its position with its in-order predecessor, so nodes never have
// their key or value copied and an iterator positioned on some other
// node stays valid across the delete.
package avl
