// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - a named, lock protected AVL tree
//
// the avl package does no locking of its own; a Store serialises
// writers and allows concurrent readers, logs each change on a
// logger channel named after the store and keeps operation counts
//
// logger.Initialise must have been called before New
package store
