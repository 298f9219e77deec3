// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlctl - run operation scripts against an AVL tree store
//
//   avlctl [--config FILE] [--numeric] [--verbose] run [--statistics] SCRIPT...
//   avlctl [--config FILE] [--numeric] [--verbose] watch SCRIPT
//   avlctl version
//
// run executes each script in turn against one store; watch executes
// a script and then executes it again on a fresh store every time the
// file is written, until the file is removed or the program is
// interrupted
package main
