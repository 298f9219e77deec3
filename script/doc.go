// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - line oriented operations on a string store
//
// one command per line, fields separated by white space, lines
// starting with # and blank lines are ignored:
//
//   insert KEY VALUE...   value is the rest of the line
//   remove KEY
//   find KEY              prints "KEY → VALUE" or "KEY not found"
//   get KEY               prints VALUE, fails if KEY is absent
//   list                  prints every item in key order
//   count
//   clear
//   check                 runs the tree diagnostics
//   print                 draws the tree
package script
