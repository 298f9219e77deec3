// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlbench - randomised insert and remove churn on an AVL tree store
//
// every operation is mirrored in a map; the store diagnostics run at
// a fixed interval and the final contents are compared with the map
//
//   avlbench [--config-file FILE] [--count N] [--seed S] [--check-every N]
//            [--rate N] [--memory-stats] [--prometheus] [--verbose]
//
// prints the run statistics as JSON or in the Prometheus text format
package main
