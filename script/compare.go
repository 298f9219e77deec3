// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"cmp"
	"strconv"
	"strings"
)

// CompareNumeric - order keys by numeric value where they parse as
// numbers
//
// numbers sort before other keys; equal values with different text
// ("1" and "1.0") are ordered by text so that distinct keys never
// compare equal
func CompareNumeric(a string, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)

	switch {
	case nil == errA && nil == errB:
		if c := cmp.Compare(fa, fb); 0 != c {
			return c
		}
	case nil == errA:
		return -1
	case nil == errB:
		return +1
	}
	return strings.Compare(a, b)
}

// Comparison - the key order for a store
func Comparison(numeric bool) func(string, string) int {
	if numeric {
		return CompareNumeric
	}
	return strings.Compare
}
