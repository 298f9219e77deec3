// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"

	"github.com/bitmark-inc/logger"
)

const (
	mega = 1048576
)

// MemoryStats - summary of the Go runtime memory use
type MemoryStats struct {
	AllocatedMB  uint64 `json:"allocated_mb"`
	CumulativeMB uint64 `json:"cumulative_mb"`
	SystemMB     uint64 `json:"system_mb"`
	GC           uint32 `json:"gc"`
}

func memstats(log *logger.L) *MemoryStats {

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	stats := &MemoryStats{
		AllocatedMB:  m.Alloc / mega,
		CumulativeMB: m.TotalAlloc / mega,
		SystemMB:     m.Sys / mega,
		GC:           m.NumGC,
	}
	log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", stats.AllocatedMB, stats.CumulativeMB, stats.SystemMB)
	return stats
}
