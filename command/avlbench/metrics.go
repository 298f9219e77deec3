// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"sort"

	"github.com/golang/protobuf/proto"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// write the result in the Prometheus text exposition format
func writeMetrics(w io.Writer, result Result) error {

	storeLabel := []*dto.LabelPair{
		{Name: proto.String("store"), Value: proto.String(result.Store.Name)},
	}

	families := []*dto.MetricFamily{
		gauge("avl_store_items", "items in the store", storeLabel, float64(result.Store.Items)),
		gauge("avl_store_height", "height of the tree", storeLabel, float64(result.Store.Height)),
		gauge("avl_store_pool_size", "released nodes kept for reuse", storeLabel, float64(result.Store.PoolSize)),
		counter("avl_bench_operations_total", "churn operations performed", storeLabel, float64(result.Operations)),
		counter("avl_bench_checks_total", "diagnostic passes run", storeLabel, float64(result.Checks)),
	}

	names := make([]string, 0, len(result.Store.Counters))
	for name := range result.Store.Counters {
		names = append(names, name)
	}
	sort.Strings(names)

	operations := &dto.MetricFamily{
		Name: proto.String("avl_store_events_total"),
		Help: proto.String("store operations and rebalancing rotations"),
		Type: dto.MetricType_COUNTER.Enum(),
	}
	for _, name := range names {
		operations.Metric = append(operations.Metric, &dto.Metric{
			Label: []*dto.LabelPair{
				storeLabel[0],
				{Name: proto.String("event"), Value: proto.String(name)},
			},
			Counter: &dto.Counter{Value: proto.Float64(float64(result.Store.Counters[name]))},
		})
	}
	families = append(families, operations)

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); nil != err {
			return err
		}
	}
	return nil
}

func gauge(name string, help string, labels []*dto.LabelPair, value float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
		Metric: []*dto.Metric{
			{Label: labels, Gauge: &dto.Gauge{Value: proto.Float64(value)}},
		},
	}
}

func counter(name string, help string, labels []*dto.LabelPair, value float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_COUNTER.Enum(),
		Metric: []*dto.Metric{
			{Label: labels, Counter: &dto.Counter{Value: proto.Float64(value)}},
		},
	}
}
