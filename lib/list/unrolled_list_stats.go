package list

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	UnrolledListStatsName = "xunrolled/list"
)

type unrolledListStats struct {
	elementCount         metric.Int64UpDownCounter
	nodeCount            metric.Int64UpDownCounter
	nodeSplitCount       metric.Int64Counter
	nodeMergeCount       metric.Int64Counter
	placementFailedCount metric.Int64Counter
}

func (stats *unrolledListStats) RecordElementCount(delta int64) {
	if stats == nil || delta == 0 {
		return
	}
	stats.elementCount.Add(context.Background(), delta)
}

func (stats *unrolledListStats) RecordNodeCount(delta int64) {
	if stats == nil || delta == 0 {
		return
	}
	stats.nodeCount.Add(context.Background(), delta)
}

func (stats *unrolledListStats) IncreaseNodeSplitCount() {
	if stats == nil {
		return
	}
	stats.nodeSplitCount.Add(context.Background(), 1)
}

// IncreaseNodeMergeCount counts a node absorbed by its neighbour or
// unlinked after becoming empty.
func (stats *unrolledListStats) IncreaseNodeMergeCount() {
	if stats == nil {
		return
	}
	stats.nodeMergeCount.Add(context.Background(), 1)
}

func (stats *unrolledListStats) IncreasePlacementFailedCount() {
	if stats == nil {
		return
	}
	stats.placementFailedCount.Add(context.Background(), 1)
}

func newUnrolledListStats(name string) *unrolledListStats {
	meterName := fmt.Sprintf("%s/%s", UnrolledListStatsName, name)
	meter := otel.Meter(meterName)
	return &unrolledListStats{
		elementCount: lo.Must[metric.Int64UpDownCounter](meter.
			Int64UpDownCounter(
				"xul.element.count",
				metric.WithDescription("The number of elements in the unrolled list."),
			),
		),
		nodeCount: lo.Must[metric.Int64UpDownCounter](meter.
			Int64UpDownCounter(
				"xul.node.count",
				metric.WithDescription("The number of nodes in the unrolled list chain."),
			),
		),
		nodeSplitCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"xul.node.split.count",
				metric.WithDescription("The number of full nodes split into two."),
			),
		),
		nodeMergeCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"xul.node.merge.count",
				metric.WithDescription("The number of nodes merged into a neighbour or unlinked."),
			),
		),
		placementFailedCount: lo.Must[metric.Int64Counter](meter.
			Int64Counter(
				"xul.placement.failed.count",
				metric.WithDescription("The number of mutations rejected by the element copier."),
			),
		),
	}
}
