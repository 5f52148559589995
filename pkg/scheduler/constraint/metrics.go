package constraint

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/stevedore-project/stevedore/pkg/telemetry"
)

var (
	Meter = otel.GetMeterProvider().Meter("placement.constraint")
)

// Metrics for monitoring the per-iteration task snapshot
var (
	snapshotRefreshDuration = telemetry.Must(Meter.Float64Histogram(
		"snapshot.refresh.duration",
		metric.WithDescription("Time taken to rebuild the task snapshot from the job store"),
		metric.WithUnit("s"),
	))

	snapshotJobCount = telemetry.Must(Meter.Int64Histogram(
		"snapshot.job.count",
		metric.WithDescription("Number of jobs aggregated into the task snapshot"),
		metric.WithUnit("1"),
	))
)
