package scheduler

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/stevedore-project/stevedore/pkg/telemetry"
)

var (
	Meter = otel.GetMeterProvider().Meter("placement")
)

// Metrics for monitoring constraint evaluations
var (
	evaluationCount = telemetry.Must(Meter.Int64Counter(
		"constraint.evaluation.count",
		metric.WithDescription("Number of placement candidate evaluations"),
		metric.WithUnit("1"),
	))

	evaluationDuration = telemetry.Must(Meter.Float64Histogram(
		"constraint.evaluation.duration",
		metric.WithDescription("Time taken to evaluate a single placement candidate"),
		metric.WithUnit("s"),
	))
)

const (
	AttrConstraintKey = "constraint"
	AttrOutcomeKey    = "outcome"
	AttrReasonKey     = "reason"

	AttrOutcomePassed = "passed"
	AttrOutcomeFailed = "failed"
)
