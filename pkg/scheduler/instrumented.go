package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/stevedore-project/stevedore/pkg/models"
)

// ReasonEvaluationTimedOut is reported when an evaluation exceeded the
// configured deadline and was failed closed.
const ReasonEvaluationTimedOut Reason = "Constraint evaluation timed out"

// InstrumentedConstraint decorates a constraint with evaluation metrics and
// the configured per-evaluation deadline. The deadline only matters when
// collaborators are remote; an evaluation that exceeds it fails closed so a
// slow directory cannot stall the whole scheduling pass.
type InstrumentedConstraint struct {
	inner Constraint
	cfg   Configuration
}

func NewInstrumentedConstraint(inner Constraint, cfg Configuration) *InstrumentedConstraint {
	return &InstrumentedConstraint{inner: inner, cfg: cfg}
}

func (c *InstrumentedConstraint) Name() string {
	return c.inner.Name()
}

func (c *InstrumentedConstraint) Evaluate(ctx context.Context, candidate *models.PlacementCandidate) Result {
	if c.cfg.EvaluationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.EvaluationTimeout)
		defer cancel()
	}

	start := time.Now()
	result := c.inner.Evaluate(ctx, candidate)
	elapsed := time.Since(start)

	if ctx.Err() != nil {
		// fail closed rather than trust a verdict computed against a
		// timed-out collaborator call
		result = Fail(ReasonEvaluationTimedOut)
	}

	attrs := []attribute.KeyValue{
		attribute.String(AttrConstraintKey, c.inner.Name()),
		attribute.String(AttrOutcomeKey, outcomeOf(result)),
	}
	if !result.Passed {
		attrs = append(attrs, attribute.String(AttrReasonKey, string(result.Reason)))
	}
	evaluationCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	evaluationDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))

	log.Ctx(ctx).Trace().
		Str("Constraint", c.inner.Name()).
		Object("Result", result).
		Msg("Evaluated placement candidate")
	return result
}

func outcomeOf(result Result) string {
	if result.Passed {
		return AttrOutcomePassed
	}
	return AttrOutcomeFailed
}

// compile-time check that we implement the interface
var _ Constraint = (*InstrumentedConstraint)(nil)
