//go:build unit || !integration

package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/stevedore-project/stevedore/pkg/logger"
	"github.com/stevedore-project/stevedore/pkg/models"
)

type blockingConstraint struct {
	delay  time.Duration
	result Result
}

func (c blockingConstraint) Name() string { return "BlockingConstraint" }
func (c blockingConstraint) Evaluate(ctx context.Context, candidate *models.PlacementCandidate) Result {
	select {
	case <-ctx.Done():
	case <-time.After(c.delay):
	}
	return c.result
}

type InstrumentedConstraintSuite struct {
	suite.Suite
	candidate *models.PlacementCandidate
	ctx       context.Context
}

func (s *InstrumentedConstraintSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.candidate = &models.PlacementCandidate{
		Task: &models.Task{ID: "task-1", JobID: "job-1"},
		Job:  &models.Job{ID: "job-1"},
	}
	s.ctx = context.Background()
}

func TestInstrumentedConstraintSuite(t *testing.T) {
	suite.Run(t, new(InstrumentedConstraintSuite))
}

func (s *InstrumentedConstraintSuite) TestPassesThroughInnerResult() {
	inner := fixedConstraint{name: "A", result: Fail("inner reason")}
	instrumented := NewInstrumentedConstraint(inner, DefaultConfiguration())

	s.Equal("A", instrumented.Name())
	result := instrumented.Evaluate(s.ctx, s.candidate)
	s.False(result.Passed)
	s.Equal(Reason("inner reason"), result.Reason)
}

func (s *InstrumentedConstraintSuite) TestZeroTimeoutDisablesDeadline() {
	inner := blockingConstraint{delay: 10 * time.Millisecond, result: Valid()}
	instrumented := NewInstrumentedConstraint(inner, DefaultConfiguration())

	result := instrumented.Evaluate(s.ctx, s.candidate)
	s.True(result.Passed)
}

func (s *InstrumentedConstraintSuite) TestTimedOutEvaluationFailsClosed() {
	cfg := DefaultConfiguration()
	cfg.EvaluationTimeout = 5 * time.Millisecond
	inner := blockingConstraint{delay: time.Second, result: Valid()}
	instrumented := NewInstrumentedConstraint(inner, cfg)

	result := instrumented.Evaluate(s.ctx, s.candidate)
	s.False(result.Passed)
	s.Equal(ReasonEvaluationTimedOut, result.Reason)
}

func (s *InstrumentedConstraintSuite) TestFastEvaluationBeatsDeadline() {
	cfg := DefaultConfiguration()
	cfg.EvaluationTimeout = time.Second
	inner := fixedConstraint{name: "A", result: Valid()}
	instrumented := NewInstrumentedConstraint(inner, cfg)

	result := instrumented.Evaluate(s.ctx, s.candidate)
	s.True(result.Passed)
}
