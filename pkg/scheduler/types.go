package scheduler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stevedore-project/stevedore/pkg/models"
)

// Reason is a stable, human-readable explanation for a failed evaluation.
// Reasons are part of the observable contract: telemetry and debugging
// tooling classify rejections by matching against the known per-constraint
// sets, so the strings must not change between releases.
type Reason string

// Result is the verdict of evaluating one placement candidate against one
// constraint. Results are immutable values; failing results carry a Reason
// drawn from the evaluating constraint's fixed set.
type Result struct {
	Passed bool
	Reason Reason
}

// Valid returns a passing result.
func Valid() Result {
	return Result{Passed: true}
}

// Fail returns a failing result with the given reason.
func Fail(reason Reason) Result {
	return Result{Reason: reason}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (r Result) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("Passed", r.Passed)
	if !r.Passed {
		e.Str("Reason", string(r.Reason))
	}
}

// Constraint decides whether an agent is an eligible placement target for a
// task. Evaluate must be a pure read: no mutation of agent, task or cache
// state, safe to invoke concurrently from many workers against the same or
// different candidates. Expected conditions, including collaborator
// unavailability, resolve to a failing Result rather than an error.
type Constraint interface {
	// Name returns the stable name the constraint registers under, used for
	// logging and metrics.
	Name() string

	// Evaluate returns the verdict for a single placement candidate.
	Evaluate(ctx context.Context, candidate *models.PlacementCandidate) Result
}
