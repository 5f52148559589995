package constraint

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/stevedore-project/stevedore/pkg/jobstore"
	"github.com/stevedore-project/stevedore/pkg/lib/concurrency"
	"github.com/stevedore-project/stevedore/pkg/models"
)

// ErrNoUnboundAllocation is returned when every allocation the job requested
// is already bound to another live task. The task stays queued and retries on
// a later iteration.
type ErrNoUnboundAllocation struct {
	JobID  string
	TaskID string
}

func NewErrNoUnboundAllocation(jobID, taskID string) ErrNoUnboundAllocation {
	return ErrNoUnboundAllocation{JobID: jobID, TaskID: taskID}
}

func (e ErrNoUnboundAllocation) Error() string {
	return fmt.Sprintf("no unbound IP allocation available for task %s of job %s", e.TaskID, e.JobID)
}

type AllocationBinderParams struct {
	Store jobstore.Store

	// Stripes sizes the per-job lock pool. Zero picks the default.
	Stripes int
}

// AllocationBinder performs the actual IP allocation binding after the
// scheduling engine has picked an agent. The IpAllocationConstraint only
// gives a soft guarantee against the snapshot: two concurrent evaluations of
// different tasks of one job can both pass on the same allocation. Bind
// closes that race by re-validating against the live job store under a
// per-job lock, so at most one task wins each allocation.
type AllocationBinder struct {
	store jobstore.Store
	locks *concurrency.StripedLock
}

func NewAllocationBinder(params AllocationBinderParams) *AllocationBinder {
	return &AllocationBinder{
		store: params.Store,
		locks: concurrency.NewStripedLock(params.Stripes),
	}
}

// Bind selects the first of the job's requested allocations not bound to a
// different live task, records it on the task's context, and returns its id.
// Bind is idempotent: a task that already holds an allocation keeps it.
func (b *AllocationBinder) Bind(ctx context.Context, job *models.Job, task *models.Task) (string, error) {
	unlock := b.locks.Lock(job.ID)
	defer unlock()

	tasks, err := b.store.GetTasks(ctx, job.ID)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read live tasks of job %s", job.ID)
	}

	inUse := make(map[string]string, len(tasks))
	for _, live := range tasks {
		if allocationID := live.IPAllocationID(); allocationID != "" {
			if live.ID == task.ID {
				// re-bind of the same task, keep the existing allocation
				return allocationID, nil
			}
			inUse[allocationID] = live.ID
		}
	}

	for _, allocation := range job.ContainerResources.IPAllocations {
		if _, bound := inUse[allocation.AllocationID]; bound {
			continue
		}
		err := b.store.UpdateTaskContext(ctx, job.ID, task.ID, models.TaskContextIPAllocationID, allocation.AllocationID)
		if err != nil {
			return "", errors.Wrapf(err, "failed to record allocation %s on task %s", allocation.AllocationID, task.ID)
		}
		log.Ctx(ctx).Debug().Msgf("Bound IP allocation %s to task %s of job %s", allocation.AllocationID, task.ID, job.ID)
		return allocation.AllocationID, nil
	}

	return "", NewErrNoUnboundAllocation(job.ID, task.ID)
}
