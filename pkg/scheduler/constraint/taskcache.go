package constraint

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/stevedore-project/stevedore/pkg/jobstore"
)

// TaskCache aggregates task data used by the constraint evaluators. Refresh
// builds a fresh immutable snapshot from a single bulk read of the job store
// and installs it with an atomic pointer swap, so the thousands of evaluator
// reads within one scheduling iteration all observe the same mutually
// consistent zone and allocation counts, without locks on the read path.
//
// The scheduling engine must call Refresh exactly once per iteration, before
// opening the concurrent evaluation phase.
type TaskCache struct {
	store   jobstore.Store
	current atomic.Pointer[taskCacheValue]
}

func NewTaskCache(store jobstore.Store) *TaskCache {
	return &TaskCache{store: store}
}

// Refresh replaces the current snapshot with one built from the job store's
// full (job, tasks) listing. On error the previous snapshot stays installed.
func (c *TaskCache) Refresh(ctx context.Context) error {
	start := time.Now()
	listing, err := c.store.GetJobsAndTasks(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to refresh task snapshot from job store")
	}

	value := newTaskCacheValue(listing)
	c.current.Store(value)

	snapshotRefreshDuration.Record(ctx, time.Since(start).Seconds())
	snapshotJobCount.Record(ctx, int64(len(listing)))
	log.Ctx(ctx).Trace().Msgf("Refreshed task snapshot with %d jobs", len(listing))
	return nil
}

// ZoneCounters returns the snapshot's zone-balance counters for a job: a
// mapping from zone id to the number of the job's tasks recorded in that
// zone. Jobs without zone-tagged tasks return an empty mapping. The returned
// map belongs to the snapshot and must not be mutated.
func (c *TaskCache) ZoneCounters(jobID string) map[string]int {
	value := c.current.Load()
	if value == nil {
		return map[string]int{}
	}
	return value.zoneCounters(jobID)
}

// IPAllocationInUse reports whether the snapshot recorded the given IP
// allocation as bound to a live task of the job, and to which task.
func (c *TaskCache) IPAllocationInUse(jobID, allocationID string) (taskID string, ok bool) {
	value := c.current.Load()
	if value == nil {
		return "", false
	}
	return value.ipAllocationInUse(jobID, allocationID)
}

// taskCacheValue is one immutable snapshot. It is never mutated after
// newTaskCacheValue returns.
type taskCacheValue struct {
	zoneCountersByJobID map[string]map[string]int
	// jobID -> allocationID -> taskID
	ipAllocationsByJobID map[string]map[string]string
}

func newTaskCacheValue(listing []jobstore.JobAndTasks) *taskCacheValue {
	value := &taskCacheValue{
		zoneCountersByJobID:  make(map[string]map[string]int, len(listing)),
		ipAllocationsByJobID: make(map[string]map[string]string),
	}
	for _, jobAndTasks := range listing {
		jobZoneCounters := make(map[string]int)
		for _, task := range jobAndTasks.Tasks {
			// tasks that have not landed anywhere yet carry no zone and are
			// excluded from the counters
			if zone := task.Zone(); zone != "" {
				jobZoneCounters[zone]++
			}
			if allocationID := task.IPAllocationID(); allocationID != "" {
				jobAllocations, ok := value.ipAllocationsByJobID[jobAndTasks.Job.ID]
				if !ok {
					jobAllocations = make(map[string]string)
					value.ipAllocationsByJobID[jobAndTasks.Job.ID] = jobAllocations
				}
				jobAllocations[allocationID] = task.ID
			}
		}
		value.zoneCountersByJobID[jobAndTasks.Job.ID] = jobZoneCounters
	}
	return value
}

func (v *taskCacheValue) zoneCounters(jobID string) map[string]int {
	counters, ok := v.zoneCountersByJobID[jobID]
	if !ok {
		return map[string]int{}
	}
	return counters
}

func (v *taskCacheValue) ipAllocationInUse(jobID, allocationID string) (string, bool) {
	taskID, ok := v.ipAllocationsByJobID[jobID][allocationID]
	return taskID, ok
}
