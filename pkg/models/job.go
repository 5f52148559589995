package models

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/maps"

	"github.com/stevedore-project/stevedore/pkg/lib/validate"
)

// Job owns a set of tasks and carries the container resource spec they share.
// Jobs are owned by the job-management layer; placement only reads them.
type Job struct {
	ID   string
	Name string

	// Tier is the service-level class the job's tasks must be placed on.
	Tier Tier

	// ContainerResources is the job-level container resource spec, including
	// any requested IP allocations.
	ContainerResources ContainerResources
}

// ContainerResources is the per-container slice of a job's resource spec that
// placement cares about.
type ContainerResources struct {
	// IPAllocations are pre-reserved addresses the job's tasks may bind to,
	// in request order. At most one allocation is bound per task.
	IPAllocations []IPAllocation
}

func (j *Job) Copy() *Job {
	if j == nil {
		return nil
	}
	cp := *j
	cp.ContainerResources.IPAllocations = append([]IPAllocation(nil), j.ContainerResources.IPAllocations...)
	return &cp
}

func (j *Job) Validate() error {
	var mErr *multierror.Error
	mErr = multierror.Append(mErr, validate.NotBlank(j.ID, "job is missing an id"))
	mErr = multierror.Append(mErr, validate.NotBlank(string(j.Tier), "job %s is missing a tier", j.ID))
	for _, allocation := range j.ContainerResources.IPAllocations {
		mErr = multierror.Append(mErr, allocation.Validate())
	}
	return mErr.ErrorOrNil()
}

// Task is a single schedulable unit of a job.
type Task struct {
	ID    string
	JobID string
	Name  string

	// Resources are the task's scalar resource requests.
	Resources Resources

	// Attributes are the task's hard/soft placement attributes as submitted.
	Attributes map[string]string

	// Context is runtime metadata recorded by the job-management layer as the
	// task moves through its lifecycle, such as the zone it landed in and the
	// IP allocation bound to it.
	Context map[string]string
}

// Task context keys recorded by the job-management layer and read back by the
// placement snapshot.
const (
	// TaskContextAgentZone is the availability zone the task was placed in.
	TaskContextAgentZone = "agent.zone"

	// TaskContextIPAllocationID is the id of the IP allocation bound to the task.
	TaskContextIPAllocationID = "task.ipAllocationId"
)

// Zone returns the availability zone recorded for the task, or empty if the
// task has not been placed yet.
func (t *Task) Zone() string {
	return t.Context[TaskContextAgentZone]
}

// IPAllocationID returns the id of the IP allocation bound to the task, or
// empty if none is bound.
func (t *Task) IPAllocationID() string {
	return t.Context[TaskContextIPAllocationID]
}

func (t *Task) Copy() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Attributes = maps.Clone(t.Attributes)
	cp.Context = maps.Clone(t.Context)
	return &cp
}

func (t *Task) Validate() error {
	var mErr *multierror.Error
	mErr = multierror.Append(mErr, validate.NotBlank(t.ID, "task is missing an id"))
	mErr = multierror.Append(mErr, validate.NotBlank(t.JobID, "task %s is missing a job id", t.ID))
	return mErr.ErrorOrNil()
}
