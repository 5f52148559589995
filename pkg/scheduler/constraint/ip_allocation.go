package constraint

import (
	"context"

	"github.com/stevedore-project/stevedore/pkg/agent"
	"github.com/stevedore-project/stevedore/pkg/models"
	"github.com/stevedore-project/stevedore/pkg/scheduler"
)

// IpAllocationConstraintName is the name the constraint registers under.
const IpAllocationConstraintName = "IpAllocationConstraint"

const (
	ReasonIPAllocationFieldsDoNotMatch scheduler.Reason = "The machine does not match the specified IP allocation fields"
	ReasonNoZoneID                     scheduler.Reason = "Host without zone data"
)

type IpAllocationConstraintParams struct {
	Config    scheduler.Configuration
	TaskCache *TaskCache
	Directory agent.Directory
}

// IpAllocationConstraint steers a task that requests pre-reserved IP
// allocations toward an agent co-located with an allocation that is not
// already bound to another live task of the same job.
//
// Passing here is a soft guarantee only: two candidates evaluated
// concurrently can both see the same allocation as unbound. The allocation
// binder re-validates under a per-job lock at actual bind time.
type IpAllocationConstraint struct {
	cfg       scheduler.Configuration
	taskCache *TaskCache
	directory agent.Directory
}

func NewIpAllocationConstraint(params IpAllocationConstraintParams) *IpAllocationConstraint {
	return &IpAllocationConstraint{
		cfg:       params.Config,
		taskCache: params.TaskCache,
		directory: params.Directory,
	}
}

func (c *IpAllocationConstraint) Name() string {
	return IpAllocationConstraintName
}

func (c *IpAllocationConstraint) Evaluate(ctx context.Context, candidate *models.PlacementCandidate) scheduler.Result {
	instance, ok := findAgentInstance(ctx, c.directory, c.cfg.InstanceAttributeName, candidate)
	if !ok {
		return scheduler.Fail(ReasonMachineDoesNotExist)
	}

	zone := instance.AvailabilityZone(c.cfg.AvailabilityZoneAttributeName)
	if zone == "" {
		// an agent without zone metadata can never match a zoned allocation
		return scheduler.Fail(ReasonNoZoneID)
	}

	allocations := candidate.Job.ContainerResources.IPAllocations
	if len(allocations) == 0 {
		return scheduler.Valid()
	}

	agentLocation := models.IPLocation{
		Region:           instance.Attributes[c.cfg.RegionAttributeName],
		AvailabilityZone: zone,
		SubnetID:         instance.Attributes[c.cfg.SubnetAttributeName],
	}

	// first unbound allocation in request order wins; an allocation already
	// bound to this very task stays usable so re-evaluations are stable
	for _, allocation := range allocations {
		boundTaskID, bound := c.taskCache.IPAllocationInUse(candidate.Job.ID, allocation.AllocationID)
		if bound && boundTaskID != candidate.Task.ID {
			continue
		}
		if allocation.Location == agentLocation {
			return scheduler.Valid()
		}
	}
	return scheduler.Fail(ReasonIPAllocationFieldsDoNotMatch)
}

// compile-time check that we implement the constraint interface
var _ scheduler.Constraint = (*IpAllocationConstraint)(nil)
