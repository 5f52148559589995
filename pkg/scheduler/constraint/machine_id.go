package constraint

import (
	"context"
	"strings"

	"github.com/stevedore-project/stevedore/pkg/agent"
	"github.com/stevedore-project/stevedore/pkg/models"
	"github.com/stevedore-project/stevedore/pkg/scheduler"
)

// MachineIdConstraintName is the name the constraint registers under.
const MachineIdConstraintName = "MachineIdConstraint"

const (
	ReasonMachineDoesNotExist   scheduler.Reason = "The machine does not exist"
	ReasonMachineIDDoesNotMatch scheduler.Reason = "The machine id does not match the specified id"
)

type MachineIdConstraintParams struct {
	Config    scheduler.Configuration
	Directory agent.Directory

	// MachineID is the one machine the workload is pinned to.
	MachineID string
}

// MachineIdConstraint pins a task to one named machine. An affinity override
// for workloads that must land on specific hardware.
//
// TODO(fleet): retire once capacity-group affinities cover the remaining
// pinned workloads.
type MachineIdConstraint struct {
	cfg       scheduler.Configuration
	directory agent.Directory
	machineID string
}

func NewMachineIdConstraint(params MachineIdConstraintParams) *MachineIdConstraint {
	return &MachineIdConstraint{
		cfg:       params.Config,
		directory: params.Directory,
		machineID: params.MachineID,
	}
}

func (c *MachineIdConstraint) Name() string {
	return MachineIdConstraintName
}

func (c *MachineIdConstraint) Evaluate(ctx context.Context, candidate *models.PlacementCandidate) scheduler.Result {
	instance, ok := findAgentInstance(ctx, c.directory, c.cfg.InstanceAttributeName, candidate)
	if !ok {
		return scheduler.Fail(ReasonMachineDoesNotExist)
	}
	if strings.EqualFold(instance.ID, c.machineID) {
		return scheduler.Valid()
	}
	return scheduler.Fail(ReasonMachineIDDoesNotMatch)
}

// compile-time check that we implement the constraint interface
var _ scheduler.Constraint = (*MachineIdConstraint)(nil)
