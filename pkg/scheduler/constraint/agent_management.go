package constraint

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/stevedore-project/stevedore/pkg/agent"
	"github.com/stevedore-project/stevedore/pkg/models"
	"github.com/stevedore-project/stevedore/pkg/scheduler"
)

// AgentManagementConstraintName is the name the constraint registers under.
const AgentManagementConstraintName = "AgentManagementConstraint"

// Failure reasons of the agent-management constraint. The strings are a
// stable contract consumed by scheduling telemetry.
const (
	ReasonInstanceGroupNotFound             scheduler.Reason = "Instance group not found"
	ReasonInstanceGroupNotActive            scheduler.Reason = "Instance group is not active or phased out"
	ReasonInstanceGroupTierMismatch         scheduler.Reason = "Task cannot run on instance group tier"
	ReasonInstanceGroupDoesNotHaveGPUs      scheduler.Reason = "Instance group does not have gpus"
	ReasonInstanceGroupCannotRunNonGPUTasks scheduler.Reason = "Instance group does not run non gpu tasks"

	ReasonInstanceNotFound   scheduler.Reason = "Instance not found"
	ReasonInstanceNotStarted scheduler.Reason = "Instance not in Started state"
	ReasonInstanceUnhealthy  scheduler.Reason = "Unhealthy agent"

	ReasonSystemNoPlacement scheduler.Reason = "Cannot place on instance group or agent instance due to systemNoPlacement attribute"
	ReasonNoPlacement       scheduler.Reason = "Cannot place on instance group or agent instance due to noPlacement attribute"
)

var agentManagementFailureReasons = lo.SliceToMap([]scheduler.Reason{
	ReasonInstanceGroupNotFound,
	ReasonInstanceGroupNotActive,
	ReasonInstanceGroupTierMismatch,
	ReasonInstanceGroupDoesNotHaveGPUs,
	ReasonInstanceGroupCannotRunNonGPUTasks,
	ReasonInstanceNotFound,
	ReasonInstanceNotStarted,
	ReasonInstanceUnhealthy,
	ReasonSystemNoPlacement,
	ReasonNoPlacement,
}, func(reason scheduler.Reason) (scheduler.Reason, struct{}) {
	return reason, struct{}{}
})

// IsAgentManagementConstraintReason reports whether a failure reason belongs
// to the agent-management constraint, letting callers attribute rejections to
// this policy without coupling to evaluator identity.
func IsAgentManagementConstraintReason(reason scheduler.Reason) bool {
	_, ok := agentManagementFailureReasons[reason]
	return ok
}

type AgentManagementConstraintParams struct {
	Config        scheduler.Configuration
	Directory     agent.Directory
	StatusMonitor agent.StatusMonitor
}

// AgentManagementConstraint rejects any candidate whose agent instance or
// instance group is not a valid, healthy, policy-eligible placement target.
type AgentManagementConstraint struct {
	cfg           scheduler.Configuration
	directory     agent.Directory
	statusMonitor agent.StatusMonitor
}

func NewAgentManagementConstraint(params AgentManagementConstraintParams) *AgentManagementConstraint {
	return &AgentManagementConstraint{
		cfg:           params.Config,
		directory:     params.Directory,
		statusMonitor: params.StatusMonitor,
	}
}

func (c *AgentManagementConstraint) Name() string {
	return AgentManagementConstraintName
}

func (c *AgentManagementConstraint) Evaluate(ctx context.Context, candidate *models.PlacementCandidate) scheduler.Result {
	instance, ok := findAgentInstance(ctx, c.directory, c.cfg.InstanceAttributeName, candidate)
	if !ok {
		return scheduler.Fail(ReasonInstanceNotFound)
	}

	group, err := c.directory.GetInstanceGroup(ctx, instance.InstanceGroupID)
	if err != nil {
		var notFound agent.ErrInstanceGroupNotFound
		if !errors.As(err, &notFound) {
			log.Ctx(ctx).Warn().Err(err).Msgf("failed to resolve instance group %s, failing candidate closed", instance.InstanceGroupID)
		}
		return scheduler.Fail(ReasonInstanceGroupNotFound)
	}

	if result := c.evaluateInstanceGroup(candidate, group); !result.Passed {
		return result
	}
	if result := c.evaluateInstance(ctx, instance); !result.Passed {
		return result
	}
	return scheduler.Valid()
}

func (c *AgentManagementConstraint) evaluateInstanceGroup(candidate *models.PlacementCandidate, group models.InstanceGroup) scheduler.Result {
	if !group.IsPlacementEligible() {
		return scheduler.Fail(ReasonInstanceGroupNotActive)
	}
	if result := evaluatePlacementAttributes(group.Attributes); !result.Passed {
		return result
	}
	if group.Tier != candidate.Job.Tier {
		return scheduler.Fail(ReasonInstanceGroupTierMismatch)
	}

	// strict bijection: gpu groups run only gpu tasks and vice versa
	gpuTask := candidate.Task.Resources.RequestsGPU()
	gpuGroup := group.HasGPUs()
	if gpuTask && !gpuGroup {
		return scheduler.Fail(ReasonInstanceGroupDoesNotHaveGPUs)
	}
	if !gpuTask && gpuGroup {
		return scheduler.Fail(ReasonInstanceGroupCannotRunNonGPUTasks)
	}
	return scheduler.Valid()
}

func (c *AgentManagementConstraint) evaluateInstance(ctx context.Context, instance models.AgentInstance) scheduler.Result {
	if instance.LifecycleState != models.InstanceLifecycleStateStarted {
		return scheduler.Fail(ReasonInstanceNotStarted)
	}
	if result := evaluatePlacementAttributes(instance.Attributes); !result.Passed {
		return result
	}
	if !c.statusMonitor.IsHealthy(ctx, instance.ID) {
		return scheduler.Fail(ReasonInstanceUnhealthy)
	}
	return scheduler.Valid()
}

func evaluatePlacementAttributes(attributes map[string]string) scheduler.Result {
	if models.AttributeEnabled(attributes, models.AttributeSystemNoPlacement) {
		return scheduler.Fail(ReasonSystemNoPlacement)
	}
	if models.AttributeEnabled(attributes, models.AttributeNoPlacement) {
		return scheduler.Fail(ReasonNoPlacement)
	}
	return scheduler.Valid()
}

// compile-time check that we implement the constraint interface
var _ scheduler.Constraint = (*AgentManagementConstraint)(nil)
