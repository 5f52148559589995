package models

import (
	"strconv"

	"golang.org/x/exp/maps"
)

// InstanceGroupLifecycleState describes where an instance group is in its
// lifecycle. Only Active and PhasedOut groups accept new placements.
type InstanceGroupLifecycleState string

const (
	InstanceGroupLifecycleStateInactive  InstanceGroupLifecycleState = "Inactive"
	InstanceGroupLifecycleStateActive    InstanceGroupLifecycleState = "Active"
	InstanceGroupLifecycleStatePhasedOut InstanceGroupLifecycleState = "PhasedOut"
	InstanceGroupLifecycleStateRemovable InstanceGroupLifecycleState = "Removable"
)

// InstanceLifecycleState describes where a single agent instance is in its
// lifecycle. Started is the only state eligible for placement.
type InstanceLifecycleState string

const (
	InstanceLifecycleStateLaunching InstanceLifecycleState = "Launching"
	InstanceLifecycleStateStarted   InstanceLifecycleState = "Started"
	InstanceLifecycleStateStopping  InstanceLifecycleState = "Stopping"
	InstanceLifecycleStateStopped   InstanceLifecycleState = "Stopped"
)

// Tier partitions instance groups by service-level class.
type Tier string

const (
	TierCritical Tier = "Critical"
	TierFlex     Tier = "Flex"
)

// InstanceGroup is a homogeneous pool of agent instances. It is owned and
// mutated exclusively by the agent directory service; this subsystem only
// reads it.
type InstanceGroup struct {
	ID                string
	LifecycleState    InstanceGroupLifecycleState
	Tier              Tier
	Attributes        map[string]string
	ResourceDimension Resources
}

// IsPlacementEligible returns true if the group's lifecycle state accepts new
// task placements. PhasedOut groups keep serving already-running capacity and
// still accept placements while draining.
func (g InstanceGroup) IsPlacementEligible() bool {
	return g.LifecycleState == InstanceGroupLifecycleStateActive ||
		g.LifecycleState == InstanceGroupLifecycleStatePhasedOut
}

// HasGPUs returns true if the group's machines carry GPU capacity.
func (g InstanceGroup) HasGPUs() bool {
	return g.ResourceDimension.GPU > 0
}

func (g InstanceGroup) Copy() InstanceGroup {
	cp := g
	cp.Attributes = maps.Clone(g.Attributes)
	return cp
}

// AgentInstance is a single agent machine inside an instance group. Same
// ownership rule as InstanceGroup.
type AgentInstance struct {
	ID              string
	InstanceGroupID string
	LifecycleState  InstanceLifecycleState
	Attributes      map[string]string
}

// AvailabilityZone returns the instance's zone as recorded under the given
// attribute key, or empty if the instance carries no zone metadata.
func (i AgentInstance) AvailabilityZone(zoneAttributeName string) string {
	return i.Attributes[zoneAttributeName]
}

func (i AgentInstance) Copy() AgentInstance {
	cp := i
	cp.Attributes = maps.Clone(i.Attributes)
	return cp
}

// AttributeEnabled reports whether a boolean attribute is set to true on the
// given attribute map. Unparsable values count as false, matching the
// tolerant parsing the fleet tooling uses when it stamps these flags.
func AttributeEnabled(attributes map[string]string, key string) bool {
	enabled, err := strconv.ParseBool(attributes[key])
	return err == nil && enabled
}
