package agent

import "fmt"

// ErrInstanceNotFound is returned when no agent instance exists for a
// requested instance id. Agents appear and disappear as the fleet churns, so
// callers treat this as an expected condition rather than a fault.
type ErrInstanceNotFound struct {
	InstanceID string
}

func NewErrInstanceNotFound(instanceID string) ErrInstanceNotFound {
	return ErrInstanceNotFound{InstanceID: instanceID}
}

func (e ErrInstanceNotFound) Error() string {
	return fmt.Sprintf("agent instance not found for instanceID: %s", e.InstanceID)
}

// ErrInstanceGroupNotFound is returned when no instance group exists for a
// requested group id.
type ErrInstanceGroupNotFound struct {
	InstanceGroupID string
}

func NewErrInstanceGroupNotFound(instanceGroupID string) ErrInstanceGroupNotFound {
	return ErrInstanceGroupNotFound{InstanceGroupID: instanceGroupID}
}

func (e ErrInstanceGroupNotFound) Error() string {
	return fmt.Sprintf("instance group not found for instanceGroupID: %s", e.InstanceGroupID)
}
