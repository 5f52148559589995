package models

// Attribute keys the fleet tooling stamps on instance groups and agent
// instances to steer placement.
const (
	// AttributeSystemNoPlacement blocks placement when set by the platform
	// itself, e.g. while a group is being recycled.
	AttributeSystemNoPlacement = "systemNoPlacement"

	// AttributeNoPlacement blocks placement when set by an operator.
	AttributeNoPlacement = "noPlacement"
)
