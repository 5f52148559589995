//go:generate mockgen --source types.go --destination mocks.go --package agent
package agent

import (
	"context"

	"github.com/stevedore-project/stevedore/pkg/models"
)

// Directory resolves agent instances and instance groups. It is implemented
// by the external agent directory service; the in-process implementation in
// the inmemory package backs tests and local deployments. Lookups are assumed
// to be fast, local reads.
type Directory interface {
	// GetInstance returns the agent instance with the given id, or
	// ErrInstanceNotFound.
	GetInstance(ctx context.Context, instanceID string) (models.AgentInstance, error)

	// GetInstanceGroup returns the instance group with the given id, or
	// ErrInstanceGroupNotFound.
	GetInstanceGroup(ctx context.Context, instanceGroupID string) (models.InstanceGroup, error)
}

// StatusMonitor reports agent health as observed by the health-monitoring
// service.
type StatusMonitor interface {
	// IsHealthy returns true if the instance is currently reported healthy.
	// Unknown instances are unhealthy.
	IsHealthy(ctx context.Context, instanceID string) bool
}
