package constraint

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/stevedore-project/stevedore/pkg/agent"
	"github.com/stevedore-project/stevedore/pkg/models"
)

// findAgentInstance resolves a placement candidate to its agent instance via
// the directory, using the configured instance-identifying attribute of the
// offered agent. Any failure, including directory unavailability, resolves to
// not-found so the candidate fails closed instead of stalling the pass.
func findAgentInstance(
	ctx context.Context,
	directory agent.Directory,
	instanceAttributeName string,
	candidate *models.PlacementCandidate,
) (models.AgentInstance, bool) {
	instanceID := candidate.AgentAttributes[instanceAttributeName]
	if instanceID == "" {
		return models.AgentInstance{}, false
	}
	instance, err := directory.GetInstance(ctx, instanceID)
	if err != nil {
		var notFound agent.ErrInstanceNotFound
		if !errors.As(err, &notFound) {
			log.Ctx(ctx).Warn().Err(err).Msgf("failed to resolve agent instance %s, failing candidate closed", instanceID)
		}
		return models.AgentInstance{}, false
	}
	return instance, true
}
