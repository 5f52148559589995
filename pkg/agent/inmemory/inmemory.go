package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/stevedore-project/stevedore/pkg/agent"
	"github.com/stevedore-project/stevedore/pkg/models"
)

type instanceWrapper struct {
	models.AgentInstance
	evictAt time.Time
}

type DirectoryStoreParams struct {
	// TTL is how long a registered instance stays resolvable without being
	// re-announced. Zero disables eviction.
	TTL   time.Duration
	Clock clock.Clock
}

// DirectoryStore is an in-memory agent directory. Instances are evicted
// lazily after their TTL so that machines that left the fleet stop resolving
// without an explicit deregistration, while instance groups live until
// removed.
type DirectoryStore struct {
	ttl       time.Duration
	clock     clock.Clock
	instances map[string]instanceWrapper
	groups    map[string]models.InstanceGroup
	mu        sync.RWMutex
}

func NewDirectoryStore(params DirectoryStoreParams) *DirectoryStore {
	if params.Clock == nil {
		params.Clock = clock.New()
	}
	return &DirectoryStore{
		ttl:       params.TTL,
		clock:     params.Clock,
		instances: make(map[string]instanceWrapper),
		groups:    make(map[string]models.InstanceGroup),
	}
}

// UpsertInstance adds or refreshes an agent instance.
func (s *DirectoryStore) UpsertInstance(ctx context.Context, instance models.AgentInstance) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evictAt := time.Time{}
	if s.ttl > 0 {
		evictAt = s.clock.Now().Add(s.ttl)
	}
	s.instances[instance.ID] = instanceWrapper{AgentInstance: instance.Copy(), evictAt: evictAt}
	log.Ctx(ctx).Trace().Msgf("Upserted agent instance %s in group %s", instance.ID, instance.InstanceGroupID)
}

// UpsertInstanceGroup adds or replaces an instance group.
func (s *DirectoryStore) UpsertInstanceGroup(ctx context.Context, group models.InstanceGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[group.ID] = group.Copy()
	log.Ctx(ctx).Trace().Msgf("Upserted instance group %s", group.ID)
}

// RemoveInstance drops an instance from the directory.
func (s *DirectoryStore) RemoveInstance(ctx context.Context, instanceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.instances, instanceID)
}

func (s *DirectoryStore) GetInstance(ctx context.Context, instanceID string) (models.AgentInstance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wrapper, ok := s.instances[instanceID]
	if !ok {
		return models.AgentInstance{}, agent.NewErrInstanceNotFound(instanceID)
	}
	if !wrapper.evictAt.IsZero() && s.clock.Now().After(wrapper.evictAt) {
		return models.AgentInstance{}, agent.NewErrInstanceNotFound(instanceID)
	}
	return wrapper.AgentInstance.Copy(), nil
}

func (s *DirectoryStore) GetInstanceGroup(ctx context.Context, instanceGroupID string) (models.InstanceGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	group, ok := s.groups[instanceGroupID]
	if !ok {
		return models.InstanceGroup{}, agent.NewErrInstanceGroupNotFound(instanceGroupID)
	}
	return group.Copy(), nil
}

// ListInstances returns the live instances of a group.
func (s *DirectoryStore) ListInstances(ctx context.Context, instanceGroupID string) []models.AgentInstance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.clock.Now()
	live := lo.Filter(lo.Values(s.instances), func(w instanceWrapper, _ int) bool {
		if w.InstanceGroupID != instanceGroupID {
			return false
		}
		return w.evictAt.IsZero() || now.Before(w.evictAt)
	})
	return lo.Map(live, func(w instanceWrapper, _ int) models.AgentInstance {
		return w.AgentInstance.Copy()
	})
}

// compile-time check that we implement the directory interface
var _ agent.Directory = (*DirectoryStore)(nil)
