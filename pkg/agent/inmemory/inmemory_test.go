//go:build unit || !integration

package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/suite"

	"github.com/stevedore-project/stevedore/pkg/agent"
	"github.com/stevedore-project/stevedore/pkg/logger"
	"github.com/stevedore-project/stevedore/pkg/models"
)

type DirectoryStoreSuite struct {
	suite.Suite
	clock *clock.Mock
	store *DirectoryStore
	ctx   context.Context
}

func (s *DirectoryStoreSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.clock = clock.NewMock()
	s.store = NewDirectoryStore(DirectoryStoreParams{
		TTL:   time.Minute,
		Clock: s.clock,
	})
	s.ctx = context.Background()
}

func TestDirectoryStoreSuite(t *testing.T) {
	suite.Run(t, new(DirectoryStoreSuite))
}

func (s *DirectoryStoreSuite) instance(id string) models.AgentInstance {
	return models.AgentInstance{
		ID:              id,
		InstanceGroupID: "g-1",
		LifecycleState:  models.InstanceLifecycleStateStarted,
		Attributes:      map[string]string{"availabilityZone": "zoneA"},
	}
}

func (s *DirectoryStoreSuite) TestGetInstance() {
	s.store.UpsertInstance(s.ctx, s.instance("i-1"))

	instance, err := s.store.GetInstance(s.ctx, "i-1")
	s.NoError(err)
	s.Equal("i-1", instance.ID)
	s.Equal("g-1", instance.InstanceGroupID)
}

func (s *DirectoryStoreSuite) TestGetUnknownInstance() {
	_, err := s.store.GetInstance(s.ctx, "i-missing")
	s.ErrorAs(err, &agent.ErrInstanceNotFound{})
}

func (s *DirectoryStoreSuite) TestInstanceExpiresAfterTTL() {
	s.store.UpsertInstance(s.ctx, s.instance("i-1"))

	s.clock.Add(59 * time.Second)
	_, err := s.store.GetInstance(s.ctx, "i-1")
	s.NoError(err)

	s.clock.Add(2 * time.Second)
	_, err = s.store.GetInstance(s.ctx, "i-1")
	s.ErrorAs(err, &agent.ErrInstanceNotFound{})
}

func (s *DirectoryStoreSuite) TestReannouncementExtendsTTL() {
	s.store.UpsertInstance(s.ctx, s.instance("i-1"))
	s.clock.Add(50 * time.Second)
	s.store.UpsertInstance(s.ctx, s.instance("i-1"))
	s.clock.Add(50 * time.Second)

	_, err := s.store.GetInstance(s.ctx, "i-1")
	s.NoError(err)
}

func (s *DirectoryStoreSuite) TestZeroTTLDisablesEviction() {
	store := NewDirectoryStore(DirectoryStoreParams{Clock: s.clock})
	store.UpsertInstance(s.ctx, s.instance("i-1"))

	s.clock.Add(24 * time.Hour)
	_, err := store.GetInstance(s.ctx, "i-1")
	s.NoError(err)
}

func (s *DirectoryStoreSuite) TestRemoveInstance() {
	s.store.UpsertInstance(s.ctx, s.instance("i-1"))
	s.store.RemoveInstance(s.ctx, "i-1")

	_, err := s.store.GetInstance(s.ctx, "i-1")
	s.ErrorAs(err, &agent.ErrInstanceNotFound{})
}

func (s *DirectoryStoreSuite) TestInstanceGroups() {
	s.store.UpsertInstanceGroup(s.ctx, models.InstanceGroup{
		ID:             "g-1",
		LifecycleState: models.InstanceGroupLifecycleStateActive,
		Tier:           models.TierFlex,
	})

	group, err := s.store.GetInstanceGroup(s.ctx, "g-1")
	s.NoError(err)
	s.Equal(models.TierFlex, group.Tier)

	_, err = s.store.GetInstanceGroup(s.ctx, "g-missing")
	s.ErrorAs(err, &agent.ErrInstanceGroupNotFound{})
}

func (s *DirectoryStoreSuite) TestListInstancesExcludesExpiredAndForeign() {
	s.store.UpsertInstance(s.ctx, s.instance("i-1"))
	s.clock.Add(2 * time.Minute)
	s.store.UpsertInstance(s.ctx, s.instance("i-2"))
	other := s.instance("i-3")
	other.InstanceGroupID = "g-2"
	s.store.UpsertInstance(s.ctx, other)

	live := s.store.ListInstances(s.ctx, "g-1")
	s.Len(live, 1)
	s.Equal("i-2", live[0].ID)
}

func (s *DirectoryStoreSuite) TestReadsReturnCopies() {
	s.store.UpsertInstance(s.ctx, s.instance("i-1"))

	instance, err := s.store.GetInstance(s.ctx, "i-1")
	s.Require().NoError(err)
	instance.Attributes["availabilityZone"] = "mutated"

	again, err := s.store.GetInstance(s.ctx, "i-1")
	s.Require().NoError(err)
	s.Equal("zoneA", again.Attributes["availabilityZone"])
}
