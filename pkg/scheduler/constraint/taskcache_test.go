//go:build unit || !integration

package constraint

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/stevedore-project/stevedore/pkg/jobstore"
	jobstoreinmemory "github.com/stevedore-project/stevedore/pkg/jobstore/inmemory"
	"github.com/stevedore-project/stevedore/pkg/logger"
	"github.com/stevedore-project/stevedore/pkg/models"
)

type TaskCacheSuite struct {
	suite.Suite
	store     *jobstoreinmemory.JobStore
	taskCache *TaskCache
	ctx       context.Context
}

func (s *TaskCacheSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.store = jobstoreinmemory.NewJobStore()
	s.taskCache = NewTaskCache(s.store)
	s.ctx = context.Background()
}

func TestTaskCacheSuite(t *testing.T) {
	suite.Run(t, new(TaskCacheSuite))
}

func (s *TaskCacheSuite) putTask(jobID, taskID, zone, allocationID string) {
	task := &models.Task{ID: taskID, JobID: jobID, Context: map[string]string{}}
	if zone != "" {
		task.Context[models.TaskContextAgentZone] = zone
	}
	if allocationID != "" {
		task.Context[models.TaskContextIPAllocationID] = allocationID
	}
	s.Require().NoError(s.store.PutTask(s.ctx, task))
}

func (s *TaskCacheSuite) TestZoneCounters() {
	s.store.PutJob(s.ctx, &models.Job{ID: "job-1"})
	s.putTask("job-1", "task-1", "zoneA", "")
	s.putTask("job-1", "task-2", "zoneA", "")
	s.putTask("job-1", "task-3", "zoneB", "")
	s.Require().NoError(s.taskCache.Refresh(s.ctx))

	s.Equal(map[string]int{"zoneA": 2, "zoneB": 1}, s.taskCache.ZoneCounters("job-1"))
}

func (s *TaskCacheSuite) TestZonelessTasksAreExcluded() {
	s.store.PutJob(s.ctx, &models.Job{ID: "job-1"})
	s.putTask("job-1", "task-1", "zoneA", "")
	s.putTask("job-1", "task-2", "", "")
	s.Require().NoError(s.taskCache.Refresh(s.ctx))

	s.Equal(map[string]int{"zoneA": 1}, s.taskCache.ZoneCounters("job-1"))
}

func (s *TaskCacheSuite) TestUnknownJobReturnsEmptyCounters() {
	s.Require().NoError(s.taskCache.Refresh(s.ctx))

	counters := s.taskCache.ZoneCounters("job-missing")
	s.NotNil(counters)
	s.Empty(counters)
}

func (s *TaskCacheSuite) TestReadsBeforeFirstRefresh() {
	counters := s.taskCache.ZoneCounters("job-1")
	s.NotNil(counters)
	s.Empty(counters)

	_, ok := s.taskCache.IPAllocationInUse("job-1", "alloc-1")
	s.False(ok)
}

func (s *TaskCacheSuite) TestIPAllocationOccupancy() {
	s.store.PutJob(s.ctx, &models.Job{ID: "job-1"})
	s.putTask("job-1", "task-1", "zoneA", "alloc-1")
	s.putTask("job-1", "task-2", "zoneA", "")
	s.Require().NoError(s.taskCache.Refresh(s.ctx))

	taskID, ok := s.taskCache.IPAllocationInUse("job-1", "alloc-1")
	s.True(ok)
	s.Equal("task-1", taskID)

	_, ok = s.taskCache.IPAllocationInUse("job-1", "alloc-2")
	s.False(ok)
	_, ok = s.taskCache.IPAllocationInUse("job-other", "alloc-1")
	s.False(ok)
}

func (s *TaskCacheSuite) TestRefreshReplacesSnapshot() {
	s.store.PutJob(s.ctx, &models.Job{ID: "job-1"})
	s.putTask("job-1", "task-1", "zoneA", "alloc-1")
	s.Require().NoError(s.taskCache.Refresh(s.ctx))

	s.Require().NoError(s.store.RemoveTask(s.ctx, "job-1", "task-1"))
	s.putTask("job-1", "task-2", "zoneB", "")
	s.Require().NoError(s.taskCache.Refresh(s.ctx))

	s.Equal(map[string]int{"zoneB": 1}, s.taskCache.ZoneCounters("job-1"))
	_, ok := s.taskCache.IPAllocationInUse("job-1", "alloc-1")
	s.False(ok)
}

func (s *TaskCacheSuite) TestFailedRefreshKeepsPreviousSnapshot() {
	s.store.PutJob(s.ctx, &models.Job{ID: "job-1"})
	s.putTask("job-1", "task-1", "zoneA", "")
	s.Require().NoError(s.taskCache.Refresh(s.ctx))

	ctrl := gomock.NewController(s.T())
	failing := jobstore.NewMockStore(ctrl)
	failing.EXPECT().GetJobsAndTasks(gomock.Any()).
		Return(nil, errors.New("store unavailable"))

	taskCache := NewTaskCache(s.store)
	s.Require().NoError(taskCache.Refresh(s.ctx))
	taskCache.store = failing

	s.Error(taskCache.Refresh(s.ctx))
	s.Equal(map[string]int{"zoneA": 1}, taskCache.ZoneCounters("job-1"))
}

func (s *TaskCacheSuite) TestConcurrentReadsObserveConsistentSnapshots() {
	s.store.PutJob(s.ctx, &models.Job{ID: "job-1"})
	s.putTask("job-1", "task-1", "zoneA", "alloc-1")
	s.Require().NoError(s.taskCache.Refresh(s.ctx))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				counters := s.taskCache.ZoneCounters("job-1")
				total := 0
				for _, n := range counters {
					total += n
				}
				// every snapshot has exactly one zoned task
				s.Equal(1, total)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.NoError(s.taskCache.Refresh(s.ctx))
			}
		}()
	}
	wg.Wait()
}
