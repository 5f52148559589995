package inmemory

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/stevedore-project/stevedore/pkg/jobstore"
	"github.com/stevedore-project/stevedore/pkg/models"
)

type jobRecord struct {
	job   *models.Job
	tasks map[string]*models.Task
	order []string
}

// JobStore is an in-memory job store. All reads return deep copies so that
// callers can never observe a mutation racing a scheduling pass.
type JobStore struct {
	jobs map[string]*jobRecord
	ids  []string
	mu   sync.RWMutex
}

func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[string]*jobRecord),
	}
}

// PutJob adds or replaces a job. Replacing a job keeps its tasks.
func (s *JobStore) PutJob(ctx context.Context, job *models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.jobs[job.ID]
	if !ok {
		record = &jobRecord{tasks: make(map[string]*models.Task)}
		s.jobs[job.ID] = record
		s.ids = append(s.ids, job.ID)
	}
	record.job = job.Copy()
	log.Ctx(ctx).Trace().Msgf("Stored job %s", job.ID)
}

// PutTask adds or replaces a task under its owning job.
func (s *JobStore) PutTask(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.jobs[task.JobID]
	if !ok {
		return jobstore.NewErrJobNotFound(task.JobID)
	}
	if _, ok := record.tasks[task.ID]; !ok {
		record.order = append(record.order, task.ID)
	}
	record.tasks[task.ID] = task.Copy()
	return nil
}

// RemoveTask drops a finished task so it no longer counts against zone or
// allocation occupancy.
func (s *JobStore) RemoveTask(ctx context.Context, jobID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.jobs[jobID]
	if !ok {
		return jobstore.NewErrJobNotFound(jobID)
	}
	if _, ok := record.tasks[taskID]; !ok {
		return jobstore.NewErrTaskNotFound(jobID, taskID)
	}
	delete(record.tasks, taskID)
	for i, id := range record.order {
		if id == taskID {
			record.order = append(record.order[:i], record.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *JobStore) GetJobsAndTasks(ctx context.Context) ([]jobstore.JobAndTasks, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listing := make([]jobstore.JobAndTasks, 0, len(s.ids))
	for _, jobID := range s.ids {
		record := s.jobs[jobID]
		listing = append(listing, jobstore.JobAndTasks{
			Job:   record.job.Copy(),
			Tasks: record.taskList(),
		})
	}
	return listing, nil
}

func (s *JobStore) GetTasks(ctx context.Context, jobID string) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.jobs[jobID]
	if !ok {
		return nil, jobstore.NewErrJobNotFound(jobID)
	}
	return record.taskList(), nil
}

func (s *JobStore) UpdateTaskContext(ctx context.Context, jobID, taskID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.jobs[jobID]
	if !ok {
		return jobstore.NewErrJobNotFound(jobID)
	}
	task, ok := record.tasks[taskID]
	if !ok {
		return jobstore.NewErrTaskNotFound(jobID, taskID)
	}
	if task.Context == nil {
		task.Context = make(map[string]string)
	}
	task.Context[key] = value
	return nil
}

func (r *jobRecord) taskList() []*models.Task {
	tasks := make([]*models.Task, 0, len(r.order))
	for _, taskID := range r.order {
		tasks = append(tasks, r.tasks[taskID].Copy())
	}
	return tasks
}

// compile-time check that we implement the store interface
var _ jobstore.Store = (*JobStore)(nil)
