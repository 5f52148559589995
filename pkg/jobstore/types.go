//go:generate mockgen --source types.go --destination mocks.go --package jobstore
package jobstore

import (
	"context"

	"github.com/stevedore-project/stevedore/pkg/models"
)

// JobAndTasks pairs a job with its current tasks.
type JobAndTasks struct {
	Job   *models.Job
	Tasks []*models.Task
}

// Store is the job-management collaborator the placement layer reads from.
// GetJobsAndTasks is the single bulk read the snapshot cache performs per
// scheduling iteration; the remaining operations serve the allocation binder.
type Store interface {
	// GetJobsAndTasks returns a consistent-enough full listing of jobs with
	// their tasks.
	GetJobsAndTasks(ctx context.Context) ([]JobAndTasks, error)

	// GetTasks returns the current tasks of a job, or ErrJobNotFound.
	GetTasks(ctx context.Context, jobID string) ([]*models.Task, error)

	// UpdateTaskContext records a context attribute on a task, or returns
	// ErrJobNotFound/ErrTaskNotFound.
	UpdateTaskContext(ctx context.Context, jobID string, taskID string, key string, value string) error
}
