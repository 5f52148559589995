package jobstore

import "fmt"

// ErrJobNotFound is returned when a job is not found in the store.
type ErrJobNotFound struct {
	JobID string
}

func NewErrJobNotFound(jobID string) ErrJobNotFound {
	return ErrJobNotFound{JobID: jobID}
}

func (e ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrTaskNotFound is returned when a task is not found within a job.
type ErrTaskNotFound struct {
	JobID  string
	TaskID string
}

func NewErrTaskNotFound(jobID, taskID string) ErrTaskNotFound {
	return ErrTaskNotFound{JobID: jobID, TaskID: taskID}
}

func (e ErrTaskNotFound) Error() string {
	return fmt.Sprintf("task %s not found in job %s", e.TaskID, e.JobID)
}
