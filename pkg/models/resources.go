package models

import "fmt"

// Resources is a record of the scalar compute resources a task requests or an
// instance group offers per machine. GPU is a scalar rather than a count so
// that sub-device requests coming from the API survive untouched; placement
// only cares about the >= 1.0 threshold.
type Resources struct {
	// cpu cores
	CPU float64 `json:"CPU,omitempty"`
	// bytes
	Memory uint64 `json:"Memory,omitempty"`
	// bytes
	Disk uint64 `json:"Disk,omitempty"`
	// gpu devices
	GPU float64 `json:"GPU,omitempty"`
}

// RequestsGPU returns true if these resources amount to a GPU workload. Tasks
// below a whole device are scheduled as non-GPU work.
func (r Resources) RequestsGPU() bool {
	return r.GPU >= 1.0
}

func (r Resources) IsZero() bool {
	return r == Resources{}
}

func (r Resources) String() string {
	return fmt.Sprintf("{cpu: %g, memory: %d, disk: %d, gpu: %g}", r.CPU, r.Memory, r.Disk, r.GPU)
}
