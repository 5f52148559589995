package models

// PlacementCandidate is one (task, agent) pair under eligibility evaluation.
// Candidates are created by the bin-packing engine per evaluation and are not
// owned or retained by the constraint layer.
type PlacementCandidate struct {
	// Task is the task being placed.
	Task *Task

	// Job is the task's owning job, carried so evaluators can reach the
	// job-level container resource spec without a store round trip.
	Job *Job

	// AgentAttributes is the attribute map of the offered agent as presented
	// by the engine. The instance-identifying attribute inside it is the key
	// into the agent directory.
	AgentAttributes map[string]string
}
