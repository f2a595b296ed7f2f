package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// JobStatus is the lifecycle state of a generation job
type JobStatus string

// Job lifecycle states. A job moves queued -> processing -> completed or
// failed, and never regresses.
const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Terminal reports whether the status is an end state
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// rank orders statuses along the lifecycle for regression checks
func (s JobStatus) rank() int {
	switch s {
	case JobStatusQueued:
		return 0
	case JobStatusProcessing:
		return 1
	case JobStatusCompleted, JobStatusFailed:
		return 2
	default:
		return -1
	}
}

// CanTransitionTo reports whether moving to next is a forward transition
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	return next.rank() > s.rank()
}

// GenerationJob tracks one asynchronous weapon generation request. Exactly
// one background goroutine writes a job; status pollers only read it.
// Not durable: jobs live in Redis with a TTL and are lost on flush.
type GenerationJob struct {
	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Progress int32     `json:"progress"`

	// Weapons is populated only once the job completes
	Weapons []WeaponRecord `json:"weapons,omitempty"`

	// Error is populated only if the job failed
	Error string `json:"error,omitempty"`

	// CreatedAt is a unix timestamp
	CreatedAt int64 `json:"created_at"`
}

// GetID returns the job's ID
func (j *GenerationJob) GetID() string {
	return j.ID
}

// GetType returns the entity type for rpg-toolkit
func (j *GenerationJob) GetType() string {
	return "generation_job"
}

// Compile-time check that GenerationJob implements core.Entity
var _ core.Entity = (*GenerationJob)(nil)
