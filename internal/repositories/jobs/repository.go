// Package jobs provides storage for asynchronous generation jobs
package jobs

import (
	"context"
	"time"

	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=jobsmock github.com/Samer-Gassouma/aeon-generator/internal/repositories/jobs Repository

// CreateInput contains parameters for creating a job record
type CreateInput struct {
	Job *entities.GenerationJob

	// TTL bounds how long a finished or abandoned job stays queryable
	TTL time.Duration
}

// CreateOutput contains the result of creating a job record
type CreateOutput struct {
	Job *entities.GenerationJob
}

// GetInput contains parameters for retrieving a job
type GetInput struct {
	JobID string
}

// GetOutput contains the result of retrieving a job
type GetOutput struct {
	Job *entities.GenerationJob
}

// DeleteInput contains parameters for deleting a job record
type DeleteInput struct {
	JobID string
}

// DeleteOutput contains the result of deleting a job record
type DeleteOutput struct {
	// WeaponsDeleted counts the weapons that were attached to the record
	WeaponsDeleted int32
}

// Repository defines job storage operations. Each job has exactly one
// writer (its background goroutine); status pollers only Get.
type Repository interface {
	// Create stores a new job with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a job by ID, returning NotFound for unknown IDs
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a job record, enforcing forward-only status moves
	Update(ctx context.Context, job *entities.GenerationJob) error

	// Delete removes a job record
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
