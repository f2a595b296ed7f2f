package armory

import (
	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
)

// GenerateWeaponsInput contains parameters for synchronous generation
type GenerateWeaponsInput struct {
	Player1Personality string
	Player2Personality string
	ArenaTheme         string
	Count              int32
	Player1Power       *int32
	Player2Power       *int32
}

// GenerateWeaponsOutput contains the generated weapons with meshes written
type GenerateWeaponsOutput struct {
	Weapons []entities.WeaponRecord

	// ArenaTheme is the resolved theme the round used
	ArenaTheme string

	// GenerationSeconds is the wall time the round took
	GenerationSeconds float64
}

// CreateModelInput contains parameters for a single mesh generation
type CreateModelInput struct {
	Description string

	// Filename overrides the generated weapon_{timestamp}.obj name
	Filename string
}

// CreateModelOutput describes the written mesh
type CreateModelOutput struct {
	Filename string
	Path     string

	// FromBackend reports whether the generative backend produced the
	// mesh, as opposed to a static placeholder
	FromBackend bool

	GenerationSeconds float64
}

// BatchItem is one weapon in a batch mesh request
type BatchItem struct {
	Name        string
	Description string
	Filename    string
}

// BatchResult is the outcome for one batch item
type BatchResult struct {
	Name              string
	Status            string
	Path              string
	Error             string
	GenerationSeconds float64
}

// BatchCreateModelsInput contains parameters for batch mesh generation
type BatchCreateModelsInput struct {
	Items []BatchItem
}

// BatchCreateModelsOutput summarizes a batch run. Failures are reported
// per item; the batch itself always completes.
type BatchCreateModelsOutput struct {
	Results      []BatchResult
	Successful   int32
	Failed       int32
	TotalSeconds float64
}

// StartGenerationInput contains parameters for an asynchronous round
type StartGenerationInput struct {
	Player1Personality string
	Player2Personality string
	ArenaTheme         string
	Count              int32
	Player1Power       *int32
	Player2Power       *int32
}

// StartGenerationOutput identifies the queued job
type StartGenerationOutput struct {
	JobID  string
	Status entities.JobStatus
}

// GetJobInput contains parameters for polling a job
type GetJobInput struct {
	JobID string
}

// GetJobOutput carries the job payload
type GetJobOutput struct {
	Job *entities.GenerationJob
}

// CleanupJobInput contains parameters for deleting a job
type CleanupJobInput struct {
	JobID string
}

// CleanupJobOutput reports what cleanup removed
type CleanupJobOutput struct {
	FilesDeleted int32
}
