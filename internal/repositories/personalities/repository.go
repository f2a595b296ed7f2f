// Package personalities provides the personality catalog repository
package personalities

import (
	"context"

	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=personalitiesmock github.com/Samer-Gassouma/aeon-generator/internal/repositories/personalities Repository

// DefaultProfileName is returned for lookups of unknown personalities.
// Falling back instead of failing is deliberate: the generator must always
// be able to produce weapons for whatever label a game client sends.
const DefaultProfileName = "aggressive_warrior"

// GetInput contains parameters for looking up a profile
type GetInput struct {
	Name string
}

// GetOutput contains the result of a lookup
type GetOutput struct {
	Profile *entities.PersonalityProfile

	// Fallback is true when the requested name was unknown and the
	// default profile was returned instead
	Fallback bool
}

// RegisterInput contains parameters for adding or overwriting a profile
type RegisterInput struct {
	Profile *entities.PersonalityProfile
}

// RegisterOutput contains the result of a registration
type RegisterOutput struct {
	// Replaced is true when an existing entry was overwritten
	Replaced bool
}

// ListOutput contains all registered profile names
type ListOutput struct {
	Names []string
}

// Repository defines catalog storage operations. There is no removal
// operation: the catalog only grows within a process lifetime.
type Repository interface {
	// Get returns the profile for name, or the default profile if the
	// name is unknown. It never fails for unknown names.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Register adds or overwrites a profile. The profile must have a name
	// and four non-empty vocabulary lists.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// List returns all registered profile names, sorted
	List(ctx context.Context) (*ListOutput, error)
}
