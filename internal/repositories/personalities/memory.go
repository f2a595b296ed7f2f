package personalities

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
)

// Config holds the configuration for the in-memory repository
type Config struct {
	// Seed profiles loaded at construction. Defaults to DefaultProfiles
	// when nil.
	Seed []*entities.PersonalityProfile

	// OverlayPath optionally points at a JSON file whose entries are
	// merged over the seed, matching the config/personalities.json
	// behavior of earlier deployments. A missing file is not an error.
	OverlayPath string
}

// memoryRepository serves lookups from an immutable snapshot map and swaps
// in a new snapshot on every write. Readers never hold the lock while the
// map is consulted, which keeps concurrent lookups consistent under a
// single-writer discipline.
type memoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entities.PersonalityProfile
}

// NewMemoryRepository creates the in-memory catalog from seed + overlay
func NewMemoryRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	seed := cfg.Seed
	if seed == nil {
		seed = DefaultProfiles()
	}

	profiles := make(map[string]*entities.PersonalityProfile, len(seed))
	for _, p := range seed {
		if err := validateProfile(p); err != nil {
			return nil, err
		}
		normalizeProfile(p)
		profiles[p.Name] = p
	}

	if cfg.OverlayPath != "" {
		if err := mergeOverlay(profiles, cfg.OverlayPath); err != nil {
			return nil, err
		}
	}

	if _, ok := profiles[DefaultProfileName]; !ok {
		return nil, errors.FailedPreconditionf("catalog is missing the default profile %q", DefaultProfileName)
	}

	return &memoryRepository{profiles: profiles}, nil
}

// Ensure memoryRepository implements Repository
var _ Repository = (*memoryRepository)(nil)

// Get returns the profile for the name, falling back to the default
func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("personality name cannot be empty")
	}

	r.mu.RLock()
	snapshot := r.profiles
	r.mu.RUnlock()

	if p, ok := snapshot[input.Name]; ok {
		return &GetOutput{Profile: p}, nil
	}

	return &GetOutput{
		Profile:  snapshot[DefaultProfileName],
		Fallback: true,
	}, nil
}

// Register adds or overwrites a profile under a fresh snapshot
func (r *memoryRepository) Register(_ context.Context, input RegisterInput) (*RegisterOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument("profile cannot be nil")
	}
	if err := validateProfile(input.Profile); err != nil {
		return nil, err
	}
	normalizeProfile(input.Profile)

	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.profiles[input.Profile.Name]

	next := make(map[string]*entities.PersonalityProfile, len(r.profiles)+1)
	for k, v := range r.profiles {
		next[k] = v
	}
	next[input.Profile.Name] = input.Profile
	r.profiles = next

	return &RegisterOutput{Replaced: replaced}, nil
}

// List returns all registered profile names, sorted
func (r *memoryRepository) List(_ context.Context) (*ListOutput, error) {
	r.mu.RLock()
	snapshot := r.profiles
	r.mu.RUnlock()

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	return &ListOutput{Names: names}, nil
}

// validateProfile rejects catalog entries that would crash composition.
// An empty vocabulary list is a configuration defect and must surface,
// not be silently skipped.
func validateProfile(p *entities.PersonalityProfile) error {
	if p.Name == "" {
		return errors.InvalidArgument("profile name cannot be empty")
	}

	for field, list := range p.Vocabularies() {
		if len(list) == 0 {
			return errors.FailedPreconditionf(
				"profile %q has an empty vocabulary: %s", p.Name, field)
		}
	}

	if p.DamageModifier < 0 || p.SpeedModifier < 0 {
		return errors.InvalidArgumentf(
			"profile %q has a negative stat modifier", p.Name)
	}

	return nil
}

// normalizeProfile defaults omitted stat modifiers to neutral so a profile
// registered without them does not zero out every stat roll
func normalizeProfile(p *entities.PersonalityProfile) {
	if p.DamageModifier == 0 {
		p.DamageModifier = 1.0
	}
	if p.SpeedModifier == 0 {
		p.SpeedModifier = 1.0
	}
}

// mergeOverlay loads a personality JSON file and overwrites seed entries.
// File format mirrors the legacy config: a map of name to profile fields.
func mergeOverlay(profiles map[string]*entities.PersonalityProfile, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from config
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read personality overlay %s", path)
	}

	var overlay map[string]*entities.PersonalityProfile
	if err := json.Unmarshal(data, &overlay); err != nil {
		return errors.Wrapf(err, "failed to parse personality overlay %s", path)
	}

	for name, p := range overlay {
		p.Name = name
		if err := validateProfile(p); err != nil {
			return err
		}
		normalizeProfile(p)
		profiles[name] = p
	}

	return nil
}
