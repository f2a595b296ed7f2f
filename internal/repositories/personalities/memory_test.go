package personalities

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()

	repo, err := NewMemoryRepository(&Config{})
	require.NoError(t, err)
	return repo
}

func TestGet_KnownProfilesHaveFullVocabularies(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	listOutput, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, listOutput.Names)

	for _, name := range listOutput.Names {
		getOutput, err := repo.Get(ctx, GetInput{Name: name})
		require.NoError(t, err)
		require.NotNil(t, getOutput.Profile)
		assert.False(t, getOutput.Fallback)

		for field, list := range getOutput.Profile.Vocabularies() {
			assert.NotEmpty(t, list, "profile %s list %s", name, field)
		}
	}
}

func TestGet_UnknownNameFallsBackToDefault(t *testing.T) {
	repo := newTestRepo(t)

	output, err := repo.Get(context.Background(), GetInput{Name: "chaotic_bard"})
	require.NoError(t, err)
	require.NotNil(t, output.Profile)
	assert.True(t, output.Fallback)
	assert.Equal(t, DefaultProfileName, output.Profile.Name)
}

func TestGet_EmptyNameRejected(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), GetInput{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRegister_AddsAndOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	profile := &entities.PersonalityProfile{
		Name:           "chaotic_bard",
		WeaponTypes:    []string{"lute"},
		Materials:      []string{"maple"},
		Effects:        []string{"charm"},
		Descriptors:    []string{"flamboyant"},
		DamageModifier: 0.7,
		SpeedModifier:  1.2,
	}

	registerOutput, err := repo.Register(ctx, RegisterInput{Profile: profile})
	require.NoError(t, err)
	assert.False(t, registerOutput.Replaced)

	getOutput, err := repo.Get(ctx, GetInput{Name: "chaotic_bard"})
	require.NoError(t, err)
	assert.False(t, getOutput.Fallback)
	assert.Equal(t, []string{"lute"}, getOutput.Profile.WeaponTypes)

	registerOutput, err = repo.Register(ctx, RegisterInput{Profile: profile})
	require.NoError(t, err)
	assert.True(t, registerOutput.Replaced)
}

func TestRegister_EmptyVocabularySurfaced(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Register(context.Background(), RegisterInput{
		Profile: &entities.PersonalityProfile{
			Name:        "broken",
			WeaponTypes: []string{"axe"},
			Materials:   []string{"iron"},
			Effects:     nil, // the defect
			Descriptors: []string{"dull"},
		},
	})

	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Contains(t, err.Error(), "effects")
}

func TestRegister_OmittedModifiersDefaultToNeutral(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Register(ctx, RegisterInput{
		Profile: &entities.PersonalityProfile{
			Name:        "stoic_monk",
			WeaponTypes: []string{"staff"},
			Materials:   []string{"oak"},
			Effects:     []string{"calm"},
			Descriptors: []string{"serene"},
		},
	})
	require.NoError(t, err)

	output, err := repo.Get(ctx, GetInput{Name: "stoic_monk"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, output.Profile.DamageModifier)
	assert.Equal(t, 1.0, output.Profile.SpeedModifier)
}

func TestRegister_NegativeModifierRejected(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Register(context.Background(), RegisterInput{
		Profile: &entities.PersonalityProfile{
			Name:           "broken",
			WeaponTypes:    []string{"axe"},
			Materials:      []string{"iron"},
			Effects:        []string{"rust"},
			Descriptors:    []string{"dull"},
			DamageModifier: -0.5,
			SpeedModifier:  1.0,
		},
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "modifier")
}

func TestNewMemoryRepository_OverlayMergesEntries(t *testing.T) {
	dir := t.TempDir()
	overlayPath := filepath.Join(dir, "personalities.json")

	overlay := `{
		"berserk_titan": {
			"weapon_types": ["greatclub"],
			"materials": ["obsidian"],
			"effects": ["quake"],
			"descriptors": ["colossal"],
			"damage_modifier": 1.4,
			"speed_modifier": 0.6
		}
	}`
	require.NoError(t, os.WriteFile(overlayPath, []byte(overlay), 0o600))

	repo, err := NewMemoryRepository(&Config{OverlayPath: overlayPath})
	require.NoError(t, err)

	output, err := repo.Get(context.Background(), GetInput{Name: "berserk_titan"})
	require.NoError(t, err)
	assert.False(t, output.Fallback)
	assert.Equal(t, 1.4, output.Profile.DamageModifier)
}

func TestNewMemoryRepository_MissingOverlayIgnored(t *testing.T) {
	repo, err := NewMemoryRepository(&Config{
		OverlayPath: filepath.Join(t.TempDir(), "nope.json"),
	})
	require.NoError(t, err)
	require.NotNil(t, repo)
}
