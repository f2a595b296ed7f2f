// Package forge implements weapon composition: vocabulary sampling, naming,
// description generation, and stat rolls.
package forge

//go:generate mockgen -destination=mock/mock_service.go -package=forgemock github.com/Samer-Gassouma/aeon-generator/internal/orchestrators/forge Service

import (
	"context"
	"log/slog"

	"github.com/Samer-Gassouma/aeon-generator/internal/clients/textgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/config"
	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/idgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/pkg/roller"
	"github.com/Samer-Gassouma/aeon-generator/internal/repositories/personalities"
)

// DefaultWeaponCount matches a two-player match: two weapons each
const DefaultWeaponCount = 4

// Service defines the weapon composition operations
type Service interface {
	// ComposeWeapon builds a single weapon for one player
	ComposeWeapon(ctx context.Context, input *ComposeWeaponInput) (*ComposeWeaponOutput, error)

	// GenerateWeapons builds a full round of weapons, alternating owners
	GenerateWeapons(ctx context.Context, input *GenerateWeaponsInput) (*GenerateWeaponsOutput, error)
}

// Config holds the dependencies for the forge orchestrator
type Config struct {
	PersonalityRepo personalities.Repository
	Roller          roller.Roller
	IDGenerator     idgen.Generator

	// TextClient is optional; nil means template descriptions only
	TextClient textgen.Client

	Stats config.StatRanges

	// MaxWeapons bounds a single generation call. Zero means
	// DefaultWeaponCount.
	MaxWeapons int32
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PersonalityRepo == nil {
		vb.RequiredField("PersonalityRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Stats.DamageMin <= 0 || c.Stats.DamageMax < c.Stats.DamageMin {
		vb.InvalidField("Stats", "damage range must be positive and ordered")
	}
	if c.Stats.SpeedMin <= 0 || c.Stats.SpeedMax < c.Stats.SpeedMin {
		vb.InvalidField("Stats", "speed range must be positive and ordered")
	}

	return vb.Build()
}

type orchestrator struct {
	personalityRepo personalities.Repository
	roller          roller.Roller
	idGen           idgen.Generator
	textClient      textgen.Client
	stats           config.StatRanges
	maxWeapons      int32
}

// NewOrchestrator creates a new forge orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxWeapons := cfg.MaxWeapons
	if maxWeapons == 0 {
		maxWeapons = DefaultWeaponCount
	}

	return &orchestrator{
		personalityRepo: cfg.PersonalityRepo,
		roller:          cfg.Roller,
		idGen:           cfg.IDGenerator,
		textClient:      cfg.TextClient,
		stats:           cfg.Stats,
		maxWeapons:      maxWeapons,
	}, nil
}

// sample draws one term from a vocabulary list
func (o *orchestrator) sample(field string, list []string) (string, error) {
	if len(list) == 0 {
		return "", errors.FailedPreconditionf("personality has empty %s vocabulary", field)
	}

	idx, err := o.roller.IntBetween(0, len(list)-1)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sample %s", field)
	}
	return list[idx], nil
}

func (o *orchestrator) sampleComponents(profile *entities.PersonalityProfile) (components, error) {
	var c components
	var err error

	if c.weaponType, err = o.sample("weapon_types", profile.WeaponTypes); err != nil {
		return c, err
	}
	if c.material, err = o.sample("materials", profile.Materials); err != nil {
		return c, err
	}
	if c.effect, err = o.sample("effects", profile.Effects); err != nil {
		return c, err
	}
	if c.descriptor, err = o.sample("descriptors", profile.Descriptors); err != nil {
		return c, err
	}

	return c, nil
}

// ComposeWeapon builds one weapon: vocabulary draw, name, description, stats
func (o *orchestrator) ComposeWeapon(ctx context.Context, input *ComposeWeaponInput) (*ComposeWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Personality == "" {
		return nil, errors.InvalidArgument("personality is required")
	}
	if input.Player != 1 && input.Player != 2 {
		return nil, errors.InvalidArgumentf("player must be 1 or 2, got %d", input.Player)
	}

	theme := input.ArenaTheme
	if theme == "" {
		theme = DefaultArenaTheme
	}

	getOutput, err := o.personalityRepo.Get(ctx, personalities.GetInput{Name: input.Personality})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load personality")
	}
	profile := getOutput.Profile
	if getOutput.Fallback {
		slog.Debug("unknown personality, using default",
			"requested", input.Personality,
			"profile", profile.Name)
	}

	c, err := o.sampleComponents(profile)
	if err != nil {
		return nil, err
	}

	patterns := namePatterns(c.weaponType, c.material, c.effect, c.descriptor)
	patternIdx, err := o.roller.IntBetween(0, len(patterns)-1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick name pattern")
	}
	name := patterns[patternIdx]

	description, source, err := o.describe(ctx, c, theme)
	if err != nil {
		return nil, errors.Wrap(err, "failed to describe weapon")
	}

	stats, err := o.rollStats(profile, input.PowerLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll stats")
	}

	return &ComposeWeaponOutput{
		Weapon: &entities.WeaponRecord{
			ID:              o.idGen.Generate(),
			Name:            name,
			Description:     description,
			WeaponType:      c.weaponType,
			Material:        c.material,
			Effect:          c.effect,
			Descriptor:      c.descriptor,
			Damage:          stats.damage,
			Speed:           stats.speed,
			Rarity:          stats.rarity,
			Player:          input.Player,
			Personality:     input.Personality,
			ArenaTheme:      theme,
			DescriptionFrom: source,
		},
	}, nil
}

// GenerateWeapons builds a round of weapons alternating between the players
func (o *orchestrator) GenerateWeapons(ctx context.Context, input *GenerateWeaponsInput) (*GenerateWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Player1Personality == "" {
		vb.RequiredField("player1_personality")
	}
	if input.Player2Personality == "" {
		vb.RequiredField("player2_personality")
	}
	if input.Count < 0 || input.Count > o.maxWeapons {
		vb.Fieldf("count", "must be between 1 and %d", o.maxWeapons)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	count := input.Count
	if count == 0 {
		count = o.maxWeapons
	}

	powerLevel := aggregatePower(input.Player1Power, input.Player2Power)

	weapons := make([]entities.WeaponRecord, 0, count)
	for i := int32(0); i < count; i++ {
		player := int32(1)
		personality := input.Player1Personality
		if i%2 == 1 {
			player = 2
			personality = input.Player2Personality
		}

		output, err := o.ComposeWeapon(ctx, &ComposeWeaponInput{
			Personality: personality,
			ArenaTheme:  input.ArenaTheme,
			Player:      player,
			PowerLevel:  powerLevel,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compose weapon %d", i)
		}
		weapons = append(weapons, *output.Weapon)
	}

	return &GenerateWeaponsOutput{Weapons: weapons}, nil
}

// aggregatePower averages the player power levels; one missing value means
// the other stands alone, both missing disables the factor
func aggregatePower(p1, p2 *int32) *int32 {
	switch {
	case p1 != nil && p2 != nil:
		avg := (*p1 + *p2) / 2
		return &avg
	case p1 != nil:
		return p1
	case p2 != nil:
		return p2
	default:
		return nil
	}
}
