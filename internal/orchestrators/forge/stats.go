package forge

import (
	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
)

// Rarity thresholds for a single uniform draw. Ordered and cumulative:
// the probabilities of the three named tiers sum to 0.5, the rest is common.
const (
	legendaryThreshold = 0.05
	epicThreshold      = 0.20
	rareThreshold      = 0.50

	legendaryDamageMult = 1.5
	epicDamageMult      = 1.3
	rareDamageMult      = 1.1
)

// statBlock is the result of one stat roll
type statBlock struct {
	damage int32
	speed  int32
	rarity entities.Rarity
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// powerFactor converts an aggregate 0-100 power level into a stat
// multiplier between 0.8 and 1.2. Nil means no scaling.
func powerFactor(powerLevel *int32) float64 {
	if powerLevel == nil {
		return 1.0
	}
	level := clamp(int(*powerLevel), 0, 100)
	return 0.8 + 0.4*(float64(level)/100)
}

// rollStats draws base stats, applies the personality and power modifiers,
// rolls rarity, and clamps the results to the configured bounds. The rarity
// damage multiplier lands after the modifiers, before the final clamp.
func (o *orchestrator) rollStats(profile *entities.PersonalityProfile, powerLevel *int32) (*statBlock, error) {
	baseDamage, err := o.roller.IntBetween(o.stats.DamageMin, o.stats.DamageMax)
	if err != nil {
		return nil, err
	}
	baseSpeed, err := o.roller.IntBetween(o.stats.SpeedMin, o.stats.SpeedMax)
	if err != nil {
		return nil, err
	}

	factor := powerFactor(powerLevel)
	damage := float64(baseDamage) * profile.DamageModifier * factor
	speed := float64(baseSpeed) * profile.SpeedModifier * factor

	rarityRoll, err := o.roller.Float64()
	if err != nil {
		return nil, err
	}

	rarity := entities.RarityCommon
	switch {
	case rarityRoll < legendaryThreshold:
		rarity = entities.RarityLegendary
		damage *= legendaryDamageMult
	case rarityRoll < epicThreshold:
		rarity = entities.RarityEpic
		damage *= epicDamageMult
	case rarityRoll < rareThreshold:
		rarity = entities.RarityRare
		damage *= rareDamageMult
	}

	// nolint:gosec // bounds are far below int32 limits
	return &statBlock{
		damage: int32(clamp(int(damage), o.stats.DamageClampMin, o.stats.DamageClampMax)),
		speed:  int32(clamp(int(speed), o.stats.SpeedClampMin, o.stats.SpeedClampMax)),
		rarity: rarity,
	}, nil
}
