package forge

import (
	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
)

// ComposeWeaponInput contains parameters for composing one weapon
type ComposeWeaponInput struct {
	// Personality selects the vocabulary profile. Unknown names fall back
	// to the default profile.
	Personality string

	// ArenaTheme flavors descriptions. Unknown themes use the medieval
	// flavor table.
	ArenaTheme string

	// Player is the owning player index (1 or 2)
	Player int32

	// PowerLevel optionally scales stats, 0-100. Nil disables the factor.
	PowerLevel *int32
}

// ComposeWeaponOutput contains the composed weapon
type ComposeWeaponOutput struct {
	Weapon *entities.WeaponRecord
}

// GenerateWeaponsInput contains parameters for a full generation round
type GenerateWeaponsInput struct {
	Player1Personality string
	Player2Personality string
	ArenaTheme         string

	// Count is the number of weapons to generate, split evenly between
	// the players. Zero means the configured default.
	Count int32

	// Player1Power and Player2Power are optional 0-100 power levels.
	// When both are set their average drives the power factor.
	Player1Power *int32
	Player2Power *int32
}

// GenerateWeaponsOutput contains the generated weapons
type GenerateWeaponsOutput struct {
	Weapons []entities.WeaponRecord
}
