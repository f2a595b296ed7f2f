package personalities

import "github.com/Samer-Gassouma/aeon-generator/internal/entities"

// DefaultProfiles returns the built-in catalog. Vocabulary terms and
// modifiers are load-bearing: client tooling matches on the exact strings.
func DefaultProfiles() []*entities.PersonalityProfile {
	return []*entities.PersonalityProfile{
		{
			Name:           "aggressive_warrior",
			WeaponTypes:    []string{"axe", "sword", "mace", "warhammer", "claymore", "battle axe"},
			Materials:      []string{"steel", "iron", "darksteel", "bloodsteel", "volcanic rock", "cursed metal"},
			Effects:        []string{"flame", "lightning", "poison", "ice", "shadow", "rage"},
			Descriptors:    []string{"brutal", "massive", "serrated", "jagged", "intimidating", "fearsome", "vicious"},
			DamageModifier: 1.2,
			SpeedModifier:  0.8,
		},
		{
			Name:           "strategic_mage",
			WeaponTypes:    []string{"staff", "wand", "orb", "tome", "crystal", "scepter"},
			Materials:      []string{"crystal", "enchanted wood", "mithril", "arcane stone", "starlight essence", "void crystal"},
			Effects:        []string{"arcane", "frost", "shadow", "holy", "time", "void", "mind"},
			Descriptors:    []string{"elegant", "mystical", "glowing", "ancient", "ethereal", "wise", "powerful"},
			DamageModifier: 0.9,
			SpeedModifier:  1.3,
		},
		{
			Name:           "defensive_guardian",
			WeaponTypes:    []string{"shield", "lance", "hammer", "defensive blade", "tower shield", "holy mace"},
			Materials:      []string{"blessed steel", "adamantite", "holy metal", "reinforced iron", "divine crystal", "light stone"},
			Effects:        []string{"protection", "barrier", "healing", "reflection", "blessing", "fortification"},
			Descriptors:    []string{"sturdy", "protective", "radiant", "fortified", "noble", "steadfast", "unwavering"},
			DamageModifier: 0.8,
			SpeedModifier:  0.9,
		},
		{
			Name:           "agile_assassin",
			WeaponTypes:    []string{"dagger", "blade", "throwing knife", "poison dart", "curved sword", "shadow blade"},
			Materials:      []string{"shadow steel", "quicksilver", "venom-coated metal", "silent steel", "void metal", "phantom iron"},
			Effects:        []string{"poison", "shadow", "stealth", "bleeding", "paralysis", "invisibility"},
			Descriptors:    []string{"swift", "silent", "deadly", "precise", "curved", "razor-sharp", "lethal"},
			DamageModifier: 0.9,
			SpeedModifier:  1.4,
		},
		{
			Name:           "elemental_mage",
			WeaponTypes:    []string{"elemental staff", "focus crystal", "elemental orb", "nature wand", "storm rod"},
			Materials:      []string{"elemental crystal", "living wood", "storm glass", "earth stone", "fire gem", "water pearl"},
			Effects:        []string{"fire", "water", "earth", "air", "lightning", "nature", "storm"},
			Descriptors:    []string{"elemental", "flowing", "crackling", "growing", "shifting", "natural", "primal"},
			DamageModifier: 1.0,
			SpeedModifier:  1.1,
		},
	}
}
