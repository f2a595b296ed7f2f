// Package entities defines the data-only types for the weapon generator.
// NOTE: These are data-only structs. Composition, stat math, and mesh
// selection are done by the orchestrators, not here.
package entities

// PersonalityProfile is a catalog entry describing the weapon vocabulary
// and stat modifiers for one player personality.
type PersonalityProfile struct {
	// Name is the catalog key (e.g., "aggressive_warrior")
	Name string `json:"name"`

	// WeaponTypes lists the weapon archetypes this personality favors
	WeaponTypes []string `json:"weapon_types"`

	// Materials lists the forging materials
	Materials []string `json:"materials"`

	// Effects lists the magical effects
	Effects []string `json:"effects"`

	// Descriptors lists the adjectives used in names and descriptions
	Descriptors []string `json:"descriptors"`

	// DamageModifier scales the base damage roll
	DamageModifier float64 `json:"damage_modifier"`

	// SpeedModifier scales the base speed roll
	SpeedModifier float64 `json:"speed_modifier"`
}

// Vocabularies returns the four term lists keyed by their catalog field name.
// Used by validation to report which list is malformed.
func (p *PersonalityProfile) Vocabularies() map[string][]string {
	return map[string][]string{
		"weapon_types": p.WeaponTypes,
		"materials":    p.Materials,
		"effects":      p.Effects,
		"descriptors":  p.Descriptors,
	}
}
