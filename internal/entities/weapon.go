package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Rarity labels a weapon's rarity tier
type Rarity string

// Rarity tiers, ordered from most to least common
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// DescriptionSource records which composer path produced a description
type DescriptionSource string

// Description sources
const (
	// DescriptionGenerated means a text backend produced the description
	DescriptionGenerated DescriptionSource = "generated"
	// DescriptionFallback means template interpolation produced it
	DescriptionFallback DescriptionSource = "fallback"
)

// WeaponRecord is one generated weapon. Immutable once returned; the only
// mutation path is deleting its backing mesh file during job cleanup.
type WeaponRecord struct {
	ID          string `json:"id"`
	Name        string `json:"weapon_name"`
	Description string `json:"description"`

	// Component terms retained for traceability
	WeaponType string `json:"weapon_type"`
	Material   string `json:"material"`
	Effect     string `json:"effect"`
	Descriptor string `json:"descriptor"`

	Damage int32  `json:"damage"`
	Speed  int32  `json:"speed"`
	Rarity Rarity `json:"rarity"`

	// Player is the owning player index (1 or 2)
	Player int32 `json:"player"`

	Personality string `json:"personality"`
	ArenaTheme  string `json:"arena_theme"`

	// FileLocation is the mesh artifact path, populated after the mesh step
	FileLocation string `json:"file_location"`

	// DescriptionFrom tags which composer path fired. Tests assert on it;
	// handlers do not serialize it to clients.
	DescriptionFrom DescriptionSource `json:"-"`
}

// GetID returns the weapon's ID
func (w *WeaponRecord) GetID() string {
	return w.ID
}

// GetType returns the entity type for rpg-toolkit
func (w *WeaponRecord) GetType() string {
	return "weapon"
}

// Compile-time check that WeaponRecord implements core.Entity
var _ core.Entity = (*WeaponRecord)(nil)
