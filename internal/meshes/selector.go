package meshes

import (
	"fmt"
	"strings"
	"time"
)

// keywordRule maps descriptive words to a body kind. Rules are checked in
// order: "blade" wins over "axe" when both appear.
type keywordRule struct {
	kind     Kind
	keywords []string
}

var keywordRules = []keywordRule{
	{KindSword, []string{"sword", "blade", "claymore"}},
	{KindAxe, []string{"axe", "hatchet"}},
	{KindStaff, []string{"staff", "rod"}},
	{KindDagger, []string{"dagger", "knife"}},
	{KindMace, []string{"mace", "hammer", "warhammer"}},
	{KindShield, []string{"shield"}},
	{KindOrb, []string{"orb", "crystal", "sphere"}},
	{KindWand, []string{"wand", "scepter"}},
}

// Detect picks the body kind for a weapon description. Matching is
// case-insensitive substring search; unrecognized descriptions get a sword.
func Detect(description string) Kind {
	lowered := strings.ToLower(description)

	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.kind
			}
		}
	}

	return KindSword
}

// Render produces the full OBJ file contents for a description: a metadata
// header followed by the body Detect selects.
func Render(description string, now time.Time) (Kind, string) {
	kind := Detect(description)

	content := fmt.Sprintf(`# AEON Weapon Model - Generated by AI
# Description: %s
# Weapon Type: %s
# Generated: %s
# Generator: Enhanced Mock Hunyuan3D-2

%s
`, description, kind, now.Format("2006-01-02 15:04:05"), Body(kind))

	return kind, content
}
