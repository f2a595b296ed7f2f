package forge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/Samer-Gassouma/aeon-generator/internal/clients/textgen"
	"github.com/Samer-Gassouma/aeon-generator/internal/entities"
)

const (
	// DefaultArenaTheme flavors descriptions when no theme is given or
	// the given theme has no flavor table
	DefaultArenaTheme = "medieval"

	// Completion tuning for the small models the text backend runs
	descriptionMaxTokens   = 60
	descriptionTemperature = 0.8
	descriptionRepPenalty  = 1.2

	// Continuations shorter than this read like noise, use a template
	minDescriptionLen = 20

	maxDescriptionLen = 120
)

// arenaFlavors maps each theme to the elements descriptions draw on
var arenaFlavors = map[string][]string{
	"volcanic": {"molten lava", "volcanic ash", "burning rocks", "fire", "heat"},
	"ice":      {"frozen crystals", "icy winds", "frost", "glacial power", "frozen essence"},
	"forest":   {"ancient trees", "natural magic", "forest spirits", "living wood", "nature's power"},
	"medieval": {"ancient runes", "battle-tested steel", "warrior's honor", "knightly valor", "old magic"},
	"shadow":   {"dark energy", "shadow essence", "void power", "darkness", "nightmare fuel"},
	"desert":   {"sand storms", "scorching heat", "mirage magic", "desert winds", "ancient sands"},
}

// flavorsFor returns the flavor table for a theme, falling back to the
// default theme for unknown names
func flavorsFor(theme string) []string {
	if flavors, ok := arenaFlavors[theme]; ok {
		return flavors
	}
	return arenaFlavors[DefaultArenaTheme]
}

// components carries one sampled vocabulary draw through composition
type components struct {
	weaponType string
	material   string
	effect     string
	descriptor string
}

// describe produces the weapon description. The text backend is tried first
// when configured; any failure or weak output falls back to the template
// path, so composition never fails on a backend outage.
func (o *orchestrator) describe(ctx context.Context, c components, theme string) (string, entities.DescriptionSource, error) {
	if o.textClient != nil {
		description, err := o.describeWithBackend(ctx, c, theme)
		if err == nil && description != "" {
			return description, entities.DescriptionGenerated, nil
		}
		if err != nil {
			slog.Warn("text backend description failed, using template",
				"error", err.Error())
		}
	}

	description, err := o.describeFromTemplate(c, theme)
	if err != nil {
		return "", "", err
	}
	return description, entities.DescriptionFallback, nil
}

func (o *orchestrator) describeWithBackend(ctx context.Context, c components, theme string) (string, error) {
	prompt := fmt.Sprintf(
		"A %s %s made of %s with %s effects in a %s arena. This legendary weapon",
		c.descriptor, c.weaponType, c.material, c.effect, theme)

	output, err := o.textClient.Complete(ctx, &textgen.CompleteInput{
		Prompt:           prompt,
		MaxTokens:        descriptionMaxTokens,
		Temperature:      descriptionTemperature,
		FrequencyPenalty: descriptionRepPenalty,
	})
	if err != nil {
		return "", err
	}

	return cleanDescription(output.Text), nil
}

// cleanDescription trims a raw continuation down to one presentable
// sentence. Empty return means the continuation was unusable.
func cleanDescription(raw string) string {
	description := strings.TrimSpace(raw)
	if description == "" {
		return ""
	}

	// Prefer the first full sentence, otherwise hard-truncate on a rune
	// boundary
	sentences := strings.SplitN(description, ".", 2)
	if first := sentences[0]; first != "" && len(first) > 10 {
		description = first + "."
	} else if runes := []rune(description); len(runes) > maxDescriptionLen {
		description = string(runes[:maxDescriptionLen]) + "..."
	} else {
		description += "..."
	}

	runes := []rune(description)
	if !unicode.IsUpper(runes[0]) {
		runes[0] = unicode.ToUpper(runes[0])
		description = string(runes)
	}

	if len(description) <= minDescriptionLen {
		return ""
	}
	return description
}

func (o *orchestrator) describeFromTemplate(c components, theme string) (string, error) {
	flavors := flavorsFor(theme)
	flavorIdx, err := o.roller.IntBetween(0, len(flavors)-1)
	if err != nil {
		return "", err
	}
	flavor := flavors[flavorIdx]

	templates := []string{
		fmt.Sprintf("A %s %s forged from %s, crackling with %s energy and infused with %s.",
			c.descriptor, c.weaponType, c.material, c.effect, flavor),
		fmt.Sprintf("This %s %s radiates %s power, its %s form designed for devastating attacks in %s combat.",
			c.material, c.weaponType, c.effect, c.descriptor, theme),
		fmt.Sprintf("Crafted from finest %s, this %s %s channels %s forces and draws strength from %s.",
			c.material, c.descriptor, c.weaponType, c.effect, flavor),
		fmt.Sprintf("A legendary %s of %s construction, imbued with %s magic and empowered by %s.",
			c.weaponType, c.material, c.effect, flavor),
		fmt.Sprintf("The %s surface of this %s %s glows with %s energy, enhanced by the power of %s.",
			c.descriptor, c.material, c.weaponType, c.effect, flavor),
		fmt.Sprintf("Forged in the heart of %s lands, this %s %s combines %s with %s magic.",
			theme, c.descriptor, c.weaponType, c.material, c.effect),
		fmt.Sprintf("A %s %s that pulses with %s energy, its %s core resonating with %s.",
			c.descriptor, c.weaponType, c.effect, c.material, flavor),
		fmt.Sprintf("This ancient %s of %s bears the mark of %s magic and the essence of %s.",
			c.weaponType, c.material, c.effect, flavor),
	}

	templateIdx, err := o.roller.IntBetween(0, len(templates)-1)
	if err != nil {
		return "", err
	}
	return templates[templateIdx], nil
}
