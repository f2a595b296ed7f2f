package forge

import (
	"fmt"
	"strings"
	"unicode"
)

// titleCase capitalizes the first letter of every word, including words
// joined by hyphens ("razor-sharp" becomes "Razor-Sharp").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfWord := true
	for _, r := range s {
		if !unicode.IsLetter(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// namePatterns builds the candidate names for a component set. The pattern
// list and its capitalization quirks are part of the output contract.
func namePatterns(weaponType, material, effect, descriptor string) []string {
	return []string{
		fmt.Sprintf("%s %s of %s", titleCase(descriptor), titleCase(weaponType), titleCase(effect)),
		fmt.Sprintf("%s %s", titleCase(material), titleCase(weaponType)),
		fmt.Sprintf("%s %s %s", titleCase(effect), descriptor, weaponType),
		fmt.Sprintf("The %s %s", titleCase(descriptor), titleCase(weaponType)),
		fmt.Sprintf("%s %s %s", titleCase(material), titleCase(effect), titleCase(weaponType)),
		fmt.Sprintf("%s-%s %s", titleCase(effect), descriptor, weaponType),
		fmt.Sprintf("%s %s %s", titleCase(descriptor), material, weaponType),
	}
}
