package fieldvet

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoLower keeps acronym words ("ID", "API") intact while the first
// letter of each word is raised.
var titleCaser = cases.Title(language.English, cases.NoLower)

// humanizeFieldName turns a Go field name into a readable display name:
// "firstName" -> "First Name", "APIKey" -> "API Key", "UserID" -> "User ID".
func humanizeFieldName(name string) string {
	words := splitCamelCase(name)
	if len(words) == 0 {
		return name
	}
	return titleCaser.String(strings.Join(words, " "))
}

// splitCamelCase breaks a name at lower-to-upper transitions and at the
// end of acronym runs.
func splitCamelCase(name string) []string {
	runes := []rune(name)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			boundary = true
		case unicode.IsUpper(cur) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// End of an acronym run followed by a regular word.
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}
