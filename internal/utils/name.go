package utils

import (
	"strings"
	"unicode"
)

// anonymousName is shown when a rater's name cannot be displayed
const anonymousName = "Usuário anônimo"

// FormatPartialName reduces a full name to the display form shown next
// to ratings: first name plus the initial of the last name ("João Silva"
// becomes "João S."). Emails and empty names are fully hidden.
func FormatPartialName(fullName string) string {
	if fullName == "" || strings.Contains(fullName, "@") {
		return anonymousName
	}

	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) == 0 {
		return anonymousName
	}

	if len(parts) == 1 {
		runes := []rune(parts[0])
		return string(runes[0]) + "***"
	}

	lastRunes := []rune(parts[len(parts)-1])
	return parts[0] + " " + string(unicode.ToUpper(lastRunes[0])) + "."
}
