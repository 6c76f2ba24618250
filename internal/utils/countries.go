package utils

import (
	"sort"
	"strings"

	"github.com/dnl4/brasil/internal/models"
)

// countriesByDialLength holds the reference list sorted by dial-code
// digit length descending, so "+595" is tried before "+55" and a short
// prefix never shadows a longer match.
var countriesByDialLength = func() []models.Country {
	sorted := make([]models.Country, len(models.Countries))
	copy(sorted, models.Countries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(DialDigits(sorted[i])) > len(DialDigits(sorted[j]))
	})
	return sorted
}()

// DialDigits returns the country's dial code without the "+" prefix
func DialDigits(c models.Country) string {
	return strings.TrimPrefix(c.DialCode, "+")
}

// DetectCountry finds the country whose dial code is the longest prefix
// of the given digit string. ok is false when no dial code matches.
func DetectCountry(digits string) (models.Country, bool) {
	digits = StripFormatting(digits)
	for _, country := range countriesByDialLength {
		if strings.HasPrefix(digits, DialDigits(country)) {
			return country, true
		}
	}
	return models.Country{}, false
}

// FindCountryByCode looks a country up by its ISO code
func FindCountryByCode(code string) (models.Country, bool) {
	for _, country := range models.Countries {
		if country.Code == code {
			return country, true
		}
	}
	return models.Country{}, false
}
