package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dnl4/brasil/internal/models"
)

// StripFormatting reduces a formatted phone string to bare digits
func StripFormatting(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatSubscriber applies the country's display mask to subscriber
// digits. Formatting is progressive: any prefix of a full number yields
// a partially punctuated string, so the function is total over 0..max
// digits. Countries without a bespoke mask pass digits through.
func FormatSubscriber(input string, country models.Country) string {
	digits := truncate(StripFormatting(input), country.MaxDigits)
	if digits == "" {
		return ""
	}

	switch country.Code {
	case "BR":
		// (XX) XXXXX-XXXX
		return maskGroups(digits, 2, 5)
	case "PY":
		// (XXX) XXX-XXX
		return maskGroups(digits, 3, 3)
	}
	return digits
}

// maskGroups renders "(area) block-rest" progressively: the closing
// parenthesis appears once the area code is complete, the hyphen once
// the middle block is complete.
func maskGroups(digits string, areaLen, blockLen int) string {
	var b strings.Builder

	area := digits
	if len(area) > areaLen {
		area = area[:areaLen]
	}
	b.WriteString("(")
	b.WriteString(area)
	if len(area) < areaLen {
		return b.String()
	}
	b.WriteString(") ")

	rest := digits[areaLen:]
	if rest == "" {
		return b.String()
	}
	block := rest
	if len(block) > blockLen {
		block = block[:blockLen]
	}
	b.WriteString(block)
	if len(block) < blockLen {
		return b.String()
	}
	b.WriteString("-")
	b.WriteString(rest[blockLen:])
	return b.String()
}

// ToCanonical converts subscriber input to the storage form: dial-code
// digits plus subscriber digits, truncated to the country's maximum.
// Empty input stays empty so a bare dial code is never stored.
func ToCanonical(subscriber string, country models.Country) string {
	digits := truncate(StripFormatting(subscriber), country.MaxDigits)
	if digits == "" {
		return ""
	}
	return DialDigits(country) + digits
}

// DisplayFull renders a canonical number for display: detects the
// country, splits off the dial code and applies the mask. Falls back to
// "+<digits>" when no country matches.
func DisplayFull(canonical string) string {
	digits := StripFormatting(canonical)
	if digits == "" {
		return ""
	}

	country, ok := DetectCountry(digits)
	if !ok {
		return "+" + digits
	}

	subscriber := digits[len(DialDigits(country)):]

	// The bespoke masks only apply to complete numbers; partial stored
	// values render unmasked after the dial code.
	switch {
	case country.Code == "BR" && len(digits) == 13:
		return fmt.Sprintf("%s (%s) %s-%s", country.DialCode, subscriber[:2], subscriber[2:7], subscriber[7:])
	case country.Code == "PY" && len(subscriber) >= 9:
		return fmt.Sprintf("%s (%s) %s-%s", country.DialCode, subscriber[:3], subscriber[3:6], subscriber[6:])
	}
	return country.DialCode + " " + subscriber
}

// ValidateCanonicalPhone checks that a canonical digit string is a real,
// dialable number before a message send
func ValidateCanonicalPhone(canonical string) error {
	digits := StripFormatting(canonical)
	if digits == "" {
		return fmt.Errorf("phone number is empty")
	}

	num, err := phonenumbers.Parse("+"+digits, "")
	if err != nil {
		return fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return fmt.Errorf("invalid phone number: %s", digits)
	}
	return nil
}

func truncate(digits string, max int) string {
	if max > 0 && len(digits) > max {
		return digits[:max]
	}
	return digits
}
