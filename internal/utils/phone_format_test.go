package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnl4/brasil/internal/models"
)

func country(t *testing.T, code string) models.Country {
	t.Helper()
	c, ok := FindCountryByCode(code)
	require.True(t, ok, "country %s must exist in the reference list", code)
	return c
}

func TestStripFormatting(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(11) 99999-8888", "11999998888"},
		{"+55 11 99999 8888", "5511999998888"},
		{"abc", ""},
		{"", ""},
		{"11999998888", "11999998888"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripFormatting(tt.input))
	}
}

func TestFormatSubscriber_Brazil(t *testing.T) {
	br := country(t, "BR")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"one digit", "1", "(1"},
		{"area complete", "11", "(11) "},
		{"mid block", "11999", "(11) 999"},
		{"block complete", "1199999", "(11) 99999-"},
		{"full number", "11999998888", "(11) 99999-8888"},
		{"over max is truncated", "119999988880000", "(11) 99999-8888"},
		{"already formatted input", "(11) 99999-8888", "(11) 99999-8888"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSubscriber(tt.input, br))
		})
	}
}

func TestFormatSubscriber_Paraguay(t *testing.T) {
	py := country(t, "PY")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"area partial", "98", "(98"},
		{"area complete", "981", "(981) "},
		{"mid block", "98112", "(981) 12"},
		{"full number", "981123456", "(981) 123-456"},
		{"over max is truncated", "9811234567", "(981) 123-456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSubscriber(tt.input, py))
		})
	}
}

func TestFormatSubscriber_NoMaskCountry(t *testing.T) {
	ar := country(t, "AR")

	assert.Equal(t, "1122334455", FormatSubscriber("11 2233 4455", ar))
}

func TestFormatSubscriber_Progressive(t *testing.T) {
	// every prefix of a full number formats without panicking and
	// strips back to the same digits
	br := country(t, "BR")
	full := "11999998888"

	for i := 0; i <= len(full); i++ {
		prefix := full[:i]
		formatted := FormatSubscriber(prefix, br)
		assert.Equal(t, prefix, StripFormatting(formatted), "prefix %q", prefix)
	}
}

func TestToCanonical(t *testing.T) {
	br := country(t, "BR")
	py := country(t, "PY")

	assert.Equal(t, "5511999998888", ToCanonical("(11) 99999-8888", br))
	assert.Equal(t, "595981123456", ToCanonical("981 123 456", py))
	assert.Equal(t, "", ToCanonical("", br), "empty input must not become a bare dial code")
	assert.Equal(t, "", ToCanonical("abc", br))
	assert.Equal(t, "5511999998888", ToCanonical("119999988889999", br), "subscriber digits beyond the maximum are dropped")
}

func TestFormatSubscriber_Idempotent(t *testing.T) {
	br := country(t, "BR")
	py := country(t, "PY")

	for _, input := range []string{"11999998888", "1199", "981123456"} {
		once := FormatSubscriber(input, br)
		assert.Equal(t, once, FormatSubscriber(once, br))

		once = FormatSubscriber(input, py)
		assert.Equal(t, once, FormatSubscriber(once, py))
	}
}

func TestToCanonical_FormatRoundTrip(t *testing.T) {
	// formatting then canonicalizing equals canonicalizing the raw digits
	br := country(t, "BR")
	raw := "11999998888"

	assert.Equal(t, ToCanonical(raw, br), ToCanonical(FormatSubscriber(raw, br), br))
}

func TestDisplayFull(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		want      string
	}{
		{"empty", "", ""},
		{"brazil full", "5511999998888", "+55 (11) 99999-8888"},
		{"brazil short renders unmasked", "551199999888", "+55 1199999888"},
		{"paraguay full", "595981123456", "+595 (981) 123-456"},
		{"argentina passthrough", "5491122334455", "+54 91122334455"},
		{"unknown dial code", "9991234567", "+9991234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayFull(tt.canonical))
		})
	}
}

func TestValidateCanonicalPhone(t *testing.T) {
	assert.NoError(t, ValidateCanonicalPhone("5521999998888"))
	assert.Error(t, ValidateCanonicalPhone(""))
	assert.Error(t, ValidateCanonicalPhone("123"))
}
