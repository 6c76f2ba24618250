package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnl4/brasil/internal/models"
)

func TestDetectCountry(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   string
		ok     bool
	}{
		{"brazil", "5511999998888", "BR", true},
		{"paraguay wins over brazil prefix", "595981123456", "PY", true},
		{"argentina", "5491122334455", "AR", true},
		{"formatted input", "+55 (11) 99999-8888", "BR", true},
		{"no match", "", "", false},
		{"unknown prefix", "999123456", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			country, ok := DetectCountry(tt.digits)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, country.Code)
			}
		})
	}
}

func TestDetectCountry_LongestPrefixWins(t *testing.T) {
	// every country's own dial code must round-trip back to itself,
	// regardless of shorter dial codes sharing a prefix
	for _, want := range models.Countries {
		digits := DialDigits(want) + "900000000"
		got, ok := DetectCountry(digits)
		require.True(t, ok, "dial code %s", want.DialCode)

		// countries sharing an identical dial code are indistinguishable;
		// only require the detected dial code to match
		assert.Equal(t, want.DialCode, got.DialCode)
	}
}

func TestDialDigits(t *testing.T) {
	br, ok := FindCountryByCode("BR")
	require.True(t, ok)

	assert.Equal(t, "55", DialDigits(br))
	assert.False(t, strings.HasPrefix(DialDigits(br), "+"))
}

func TestFindCountryByCode(t *testing.T) {
	py, ok := FindCountryByCode("PY")
	require.True(t, ok)
	assert.Equal(t, "+595", py.DialCode)
	assert.Equal(t, 9, py.MaxDigits)

	_, ok = FindCountryByCode("XX")
	assert.False(t, ok)
}

func TestDefaultCountry(t *testing.T) {
	assert.Equal(t, "BR", models.DefaultCountry().Code)
}
