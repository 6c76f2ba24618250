package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnl4/brasil/internal/models"
)

func TestValidateDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"valid", "joao123", "joao123", nil},
		{"uppercase is folded", "UsUaRiO123", "usuario123", nil},
		{"surrounding spaces trimmed", "  maria  ", "maria", nil},
		{"empty", "", "", ErrDisplayNameRequired},
		{"spaces only", "   ", "", ErrDisplayNameRequired},
		{"too short", "ab", "", ErrDisplayNameTooShort},
		{"exactly three", "abc", "abc", nil},
		{"too long", strings.Repeat("a", 21), "", ErrDisplayNameTooLong},
		{"exactly twenty", strings.Repeat("a", 20), strings.Repeat("a", 20), nil},
		{"inner space", "joao silva", "", ErrDisplayNameInvalid},
		{"accented letter", "joão", "", ErrDisplayNameInvalid},
		{"punctuation", "joao_silva", "", ErrDisplayNameInvalid},
		{"two accented runes is too short", "ãã", "", ErrDisplayNameTooShort},
		{"accented name within rune limit hits character rule", strings.Repeat("ã", 11), "", ErrDisplayNameInvalid},
		{"over twenty runes regardless of bytes", strings.Repeat("ã", 21), "", ErrDisplayNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDisplayName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDisplayName_FirstFailureWins(t *testing.T) {
	// a short name with forbidden characters reports the length rule,
	// not the character rule
	_, err := ValidateDisplayName("a!")
	assert.ErrorIs(t, err, ErrDisplayNameTooShort)
}

func TestValidateRatingInput(t *testing.T) {
	valid := func() (string, string, string, int, string) {
		return "5511999998888", "Maria", "eletricista", 5, "Excelente serviço!"
	}

	t.Run("valid input", func(t *testing.T) {
		result := ValidateRatingInput(valid())
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("short whatsapp", func(t *testing.T) {
		_, nome, servico, rating, comment := valid()
		result := ValidateRatingInput("12345", nome, servico, rating, comment)
		require.False(t, result.IsValid)
		assert.Equal(t, "prestador_whatsapp", result.Errors[0].Field)
	})

	t.Run("rating out of range", func(t *testing.T) {
		whatsapp, nome, servico, _, comment := valid()
		for _, r := range []int{0, 6, -1} {
			result := ValidateRatingInput(whatsapp, nome, servico, r, comment)
			assert.False(t, result.IsValid, "rating %d", r)
		}
	})

	t.Run("comment too short", func(t *testing.T) {
		whatsapp, nome, servico, rating, _ := valid()
		result := ValidateRatingInput(whatsapp, nome, servico, rating, "curto")
		require.False(t, result.IsValid)
		assert.Equal(t, "comment", result.Errors[0].Field)
	})

	t.Run("comment length counts runes", func(t *testing.T) {
		whatsapp, nome, servico, rating, _ := valid()
		result := ValidateRatingInput(whatsapp, nome, servico, rating, "ótimoooooo")
		assert.True(t, result.IsValid)
	})

	t.Run("collects every violation", func(t *testing.T) {
		result := ValidateRatingInput("", "", "", 0, "")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 5)
	})
}

func TestValidateSuggestionInput(t *testing.T) {
	assert.True(t, ValidateSuggestionInput("Modo escuro", "Seria ótimo ter um tema escuro.").IsValid)
	assert.False(t, ValidateSuggestionInput("", "descrição").IsValid)
	assert.False(t, ValidateSuggestionInput("título", "").IsValid)
	assert.False(t, ValidateSuggestionInput(strings.Repeat("a", 101), "descrição").IsValid)
	assert.False(t, ValidateSuggestionInput("título", strings.Repeat("a", 501)).IsValid)
}

func TestValidateReportInput(t *testing.T) {
	assert.True(t, ValidateReportInput(models.ReportReasonSpam, "").IsValid)
	assert.True(t, ValidateReportInput(models.ReportReasonOther, "Comentário difamatório.").IsValid)
	assert.False(t, ValidateReportInput(models.ReportReason("bogus"), "").IsValid)
	assert.False(t, ValidateReportInput(models.ReportReasonFake, strings.Repeat("a", 501)).IsValid)
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "rating", Message: "Selecione uma avaliação de 1 a 5 estrelas."}
	assert.Equal(t, "Selecione uma avaliação de 1 a 5 estrelas.", err.Error())
}
