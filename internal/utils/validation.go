package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dnl4/brasil/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface so a single violation can be
// propagated through a service call
func (e ValidationError) Error() string {
	return e.Message
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Display-name rule violations, surfaced in rule order: the first rule
// that fails is the one reported.
var (
	ErrDisplayNameRequired = errors.New("Nome de exibição é obrigatório")
	ErrDisplayNameTooShort = errors.New("Nome deve ter pelo menos 3 caracteres")
	ErrDisplayNameTooLong  = errors.New("Nome deve ter no máximo 20 caracteres")
	ErrDisplayNameInvalid  = errors.New("Use apenas letras e números, sem espaços")
)

var displayNamePattern = regexp.MustCompile(`^[a-z0-9]+$`)

// ValidateDisplayName normalizes (trim + lowercase) a display name and
// checks the naming policy. Checks run in order - required, minimum
// length, maximum length, allowed characters - and the first violation
// is returned. On success the normalized name is returned.
func ValidateDisplayName(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if normalized == "" {
		return "", ErrDisplayNameRequired
	}
	length := utf8.RuneCountInString(normalized)
	if length < 3 {
		return "", ErrDisplayNameTooShort
	}
	if length > 20 {
		return "", ErrDisplayNameTooLong
	}
	if !displayNamePattern.MatchString(normalized) {
		return "", ErrDisplayNameInvalid
	}

	return normalized, nil
}

// ValidateRatingInput validates the fields of a rating submission
func ValidateRatingInput(prestadorWhatsapp, prestadorNome, servico string, rating int, comment string) *ValidationResult {
	result := NewValidationResult()

	if len(StripFormatting(prestadorWhatsapp)) < 10 {
		result.AddError("prestador_whatsapp", "Número de WhatsApp inválido.")
	}
	if strings.TrimSpace(prestadorNome) == "" {
		result.AddError("prestador_nome", "O nome do prestador é obrigatório.")
	}
	if strings.TrimSpace(servico) == "" {
		result.AddError("servico", "O serviço é obrigatório.")
	}
	if rating < 1 || rating > 5 {
		result.AddError("rating", "Selecione uma avaliação de 1 a 5 estrelas.")
	}
	if strings.TrimSpace(comment) == "" {
		result.AddError("comment", "O comentário é obrigatório.")
	} else if len([]rune(strings.TrimSpace(comment))) < 10 {
		result.AddError("comment", "O comentário deve ter pelo menos 10 caracteres.")
	}

	return result
}

// ValidateSuggestionInput validates the fields of a new suggestion
func ValidateSuggestionInput(title, description string) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(title) == "" {
		result.AddError("title", "O título é obrigatório.")
	} else if len([]rune(strings.TrimSpace(title))) > 100 {
		result.AddError("title", "O título deve ter no máximo 100 caracteres.")
	}
	if strings.TrimSpace(description) == "" {
		result.AddError("description", "A descrição é obrigatória.")
	} else if len([]rune(strings.TrimSpace(description))) > 500 {
		result.AddError("description", "A descrição deve ter no máximo 500 caracteres.")
	}

	return result
}

// ValidateReportInput validates an abuse report submission
func ValidateReportInput(reason models.ReportReason, description string) *ValidationResult {
	result := NewValidationResult()

	if !reason.Valid() {
		result.AddError("reason", "Motivo de denúncia inválido.")
	}
	if len([]rune(description)) > 500 {
		result.AddError("description", "A descrição deve ter no máximo 500 caracteres.")
	}

	return result
}
