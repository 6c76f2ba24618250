package models

import "errors"

// Sentinel errors shared by the service layer
var (
	ErrNotFound          = errors.New("document not found")
	ErrNotOwner          = errors.New("operation allowed only for the owner")
	ErrDisplayNameTaken  = errors.New("display name already in use")
	ErrPhoneNumberTaken  = errors.New("phone number already in use")
	ErrAlreadyVoted      = errors.New("user already voted on this suggestion")
	ErrNotVoted          = errors.New("user has not voted on this suggestion")
	ErrDuplicateReport   = errors.New("rating already reported by this user")
	ErrPhoneMismatch     = errors.New("verified phone does not match the profile phone")
	ErrInvalidID         = errors.New("invalid document id")
)

// AuthErrorKind identifies the error codes the auth provider surfaces.
// The provider itself is external; these kinds exist so its errors reach
// clients with a stable code and a user-facing message.
type AuthErrorKind string

const (
	AuthErrInvalidEmail       AuthErrorKind = "invalid-email"
	AuthErrUserDisabled       AuthErrorKind = "user-disabled"
	AuthErrUserNotFound       AuthErrorKind = "user-not-found"
	AuthErrWrongPassword      AuthErrorKind = "wrong-password"
	AuthErrInvalidCredential  AuthErrorKind = "invalid-credential"
	AuthErrTooManyRequests    AuthErrorKind = "too-many-requests"
	AuthErrEmailAlreadyInUse  AuthErrorKind = "email-already-in-use"
	AuthErrWeakPassword       AuthErrorKind = "weak-password"
	AuthErrRequiresRecentLogin AuthErrorKind = "requires-recent-login"
	AuthErrOperationNotAllowed AuthErrorKind = "operation-not-allowed"
)

var authErrorMessages = map[AuthErrorKind]string{
	AuthErrInvalidEmail:        "E-mail inválido.",
	AuthErrUserDisabled:        "Esta conta foi desativada.",
	AuthErrUserNotFound:        "Usuário não encontrado.",
	AuthErrWrongPassword:       "Senha incorreta.",
	AuthErrInvalidCredential:   "Credenciais inválidas.",
	AuthErrTooManyRequests:     "Muitas tentativas. Tente novamente mais tarde.",
	AuthErrEmailAlreadyInUse:   "Este e-mail já está em uso.",
	AuthErrWeakPassword:        "A senha deve ter pelo menos 6 caracteres.",
	AuthErrRequiresRecentLogin: "Por segurança, faça login novamente antes de continuar.",
	AuthErrOperationNotAllowed: "Operação não permitida.",
}

// Message returns the user-facing message for the error kind, falling
// back to a generic message for unknown codes
func (k AuthErrorKind) Message() string {
	if msg, ok := authErrorMessages[k]; ok {
		return msg
	}
	return "Erro de autenticação. Tente novamente."
}
