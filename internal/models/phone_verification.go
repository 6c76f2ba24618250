package models

// Constants for verification configuration
const (
	VerificationCodeLength = 6
)

// SendVerificationRequest asks for a verification code to be delivered
// to the given phone number (canonical digits or formatted input)
type SendVerificationRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// ValidateVerificationRequest submits the code received out-of-band
type ValidateVerificationRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Code        string `json:"code" binding:"required"`
}
