package models

import "time"

// UserProfile represents an application user profile. The document id is
// the auth provider's user id, so profiles and sessions stay 1:1.
type UserProfile struct {
	UserID              string    `bson:"user_id" json:"user_id"`
	DisplayName         string    `bson:"display_name" json:"display_name"`
	FullName            string    `bson:"full_name" json:"full_name"`
	PhoneNumber         string    `bson:"phone_number" json:"phone_number"`
	PhoneNumberVerified bool      `bson:"phone_number_verified" json:"phone_number_verified"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

// UpdateProfileRequest is the payload for creating or updating a profile
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

// DisplayNameAvailabilityResponse reports the outcome of an availability check
type DisplayNameAvailabilityResponse struct {
	Name      string `json:"name"`
	Valid     bool   `json:"valid"`
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}
