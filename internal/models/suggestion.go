package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuggestionStatus is the product owner's triage state for a suggestion
type SuggestionStatus string

const (
	SuggestionStatusPending   SuggestionStatus = "pending"
	SuggestionStatusPlanned   SuggestionStatus = "planned"
	SuggestionStatusCompleted SuggestionStatus = "completed"
)

// Valid reports whether the status is one of the known values
func (s SuggestionStatus) Valid() bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusPlanned, SuggestionStatusCompleted:
		return true
	}
	return false
}

// Suggestion represents a feature suggestion users can vote on.
// Invariant: Votes == len(Voters); the author votes at creation.
type Suggestion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	AuthorID    string             `bson:"author_id" json:"author_id"`
	AuthorName  string             `bson:"author_name" json:"author_name"`
	Votes       int                `bson:"votes" json:"votes"`
	Voters      []string           `bson:"voters" json:"voters"`
	Status      SuggestionStatus   `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// HasVoted reports whether the given user already voted on the suggestion
func (s *Suggestion) HasVoted(userID string) bool {
	for _, v := range s.Voters {
		if v == userID {
			return true
		}
	}
	return false
}

// CreateSuggestionRequest is the payload for opening a suggestion
type CreateSuggestionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateSuggestionStatusRequest is the payload for the admin triage endpoint
type UpdateSuggestionStatusRequest struct {
	Status SuggestionStatus `json:"status" binding:"required"`
}
