package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionStatus_Valid(t *testing.T) {
	assert.True(t, SuggestionStatusPending.Valid())
	assert.True(t, SuggestionStatusPlanned.Valid())
	assert.True(t, SuggestionStatusCompleted.Valid())
	assert.False(t, SuggestionStatus("archived").Valid())
	assert.False(t, SuggestionStatus("").Valid())
}

func TestSuggestion_HasVoted(t *testing.T) {
	s := Suggestion{Voters: []string{"user-1", "user-2"}}

	assert.True(t, s.HasVoted("user-1"))
	assert.False(t, s.HasVoted("user-3"))
	assert.False(t, (&Suggestion{}).HasVoted("user-1"))
}
