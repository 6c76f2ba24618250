package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateSuggestion_RequiresClaims(t *testing.T) {
	router := gin.New()
	router.POST("/suggestions", CreateSuggestion)

	w := performRequest(router, http.MethodPost, "/suggestions", `{}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateSuggestion_TitleTooLong(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.POST("/suggestions", CreateSuggestion)

	body := `{"title":"` + strings.Repeat("a", 101) + `","description":"Uma descrição válida."}`
	w := performRequest(router, http.MethodPost, "/suggestions", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "O título deve ter no máximo 100 caracteres.")
}

func TestVoteSuggestion_InvalidID(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.POST("/suggestions/:id/vote", VoteSuggestion)

	w := performRequest(router, http.MethodPost, "/suggestions/not-hex/vote", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Identificador inválido.")
}

func TestUnvoteSuggestion_InvalidID(t *testing.T) {
	router := authedRouter("user-1", "João Silva")
	router.DELETE("/suggestions/:id/vote", UnvoteSuggestion)

	w := performRequest(router, http.MethodDelete, "/suggestions/not-hex/vote", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSuggestionStatus_UnknownStatus(t *testing.T) {
	// binding accepts any string; the triage state check rejects it
	router := authedRouter("admin-1", "Admin")
	router.PATCH("/suggestions/:id/status", UpdateSuggestionStatus)

	w := performRequest(router, http.MethodPatch, "/suggestions/65b0c6f1a2b3c4d5e6f70809/status", `{"status":"archived"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Status inválido.")
}

func TestUpdateSuggestionStatus_InvalidBody(t *testing.T) {
	router := authedRouter("admin-1", "Admin")
	router.PATCH("/suggestions/:id/status", UpdateSuggestionStatus)

	w := performRequest(router, http.MethodPatch, "/suggestions/65b0c6f1a2b3c4d5e6f70809/status", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
