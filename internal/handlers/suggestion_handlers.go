package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/middleware"
	"github.com/dnl4/brasil/internal/models"
	"github.com/dnl4/brasil/internal/observability"
)

// CreateSuggestion opens a new feature suggestion authored by the caller
func CreateSuggestion(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	var req models.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	suggestion, err := suggestionService.Create(c.Request.Context(), claims.UserID(), claims.Name, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, suggestion)
}

// ListSuggestions returns all suggestions, most voted first
func ListSuggestions(c *gin.Context) {
	suggestions, err := suggestionService.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// VoteSuggestion adds the caller's vote to a suggestion
func VoteSuggestion(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	suggestion, err := suggestionService.Vote(c.Request.Context(), c.Param("id"), claims.UserID())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// UnvoteSuggestion withdraws the caller's vote from a suggestion
func UnvoteSuggestion(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	suggestion, err := suggestionService.Unvote(c.Request.Context(), c.Param("id"), claims.UserID())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// UpdateSuggestionStatus moves a suggestion through the triage states.
// Admin only; the route carries the RequireAdmin middleware.
func UpdateSuggestionStatus(c *gin.Context) {
	var req models.UpdateSuggestionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	suggestion, err := suggestionService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// StreamSuggestions pushes the full suggestion list over SSE whenever
// the collection changes. The client gets a snapshot on connect and the
// stream closes when the client disconnects.
func StreamSuggestions(c *gin.Context) {
	updates, err := suggestionService.Watch(c.Request.Context())
	if err != nil {
		observability.Logger().Error("failed to open suggestion stream", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno. Tente novamente."})
		return
	}

	observability.SuggestionStreamClients.Inc()
	defer observability.SuggestionStreamClients.Dec()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, open := <-updates:
			if !open {
				return false
			}
			c.SSEvent("suggestions", snapshot)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
