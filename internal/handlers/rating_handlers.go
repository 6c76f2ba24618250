package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dnl4/brasil/internal/middleware"
	"github.com/dnl4/brasil/internal/models"
	"github.com/dnl4/brasil/internal/utils"
)

// CreateRating submits a new rating for a service provider. The
// caller's name is stored in its anonymised display form.
func CreateRating(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	var req models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userName := utils.FormatPartialName(claims.Name)
	rating, err := ratingService.Create(c.Request.Context(), claims.UserID(), userName, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// UpdateRating edits the caller's own rating
func UpdateRating(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	var req models.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	rating, err := ratingService.Update(c.Request.Context(), c.Param("id"), claims.UserID(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// DeleteRating removes the caller's own rating
func DeleteRating(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	if err := ratingService.Delete(c.Request.Context(), c.Param("id"), claims.UserID()); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Avaliação removida."})
}

// ListRatings serves the two rating lookups: by provider WhatsApp number
// (flat list plus average) or by service name (grouped providers,
// best-rated first). Exactly one of the filters must be given.
func ListRatings(c *gin.Context) {
	whatsapp := c.Query("whatsapp")
	service := c.Query("service")

	switch {
	case whatsapp != "" && service == "":
		resp, err := ratingService.ListByProvider(c.Request.Context(), whatsapp)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	case service != "" && whatsapp == "":
		groups, err := ratingService.SearchByService(c.Request.Context(), service)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Informe whatsapp ou service."})
	}
}

// ListMyRatings returns the ratings authored by the caller
func ListMyRatings(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	ratings, err := ratingService.ListByUser(c.Request.Context(), claims.UserID())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// ListServices returns the distinct service names with ratings
func ListServices(c *gin.Context) {
	services, err := ratingService.UniqueServices(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}
