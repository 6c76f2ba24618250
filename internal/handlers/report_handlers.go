package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dnl4/brasil/internal/middleware"
	"github.com/dnl4/brasil/internal/models"
)

// CreateReport files an abuse report against a rating
func CreateReport(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	report, err := reportService.Create(c.Request.Context(), claims.UserID(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports returns the reports filed against a rating. Admin only;
// the route carries the RequireAdmin middleware.
func ListReports(c *gin.Context) {
	ratingID := c.Query("rating_id")
	if ratingID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "O parâmetro rating_id é obrigatório."})
		return
	}

	reports, err := reportService.ListByRating(c.Request.Context(), ratingID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}
