package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dnl4/brasil/internal/middleware"
	"github.com/dnl4/brasil/internal/models"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	profile, err := userService.Get(c.Request.Context(), claims.UserID())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile creates or updates the authenticated user's profile
func UpdateProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Claims not found"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	profile, err := userService.Upsert(c.Request.Context(), claims.UserID(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// CheckDisplayNameAvailability validates a display name and reports
// whether it is free to register
func CheckDisplayNameAvailability(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "O parâmetro name é obrigatório."})
		return
	}

	excludeUserID := ""
	if claims, ok := middleware.GetClaims(c); ok {
		excludeUserID = claims.UserID()
	}

	resp, err := userService.CheckDisplayName(c.Request.Context(), name, excludeUserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
