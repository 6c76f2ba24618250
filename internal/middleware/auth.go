package middleware

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dnl4/brasil/internal/config"
	"github.com/dnl4/brasil/internal/models"
	"github.com/dnl4/brasil/internal/observability"
)

// AuthMiddleware extracts and validates JWT claims from the request.
// The token signature is already validated by the gateway; this layer
// only decodes the identity claims.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := extractClaims(parts[1])
		if err != nil {
			observability.Logger().Error("failed to extract claims from token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if claims.UserID() == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is missing the subject claim"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// extractClaims decodes the claims section of the JWT token
func extractClaims(token string) (*models.AuthClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid token format")
	}

	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}

	var claims models.AuthClaims
	if err := json.Unmarshal(claimsBytes, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse claims: %w", err)
	}

	return &claims, nil
}

// GetClaims returns the authenticated claims stored by AuthMiddleware
func GetClaims(c *gin.Context) (*models.AuthClaims, bool) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.AuthClaims)
	return claims, ok
}

// RequireAdmin checks if the user has the admin role
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Claims not found"})
			c.Abort()
			return
		}

		if !claims.HasRole(config.AppConfig.AdminRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
